// Package spectrumplot renders the magnitude profiles of an organism as a
// PNG image.
package spectrumplot

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/cwbudde/algo-raspir/measure/uniformity"
)

// FileSuffix is appended to the organism name to name its image.
const FileSuffix = "_freq.png"

// ErrEmptySpectra is returned for spectra without bins in the plotted range.
var ErrEmptySpectra = errors.New("spectrumplot: nothing to draw")

// ErrLengthMismatch is returned when the profiles and frequencies differ in
// length.
var ErrLengthMismatch = errors.New("spectrumplot: spectra lengths differ")

var (
	referenceColor = color.Black
	sampleColor    = color.RGBA{G: 128, A: 255}
	fillColor      = color.NRGBA{R: 255, A: 128}
)

// Config controls the figure.
type Config struct {
	Width, Height vg.Length
	DPI           int
	XMin, XMax    float64
	LineWidth     vg.Length
	FontSize      vg.Length
}

// DefaultConfig returns a 2.5 x 2 inch figure at 600 dpi showing the
// frequency range [-0.2, 0.2].
func DefaultConfig() Config {
	return Config{
		Width:     2.5 * vg.Inch,
		Height:    2 * vg.Inch,
		DPI:       600,
		XMin:      -0.2,
		XMax:      0.2,
		LineWidth: vg.Points(0.6),
		FontSize:  vg.Points(4),
	}
}

// Option mutates a Config.
type Option func(*Config)

// WithSize sets the figure size.
func WithSize(w, h vg.Length) Option {
	return func(c *Config) {
		if w > 0 && h > 0 {
			c.Width, c.Height = w, h
		}
	}
}

// WithDPI sets the raster resolution.
func WithDPI(dpi int) Option {
	return func(c *Config) {
		if dpi > 0 {
			c.DPI = dpi
		}
	}
}

// WithXRange sets the plotted frequency range.
func WithXRange(lo, hi float64) Option {
	return func(c *Config) {
		if lo < hi {
			c.XMin, c.XMax = lo, hi
		}
	}
}

// FileName returns the image name of an organism.
func FileName(organism string) string {
	return organism + FileSuffix
}

// Render draws sp and writes a PNG to path.
//
// The reference profile is drawn in black, the sample profile in green and
// the area between them is filled red. Bins are drawn in ascending
// frequency order.
func Render(path string, sp uniformity.Spectra, opts ...Option) error {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	p, err := build(sp, cfg)
	if err != nil {
		return err
	}

	c := vgimg.NewWith(vgimg.UseWH(cfg.Width, cfg.Height), vgimg.UseDPI(cfg.DPI))
	p.Draw(draw.New(c))

	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("spectrumplot: %w", err)
	}

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(fh); err != nil {
		fh.Close()
		return fmt.Errorf("spectrumplot: write %s: %w", path, err)
	}

	return fh.Close()
}

func build(sp uniformity.Spectra, cfg Config) (*plot.Plot, error) {
	n := len(sp.Frequencies)
	if len(sp.Real) != n || len(sp.Reference) != n {
		return nil, fmt.Errorf("%w: %d/%d/%d", ErrLengthMismatch, len(sp.Frequencies), len(sp.Reference), len(sp.Real))
	}

	ref, sample := window(sp, cfg.XMin, cfg.XMax)
	if len(ref) == 0 {
		return nil, ErrEmptySpectra
	}

	p := plot.New()
	p.Title.Text = sp.Label
	p.Title.TextStyle.Font.Size = cfg.FontSize
	p.X.Label.Text = "Frequency per cycle"
	p.Y.Label.Text = "Spectrum"
	p.X.Min, p.X.Max = cfg.XMin, cfg.XMax

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font.Size = cfg.FontSize
		ax.Tick.Label.Font.Size = cfg.FontSize * 3 / 4
	}

	fill, err := plotter.NewPolygon(ring(ref, sample))
	if err != nil {
		return nil, fmt.Errorf("spectrumplot: fill: %w", err)
	}
	fill.Color = fillColor
	fill.LineStyle.Width = 0

	refLine, err := plotter.NewLine(ref)
	if err != nil {
		return nil, fmt.Errorf("spectrumplot: reference: %w", err)
	}
	refLine.Color = referenceColor
	refLine.Width = cfg.LineWidth

	sampleLine, err := plotter.NewLine(sample)
	if err != nil {
		return nil, fmt.Errorf("spectrumplot: sample: %w", err)
	}
	sampleLine.Color = sampleColor
	sampleLine.Width = cfg.LineWidth

	p.Add(fill, refLine, sampleLine)

	p.Legend.Add("Reference", refLine)
	p.Legend.Add("Sample", sampleLine)
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = cfg.FontSize

	return p, nil
}

// window returns the bins with lo <= f <= hi sorted by frequency.
func window(sp uniformity.Spectra, lo, hi float64) (ref, sample plotter.XYs) {
	idx := make([]int, 0, len(sp.Frequencies))
	for i, f := range sp.Frequencies {
		if f >= lo && f <= hi {
			idx = append(idx, i)
		}
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return sp.Frequencies[idx[a]] < sp.Frequencies[idx[b]]
	})

	ref = make(plotter.XYs, len(idx))
	sample = make(plotter.XYs, len(idx))

	for k, i := range idx {
		ref[k] = plotter.XY{X: sp.Frequencies[i], Y: sp.Reference[i]}
		sample[k] = plotter.XY{X: sp.Frequencies[i], Y: sp.Real[i]}
	}

	return ref, sample
}

// ring closes the area between two curves sharing the same x values.
func ring(upper, lower plotter.XYs) plotter.XYs {
	out := make(plotter.XYs, 0, len(upper)+len(lower))
	out = append(out, upper...)

	for i := len(lower) - 1; i >= 0; i-- {
		out = append(out, lower[i])
	}

	return out
}
