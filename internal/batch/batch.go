// Package batch classifies every organism of one or more coverage tables
// and writes the per-file statistics tables and spectrum plots.
package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/cheggaaa/pb/v3"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-raspir/coverage/reads"
	"github.com/cwbudde/algo-raspir/dataset"
	"github.com/cwbudde/algo-raspir/measure/uniformity"
	"github.com/cwbudde/algo-raspir/report"
	"github.com/cwbudde/algo-raspir/report/spectrumplot"
)

// Options controls a batch run.
type Options struct {
	Workers        int    // concurrent organisms per file; <= 0 uses GOMAXPROCS
	Plots          bool   // render one spectrum image per classified organism
	Format         string // report.FormatCSV or report.FormatParquet
	KeepNonuniform bool   // keep nonuniform rows in the statistics table
	OutputRoot     string // parent of the output directories; empty means next to the input
	Progress       bool
	Exclude        string // organism-name pattern dropped at load time
}

// DefaultOptions returns CSV output with plots and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Workers:  runtime.GOMAXPROCS(0),
		Plots:    true,
		Format:   report.FormatCSV,
		Progress: true,
		Exclude:  dataset.DefaultExcludePattern,
	}
}

// Summary counts the organisms of one input file.
type Summary struct {
	File       string
	Output     string // statistics table path
	Organisms  int
	Skipped    int
	Uniform    int
	Nonuniform int
}

// Runner processes input files with a shared analyzer.
type Runner struct {
	analyzer *uniformity.Analyzer
	opts     Options
	log      *logrus.Logger
}

// NewRunner creates a runner. A nil logger uses the logrus standard logger.
func NewRunner(analyzer *uniformity.Analyzer, opts Options, log *logrus.Logger) *Runner {
	if analyzer == nil {
		analyzer = uniformity.NewAnalyzer()
	}

	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	if opts.Format == "" {
		opts.Format = report.FormatCSV
	}

	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Runner{analyzer: analyzer, opts: opts, log: log}
}

// OutputDir returns the directory receiving the outputs of input.
func (r *Runner) OutputDir(input string) string {
	dir := report.OutputDir(input)
	if r.opts.OutputRoot != "" {
		dir = filepath.Join(r.opts.OutputRoot, filepath.Base(dir))
	}

	return dir
}

// Run processes every file in order. A failing file is logged and the run
// continues; the returned error joins all failures.
func (r *Runner) Run(ctx context.Context, files []string) ([]Summary, error) {
	summaries := make([]Summary, 0, len(files))

	var errs []error
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		s, err := r.RunFile(ctx, f)
		if err != nil {
			r.log.WithField("file", f).WithError(err).Error("file failed")
			errs = append(errs, err)
			continue
		}

		summaries = append(summaries, s)
	}

	return summaries, errors.Join(errs...)
}

// RunFile classifies all organisms of one input file and writes its
// statistics table. A table without organisms yields a header-only
// statistics table.
func (r *Runner) RunFile(ctx context.Context, path string) (Summary, error) {
	if !report.ValidFormat(r.opts.Format) {
		return Summary{}, pkgerrors.Errorf("batch: unknown format %q", r.opts.Format)
	}

	if err := r.analyzer.Config().Validate(); err != nil {
		return Summary{}, err
	}

	log := r.log.WithField("file", path)

	dir := r.OutputDir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Summary{}, pkgerrors.Wrapf(err, "batch: create %s", dir)
	}

	orgs, err := dataset.Open(path, dataset.WithExcludePattern(r.opts.Exclude))
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		File:      path,
		Output:    filepath.Join(dir, report.StatsFileName(path, r.opts.Format)),
		Organisms: len(orgs),
	}

	if len(orgs) == 0 {
		log.Warn("dataset is empty")
		return sum, report.Write(sum.Output, r.opts.Format, nil)
	}

	results, skipped, err := r.analyze(ctx, log, dir, orgs)
	if err != nil {
		return sum, err
	}

	records := make([]uniformity.Record, 0, len(results))
	for _, res := range results {
		if res == nil {
			continue
		}

		if res.Record.IsUniform() {
			sum.Uniform++
		} else {
			sum.Nonuniform++
		}

		records = append(records, res.Record)
	}

	sum.Skipped = skipped

	if !r.opts.KeepNonuniform {
		records = uniformity.UniformRecords(records)
	}

	if err := report.Write(sum.Output, r.opts.Format, records); err != nil {
		return sum, err
	}

	log.WithFields(logrus.Fields{
		"organisms":  sum.Organisms,
		"skipped":    sum.Skipped,
		"uniform":    sum.Uniform,
		"nonuniform": sum.Nonuniform,
	}).Info("run was successful")

	return sum, nil
}

// analyze runs the organisms concurrently. Results are stored by index, so
// their order is the organism order of orgs.
func (r *Runner) analyze(ctx context.Context, log *logrus.Entry, dir string, orgs []reads.Organism) ([]*uniformity.Result, int, error) {
	results := make([]*uniformity.Result, len(orgs))

	var skipped atomic.Int64

	var bar *pb.ProgressBar
	if r.opts.Progress {
		bar = pb.Full.Start(len(orgs))
		defer bar.Finish()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	for i, org := range orgs {
		g.Go(func() error {
			if bar != nil {
				defer bar.Increment()
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := r.analyzer.Analyze(org)
			if err != nil && !uniformity.IsSkip(err) {
				return pkgerrors.Wrap(err, org.Name)
			}

			if r.opts.Plots && len(res.Spectra.Reference) > 0 {
				img := filepath.Join(dir, spectrumplot.FileName(org.Name))
				if err := spectrumplot.Render(img, res.Spectra); err != nil {
					return pkgerrors.Wrapf(err, "batch: plot %s", org.Name)
				}
			}

			if err != nil {
				skipped.Add(1)
				log.WithField("organism", org.Name).WithError(err).Debug("organism skipped")
				return nil
			}

			results[i] = &res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return results, int(skipped.Load()), nil
}
