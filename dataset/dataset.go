package dataset

import (
	"bufio"
	"encoding/csv"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"

	"github.com/cwbudde/algo-raspir/coverage/reads"
)

// Column names of the input table.
const (
	ColOrganism     = "Organism"
	ColPosition     = "Position"
	ColGenomeLength = "GenomeLength"
	ColDepth        = "Depth"
)

// DefaultExcludePattern marks host and control references.
const DefaultExcludePattern = "1_1_1_"

// ErrMissingColumn is returned when a required column is absent.
var ErrMissingColumn = errors.New("dataset: missing column")

var required = []string{ColOrganism, ColPosition, ColGenomeLength, ColDepth}

type options struct {
	exclude string
}

// Option configures loading.
type Option func(*options)

// WithExcludePattern drops every row whose organism name contains pattern.
// An empty pattern keeps all rows.
func WithExcludePattern(pattern string) Option {
	return func(o *options) {
		o.exclude = pattern
	}
}

// Open reads the table at path. Compressed files are detected by content.
func Open(path string, opts ...Option) ([]reads.Organism, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open %s", path)
	}
	defer fh.Close()

	orgs, err := Load(fh, opts...)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return orgs, nil
}

// Load parses a table from r and returns its organisms sorted by name.
//
// Rows of excluded organisms and rows with a missing genome length,
// position or depth are dropped before grouping.
func Load(r io.Reader, opts ...Option) ([]reads.Organism, error) {
	o := options{exclude: DefaultExcludePattern}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	br := bufio.NewReader(r)

	header, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "dataset: read header")
	}

	if !hasRows(br) {
		names, err := csv.NewReader(strings.NewReader(header)).Read()
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "dataset: parse header")
		}

		return nil, checkColumns(names)
	}

	df := dataframe.ReadCSV(io.MultiReader(strings.NewReader(header), br),
		dataframe.WithTypes(map[string]series.Type{
			ColOrganism:     series.String,
			ColPosition:     series.Float,
			ColGenomeLength: series.Float,
			ColDepth:        series.Float,
		}),
	)
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "dataset: read csv")
	}

	if err := checkColumns(df.Names()); err != nil {
		return nil, err
	}

	if o.exclude != "" {
		pattern := o.exclude
		df = df.Filter(dataframe.F{
			Colname:    ColOrganism,
			Comparator: series.CompFunc,
			Comparando: func(el series.Element) bool {
				return !strings.Contains(el.String(), pattern)
			},
		})
	}

	for _, col := range []string{ColGenomeLength, ColPosition, ColDepth} {
		df = df.Filter(dataframe.F{
			Colname:    col,
			Comparator: series.CompFunc,
			Comparando: present,
		})
	}

	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "dataset: filter")
	}

	if df.Nrow() == 0 {
		return nil, nil
	}

	return group(df)
}

// hasRows reports whether anything but blank lines follows the header.
func hasRows(br *bufio.Reader) bool {
	for {
		b, err := br.Peek(1)
		if err != nil || len(b) == 0 {
			return false
		}

		switch b[0] {
		case '\n', '\r', ' ', '\t':
			if _, err := br.ReadByte(); err != nil {
				return false
			}
		default:
			return true
		}
	}
}

func present(el series.Element) bool {
	return !el.IsNA() && !math.IsNaN(el.Float())
}

func checkColumns(names []string) error {
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}

	for _, want := range required {
		if !have[want] {
			return errors.Wrapf(ErrMissingColumn, "%q", want)
		}
	}

	return nil
}

func group(df dataframe.DataFrame) ([]reads.Organism, error) {
	groups := df.GroupBy(ColOrganism)
	if groups.Err != nil {
		return nil, errors.Wrap(groups.Err, "dataset: group by organism")
	}

	byName := groups.GetGroups()
	orgs := make([]reads.Organism, 0, len(byName))

	for _, g := range byName {
		if g.Nrow() == 0 {
			continue
		}

		orgs = append(orgs, organism(g))
	}

	sort.Slice(orgs, func(i, j int) bool { return orgs[i].Name < orgs[j].Name })

	return orgs, nil
}

func organism(g dataframe.DataFrame) reads.Organism {
	positions := g.Col(ColPosition).Float()
	depths := g.Col(ColDepth).Float()

	rs := make([]reads.Read, len(positions))
	for i := range positions {
		rs[i] = reads.Read{Position: int(positions[i]), Depth: int(depths[i])}
	}

	return reads.Organism{
		Name:         g.Col(ColOrganism).Elem(0).String(),
		GenomeLength: int(g.Col(ColGenomeLength).Elem(0).Float()),
		Reads:        rs,
	}
}
