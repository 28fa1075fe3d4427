package report

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/cwbudde/algo-raspir/measure/uniformity"
)

// Columns is the header of the CSV statistics table.
var Columns = []string{"Species", "r_value", "p_value", "stError", "euclidean", "distribution"}

// StatsPrefix is prepended to the input file name to name the table.
const StatsPrefix = "final_stats."

// WriteCSV writes records to w. The header is written even when records is
// empty.
func WriteCSV(w io.Writer, records []uniformity.Record) error {
	cols := make([][]string, len(Columns))
	for i := range cols {
		cols[i] = make([]string, len(records))
	}

	for i, rec := range records {
		cols[0][i] = rec.Species
		cols[1][i] = formatFloat(rec.R)
		cols[2][i] = formatFloat(rec.P)
		cols[3][i] = formatFloat(rec.StdErr)
		cols[4][i] = formatFloat(rec.Euclidean)
		cols[5][i] = string(rec.Distribution)
	}

	ss := make([]series.Series, len(Columns))
	for i, name := range Columns {
		ss[i] = series.New(cols[i], series.String, name)
	}

	df := dataframe.New(ss...)
	if df.Err != nil {
		return errors.Wrap(df.Err, "report: build table")
	}

	if err := df.WriteCSV(w); err != nil {
		return errors.Wrap(err, "report: write csv")
	}

	return nil
}

// WriteCSVFile writes records to a new CSV file at path.
func WriteCSVFile(path string, records []uniformity.Record) error {
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "report: create %s", path)
	}

	if err := WriteCSV(fh, records); err != nil {
		fh.Close()
		return errors.Wrap(err, path)
	}

	return errors.Wrapf(fh.Close(), "report: close %s", path)
}

type parquetRow struct {
	Organism     string  `parquet:"name=organism, type=BYTE_ARRAY, convertedtype=UTF8"`
	Species      string  `parquet:"name=Species, type=BYTE_ARRAY, convertedtype=UTF8"`
	R            float64 `parquet:"name=r_value, type=DOUBLE"`
	P            float64 `parquet:"name=p_value, type=DOUBLE"`
	StdErr       float64 `parquet:"name=stError, type=DOUBLE"`
	Euclidean    float64 `parquet:"name=euclidean, type=DOUBLE"`
	Distribution string  `parquet:"name=distribution, type=BYTE_ARRAY, convertedtype=UTF8"`
	Slope        float64 `parquet:"name=slope, type=DOUBLE"`
	Intercept    float64 `parquet:"name=intercept, type=DOUBLE"`
	Bins         int64   `parquet:"name=bins, type=INT64"`
	ReadCount    int64   `parquet:"name=read_count, type=INT64"`
}

// WriteParquet writes records to a Snappy-compressed Parquet file at path.
// Besides the CSV columns it stores the organism, the regression slope and
// intercept, the bin count and the read count.
func WriteParquet(path string, records []uniformity.Record) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return errors.Wrapf(err, "report: create %s", path)
	}

	pw, err := writer.NewParquetWriter(fw, new(parquetRow), 1)
	if err != nil {
		fw.Close()
		return errors.Wrap(err, "report: parquet writer")
	}

	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, rec := range records {
		row := parquetRow{
			Organism:     rec.Organism,
			Species:      rec.Species,
			R:            rec.R,
			P:            rec.P,
			StdErr:       rec.StdErr,
			Euclidean:    rec.Euclidean,
			Distribution: string(rec.Distribution),
			Slope:        rec.Slope,
			Intercept:    rec.Intercept,
			Bins:         int64(rec.Bins),
			ReadCount:    int64(rec.ReadCount),
		}

		if err := pw.Write(row); err != nil {
			fw.Close()
			return errors.Wrapf(err, "report: write %s", rec.Organism)
		}
	}

	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return errors.Wrap(err, "report: finish parquet")
	}

	return errors.Wrapf(fw.Close(), "report: close %s", path)
}

// StatsFileName returns the statistics table name for an input file. The
// extension follows the output format.
func StatsFileName(input, format string) string {
	base := filepath.Base(trimCompression(input))
	if format == FormatParquet {
		base = strings.TrimSuffix(base, filepath.Ext(base)) + ".parquet"
	}

	return StatsPrefix + base
}

// OutputDir returns the directory that receives the outputs of input: the
// input path without compression suffix and final extension.
func OutputDir(input string) string {
	p := trimCompression(input)
	return strings.TrimSuffix(p, filepath.Ext(p))
}

// Output formats.
const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// ValidFormat reports whether format names a supported table format.
func ValidFormat(format string) bool {
	return format == FormatCSV || format == FormatParquet
}

// Write writes records to path in the given format.
func Write(path, format string, records []uniformity.Record) error {
	switch format {
	case FormatCSV:
		return WriteCSVFile(path, records)
	case FormatParquet:
		return WriteParquet(path, records)
	default:
		return errors.Errorf("report: unknown format %q", format)
	}
}

var compressionSuffixes = []string{".gz", ".xz", ".zst"}

func trimCompression(p string) string {
	for _, s := range compressionSuffixes {
		if strings.HasSuffix(p, s) {
			return strings.TrimSuffix(p, s)
		}
	}

	return p
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
