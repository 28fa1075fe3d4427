package report

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"

	"github.com/cwbudde/algo-raspir/measure/uniformity"
)

var records = []uniformity.Record{
	{
		Organism:     "NC_000913_3_Escherichia_coli_K12",
		Species:      "Escherichia coli",
		R:            0.9993,
		P:            0,
		StdErr:       0,
		Euclidean:    0.004,
		Distribution: uniformity.Uniform,
		Slope:        0.0107,
		Intercept:    -0.25,
		Bins:         11175,
		ReadCount:    150,
	},
	{
		Organism:     "NC_002695_1_Escherichia_coli_O157",
		Species:      "Escherichia coli",
		R:            0.88,
		P:            0.0204,
		StdErr:       0.00193,
		Euclidean:    58.14,
		Distribution: uniformity.Nonuniform,
		Slope:        0.0071,
		Intercept:    0.01,
		Bins:         6,
		ReadCount:    4,
	},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatal(err)
	}

	want := "Species,r_value,p_value,stError,euclidean,distribution\n" +
		"Escherichia coli,0.9993,0,0,0.004,uniform\n" +
		"Escherichia coli,0.88,0.0204,0.00193,58.14,nonuniform\n"

	if got := buf.String(); got != want {
		t.Fatalf("WriteCSV =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "Species,r_value,p_value,stError,euclidean,distribution\n" {
		t.Fatalf("WriteCSV(nil) = %q", got)
	}
}

func TestWriteParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.parquet")
	if err := Write(path, FormatParquet, records); err != nil {
		t.Fatal(err)
	}

	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(parquetRow), 1)
	if err != nil {
		t.Fatal(err)
	}
	defer pr.ReadStop()

	n := int(pr.GetNumRows())
	if n != len(records) {
		t.Fatalf("got %d rows, want %d", n, len(records))
	}

	rows := make([]parquetRow, n)
	if err := pr.Read(&rows); err != nil {
		t.Fatal(err)
	}

	for i, row := range rows {
		rec := records[i]
		if row.Organism != rec.Organism || row.Distribution != string(rec.Distribution) {
			t.Fatalf("row %d = %+v, want %+v", i, row, rec)
		}

		if math.Abs(row.Euclidean-rec.Euclidean) > 0 {
			t.Fatalf("row %d euclidean = %v, want %v", i, row.Euclidean, rec.Euclidean)
		}

		if row.Slope != rec.Slope || row.Intercept != rec.Intercept || row.Bins != int64(rec.Bins) || row.ReadCount != int64(rec.ReadCount) {
			t.Fatalf("row %d regression columns = %+v, want %+v", i, row, rec)
		}
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(filepath.Join(t.TempDir(), "x"), "xlsx", records); err == nil {
		t.Fatal("expected error for unknown format")
	}

	if ValidFormat("xlsx") || !ValidFormat(FormatCSV) || !ValidFormat(FormatParquet) {
		t.Fatal("ValidFormat mismatch")
	}
}

func TestStatsFileName(t *testing.T) {
	tests := []struct {
		input, format, want string
	}{
		{"data/sample.raspir.csv", FormatCSV, "final_stats.sample.raspir.csv"},
		{"sample.raspir.csv.gz", FormatCSV, "final_stats.sample.raspir.csv"},
		{"sample.raspir.csv", FormatParquet, "final_stats.sample.raspir.parquet"},
	}

	for _, tc := range tests {
		if got := StatsFileName(tc.input, tc.format); got != tc.want {
			t.Errorf("StatsFileName(%q, %q) = %q, want %q", tc.input, tc.format, got, tc.want)
		}
	}
}

func TestOutputDir(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"sample.raspir.csv", "sample.raspir"},
		{"data/sample.raspir.csv.zst", "data/sample.raspir"},
		{"noext", "noext"},
	}

	for _, tc := range tests {
		if got := OutputDir(tc.input); got != tc.want {
			t.Errorf("OutputDir(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
