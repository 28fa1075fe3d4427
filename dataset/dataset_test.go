package dataset

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const table = `Organism,Position,GenomeLength,Depth
zeta_1_x_Genus_b,5,1000,2
alpha_1_x_Genus_a,10,1000,1
alpha_1_x_Genus_a,11,1000,1
1_1_1_Homo_sapiens,20,3000000000,9
zeta_1_x_Genus_b,9,1000,3
alpha_1_x_Genus_a,50,1000,4
gap_1_x_Genus_c,1,,1
`

func TestLoad(t *testing.T) {
	orgs, err := Load(strings.NewReader(table))
	if err != nil {
		t.Fatal(err)
	}

	if len(orgs) != 2 {
		t.Fatalf("got %d organisms, want 2: %+v", len(orgs), orgs)
	}

	a, z := orgs[0], orgs[1]
	if a.Name != "alpha_1_x_Genus_a" || z.Name != "zeta_1_x_Genus_b" {
		t.Fatalf("unexpected order %q, %q", a.Name, z.Name)
	}

	if a.GenomeLength != 1000 || len(a.Reads) != 3 {
		t.Fatalf("alpha = %+v", a)
	}

	wantPos := []int{10, 11, 50}
	for i, r := range a.Reads {
		if r.Position != wantPos[i] {
			t.Fatalf("alpha read %d at %d, want %d", i, r.Position, wantPos[i])
		}
	}

	if a.Reads[2].Depth != 4 {
		t.Fatalf("alpha depth = %d, want 4", a.Reads[2].Depth)
	}

	if z.Reads[0].Position != 5 || z.Reads[1].Position != 9 {
		t.Fatalf("zeta reads out of file order: %+v", z.Reads)
	}
}

func TestLoadExcludePattern(t *testing.T) {
	orgs, err := Load(strings.NewReader(table), WithExcludePattern(""))
	if err != nil {
		t.Fatal(err)
	}

	if len(orgs) != 3 {
		t.Fatalf("got %d organisms, want 3", len(orgs))
	}

	orgs, err = Load(strings.NewReader(table), WithExcludePattern("Genus_a"))
	if err != nil {
		t.Fatal(err)
	}

	for _, o := range orgs {
		if strings.Contains(o.Name, "Genus_a") {
			t.Fatalf("excluded organism %q still present", o.Name)
		}
	}
}

func TestLoadMissingColumn(t *testing.T) {
	_, err := Load(strings.NewReader("Organism,Position,Depth\na,1,1\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestLoadOnlyExcluded(t *testing.T) {
	in := "Organism,Position,GenomeLength,Depth\n1_1_1_Homo_sapiens,20,3000,9\n"

	orgs, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	if len(orgs) != 0 {
		t.Fatalf("got %d organisms, want none", len(orgs))
	}
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.raspir.csv.gz")

	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	zw := gzip.NewWriter(fh)
	if _, err := zw.Write([]byte(table)); err != nil {
		t.Fatal(err)
	}

	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	orgs, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(orgs) != 2 {
		t.Fatalf("got %d organisms, want 2", len(orgs))
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	for _, in := range []string{
		"Organism,Position,GenomeLength,Depth\n",
		"Organism,Position,GenomeLength,Depth",
		"Organism,Position,GenomeLength,Depth\r\n\r\n\n",
	} {
		orgs, err := Load(strings.NewReader(in))
		if err != nil {
			t.Fatalf("Load(%q): %v", in, err)
		}

		if len(orgs) != 0 {
			t.Fatalf("Load(%q) = %+v, want none", in, orgs)
		}
	}
}

func TestLoadHeaderOnlyMissingColumn(t *testing.T) {
	_, err := Load(strings.NewReader("Organism,Position,Depth\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}

	if _, err := Load(strings.NewReader("")); !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("empty input: expected ErrMissingColumn, got %v", err)
	}
}
