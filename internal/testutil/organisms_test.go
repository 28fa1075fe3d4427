package testutil

import (
	"testing"

	"github.com/cwbudde/algo-raspir/coverage/reads"
)

func TestUniformOrganismDeduplicates(t *testing.T) {
	org := UniformOrganism("a_b_c_Genus_species", 100000, 50, 30, 5)
	if len(org.Reads) != 50*30 {
		t.Fatalf("got %d reads, want %d", len(org.Reads), 50*30)
	}

	if got := len(reads.Deduplicate(org.Reads)); got != 50 {
		t.Fatalf("deduplicated to %d starts, want 50", got)
	}
}

func TestClusteredOrganismDeterministic(t *testing.T) {
	a := ClusteredOrganism("x", 100000, 20, 500, 7, 40, 3)
	b := ClusteredOrganism("x", 100000, 20, 500, 7, 40, 3)

	for i := range a.Reads {
		if a.Reads[i] != b.Reads[i] {
			t.Fatalf("read %d differs: %+v vs %+v", i, a.Reads[i], b.Reads[i])
		}

		if d := a.Reads[i].Depth; d < 1 || d > 40 {
			t.Fatalf("depth %d out of range", d)
		}
	}
}
