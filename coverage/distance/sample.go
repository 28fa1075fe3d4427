package distance

import "golang.org/x/exp/rand"

// DefaultSeed is the seed of the subsampling generator.
const DefaultSeed = 222

// Sampler draws reproducible subsets without replacement.
//
// A Sampler is not safe for concurrent use. Create one per organism so that
// subsets do not depend on the order in which organisms are processed.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler seeded with seed.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample returns k distinct elements of values in draw order. values is not
// modified. If k >= len(values) a copy of all values is returned.
func (s *Sampler) Sample(values []float64, k int) []float64 {
	if k <= 0 {
		return nil
	}

	pool := make([]float64, len(values))
	copy(pool, values)

	if k >= len(pool) {
		return pool
	}

	// Partial Fisher-Yates: the first k slots end up holding the sample.
	for i := range k {
		j := i + s.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
