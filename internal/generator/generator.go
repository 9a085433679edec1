// Package generator samples target words from a corpus.
package generator

import (
	"math/rand"
	"time"
)

// Sampler produces random word samples.
type Sampler struct {
	rnd *rand.Rand
}

// New returns a Sampler seeded with the current time.
func New() *Sampler {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Sampler driven by the given source. Tests pass a
// fixed seed to get deterministic samples.
func NewWithRand(rnd *rand.Rand) *Sampler {
	return &Sampler{rnd: rnd}
}

// Sample returns n words drawn uniformly without replacement. When n
// exceeds the corpus size the whole corpus is returned in random order.
func (s *Sampler) Sample(words []string, n int) []string {
	if n > len(words) {
		n = len(words)
	}
	out := make([]string, 0, n)
	for _, idx := range s.rnd.Perm(len(words))[:n] {
		out = append(out, words[idx])
	}
	return out
}
