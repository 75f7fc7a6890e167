package genome

import (
	"fmt"

	"github.com/justmarler/Clojush/internal/random"
)

// CloseSampler draws a close count from a cascading probability list via
// its cumulative distribution. For probabilities [p0..pk] the cumulative
// list is [c0..ck, 1.0]; the trailing sentinel absorbs the residual mass
// 1 - sum(p), so samples range over [0, k+1].
type CloseSampler struct {
	cumulative []float64
}

// sumTolerance absorbs float64 accumulation error; the default probability
// list sums to exactly 1 in decimal but slightly above it in binary.
const sumTolerance = 1e-9

// NewCloseSampler validates probabilities and precomputes the cumulative
// list. An empty input yields a sampler that always returns 0.
func NewCloseSampler(probabilities []float64) (*CloseSampler, error) {
	cumulative := make([]float64, 0, len(probabilities)+1)
	sum := 0.0
	for i, p := range probabilities {
		if p < 0 {
			return nil, fmt.Errorf("close parens probability %d must be >= 0, got %f", i, p)
		}
		sum += p
		if sum > 1+sumTolerance {
			return nil, fmt.Errorf("close parens probabilities must sum to <= 1, got %f", sum)
		}
		cumulative = append(cumulative, sum)
	}
	cumulative = append(cumulative, 1.0)
	return &CloseSampler{cumulative: cumulative}, nil
}

// Sample returns the smallest index i with u <= cumulative[i] for one
// uniform draw u.
func (s *CloseSampler) Sample(src *random.Source) int {
	u := random.Ensure(src).Float64()
	for i, c := range s.cumulative {
		if u <= c {
			return i
		}
	}
	// Unreachable: the sentinel 1.0 bounds every u in [0,1).
	return len(s.cumulative) - 1
}

// MaxCount returns the largest close count the sampler can produce.
func (s *CloseSampler) MaxCount() int {
	return len(s.cumulative) - 1
}
