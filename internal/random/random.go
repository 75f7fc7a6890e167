package random

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Source is a seedable uniform random stream. It is not synchronized: a
// Source is a single mutable stream, so concurrent generators must either
// serialize access or bind one Source per task.
type Source struct {
	rng *rand.Rand
}

// NewSource returns a Source with a fixed seed. Identical seeds and
// identical call sequences produce bit-identical draws.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// NewTimeSource returns a Source seeded from the wall clock.
func NewTimeSource() *Source {
	return NewSource(time.Now().UnixNano())
}

var defaultSource = NewTimeSource()

// Default returns the process-wide Source used when a call site passes nil.
func Default() *Source {
	return defaultSource
}

// SetDefault replaces the process-wide Source and returns the previous one,
// so deterministic harnesses can restore it.
func SetDefault(s *Source) *Source {
	previous := defaultSource
	if s != nil {
		defaultSource = s
	}
	return previous
}

// Ensure returns s, or the process-wide default when s is nil.
func Ensure(s *Source) *Source {
	if s != nil {
		return s
	}
	return defaultSource
}

// Float64 returns a uniform draw in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Intn returns a uniform draw in [0, n). n must be > 0.
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Read fills p from the stream, so a Source can serve as an entropy reader.
func (s *Source) Read(p []byte) (int, error) {
	return s.rng.Read(p)
}

// UUID draws a version-4 UUID from the stream. Under a fixed seed the
// sequence of UUIDs replays exactly.
func (s *Source) UUID() (uuid.UUID, error) {
	return uuid.NewRandomFromReader(s)
}

// Choice returns a uniformly selected element of values.
func Choice[T any](s *Source, values []T) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, fmt.Errorf("values are required")
	}
	s = Ensure(s)
	return values[s.rng.Intn(len(values))], nil
}

// Shuffle returns a uniformly permuted copy of values; the input is left
// untouched.
func Shuffle[T any](s *Source, values []T) []T {
	s = Ensure(s)
	out := make([]T, len(values))
	copy(out, values)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
