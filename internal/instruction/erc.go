package instruction

import "github.com/justmarler/Clojush/internal/random"

// Ephemeral random constants: pool entries that yield a freshly randomized
// literal on every resolution.

// IntegerERC draws uniformly from [min, max].
func IntegerERC(min, max int) Atom {
	return Generator(func(src *random.Source) Atom {
		return Literal(min + src.Intn(max-min+1))
	})
}

// FloatERC draws uniformly from [min, max).
func FloatERC(min, max float64) Atom {
	return Generator(func(src *random.Source) Atom {
		return Literal(min + src.Float64()*(max-min))
	})
}

// BooleanERC draws true or false with equal probability.
func BooleanERC() Atom {
	return Generator(func(src *random.Source) Atom {
		return Literal(src.Intn(2) == 0)
	})
}
