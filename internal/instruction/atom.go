package instruction

import (
	"errors"

	"github.com/justmarler/Clojush/internal/random"
)

var (
	ErrEmptyPool       = errors.New("atom generator pool is empty")
	ErrNestedGenerator = errors.New("atom generator nesting deeper than one level")
)

// GeneratorFunc produces a fresh atom on each call, drawing any randomness
// from src. Ephemeral random constants are generators that return a new
// literal every time.
type GeneratorFunc func(src *random.Source) Atom

// Atom is one entry of an atom-generator pool: either a literal value or a
// generator that resolves to one.
type Atom struct {
	value    any
	generate GeneratorFunc
}

// Literal wraps a concrete value, typically an instruction ID or a constant.
func Literal(value any) Atom {
	return Atom{value: value}
}

// Generator wraps a resolver. The pool contract allows a generator to
// return another generator, but only one level deep.
func Generator(fn GeneratorFunc) Atom {
	return Atom{generate: fn}
}

// IsGenerator reports whether the atom still needs resolution.
func (a Atom) IsGenerator() bool {
	return a.generate != nil
}

// Value returns the literal payload; nil for unresolved generators.
func (a Atom) Value() any {
	return a.value
}

// Resolve picks one pool entry uniformly and resolves it to a concrete
// value. A generator result is invoked at most once more; anything still
// unresolved after that is a pool defect and fails with
// ErrNestedGenerator.
func Resolve(src *random.Source, pool []Atom) (any, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	src = random.Ensure(src)

	entry, err := random.Choice(src, pool)
	if err != nil {
		return nil, err
	}
	if entry.generate != nil {
		entry = entry.generate(src)
	}
	if entry.generate != nil {
		entry = entry.generate(src)
	}
	if entry.generate != nil {
		return nil, ErrNestedGenerator
	}
	return entry.value, nil
}
