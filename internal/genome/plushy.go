package genome

import (
	"fmt"

	"github.com/justmarler/Clojush/internal/instruction"
	"github.com/justmarler/Clojush/internal/random"
)

// Token is one element of a Plushy genome: either a resolved instruction
// value or the distinguished close token.
type Token struct {
	Instruction any  `json:"instruction,omitempty"`
	Close       bool `json:"close,omitempty"`
}

// CloseToken returns the distinguished close token.
func CloseToken() Token {
	return Token{Close: true}
}

// InstructionToken wraps a resolved instruction value.
func InstructionToken(value any) Token {
	return Token{Instruction: value}
}

// Plushy is a flat token sequence. No nesting structure is imposed here;
// the external translator reconstructs the program tree.
type Plushy []Token

// DefaultCloseProbability computes the Plushy per-position close
// probability from the pool's declared parentheses arities: the arity sum
// over literal entries (generators and unknown instructions count 0)
// divided by the pool size.
func DefaultCloseProbability(pool []instruction.Atom, table instruction.Table) (float64, error) {
	if len(pool) == 0 {
		return 0, instruction.ErrEmptyPool
	}

	total := 0
	for _, atom := range pool {
		if atom.IsGenerator() {
			continue
		}
		if id, ok := atom.Value().(instruction.ID); ok {
			total += table.Parentheses(id)
		}
	}

	p := float64(total) / float64(len(pool))
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("default plushy close probability must be in [0,1], got %f", p)
	}
	return p, nil
}

// BuildPlushy generates a Plushy genome of random length in
// [1, maxGenomeSize]. Each position independently emits the close token
// with the resolved close probability, otherwise a resolved instruction.
func BuildPlushy(src *random.Source, pool []instruction.Atom, table instruction.Table, cfg Config, maxGenomeSize int) (Plushy, error) {
	if len(pool) == 0 {
		return nil, instruction.ErrEmptyPool
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	closeProbability := 0.0
	if cfg.PlushyCloseProbability != nil {
		closeProbability = *cfg.PlushyCloseProbability
	} else {
		computed, err := DefaultCloseProbability(pool, table)
		if err != nil {
			return nil, err
		}
		closeProbability = computed
	}

	src = random.Ensure(src)
	size, err := RandomGenomeSize(src, maxGenomeSize)
	if err != nil {
		return nil, err
	}

	tokens := make(Plushy, 0, size)
	for i := 0; i < size; i++ {
		if src.Float64() < closeProbability {
			tokens = append(tokens, CloseToken())
			continue
		}
		value, err := instruction.Resolve(src, pool)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, InstructionToken(value))
	}
	return tokens, nil
}
