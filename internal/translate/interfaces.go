package translate

import "github.com/justmarler/Clojush/internal/genome"

// Program is a nested Push expression tree; blocks nest as []any values.
type Program []any

// Translator expands a linear Plush genome into an executable program and
// enforces any final size limit. Implementations live with the evolutionary
// loop, outside this module. The generator guarantees every gene it hands
// over carries at least an instruction.
type Translator interface {
	Translate(g genome.Plush, cfg genome.Config) (Program, error)
}
