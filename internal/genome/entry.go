package genome

import (
	"fmt"

	"github.com/justmarler/Clojush/internal/instruction"
	"github.com/justmarler/Clojush/internal/random"
)

// pointsPerGene is the assumed tree-expansion factor on translation: one
// gene expands to roughly four elementary expression points.
const pointsPerGene = 4

// MaxGenomeSizeForPoints converts a program-size budget in expression
// points into a genome-size budget, never below one gene.
func MaxGenomeSizeForPoints(maxPoints int) (int, error) {
	if maxPoints < 1 {
		return 0, fmt.Errorf("max points must be >= 1, got %d", maxPoints)
	}
	size := maxPoints / pointsPerGene
	if size < 1 {
		size = 1
	}
	return size, nil
}

// RandomPushGenome is the generation entry point: it converts the program
// budget into a genome budget and builds a Plush genome. The caller hands
// the result plus the configuration to the external translator, which
// enforces any final size limit.
func RandomPushGenome(src *random.Source, pool []instruction.Atom, cfg Config, maxPoints int) (Plush, error) {
	maxGenomeSize, err := MaxGenomeSizeForPoints(maxPoints)
	if err != nil {
		return nil, err
	}
	assembler, err := NewAssembler(pool, cfg)
	if err != nil {
		return nil, err
	}
	return BuildPlush(src, assembler, maxGenomeSize)
}
