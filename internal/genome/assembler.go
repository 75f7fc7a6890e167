package genome

import (
	"fmt"

	"github.com/justmarler/Clojush/internal/instruction"
	"github.com/justmarler/Clojush/internal/random"
)

// markerRule produces the value for one marker of one gene.
type markerRule func(a *Assembler, src *random.Source) (any, error)

// markerRules is the build-once strategy table mapping marker name to its
// generation rule. Requested marker sets are validated against this table
// when the assembler is constructed.
var markerRules = map[Marker]markerRule{
	MarkerInstruction: func(a *Assembler, src *random.Source) (any, error) {
		return instruction.Resolve(src, a.pool)
	},
	MarkerClose: func(a *Assembler, src *random.Source) (any, error) {
		return a.sampler.Sample(src), nil
	},
	MarkerSilent: func(a *Assembler, src *random.Source) (any, error) {
		return src.Float64() < a.cfg.SilentInstructionProbability, nil
	},
	MarkerUUID: func(_ *Assembler, src *random.Source) (any, error) {
		return src.UUID()
	},
	MarkerRandomInsertion: func(_ *Assembler, _ *random.Source) (any, error) {
		return true, nil
	},
}

// Assembler builds one gene per call from an atom-generator pool and a
// validated configuration.
type Assembler struct {
	pool    []instruction.Atom
	cfg     Config
	markers []Marker
	sampler *CloseSampler
}

// NewAssembler validates the pool and configuration up front, so assembly
// itself cannot hit a configuration error mid-genome.
func NewAssembler(pool []instruction.Atom, cfg Config) (*Assembler, error) {
	if len(pool) == 0 {
		return nil, instruction.ErrEmptyPool
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	markers := cfg.markerSet()
	for _, marker := range markers {
		if _, ok := markerRules[marker]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMarker, marker)
		}
	}

	sampler, err := NewCloseSampler(cfg.CloseParensProbabilities)
	if err != nil {
		return nil, err
	}

	return &Assembler{
		pool:    pool,
		cfg:     cfg,
		markers: markers,
		sampler: sampler,
	}, nil
}

// Markers returns the marker set attached to every assembled gene, in draw
// order.
func (a *Assembler) Markers() []Marker {
	return append([]Marker(nil), a.markers...)
}

// Assemble builds one gene. Marker values are drawn in the fixed marker
// order, so a fixed seed reproduces the gene exactly.
func (a *Assembler) Assemble(src *random.Source) (Gene, error) {
	src = random.Ensure(src)

	gene := make(Gene, len(a.markers))
	for _, marker := range a.markers {
		value, err := markerRules[marker](a, src)
		if err != nil {
			return nil, fmt.Errorf("assemble marker %s: %w", marker, err)
		}
		gene[marker] = value
	}
	return gene, nil
}
