package genome

import "fmt"

// DefaultCloseParensProbabilities is the cascading close-count distribution
// used when a config does not supply one: 0 closes with p=0.772, 1 with
// p=0.206, 2 with p=0.021, 3 with p=0.001.
var DefaultCloseParensProbabilities = []float64{0.772, 0.206, 0.021, 0.001}

// Config controls gene and genome generation.
type Config struct {
	// EpigeneticMarkers lists the markers attached to every gene besides
	// the implicit instruction marker.
	EpigeneticMarkers []Marker

	// CloseParensProbabilities is the cascading distribution for the close
	// marker. nil means DefaultCloseParensProbabilities; an empty non-nil
	// slice means the close count is always 0.
	CloseParensProbabilities []float64

	// SilentInstructionProbability is the per-gene Bernoulli parameter for
	// the silent marker.
	SilentInstructionProbability float64

	// TrackInstructionMaps additionally attaches uuid and random-insertion
	// markers to every gene.
	TrackInstructionMaps bool

	// PlushyCloseProbability overrides the computed per-position close
	// probability of the Plushy builder. nil means compute the default
	// from the pool's declared parentheses arities.
	PlushyCloseProbability *float64
}

func (c Config) withDefaults() Config {
	if c.CloseParensProbabilities == nil {
		c.CloseParensProbabilities = append([]float64(nil), DefaultCloseParensProbabilities...)
	}
	return c
}

// Validate rejects configurations before any generation arithmetic runs.
func (c Config) Validate() error {
	for _, marker := range c.EpigeneticMarkers {
		if !isKnownMarker(marker) {
			return fmt.Errorf("%w: %s", ErrUnknownMarker, marker)
		}
	}
	if c.SilentInstructionProbability < 0 || c.SilentInstructionProbability > 1 {
		return fmt.Errorf("silent instruction probability must be in [0,1], got %f", c.SilentInstructionProbability)
	}
	sum := 0.0
	for i, p := range c.CloseParensProbabilities {
		if p < 0 {
			return fmt.Errorf("close parens probability %d must be >= 0, got %f", i, p)
		}
		sum += p
	}
	if sum > 1+sumTolerance {
		return fmt.Errorf("close parens probabilities must sum to <= 1, got %f", sum)
	}
	if c.PlushyCloseProbability != nil {
		if p := *c.PlushyCloseProbability; p < 0 || p > 1 {
			return fmt.Errorf("plushy close probability must be in [0,1], got %f", p)
		}
	}
	return nil
}

// markerSet returns the gene marker set in the fixed draw order.
func (c Config) markerSet() []Marker {
	requested := map[Marker]bool{MarkerInstruction: true}
	for _, marker := range c.EpigeneticMarkers {
		requested[marker] = true
	}
	if c.TrackInstructionMaps {
		requested[MarkerUUID] = true
		requested[MarkerRandomInsertion] = true
	}

	markers := make([]Marker, 0, len(requested))
	for _, marker := range markerOrder {
		if requested[marker] {
			markers = append(markers, marker)
		}
	}
	return markers
}
