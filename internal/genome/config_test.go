package genome

import (
	"errors"
	"testing"
)

func TestConfigDefaultsCloseParensProbabilities(t *testing.T) {
	cfg := Config{}.withDefaults()
	if len(cfg.CloseParensProbabilities) != 4 {
		t.Fatalf("expected default probabilities, got %v", cfg.CloseParensProbabilities)
	}
	if cfg.CloseParensProbabilities[0] != 0.772 {
		t.Fatalf("unexpected default: %v", cfg.CloseParensProbabilities)
	}

	cfg.CloseParensProbabilities[0] = 0.5
	if DefaultCloseParensProbabilities[0] != 0.772 {
		t.Fatal("withDefaults must copy, not alias, the default slice")
	}
}

func TestConfigKeepsExplicitEmptyProbabilities(t *testing.T) {
	cfg := Config{CloseParensProbabilities: []float64{}}.withDefaults()
	if len(cfg.CloseParensProbabilities) != 0 {
		t.Fatalf("explicit empty list must be preserved, got %v", cfg.CloseParensProbabilities)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{}).Validate(); err != nil {
		t.Fatalf("zero config must validate: %v", err)
	}
	if err := (Config{SilentInstructionProbability: -0.1}).Validate(); err == nil {
		t.Fatal("expected error for negative silent probability")
	}
	if err := (Config{CloseParensProbabilities: []float64{0.9, 0.2}}).Validate(); err == nil {
		t.Fatal("expected error for probability sum above 1")
	}
	err := Config{EpigeneticMarkers: []Marker{"lineage"}}.Validate()
	if !errors.Is(err, ErrUnknownMarker) {
		t.Fatalf("expected ErrUnknownMarker, got %v", err)
	}
}

func TestMarkerSetComposition(t *testing.T) {
	cfg := Config{
		EpigeneticMarkers:    []Marker{MarkerClose, MarkerClose, MarkerSilent},
		TrackInstructionMaps: true,
	}
	markers := cfg.markerSet()
	want := []Marker{MarkerInstruction, MarkerClose, MarkerSilent, MarkerUUID, MarkerRandomInsertion}
	if len(markers) != len(want) {
		t.Fatalf("unexpected marker set: %v", markers)
	}
	for i := range want {
		if markers[i] != want[i] {
			t.Fatalf("unexpected marker set order: %v", markers)
		}
	}
}
