package genome

import (
	"reflect"
	"testing"

	"github.com/justmarler/Clojush/internal/random"
)

func TestBuildPlushLengthBounds(t *testing.T) {
	assembler, err := NewAssembler(testPool(), Config{})
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}

	src := random.NewSource(3)
	lengths := make(map[int]int)
	for i := 0; i < 500; i++ {
		g, err := BuildPlush(src, assembler, 5)
		if err != nil {
			t.Fatalf("build plush: %v", err)
		}
		if len(g) < 1 || len(g) > 5 {
			t.Fatalf("length out of [1,5]: %d", len(g))
		}
		lengths[len(g)]++
	}
	for size := 1; size <= 5; size++ {
		if lengths[size] == 0 {
			t.Fatalf("length %d never produced: %v", size, lengths)
		}
	}
}

func TestBuildPlushMaxOneAlwaysSingleGene(t *testing.T) {
	assembler, err := NewAssembler(testPool(), Config{})
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}
	src := random.NewSource(9)
	for i := 0; i < 100; i++ {
		g, err := BuildPlush(src, assembler, 1)
		if err != nil {
			t.Fatalf("build plush: %v", err)
		}
		if len(g) != 1 {
			t.Fatalf("expected length 1, got %d", len(g))
		}
	}
}

func TestBuildPlushRejectsNonPositiveMax(t *testing.T) {
	assembler, err := NewAssembler(testPool(), Config{})
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}
	if _, err := BuildPlush(random.NewSource(1), assembler, 0); err == nil {
		t.Fatal("expected error for max genome size 0")
	}
}

func TestBuildPlushDeterministicUnderFixedSeed(t *testing.T) {
	cfg := Config{
		EpigeneticMarkers:            []Marker{MarkerClose, MarkerSilent},
		SilentInstructionProbability: 0.25,
		TrackInstructionMaps:         true,
	}
	assembler, err := NewAssembler(testPool(), cfg)
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}

	a, err := BuildPlush(random.NewSource(1234), assembler, 20)
	if err != nil {
		t.Fatalf("build plush: %v", err)
	}
	b, err := BuildPlush(random.NewSource(1234), assembler, 20)
	if err != nil {
		t.Fatalf("build plush: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("genomes diverged under identical seeds:\n%v\n%v", a, b)
	}
}

func TestBuildPlushGenesAreIndependentDraws(t *testing.T) {
	assembler, err := NewAssembler(testPool(), Config{})
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}
	src := random.NewSource(55)
	instructions := make(map[any]int)
	for i := 0; i < 200; i++ {
		g, err := BuildPlush(src, assembler, 10)
		if err != nil {
			t.Fatalf("build plush: %v", err)
		}
		for _, gene := range g {
			instructions[gene.Instruction()]++
		}
	}
	if len(instructions) != 3 {
		t.Fatalf("expected all three pool instructions to appear, got %v", instructions)
	}
}
