package clojush

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/justmarler/Clojush/internal/genome"
	"github.com/justmarler/Clojush/internal/translate"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(Options{StoreKind: "memory"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := client.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestGeneratePlushBatch(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	summary, err := client.Generate(ctx, GenerateRequest{
		BatchID:           "batch-1",
		Seed:              42,
		Count:             3,
		MaxGenomeSize:     10,
		EpigeneticMarkers: []string{"close"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if summary.BatchID != "batch-1" || summary.Representation != RepresentationPlush {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(summary.GenomeIDs) != 3 {
		t.Fatalf("expected 3 genomes, got %v", summary.GenomeIDs)
	}
	if summary.TotalGenes < 3 || summary.TotalGenes > 30 {
		t.Fatalf("total genes out of range: %d", summary.TotalGenes)
	}

	for _, id := range summary.GenomeIDs {
		record, err := client.Genome(ctx, id)
		if err != nil {
			t.Fatalf("genome %s: %v", id, err)
		}
		if record.Representation != RepresentationPlush {
			t.Fatalf("unexpected representation: %+v", record)
		}
		if len(record.Genes) < 1 || len(record.Genes) > 10 {
			t.Fatalf("genome length out of [1,10]: %d", len(record.Genes))
		}
		for _, gene := range record.Genes {
			if gene.Instruction == nil {
				t.Fatalf("gene without instruction: %+v", gene)
			}
			if gene.Close == nil {
				t.Fatalf("expected close marker: %+v", gene)
			}
		}
	}

	batches, err := client.Batches(ctx)
	if err != nil {
		t.Fatalf("batches: %v", err)
	}
	if len(batches) != 1 || batches[0].ID != "batch-1" || batches[0].Seed != 42 {
		t.Fatalf("unexpected batches: %+v", batches)
	}
}

func TestGeneratePlushyBatch(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	summary, err := client.Generate(ctx, GenerateRequest{
		Seed:           7,
		Count:          2,
		Representation: RepresentationPlushy,
		MaxGenomeSize:  15,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, id := range summary.GenomeIDs {
		record, err := client.Genome(ctx, id)
		if err != nil {
			t.Fatalf("genome %s: %v", id, err)
		}
		if len(record.Tokens) < 1 || len(record.Tokens) > 15 {
			t.Fatalf("token count out of [1,15]: %d", len(record.Tokens))
		}
		if len(record.Genes) != 0 {
			t.Fatalf("plushy genome must not carry genes: %+v", record)
		}
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	ctx := context.Background()

	run := func() []any {
		client := newTestClient(t)
		summary, err := client.Generate(ctx, GenerateRequest{
			BatchID:           "fixed",
			Seed:              99,
			Count:             5,
			MaxGenomeSize:     8,
			EpigeneticMarkers: []string{"close", "silent"},
		})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		var genes []any
		for _, id := range summary.GenomeIDs {
			record, err := client.Genome(ctx, id)
			if err != nil {
				t.Fatalf("genome: %v", err)
			}
			genes = append(genes, record.Genes)
		}
		return genes
	}

	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Fatalf("batches diverged under identical seeds:\n%v\n%v", a, b)
	}
}

func TestGenerateRejectsUnknownInstruction(t *testing.T) {
	client := newTestClient(t)
	_, err := client.Generate(context.Background(), GenerateRequest{
		Instructions: []string{"no_such_instruction"},
	})
	if err == nil {
		t.Fatal("expected error for unknown instruction")
	}
}

func TestGenerateRejectsUnknownMarker(t *testing.T) {
	client := newTestClient(t)
	_, err := client.Generate(context.Background(), GenerateRequest{
		EpigeneticMarkers: []string{"lineage"},
	})
	if !errors.Is(err, genome.ErrUnknownMarker) {
		t.Fatalf("expected ErrUnknownMarker, got %v", err)
	}
}

func TestGenerateRejectsUnknownRepresentation(t *testing.T) {
	client := newTestClient(t)
	_, err := client.Generate(context.Background(), GenerateRequest{Representation: "tree"})
	if err == nil {
		t.Fatal("expected error for unsupported representation")
	}
}

func TestGenomeRequiresID(t *testing.T) {
	client := newTestClient(t)
	if _, err := client.Genome(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty genome id")
	}
}

type countingTranslator struct {
	genes  int
	called bool
}

func (ct *countingTranslator) Translate(g genome.Plush, _ genome.Config) (translate.Program, error) {
	ct.called = true
	ct.genes = len(g)
	program := make(translate.Program, 0, len(g))
	for _, gene := range g {
		program = append(program, gene.Instruction())
	}
	return program, nil
}

func TestRandomCodeHandsGenomeToTranslator(t *testing.T) {
	client := newTestClient(t)
	translator := &countingTranslator{}

	program, err := client.RandomCode(context.Background(), RandomCodeRequest{
		Seed:      5,
		MaxPoints: 40,
	}, translator)
	if err != nil {
		t.Fatalf("random code: %v", err)
	}
	if !translator.called {
		t.Fatal("expected translator invocation")
	}
	if translator.genes < 1 || translator.genes > 10 {
		t.Fatalf("genome size out of [1,10]: %d", translator.genes)
	}
	if len(program) != translator.genes {
		t.Fatalf("unexpected program length: %d", len(program))
	}
}

func TestRandomCodeRequiresTranslator(t *testing.T) {
	client := newTestClient(t)
	if _, err := client.RandomCode(context.Background(), RandomCodeRequest{MaxPoints: 10}, nil); err == nil {
		t.Fatal("expected error for nil translator")
	}
}
