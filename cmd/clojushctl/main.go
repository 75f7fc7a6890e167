package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/justmarler/Clojush/internal/instruction"
	"github.com/justmarler/Clojush/internal/storage"
	"github.com/justmarler/Clojush/pkg/clojush"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "generate":
		return runGenerate(ctx, args[1:])
	case "batches":
		return runBatches(ctx, args[1:])
	case "show":
		return runShow(ctx, args[1:])
	case "instructions":
		return runInstructions(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "clojush.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := clojush.New(clojush.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Init(ctx); err != nil {
		return err
	}
	fmt.Printf("initialized store=%s\n", *storeKind)
	return nil
}

func runGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "clojush.db", "sqlite database path")
	configPath := fs.String("config", "", "JSON config file")
	batchID := fs.String("batch-id", "", "batch identifier")
	seed := fs.Int64("seed", 0, "random seed")
	count := fs.Int("count", 0, "genomes per batch")
	representation := fs.String("representation", "", "genome representation: plush|plushy")
	maxGenomeSize := fs.Int("max-genome-size", 0, "maximum genome length")
	maxPoints := fs.Int("max-points", 0, "program-size budget in expression points")
	instructions := fs.String("instructions", "", "comma-separated instruction ids (default: all built-ins)")
	ercs := fs.Bool("ercs", false, "include ephemeral random constants in the pool")
	markers := fs.String("markers", "", "comma-separated epigenetic markers")
	silentProbability := fs.Float64("silent-probability", 0, "per-gene silent probability")
	trackMaps := fs.Bool("track-instruction-maps", false, "attach uuid and random-insertion markers")
	plushyCloseProbability := fs.Float64("plushy-close-probability", -1, "plushy close probability (negative: computed default)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req, err := loadOrDefaultGenerateRequest(*configPath)
	if err != nil {
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["batch-id"] {
		req.BatchID = *batchID
	}
	if set["seed"] {
		req.Seed = *seed
	}
	if set["count"] {
		req.Count = *count
	}
	if set["representation"] {
		req.Representation = *representation
	}
	if set["max-genome-size"] {
		req.MaxGenomeSize = *maxGenomeSize
	}
	if set["max-points"] {
		req.MaxPoints = *maxPoints
	}
	if set["instructions"] {
		req.Instructions = splitList(*instructions)
	}
	if set["ercs"] {
		req.IncludeERCs = *ercs
	}
	if set["markers"] {
		req.EpigeneticMarkers = splitList(*markers)
	}
	if set["silent-probability"] {
		req.SilentInstructionProbability = *silentProbability
	}
	if set["track-instruction-maps"] {
		req.TrackInstructionMaps = *trackMaps
	}
	if set["plushy-close-probability"] && *plushyCloseProbability >= 0 {
		p := *plushyCloseProbability
		req.PlushyCloseProbability = &p
	}

	client, err := clojush.New(clojush.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	summary, err := client.Generate(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("batch=%s representation=%s genomes=%s genes=%s\n",
		summary.BatchID,
		summary.Representation,
		humanize.Comma(int64(len(summary.GenomeIDs))),
		humanize.Comma(int64(summary.TotalGenes)))
	return nil
}

func runBatches(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("batches", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "clojush.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := clojush.New(clojush.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	batches, err := client.Batches(ctx)
	if err != nil {
		return err
	}
	for _, batch := range batches {
		fmt.Printf("batch=%s created=%s representation=%s seed=%d genomes=%s max_genome_size=%d\n",
			batch.ID,
			batch.CreatedAtUTC,
			batch.Representation,
			batch.Seed,
			humanize.Comma(int64(len(batch.GenomeIDs))),
			batch.MaxGenomeSize)
	}
	return nil
}

func runShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "clojush.db", "sqlite database path")
	id := fs.String("id", "", "genome id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return usageError("show requires -id")
	}

	client, err := clojush.New(clojush.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	record, err := client.Genome(ctx, *id)
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(payload))
	return nil
}

func runInstructions(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("instructions", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	table := instruction.BuiltinTable()
	for _, id := range instruction.List() {
		fmt.Printf("%s parentheses=%d\n", id, table.Parentheses(id))
	}
	return nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func usageError(message string) error {
	return fmt.Errorf("%s\nusage: clojushctl <init|generate|batches|show|instructions> [flags]", message)
}
