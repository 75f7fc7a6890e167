package clojush

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/justmarler/Clojush/internal/genome"
	"github.com/justmarler/Clojush/internal/instruction"
	"github.com/justmarler/Clojush/internal/model"
	"github.com/justmarler/Clojush/internal/random"
	"github.com/justmarler/Clojush/internal/storage"
	"github.com/justmarler/Clojush/internal/translate"
)

const (
	defaultDBPath        = "clojush.db"
	defaultBatchCount    = 10
	defaultMaxGenomeSize = 50

	RepresentationPlush  = "plush"
	RepresentationPlushy = "plushy"
)

type Options struct {
	StoreKind string
	DBPath    string
}

type Client struct {
	store storage.Store
}

// GenerateRequest describes one batch of random genomes.
type GenerateRequest struct {
	BatchID        string
	Seed           int64
	Count          int
	Representation string

	// MaxGenomeSize bounds genome length directly. MaxPoints instead gives
	// a program-size budget in expression points and wins when both are
	// set.
	MaxGenomeSize int
	MaxPoints     int

	// Instructions names the literal pool entries; empty means every
	// registered built-in. IncludeERCs adds the standard ephemeral random
	// constants to the pool.
	Instructions []string
	IncludeERCs  bool

	EpigeneticMarkers            []string
	SilentInstructionProbability float64
	TrackInstructionMaps         bool
	PlushyCloseProbability       *float64
}

type GenerateSummary struct {
	BatchID        string
	Representation string
	GenomeIDs      []string
	TotalGenes     int
}

// RandomCodeRequest asks for one random program: a Plush genome expanded
// through a translator.
type RandomCodeRequest struct {
	Seed                         int64
	MaxPoints                    int
	Instructions                 []string
	IncludeERCs                  bool
	EpigeneticMarkers            []string
	SilentInstructionProbability float64
	TrackInstructionMaps         bool
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

// Generate builds one batch of random genomes and archives every genome
// plus the batch record.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (GenerateSummary, error) {
	if req.Count <= 0 {
		req.Count = defaultBatchCount
	}
	if req.Representation == "" {
		req.Representation = RepresentationPlush
	}
	if req.Representation != RepresentationPlush && req.Representation != RepresentationPlushy {
		return GenerateSummary{}, fmt.Errorf("unsupported representation: %s", req.Representation)
	}
	maxGenomeSize := req.MaxGenomeSize
	if req.MaxPoints > 0 {
		derived, err := genome.MaxGenomeSizeForPoints(req.MaxPoints)
		if err != nil {
			return GenerateSummary{}, err
		}
		maxGenomeSize = derived
	}
	if maxGenomeSize <= 0 {
		maxGenomeSize = defaultMaxGenomeSize
	}

	pool, err := buildPool(req.Instructions, req.IncludeERCs)
	if err != nil {
		return GenerateSummary{}, err
	}
	cfg := genome.Config{
		EpigeneticMarkers:            toMarkers(req.EpigeneticMarkers),
		SilentInstructionProbability: req.SilentInstructionProbability,
		TrackInstructionMaps:         req.TrackInstructionMaps,
		PlushyCloseProbability:       req.PlushyCloseProbability,
	}

	var assembler *genome.Assembler
	if req.Representation == RepresentationPlush {
		assembler, err = genome.NewAssembler(pool, cfg)
		if err != nil {
			return GenerateSummary{}, err
		}
	} else if err := cfg.Validate(); err != nil {
		return GenerateSummary{}, err
	}

	now := time.Now().UTC()
	batchID := req.BatchID
	if batchID == "" {
		batchID = fmt.Sprintf("%s-%d-%d", req.Representation, req.Seed, now.Unix())
	}

	src := random.NewSource(req.Seed)
	table := instruction.BuiltinTable()

	genomeIDs := make([]string, 0, req.Count)
	totalGenes := 0
	for i := 0; i < req.Count; i++ {
		record := model.GenomeRecord{
			VersionedRecord: model.VersionedRecord{
				SchemaVersion: storage.CurrentSchemaVersion,
				CodecVersion:  storage.CurrentCodecVersion,
			},
			ID:             fmt.Sprintf("%s-g%d", batchID, i),
			BatchID:        batchID,
			Representation: req.Representation,
			CreatedAtUTC:   now.Format(time.RFC3339Nano),
		}

		switch req.Representation {
		case RepresentationPlush:
			g, err := genome.BuildPlush(src, assembler, maxGenomeSize)
			if err != nil {
				return GenerateSummary{}, err
			}
			record.Genes = genesToRecords(g)
			totalGenes += len(g)
		case RepresentationPlushy:
			g, err := genome.BuildPlushy(src, pool, table, cfg, maxGenomeSize)
			if err != nil {
				return GenerateSummary{}, err
			}
			record.Tokens = tokensToRecords(g)
			totalGenes += len(g)
		}

		if err := c.store.SaveGenome(ctx, record); err != nil {
			return GenerateSummary{}, err
		}
		genomeIDs = append(genomeIDs, record.ID)
	}

	batch := model.BatchRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		ID:                           batchID,
		Seed:                         req.Seed,
		Count:                        req.Count,
		Representation:               req.Representation,
		MaxGenomeSize:                maxGenomeSize,
		EpigeneticMarkers:            append([]string(nil), req.EpigeneticMarkers...),
		TrackInstructionMaps:         req.TrackInstructionMaps,
		SilentInstructionProbability: req.SilentInstructionProbability,
		GenomeIDs:                    genomeIDs,
		CreatedAtUTC:                 now.Format(time.RFC3339Nano),
	}
	if err := c.store.SaveBatch(ctx, batch); err != nil {
		return GenerateSummary{}, err
	}

	return GenerateSummary{
		BatchID:        batchID,
		Representation: req.Representation,
		GenomeIDs:      genomeIDs,
		TotalGenes:     totalGenes,
	}, nil
}

// Genome loads one archived genome.
func (c *Client) Genome(ctx context.Context, id string) (model.GenomeRecord, error) {
	if id == "" {
		return model.GenomeRecord{}, errors.New("genome id is required")
	}
	record, ok, err := c.store.GetGenome(ctx, id)
	if err != nil {
		return model.GenomeRecord{}, err
	}
	if !ok {
		return model.GenomeRecord{}, fmt.Errorf("genome not found: %s", id)
	}
	return record, nil
}

// Batches lists archived batches, newest first.
func (c *Client) Batches(ctx context.Context) ([]model.BatchRecord, error) {
	return c.store.ListBatches(ctx)
}

// RandomCode generates one Plush genome under a points budget and hands it
// to the translator together with its configuration.
func (c *Client) RandomCode(_ context.Context, req RandomCodeRequest, translator translate.Translator) (translate.Program, error) {
	if translator == nil {
		return nil, errors.New("translator is required")
	}
	pool, err := buildPool(req.Instructions, req.IncludeERCs)
	if err != nil {
		return nil, err
	}
	cfg := genome.Config{
		EpigeneticMarkers:            toMarkers(req.EpigeneticMarkers),
		SilentInstructionProbability: req.SilentInstructionProbability,
		TrackInstructionMaps:         req.TrackInstructionMaps,
	}
	g, err := genome.RandomPushGenome(random.NewSource(req.Seed), pool, cfg, req.MaxPoints)
	if err != nil {
		return nil, err
	}
	return translator.Translate(g, cfg)
}

func buildPool(names []string, includeERCs bool) ([]instruction.Atom, error) {
	var ids []instruction.ID
	if len(names) == 0 {
		ids = instruction.List()
	} else {
		ids = make([]instruction.ID, 0, len(names))
		for _, name := range names {
			id := instruction.ID(name)
			if _, err := instruction.Get(id); err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}

	pool := make([]instruction.Atom, 0, len(ids)+3)
	for _, id := range ids {
		pool = append(pool, instruction.Literal(id))
	}
	if includeERCs {
		pool = append(pool,
			instruction.IntegerERC(-1000, 1000),
			instruction.FloatERC(-1, 1),
			instruction.BooleanERC(),
		)
	}
	return pool, nil
}

func toMarkers(names []string) []genome.Marker {
	if len(names) == 0 {
		return nil
	}
	markers := make([]genome.Marker, 0, len(names))
	for _, name := range names {
		markers = append(markers, genome.Marker(name))
	}
	return markers
}

func genesToRecords(g genome.Plush) []model.GeneRecord {
	records := make([]model.GeneRecord, 0, len(g))
	for _, gene := range g {
		record := model.GeneRecord{Instruction: gene.Instruction()}
		if closeCount, ok := gene.CloseCount(); ok {
			record.Close = &closeCount
		}
		if silent, ok := gene.Silent(); ok {
			record.Silent = &silent
		}
		if id, ok := gene.UUID(); ok {
			record.UUID = id.String()
		}
		if v, ok := gene[genome.MarkerRandomInsertion].(bool); ok {
			record.RandomInsertion = v
		}
		records = append(records, record)
	}
	return records
}

func tokensToRecords(g genome.Plushy) []model.TokenRecord {
	records := make([]model.TokenRecord, 0, len(g))
	for _, token := range g {
		records = append(records, model.TokenRecord{
			Instruction: token.Instruction,
			Close:       token.Close,
		})
	}
	return records
}
