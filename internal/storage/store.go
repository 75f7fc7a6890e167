package storage

import (
	"context"

	"github.com/justmarler/Clojush/internal/model"
)

// Store persists generated genomes and the batches that produced them, so
// seeded experiments can be archived and replayed.
type Store interface {
	Init(ctx context.Context) error
	SaveGenome(ctx context.Context, genome model.GenomeRecord) error
	GetGenome(ctx context.Context, id string) (model.GenomeRecord, bool, error)
	SaveBatch(ctx context.Context, batch model.BatchRecord) error
	GetBatch(ctx context.Context, id string) (model.BatchRecord, bool, error)
	ListBatches(ctx context.Context) ([]model.BatchRecord, error)
}
