package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/justmarler/Clojush/internal/model"
)

type MemoryStore struct {
	mu      sync.RWMutex
	genomes map[string]model.GenomeRecord
	batches map[string]model.BatchRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		genomes: make(map[string]model.GenomeRecord),
		batches: make(map[string]model.BatchRecord),
	}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.genomes = make(map[string]model.GenomeRecord)
	s.batches = make(map[string]model.BatchRecord)
	return nil
}

func (s *MemoryStore) SaveGenome(_ context.Context, genome model.GenomeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.genomes[genome.ID] = cloneGenome(genome)
	return nil
}

func (s *MemoryStore) GetGenome(_ context.Context, id string) (model.GenomeRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	genome, ok := s.genomes[id]
	if !ok {
		return model.GenomeRecord{}, false, nil
	}
	return cloneGenome(genome), true, nil
}

func (s *MemoryStore) SaveBatch(_ context.Context, batch model.BatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches[batch.ID] = cloneBatch(batch)
	return nil
}

func (s *MemoryStore) GetBatch(_ context.Context, id string) (model.BatchRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batch, ok := s.batches[id]
	if !ok {
		return model.BatchRecord{}, false, nil
	}
	return cloneBatch(batch), true, nil
}

func (s *MemoryStore) ListBatches(_ context.Context) ([]model.BatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.BatchRecord, 0, len(s.batches))
	for _, batch := range s.batches {
		out = append(out, cloneBatch(batch))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAtUTC != out[j].CreatedAtUTC {
			return out[i].CreatedAtUTC > out[j].CreatedAtUTC
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func cloneGenome(genome model.GenomeRecord) model.GenomeRecord {
	copied := genome
	copied.Genes = append([]model.GeneRecord(nil), genome.Genes...)
	copied.Tokens = append([]model.TokenRecord(nil), genome.Tokens...)
	return copied
}

func cloneBatch(batch model.BatchRecord) model.BatchRecord {
	copied := batch
	copied.EpigeneticMarkers = append([]string(nil), batch.EpigeneticMarkers...)
	copied.GenomeIDs = append([]string(nil), batch.GenomeIDs...)
	return copied
}
