package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// GeneRecord is the persisted form of one Plush gene. Optional markers are
// pointers so their absence survives a round trip.
type GeneRecord struct {
	Instruction     any    `json:"instruction"`
	Close           *int   `json:"close,omitempty"`
	Silent          *bool  `json:"silent,omitempty"`
	UUID            string `json:"uuid,omitempty"`
	RandomInsertion bool   `json:"random_insertion,omitempty"`
}

// TokenRecord is the persisted form of one Plushy token.
type TokenRecord struct {
	Instruction any  `json:"instruction,omitempty"`
	Close       bool `json:"close,omitempty"`
}

// GenomeRecord is one generated genome in either representation.
type GenomeRecord struct {
	VersionedRecord
	ID             string        `json:"id"`
	BatchID        string        `json:"batch_id,omitempty"`
	Representation string        `json:"representation"`
	Genes          []GeneRecord  `json:"genes,omitempty"`
	Tokens         []TokenRecord `json:"tokens,omitempty"`
	CreatedAtUTC   string        `json:"created_at_utc"`
}

// BatchRecord describes one generation request and the genomes it produced.
type BatchRecord struct {
	VersionedRecord
	ID                           string   `json:"id"`
	Seed                         int64    `json:"seed"`
	Count                        int      `json:"count"`
	Representation               string   `json:"representation"`
	MaxGenomeSize                int      `json:"max_genome_size"`
	EpigeneticMarkers            []string `json:"epigenetic_markers,omitempty"`
	TrackInstructionMaps         bool     `json:"track_instruction_maps,omitempty"`
	SilentInstructionProbability float64  `json:"silent_instruction_probability,omitempty"`
	GenomeIDs                    []string `json:"genome_ids"`
	CreatedAtUTC                 string   `json:"created_at_utc"`
}
