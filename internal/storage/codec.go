package storage

import (
	"encoding/json"
	"errors"

	"github.com/justmarler/Clojush/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeGenome(g model.GenomeRecord) ([]byte, error) {
	return json.Marshal(g)
}

func DecodeGenome(data []byte) (model.GenomeRecord, error) {
	var genome model.GenomeRecord
	if err := json.Unmarshal(data, &genome); err != nil {
		return model.GenomeRecord{}, err
	}
	if err := checkVersion(genome.VersionedRecord); err != nil {
		return model.GenomeRecord{}, err
	}
	return genome, nil
}

func EncodeBatch(b model.BatchRecord) ([]byte, error) {
	return json.Marshal(b)
}

func DecodeBatch(data []byte) (model.BatchRecord, error) {
	var batch model.BatchRecord
	if err := json.Unmarshal(data, &batch); err != nil {
		return model.BatchRecord{}, err
	}
	if err := checkVersion(batch.VersionedRecord); err != nil {
		return model.BatchRecord{}, err
	}
	return batch, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
