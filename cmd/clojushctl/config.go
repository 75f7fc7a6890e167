package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/justmarler/Clojush/pkg/clojush"
)

func loadGenerateRequestFromConfig(path string) (clojush.GenerateRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return clojush.GenerateRequest{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return clojush.GenerateRequest{}, err
	}

	var req clojush.GenerateRequest
	if v, ok := asString(raw["batch_id"]); ok {
		req.BatchID = v
	}
	if v, ok := asInt64(raw["seed"]); ok {
		req.Seed = v
	}
	if v, ok := asInt(raw["count"]); ok {
		req.Count = v
	}
	if v, ok := asString(raw["representation"]); ok {
		req.Representation = v
	}
	if v, ok := asInt(raw["max_genome_size"]); ok {
		req.MaxGenomeSize = v
	}
	if v, ok := asInt(raw["max_points"]); ok {
		req.MaxPoints = v
	}
	if v, ok := asStringList(raw["instructions"]); ok {
		req.Instructions = v
	}
	if v, ok := asBool(raw["include_ercs"]); ok {
		req.IncludeERCs = v
	}
	if v, ok := asStringList(raw["epigenetic_markers"]); ok {
		req.EpigeneticMarkers = v
	}
	if v, ok := asFloat64(raw["silent_instruction_probability"]); ok {
		req.SilentInstructionProbability = v
	}
	if v, ok := asBool(raw["track_instruction_maps"]); ok {
		req.TrackInstructionMaps = v
	}
	if v, ok := asFloat64(raw["plushy_close_probability"]); ok {
		p := v
		req.PlushyCloseProbability = &p
	}

	return req, nil
}

func loadOrDefaultGenerateRequest(configPath string) (clojush.GenerateRequest, error) {
	if configPath == "" {
		return clojush.GenerateRequest{}, nil
	}
	req, err := loadGenerateRequestFromConfig(configPath)
	if err != nil {
		return clojush.GenerateRequest{}, fmt.Errorf("load config: %w", err)
	}
	return req, nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		return int(x), true
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case float64:
		return int64(x), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}

func asStringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
