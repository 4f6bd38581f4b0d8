package store

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Redis hashes are flat string maps, so the state map is JSON-encoded into a
// single field.

// RecordToHash converts a Record to a Redis hash.
func RecordToHash(r *Record) (map[string]interface{}, error) {
	state := r.State
	if state == nil {
		state = map[string]string{}
	}
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}

	return map[string]interface{}{
		"id":            r.ID,
		"block_id":      r.BlockID,
		"state":         string(stateJSON),
		"created_at_ms": r.CreatedAtMs,
	}, nil
}

// HashToRecord converts a Redis hash back to a Record.
func HashToRecord(hash map[string]string) (*Record, error) {
	state := map[string]string{}
	if raw := hash["state"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &state); err != nil {
			return nil, fmt.Errorf("failed to unmarshal state: %w", err)
		}
	}

	createdAtMs, err := strconv.ParseInt(hash["created_at_ms"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at_ms field: %w", err)
	}

	return &Record{
		ID:          hash["id"],
		BlockID:     hash["block_id"],
		State:       state,
		CreatedAtMs: createdAtMs,
	}, nil
}
