package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dyluth/mcobj/pkg/block"
)

// Record is the stored snapshot of a block.
type Record struct {
	ID          string            `json:"id"`
	BlockID     string            `json:"block_id"`
	State       map[string]string `json:"state"`
	CreatedAtMs int64             `json:"created_at_ms"`
}

// NewRecord snapshots b under a fresh UUID.
func NewRecord(b *block.Block) *Record {
	return &Record{
		ID:          uuid.New().String(),
		BlockID:     b.ID(),
		State:       b.States(),
		CreatedAtMs: time.Now().UnixMilli(),
	}
}

// Validate checks that the record can be stored.
func (r *Record) Validate() error {
	if _, err := uuid.Parse(r.ID); err != nil {
		return fmt.Errorf("invalid record id %q: %w", r.ID, err)
	}
	if !strings.Contains(r.BlockID, ":") {
		return fmt.Errorf("block_id %q must be of the form namespace:name", r.BlockID)
	}
	if r.CreatedAtMs < 0 {
		return fmt.Errorf("created_at_ms must be >= 0, got %d", r.CreatedAtMs)
	}
	return nil
}

// TraitsSource resolves block ids to their definitions.
// *registry.Registry[*block.Traits] satisfies it.
type TraitsSource interface {
	Lookup(id string) (*block.Traits, error)
}

// Block rebuilds the stored block. State values the definition no longer
// allows are reported as errors.
func (r *Record) Block(source TraitsSource) (*block.Block, error) {
	if source == nil {
		return nil, errors.New("no traits source")
	}
	traits, err := source.Lookup(r.BlockID)
	if err != nil {
		return nil, err
	}
	b, err := block.New(traits, r.State)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", r.ID, err)
	}
	return b, nil
}

// EventType says what happened to a record.
type EventType string

const (
	EventSaved   EventType = "saved"
	EventDeleted EventType = "deleted"
)

// Validate checks if the EventType is a valid enum value.
func (e EventType) Validate() error {
	switch e {
	case EventSaved, EventDeleted:
		return nil
	default:
		return fmt.Errorf("invalid event type: %q (must be 'saved' or 'deleted')", string(e))
	}
}

// Event is published on the world's block events channel. Deleted events carry
// only the record id.
type Event struct {
	Type   EventType `json:"type"`
	Record *Record   `json:"record"`
}
