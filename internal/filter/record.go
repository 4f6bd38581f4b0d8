package filter

import (
	"path/filepath"

	"github.com/dyluth/mcobj/internal/timespec"
	"github.com/dyluth/mcobj/pkg/store"
)

// Criteria selects saved block records.
// All filters are ANDed together - a record must match ALL criteria to pass.
type Criteria struct {
	Created   timespec.Range
	BlockGlob string            // Glob pattern for the block id, empty = no filter
	State     map[string]string // Exact property values, empty = no filter
}

// Matches returns true if the record matches all filter criteria.
func (c *Criteria) Matches(rec *store.Record) bool {
	if !c.Created.Contains(rec.CreatedAtMs) {
		return false
	}

	if c.BlockGlob != "" {
		matched, err := filepath.Match(c.BlockGlob, rec.BlockID)
		if err != nil || !matched {
			return false
		}
	}

	for name, want := range c.State {
		if got, ok := rec.State[name]; !ok || got != want {
			return false
		}
	}

	return true
}

// HasFilters returns true if any filters are active.
func (c *Criteria) HasFilters() bool {
	return !c.Created.IsZero() || c.BlockGlob != "" || len(c.State) > 0
}

// Apply returns the records that match, preserving order.
func (c *Criteria) Apply(records []*store.Record) []*store.Record {
	if !c.HasFilters() {
		return records
	}
	out := make([]*store.Record, 0, len(records))
	for _, rec := range records {
		if c.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// ValidateGlob reports a malformed block glob up front.
func ValidateGlob(pattern string) error {
	_, err := filepath.Match(pattern, "")
	return err
}
