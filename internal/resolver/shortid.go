package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dyluth/mcobj/pkg/store"
)

// MinShortIDLength is the minimum required length for short ID prefixes.
const MinShortIDLength = 6

// ErrTooShort is returned for prefixes shorter than MinShortIDLength.
var ErrTooShort = errors.New("short ID too short")

// RecordScanner finds record ids by prefix and checks full ids.
// *store.Client satisfies it.
type RecordScanner interface {
	RecordExists(ctx context.Context, recordID string) (bool, error)
	ScanRecordIDs(ctx context.Context, prefix string) ([]string, error)
}

var _ RecordScanner = (*store.Client)(nil)

// ResolveRecordID resolves a short ID prefix, such as the 8 characters shown by
// the records table, to a full record UUID.
//
// A full UUID is returned as-is once its record is known to exist. Shorter
// input must be at least MinShortIDLength characters and match exactly one
// record.
func ResolveRecordID(ctx context.Context, scanner RecordScanner, shortID string) (string, error) {
	shortID = strings.ToLower(strings.TrimSpace(shortID))

	if len(shortID) == 36 && strings.Count(shortID, "-") == 4 {
		exists, err := scanner.RecordExists(ctx, shortID)
		if err != nil {
			return "", fmt.Errorf("failed to verify record existence: %w", err)
		}
		if !exists {
			return "", &NotFoundError{ShortID: shortID}
		}
		return shortID, nil
	}

	if len(shortID) < MinShortIDLength {
		return "", fmt.Errorf("%w: must be at least %d characters (got %d)", ErrTooShort, MinShortIDLength, len(shortID))
	}

	// Record ids are UUIDs, so anything else cannot match
	if strings.Trim(shortID, "0123456789abcdef-") != "" {
		return "", &NotFoundError{ShortID: shortID}
	}

	matches, err := scanner.ScanRecordIDs(ctx, shortID)
	if err != nil {
		return "", fmt.Errorf("failed to search for record: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{ShortID: shortID}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousError{ShortID: shortID, Matches: matches}
	}
}

// NotFoundError indicates no records matched the short ID.
type NotFoundError struct {
	ShortID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no records found matching '%s'", e.ShortID)
}

// AmbiguousError indicates multiple records matched the short ID.
type AmbiguousError struct {
	ShortID string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous short ID '%s' matches %d records", e.ShortID, len(e.Matches))
}

// FormatMatches lists the matching ids, up to 10, then "...and N more".
func (e *AmbiguousError) FormatMatches() string {
	var b strings.Builder
	shown := min(len(e.Matches), 10)
	for _, id := range e.Matches[:shown] {
		fmt.Fprintf(&b, "  %s\n", id)
	}
	if len(e.Matches) > shown {
		fmt.Fprintf(&b, "  ...and %d more\n", len(e.Matches)-shown)
	}
	return b.String()
}

// IsNotFoundError checks if an error is a NotFoundError.
func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsAmbiguousError checks if an error is an AmbiguousError.
func IsAmbiguousError(err error) bool {
	_, ok := err.(*AmbiguousError)
	return ok
}
