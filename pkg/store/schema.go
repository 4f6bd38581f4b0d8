package store

import (
	"fmt"
	"strings"
)

// Key pattern: mcobj:{world}:{entity}:{uuid}
// Channel pattern: mcobj:{world}:{entity}_events

// worldReserved holds the key separator, whitespace and the SCAN MATCH glob
// characters. None may appear in a world name.
const worldReserved = ": \t\n*?[]\\"

// ValidateWorld checks that world can be embedded in keys and match patterns.
func ValidateWorld(world string) error {
	if world == "" {
		return fmt.Errorf("world name cannot be empty")
	}
	if strings.ContainsAny(world, worldReserved) {
		return fmt.Errorf("world '%s' must not contain ':', spaces or any of *?[]\\", world)
	}
	return nil
}

// BlockKey returns the Redis key for a block record.
// Pattern: mcobj:{world}:block:{record_id}
func BlockKey(world, recordID string) string {
	return fmt.Sprintf("mcobj:%s:block:%s", world, recordID)
}

// BlockIndexKey returns the Redis key of the ZSET listing every record in a
// world, scored by creation time.
// Pattern: mcobj:{world}:blocks
func BlockIndexKey(world string) string {
	return fmt.Sprintf("mcobj:%s:blocks", world)
}

// BlockEventsChannel returns the Pub/Sub channel for block events.
// Pattern: mcobj:{world}:block_events
func BlockEventsChannel(world string) string {
	return fmt.Sprintf("mcobj:%s:block_events", world)
}
