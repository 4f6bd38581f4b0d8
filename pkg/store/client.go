package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/dyluth/mcobj/pkg/block"
)

// Client provides world-scoped Redis operations for block records.
// All keys and channels are namespaced with the world name.
// The client is safe for concurrent use.
type Client struct {
	rdb   *redis.Client
	world string
}

// NewClient creates a client for the named world.
// Returns an error if world is empty or fails ValidateWorld.
func NewClient(redisOpts *redis.Options, world string) (*Client, error) {
	if err := ValidateWorld(world); err != nil {
		return nil, err
	}

	return &Client{
		rdb:   redis.NewClient(redisOpts),
		world: world,
	}, nil
}

// World returns the world name the client is scoped to.
func (c *Client) World() string { return c.world }

// Close closes the Redis connection. Implements io.Closer.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies Redis connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// SaveBlock stores a snapshot of b under a new record id and publishes a saved
// event.
func (c *Client) SaveBlock(ctx context.Context, b *block.Block) (*Record, error) {
	rec := NewRecord(b)
	if err := c.PutRecord(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// PutRecord writes rec (full replacement), adds it to the world index and
// publishes a saved event.
func (c *Client) PutRecord(ctx context.Context, rec *Record) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}

	hash, err := RecordToHash(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}

	key := BlockKey(c.world, rec.ID)
	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, hash)
		pipe.ZAdd(ctx, BlockIndexKey(c.world), redis.Z{Score: float64(rec.CreatedAtMs), Member: rec.ID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write record to Redis: %w", err)
	}

	return c.publish(ctx, Event{Type: EventSaved, Record: rec})
}

// GetRecord retrieves a record by id.
// Returns (nil, redis.Nil) if the record doesn't exist; use IsNotFound.
func (c *Client) GetRecord(ctx context.Context, recordID string) (*Record, error) {
	hashData, err := c.rdb.HGetAll(ctx, BlockKey(c.world, recordID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read record from Redis: %w", err)
	}

	// HGetAll returns an empty map for missing keys
	if len(hashData) == 0 {
		return nil, redis.Nil
	}

	rec, err := HashToRecord(hashData)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize record: %w", err)
	}
	return rec, nil
}

// RecordExists checks if a record exists without fetching it.
func (c *Client) RecordExists(ctx context.Context, recordID string) (bool, error) {
	exists, err := c.rdb.Exists(ctx, BlockKey(c.world, recordID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check record existence: %w", err)
	}
	return exists > 0, nil
}

// LoadBlock fetches a record and rebuilds its block using source.
func (c *Client) LoadBlock(ctx context.Context, recordID string, source TraitsSource) (*block.Block, error) {
	rec, err := c.GetRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	return rec.Block(source)
}

// DeleteRecord removes a record and publishes a deleted event.
// Returns redis.Nil if the record doesn't exist.
func (c *Client) DeleteRecord(ctx context.Context, recordID string) error {
	var del *redis.IntCmd
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, BlockKey(c.world, recordID))
		pipe.ZRem(ctx, BlockIndexKey(c.world), recordID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if del.Val() == 0 {
		return redis.Nil
	}

	return c.publish(ctx, Event{Type: EventDeleted, Record: &Record{ID: recordID}})
}

// ListRecords returns every record in the world, oldest first. Index entries
// whose record has disappeared are skipped.
func (c *Client) ListRecords(ctx context.Context) ([]*Record, error) {
	ids, err := c.rdb.ZRange(ctx, BlockIndexKey(c.world), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read record index: %w", err)
	}

	records := make([]*Record, 0, len(ids))
	for _, id := range ids {
		rec, err := c.GetRecord(ctx, id)
		if IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// ScanRecordIDs returns the ids of records in this world that start with
// prefix, sorted. The prefix may only contain UUID characters.
func (c *Client) ScanRecordIDs(ctx context.Context, prefix string) ([]string, error) {
	if strings.Trim(strings.ToLower(prefix), "0123456789abcdef-") != "" {
		return nil, fmt.Errorf("invalid record id prefix %q", prefix)
	}

	keyPrefix := BlockKey(c.world, "")
	var ids []string
	iter := c.rdb.Scan(ctx, 0, keyPrefix+strings.ToLower(prefix)+"*", 100).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan records: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

func (c *Client) publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := c.rdb.Publish(ctx, BlockEventsChannel(c.world), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish block event: %w", err)
	}
	return nil
}

// Subscription is an active Pub/Sub subscription to block events.
// Caller must call Close() when done.
type Subscription struct {
	events <-chan *Event
	errors <-chan error
	cancel func()
	once   sync.Once
}

// Events returns the channel of block events. It is closed when the
// subscription is closed or its context is cancelled.
func (s *Subscription) Events() <-chan *Event {
	return s.events
}

// Errors returns the channel of non-fatal subscription errors. Messages that
// cannot be decoded are reported here and skipped.
func (s *Subscription) Errors() <-chan error {
	return s.errors
}

// Close stops the subscription. Safe to call multiple times.
func (s *Subscription) Close() error {
	s.once.Do(s.cancel)
	return nil
}

// Subscribe subscribes to block events for this world.
// Events are delivered on a buffered channel (size 10); Redis Pub/Sub is
// at-most-once, so a slow subscriber can miss events.
func (c *Client) Subscribe(ctx context.Context) (*Subscription, error) {
	pubsub := c.rdb.Subscribe(ctx, BlockEventsChannel(c.world))

	// Wait for the subscription to be confirmed so no event published after
	// Subscribe returns is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to block events: %w", err)
	}

	eventsChan := make(chan *Event, 10)
	errorsChan := make(chan error, 10)
	subCtx, cancelFunc := context.WithCancel(ctx)

	go func() {
		defer close(eventsChan)
		defer close(errorsChan)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					select {
					case errorsChan <- fmt.Errorf("failed to unmarshal block event: %w", err):
					case <-subCtx.Done():
						return
					}
					continue
				}

				select {
				case eventsChan <- &ev:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	return &Subscription{
		events: eventsChan,
		errors: errorsChan,
		cancel: cancelFunc,
	}, nil
}

// IsNotFound returns true if the error is a Redis "key not found" error (redis.Nil).
func IsNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}
