package watch

import (
	"context"

	"github.com/dyluth/mcobj/pkg/store"
)

// EventSource is a stream of block events. *store.Subscription satisfies it.
type EventSource interface {
	Events() <-chan *store.Event
	Errors() <-chan error
}

var _ EventSource = (*store.Subscription)(nil)

// Stream passes events from src to handle until ctx is done, the event
// channel closes, or limit events were handled. A limit of 0 means no limit.
// Errors reported by src go to onErr and do not stop the stream; an error
// from handle does. Stream returns the number of events handled.
func Stream(ctx context.Context, src EventSource, limit int, handle func(*store.Event) error, onErr func(error)) (int, error) {
	errs := src.Errors()
	seen := 0
	for {
		select {
		case <-ctx.Done():
			return seen, nil

		case ev, ok := <-src.Events():
			if !ok {
				return seen, nil
			}
			if err := handle(ev); err != nil {
				return seen, err
			}
			seen++
			if limit > 0 && seen >= limit {
				return seen, nil
			}

		case err, ok := <-errs:
			if !ok {
				// Closed: stop selecting on it
				errs = nil
				continue
			}
			if onErr != nil {
				onErr(err)
			}
		}
	}
}
