package sink

import (
	"context"
	"sync"

	"line-relay/contract"
	"line-relay/domain/event"
	"line-relay/errors"
)

var _ contract.EventSink = (*ConnectionSink)(nil)

// ConnectionSink buffers the events pushed to one live connection.
// The connection's writer loop drains Events; other connections push
// through Consume.
type ConnectionSink struct {
	events chan event.Event
	done   chan struct{}
	once   sync.Once
	// held for reading by every Consume, so Drain sees no push in flight
	mu sync.RWMutex
}

func NewConnectionSink(capacity int) *ConnectionSink {
	return &ConnectionSink{
		events: make(chan event.Event, capacity),
		done:   make(chan struct{}),
	}
}

// Consume blocks until the event is buffered, ctx ends or the sink is closed.
func (s *ConnectionSink) Consume(ctx context.Context, e event.Event) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	select {
	case <-s.done:
		return errors.ErrSinkClosed
	default:
	}

	select {
	case s.events <- e:
		return nil
	case <-s.done:
		return errors.ErrSinkClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ConnectionSink) Events() <-chan event.Event {
	return s.events
}

// Done is closed once the sink stops accepting events.
func (s *ConnectionSink) Done() <-chan struct{} {
	return s.done
}

// Close is safe to call more than once. Events already buffered stay readable.
func (s *ConnectionSink) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}

// Drain closes the sink and returns the events that were buffered but never read.
// No event can land in the sink once Drain returns.
func (s *ConnectionSink) Drain() []event.Event {
	s.Close()
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []event.Event
	for {
		select {
		case e := <-s.events:
			pending = append(pending, e)
		default:
			return pending
		}
	}
}
