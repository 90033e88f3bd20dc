package sink

import (
	"context"
	"testing"
	"time"

	"line-relay/domain"
	"line-relay/domain/event"
	"line-relay/errors"

	"github.com/stretchr/testify/require"
)

func TestConnectionSink_ConsumeThenRead(t *testing.T) {
	req := require.New(t)
	sink := NewConnectionSink(2)
	reply := event.Reply{Ref: "1", Kind: "join", Line: 7, Result: "first"}

	req.NoError(sink.Consume(context.Background(), reply))

	select {
	case e := <-sink.Events():
		req.Equal(reply, e)
		req.Equal(domain.LineID(7), e.LineID())
	case <-time.After(time.Second):
		req.Fail("event not buffered")
	}
}

func TestConnectionSink_FullBufferHonorsContext(t *testing.T) {
	req := require.New(t)
	sink := NewConnectionSink(1)
	req.NoError(sink.Consume(context.Background(), event.Reply{Ref: "1"}))

	// Given a saturated buffer
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// When another event is pushed
	err := sink.Consume(ctx, event.Reply{Ref: "2"})

	// Then the caller gets its deadline back
	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestConnectionSink_Close(t *testing.T) {
	req := require.New(t)
	sink := NewConnectionSink(4)
	req.NoError(sink.Consume(context.Background(), event.Reply{Ref: "1"}))

	sink.Close()
	sink.Close()

	req.ErrorIs(sink.Consume(context.Background(), event.Reply{Ref: "2"}), errors.ErrSinkClosed)

	// Already buffered events are still readable
	e := <-sink.Events()
	req.Equal("1", e.(event.Reply).Ref)

	select {
	case <-sink.Done():
	default:
		req.Fail("done should be closed")
	}
}

func TestConnectionSink_CloseUnblocksProducer(t *testing.T) {
	req := require.New(t)
	sink := NewConnectionSink(0)

	errCh := make(chan error, 1)
	go func() {
		errCh <- sink.Consume(context.Background(), event.Reply{Ref: "1"})
	}()

	time.Sleep(20 * time.Millisecond)
	sink.Close()

	select {
	case err := <-errCh:
		req.ErrorIs(err, errors.ErrSinkClosed)
	case <-time.After(time.Second):
		req.Fail("producer still blocked")
	}
}

func TestConnectionSink_DrainReturnsUnreadEvents(t *testing.T) {
	req := require.New(t)
	sink := NewConnectionSink(4)
	relayed := event.Relayed{Message: domain.Message{Line: 3, Content: "ping"}}
	req.NoError(sink.Consume(context.Background(), event.Reply{Ref: "1"}))
	req.NoError(sink.Consume(context.Background(), relayed))

	pending := sink.Drain()

	req.Equal([]event.Event{event.Reply{Ref: "1"}, relayed}, pending)
	req.ErrorIs(sink.Consume(context.Background(), relayed), errors.ErrSinkClosed)
	req.Empty(sink.Drain())
}

func TestConnectionSink_DrainUnblocksProducer(t *testing.T) {
	req := require.New(t)
	sink := NewConnectionSink(0)

	errCh := make(chan error, 1)
	go func() {
		errCh <- sink.Consume(context.Background(), event.Reply{Ref: "1"})
	}()

	time.Sleep(20 * time.Millisecond)
	req.Empty(sink.Drain())
	req.ErrorIs(<-errCh, errors.ErrSinkClosed)
}
