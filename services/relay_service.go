package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"line-relay/contract"
	"line-relay/domain"
	"line-relay/domain/event"
	"line-relay/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IRelayService interface {
	Open(sink contract.EventSink) *Session
	Join(ctx context.Context, session *Session, token domain.Token, line domain.LineID) (domain.JoinResult, error)
	Leave(ctx context.Context, session *Session, token domain.Token, line domain.LineID) error
	Send(ctx context.Context, session *Session, message domain.Message) (domain.Delivery, error)
	Pending(ctx context.Context, session *Session, token domain.Token, line domain.LineID) (domain.Message, bool, error)
	Requeue(ctx context.Context, session *Session, undelivered []event.Event) int
	Close(ctx context.Context, session *Session)
	Profile() domain.Profile
}

type seat struct {
	token domain.Token
	line  domain.LineID
}

// Session is the state of one live connection: its sink, the tokens it
// serves and the seats it took. Once released it accepts nothing more.
type Session struct {
	ID     uuid.UUID
	sink   contract.EventSink
	mu     sync.Mutex
	closed bool
	seats  map[seat]struct{}
	tokens map[domain.Token]struct{}
}

// hold records a completed join and runs bind under the session lock, so a
// concurrent release either sees the join or makes hold report false.
func (s *Session) hold(token domain.Token, line domain.LineID, seated bool, bind func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	if seated {
		s.seats[seat{token: token, line: line}] = struct{}{}
	}
	s.tokens[token] = struct{}{}
	bind()
	return true
}

// removeSeat reports whether the token still holds another seat in this session.
func (s *Session) removeSeat(token domain.Token, line domain.LineID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.seats, seat{token: token, line: line})
	return lo.SomeBy(lo.Keys(s.seats), func(other seat) bool { return other.token == token })
}

// release closes the session and returns what it held.
func (s *Session) release() ([]seat, []domain.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	seats, tokens := lo.Keys(s.seats), lo.Keys(s.tokens)
	s.seats = make(map[seat]struct{})
	s.tokens = make(map[domain.Token]struct{})
	return seats, tokens
}

// Seats is the number of seats currently held.
func (s *Session) Seats() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seats)
}

type RelayService struct {
	log                  *slog.Logger
	core                 contract.IRelayCore
	registry             contract.IRegistry
	deliveryTimeout      time.Duration
	maxContentLength     int
	keepSeatOnDisconnect bool
}

// NewRelayService wires the core to live connections. A zero maxContentLength
// disables the content check.
func NewRelayService(
	log *slog.Logger,
	core contract.IRelayCore,
	registry contract.IRegistry,
	deliveryTimeout time.Duration,
	maxContentLength int,
	keepSeatOnDisconnect bool,
) *RelayService {
	return &RelayService{
		log:                  log,
		core:                 core,
		registry:             registry,
		deliveryTimeout:      deliveryTimeout,
		maxContentLength:     maxContentLength,
		keepSeatOnDisconnect: keepSeatOnDisconnect,
	}
}

func (s *RelayService) Open(sink contract.EventSink) *Session {
	session := &Session{
		ID:     uuid.New(),
		sink:   sink,
		seats:  make(map[seat]struct{}),
		tokens: make(map[domain.Token]struct{}),
	}
	s.log.Debug("Session opened", "session", session.ID)
	return session
}

// Join seats token and binds it to the session sink so the partner's
// messages can be pushed live. A Refresh rebinds without taking a seat.
// A join that completes after the session closed is undone at once: the
// backlog goes back to the mailbox and the seat is released.
func (s *RelayService) Join(ctx context.Context, session *Session, token domain.Token, line domain.LineID) (domain.JoinResult, error) {
	result, err := s.core.JoinLine(ctx, token, line)
	if err != nil {
		return domain.JoinResult{}, err
	}

	seated := result.Kind != domain.Refresh
	if session.hold(token, line, seated, func() { s.registry.Bind(token, session.sink) }) {
		return result, nil
	}

	ctx = context.WithoutCancel(ctx)
	s.log.Info("Join completed after disconnect, undoing",
		"session", session.ID,
		"line", line,
		"token", token.Fingerprint())
	s.requeue(ctx, session, result.Backlog)
	if seated {
		s.leave(ctx, session, seat{token: token, line: line})
	}
	return domain.JoinResult{}, errors.ErrSinkClosed
}

func (s *RelayService) Leave(ctx context.Context, session *Session, token domain.Token, line domain.LineID) error {
	if err := s.core.ExitLine(ctx, token, line); err != nil {
		return err
	}
	if !session.removeSeat(token, line) {
		s.registry.Unbind(token, session.sink)
	}
	return nil
}

// Send routes message. A live delivery that cannot complete within the
// delivery timeout falls back to the sender's mailbox.
func (s *RelayService) Send(ctx context.Context, session *Session, message domain.Message) (domain.Delivery, error) {
	if s.maxContentLength > 0 && len(message.Content) > s.maxContentLength {
		return domain.Queued, fmt.Errorf("%d bytes: %w", len(message.Content), errors.ErrContentTooLong)
	}

	route, err := s.core.ReceiveMessage(ctx, message)
	if err != nil {
		return domain.Queued, err
	}
	if route.Kind == domain.PushedToQueue {
		return domain.Queued, nil
	}

	if err := s.deliver(ctx, route.To, message); err != nil {
		s.log.Warn("Live delivery failed, queuing",
			"session", session.ID,
			"line", message.Line,
			"to", route.To.Fingerprint(),
			"error", err)
		if err := s.core.Enqueue(ctx, message); err != nil {
			return domain.Queued, err
		}
		return domain.Queued, nil
	}
	return domain.Delivered, nil
}

func (s *RelayService) deliver(ctx context.Context, to domain.Token, message domain.Message) error {
	sink, ok := s.registry.Sink(to)
	if !ok {
		return errors.ErrSinkClosed
	}
	deliveryCtx, cancel := context.WithTimeout(ctx, s.deliveryTimeout)
	defer cancel()
	return sink.Consume(deliveryCtx, event.Relayed{Message: message})
}

func (s *RelayService) Pending(ctx context.Context, _ *Session, token domain.Token, line domain.LineID) (domain.Message, bool, error) {
	return s.core.Outstanding(ctx, token, line)
}

// Requeue puts back into the mailboxes the messages a closing connection
// never wrote out: live deliveries and drained join backlogs.
// It returns how many messages were queued again.
func (s *RelayService) Requeue(ctx context.Context, session *Session, undelivered []event.Event) int {
	ctx = context.WithoutCancel(ctx)
	return s.requeue(ctx, session, lo.FlatMap(undelivered, func(e event.Event, _ int) []domain.Message {
		switch evt := e.(type) {
		case event.Relayed:
			return []domain.Message{evt.Message}
		case event.Reply:
			if evt.Drained {
				return evt.Messages
			}
		}
		return nil
	}))
}

func (s *RelayService) requeue(ctx context.Context, session *Session, messages []domain.Message) int {
	requeued := 0
	for _, message := range messages {
		if err := s.core.Enqueue(ctx, message); err != nil {
			s.log.Error("Failed to requeue message",
				"session", session.ID,
				"line", message.Line,
				"token", message.Sender.Fingerprint(),
				"error", err)
			continue
		}
		requeued++
	}
	if requeued > 0 {
		s.log.Info("Undelivered messages requeued", "session", session.ID, "count", requeued)
	}
	return requeued
}

// Close releases every seat of the session. ctx is usually the stream context,
// already canceled when the peer hung up, so cancellation is detached here.
func (s *RelayService) Close(ctx context.Context, session *Session) {
	ctx = context.WithoutCancel(ctx)
	seats, tokens := session.release()

	for _, held := range seats {
		s.leave(ctx, session, held)
	}
	for _, token := range tokens {
		s.registry.Unbind(token, session.sink)
	}
	s.log.Debug("Session closed", "session", session.ID, "seats", len(seats))
}

// leave gives up a seat on disconnect, or only drops presence when seats survive disconnects.
func (s *RelayService) leave(ctx context.Context, session *Session, held seat) {
	if s.keepSeatOnDisconnect {
		s.core.SetOffline(held.token)
		return
	}
	if err := s.core.ExitLine(ctx, held.token, held.line); err != nil {
		s.log.Error("Failed to release seat",
			"session", session.ID,
			"line", held.line,
			"token", held.token.Fingerprint(),
			"error", err)
	}
}

func (s *RelayService) Profile() domain.Profile {
	return s.core.Profile()
}
