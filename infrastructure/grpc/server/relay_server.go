package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"line-relay/api/relay"
	"line-relay/domain"
	"line-relay/domain/event"
	"line-relay/errors"
	"line-relay/services"
	"line-relay/sink"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"google.golang.org/grpc"
)

const (
	resultLeft    = "left"
	resultEmpty   = "empty"
	resultPending = "pending"
)

type RelayServer struct {
	relay.UnimplementedRelayServiceServer
	log                  *slog.Logger
	relayService         services.IRelayService
	validator            *validator.Validate
	connectionBufferSize int
}

func NewRelayServer(log *slog.Logger, relayService services.IRelayService, connectionBufferSize int) *RelayServer {
	return &RelayServer{
		log:                  log,
		relayService:         relayService,
		validator:            validator.New(),
		connectionBufferSize: connectionBufferSize,
	}
}

func (s *RelayServer) GetProfile(_ context.Context, _ *relay.ProfileRequest) (*relay.ProfileResponse, error) {
	profile := s.relayService.Profile()
	return &relay.ProfileResponse{
		ServerName:        profile.ServerName,
		ServerDescription: profile.ServerDescription,
		AdminContact:      profile.AdminContact,
		ServerLocation:    profile.ServerLocation,
	}, nil
}

// Connect serves one connection until the client hangs up.
// A receiver goroutine turns every frame into a call on the relay service and
// pushes the answer into the connection sink. The calling goroutine is the only
// writer of the stream: it forwards whatever lands in the sink, the partner's
// live messages included. Routing errors become error frames, they never end
// the stream. When the client half-closes, pending events are flushed first.
// Whatever is still buffered on teardown goes back to the mailboxes before the
// session releases its seats.
func (s *RelayServer) Connect(stream grpc.BidiStreamingServer[relay.ClientFrame, relay.ServerFrame]) error {
	ctx := stream.Context()
	connection := sink.NewConnectionSink(s.connectionBufferSize)
	session := s.relayService.Open(connection)
	defer func() {
		s.relayService.Requeue(ctx, session, connection.Drain())
		s.relayService.Close(ctx, session)
	}()

	errChan := make(chan error, 1)
	go func() {
		for {
			frame, err := stream.Recv()
			if err != nil {
				errChan <- err
				return
			}
			answer := s.handle(ctx, session, frame)
			if err := connection.Consume(ctx, answer); err != nil {
				// the connection is going away, keep any drained backlog
				s.relayService.Requeue(ctx, session, []event.Event{answer})
				errChan <- err
				return
			}
		}
	}()

	for {
		select {
		case e := <-connection.Events():
			if err := stream.Send(s.toServerFrame(e)); err != nil {
				s.log.Error("Failed to push event to stream", "session", session.ID, "error", err)
				return err
			}
		case err := <-errChan:
			if err == io.EOF {
				return s.flush(stream, connection)
			}
			if ctx.Err() != nil {
				s.log.Debug("Client disconnected", "session", session.ID)
				return nil
			}
			s.log.Warn("Stream receive failed", "session", session.ID, "error", err)
			return errors.MapToGRPCError(err)
		case <-ctx.Done():
			s.log.Debug("Client disconnected", "session", session.ID)
			return nil
		}
	}
}

// flush sends the events already buffered when the client stopped sending.
func (s *RelayServer) flush(stream grpc.BidiStreamingServer[relay.ClientFrame, relay.ServerFrame], connection *sink.ConnectionSink) error {
	for {
		select {
		case e := <-connection.Events():
			if err := stream.Send(s.toServerFrame(e)); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// handle validates frame before anything reaches the relay, so a bad frame
// never mutates state.
func (s *RelayServer) handle(ctx context.Context, session *services.Session, frame *relay.ClientFrame) event.Event {
	if frame.Malformed {
		return s.failure(frame, errors.ErrInvalidRequest)
	}
	if err := s.validator.Struct(frame); err != nil {
		return s.failure(frame, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err))
	}
	token, err := domain.ParseToken(frame.Token)
	if err != nil {
		return s.failure(frame, err)
	}
	line := domain.LineID(frame.Line)

	switch frame.Kind {
	case relay.KindJoin:
		result, err := s.relayService.Join(ctx, session, token, line)
		if err != nil {
			return s.failure(frame, err)
		}
		joined := reply(frame, result.Kind.String(), result.Backlog)
		joined.Drained = len(result.Backlog) > 0
		return joined
	case relay.KindLeave:
		if err := s.relayService.Leave(ctx, session, token, line); err != nil {
			return s.failure(frame, err)
		}
		return reply(frame, resultLeft, nil)
	case relay.KindSend:
		delivery, err := s.relayService.Send(ctx, session, domain.NewMessage(line, token, frame.Content))
		if err != nil {
			return s.failure(frame, err)
		}
		return reply(frame, delivery.String(), nil)
	case relay.KindPending:
		message, ok, err := s.relayService.Pending(ctx, session, token, line)
		if err != nil {
			return s.failure(frame, err)
		}
		if !ok {
			return reply(frame, resultEmpty, nil)
		}
		return reply(frame, resultPending, []domain.Message{message})
	default:
		return s.failure(frame, errors.ErrInvalidRequest)
	}
}

func reply(frame *relay.ClientFrame, result string, messages []domain.Message) event.Reply {
	return event.Reply{
		Ref:      frame.Ref,
		Kind:     frame.Kind,
		Line:     domain.LineID(frame.Line),
		Result:   result,
		Messages: messages,
	}
}

func (s *RelayServer) failure(frame *relay.ClientFrame, err error) event.Failure {
	code, reason := errors.Code(err)
	s.log.Debug("Request rejected", "kind", frame.Kind, "line", frame.Line, "code", code, "error", err)
	return event.Failure{
		Ref:    frame.Ref,
		Kind:   frame.Kind,
		Line:   domain.LineID(frame.Line),
		Code:   code,
		Reason: reason,
	}
}

func (s *RelayServer) toServerFrame(e event.Event) *relay.ServerFrame {
	switch evt := e.(type) {
	case event.Reply:
		return &relay.ServerFrame{
			Type:     relay.FrameReply,
			Ref:      evt.Ref,
			Kind:     evt.Kind,
			Line:     uint32(evt.Line),
			Result:   evt.Result,
			Messages: toEnvelopes(evt.Messages),
		}
	case event.Relayed:
		return &relay.ServerFrame{
			Type:     relay.FrameMessage,
			Line:     uint32(evt.Message.Line),
			Messages: toEnvelopes([]domain.Message{evt.Message}),
		}
	case event.Failure:
		return &relay.ServerFrame{
			Type:   relay.FrameError,
			Ref:    evt.Ref,
			Kind:   evt.Kind,
			Line:   uint32(evt.Line),
			Code:   evt.Code,
			Reason: evt.Reason,
		}
	default:
		s.log.Error("Unexpected event in connection sink", "type", fmt.Sprintf("%T", e), "line", e.LineID())
		code, reason := errors.Code(errors.ErrInternal)
		return &relay.ServerFrame{Type: relay.FrameError, Line: uint32(e.LineID()), Code: code, Reason: reason}
	}
}

func toEnvelopes(messages []domain.Message) []relay.Envelope {
	return lo.Map(messages, func(item domain.Message, _ int) relay.Envelope {
		return relay.Envelope{
			ID:      item.ID.String(),
			Line:    uint32(item.Line),
			Content: item.Content,
			At:      item.At.UnixMilli(),
		}
	})
}
