//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"line-relay/domain"
	"line-relay/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is the live side of one connection.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// IRegistry maps online tokens to the sink of the connection that owns them.
type IRegistry interface {
	Bind(token domain.Token, sink EventSink)
	Unbind(token domain.Token, sink EventSink)
	Sink(token domain.Token) (EventSink, bool)
}

// IPresence is the process-local set of connected tokens.
type IPresence interface {
	MarkOnline(token domain.Token) bool
	MarkOffline(token domain.Token)
	IsOnline(token domain.Token) bool
	Count() int
}

// IPairingRegistry stores line occupancy. Join and Leave must be atomic per line.
type IPairingRegistry interface {
	Join(line domain.LineID, token domain.Token) (domain.Occupancy, error)
	Occupants(line domain.LineID) ([]domain.Token, error)
	Leave(line domain.LineID, token domain.Token) error
}

// IMailboxStore keeps the messages a token authored on a line until they are drained.
// Append and DrainAll must be atomic per (line, token).
type IMailboxStore interface {
	Append(message domain.Message) error
	DrainAll(line domain.LineID, token domain.Token) ([]domain.Message, error)
	PeekHead(line domain.LineID, token domain.Token) (domain.Message, error)
}

// IRelayCore is the routing state machine. Errors crossing it are relay
// sentinels only, store failures surface as errors.ErrInternal.
type IRelayCore interface {
	JoinLine(ctx context.Context, token domain.Token, line domain.LineID) (domain.JoinResult, error)
	ExitLine(ctx context.Context, token domain.Token, line domain.LineID) error
	ReceiveMessage(ctx context.Context, message domain.Message) (domain.Route, error)
	Enqueue(ctx context.Context, message domain.Message) error
	SetOffline(token domain.Token)
	Outstanding(ctx context.Context, token domain.Token, line domain.LineID) (domain.Message, bool, error)
	Profile() domain.Profile
}
