package event

import (
	"line-relay/domain"
)

// Event is pushed to a live connection through its sink.
type Event interface {
	LineID() domain.LineID
}

// Reply acknowledges a request made on the connection.
// Messages carries the backlog of a join or the head returned by a pending request.
// Drained is set when Messages were removed from a mailbox and exist nowhere else.
type Reply struct {
	Ref      string
	Kind     string
	Line     domain.LineID
	Result   string
	Messages []domain.Message
	Drained  bool
}

func (r Reply) LineID() domain.LineID { return r.Line }

// Relayed is a message delivered live from the partner.
type Relayed struct {
	Message domain.Message
}

func (r Relayed) LineID() domain.LineID { return r.Message.Line }

// Failure reports a rejected request. Reason is always client-safe.
type Failure struct {
	Ref    string
	Kind   string
	Line   domain.LineID
	Code   string
	Reason string
}

func (f Failure) LineID() domain.LineID { return f.Line }
