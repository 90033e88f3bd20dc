package relay

// Client frame kinds.
const (
	KindJoin    = "join"
	KindLeave   = "leave"
	KindSend    = "send"
	KindPending = "pending"
)

// Server frame types.
const (
	FrameReply   = "reply"
	FrameMessage = "message"
	FrameError   = "error"
)

// ClientFrame is one request sent on the Connect stream.
// Ref is echoed back in the matching reply or error frame.
type ClientFrame struct {
	Ref     string `cbor:"1,keyasint,omitempty" validate:"max=64"`
	Kind    string `cbor:"2,keyasint" validate:"required,oneof=join leave send pending"`
	Token   string `cbor:"3,keyasint" validate:"required"`
	Line    uint32 `cbor:"4,keyasint" validate:"lte=65535"`
	Content string `cbor:"5,keyasint,omitempty" validate:"required_if=Kind send"`

	// Malformed is set by the codec when the payload did not decode.
	Malformed bool `cbor:"-"`
}

func (f *ClientFrame) markMalformed() {
	*f = ClientFrame{Malformed: true}
}

// ServerFrame is one event pushed on the Connect stream.
type ServerFrame struct {
	Type     string     `cbor:"1,keyasint"`
	Ref      string     `cbor:"2,keyasint,omitempty"`
	Kind     string     `cbor:"3,keyasint,omitempty"`
	Line     uint32     `cbor:"4,keyasint"`
	Result   string     `cbor:"5,keyasint,omitempty"`
	Messages []Envelope `cbor:"6,keyasint,omitempty"`
	Code     string     `cbor:"7,keyasint,omitempty"`
	Reason   string     `cbor:"8,keyasint,omitempty"`
}

// Envelope is a relayed message. The sender token is never sent to the partner.
type Envelope struct {
	ID      string `cbor:"1,keyasint"`
	Line    uint32 `cbor:"2,keyasint"`
	Content string `cbor:"3,keyasint"`
	At      int64  `cbor:"4,keyasint"`
}

type ProfileRequest struct{}

type ProfileResponse struct {
	ServerName        string `cbor:"1,keyasint"`
	ServerDescription string `cbor:"2,keyasint"`
	AdminContact      string `cbor:"3,keyasint"`
	ServerLocation    string `cbor:"4,keyasint"`
}
