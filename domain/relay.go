package domain

// JoinKind is the routing decision returned to the transport for a join.
type JoinKind int

const (
	// Refresh means the token was already online; nothing was mutated.
	Refresh JoinKind = iota
	BecameFirstOccupant
	BecameSecondOccupant
	Rejoined
)

func (k JoinKind) String() string {
	switch k {
	case Refresh:
		return "refresh"
	case BecameFirstOccupant:
		return "first"
	case BecameSecondOccupant:
		return "second"
	case Rejoined:
		return "rejoined"
	default:
		return "unknown"
	}
}

type JoinResult struct {
	Kind    JoinKind
	Backlog []Message
}

type RouteKind int

const (
	PushedToQueue RouteKind = iota
	DeliverLive
)

func (k RouteKind) String() string {
	if k == DeliverLive {
		return "deliver_live"
	}
	return "pushed_to_queue"
}

// Route tells the transport what to do with an inbound message.
// To is only meaningful for DeliverLive.
type Route struct {
	Kind RouteKind
	To   Token
}

// Delivery is what actually happened to a message once the transport acted on its Route.
type Delivery int

const (
	Queued Delivery = iota
	Delivered
)

func (d Delivery) String() string {
	if d == Delivered {
		return "delivered"
	}
	return "queued"
}

// Profile is static server metadata, opaque to routing.
type Profile struct {
	ServerName        string
	ServerDescription string
	AdminContact      string
	ServerLocation    string
}
