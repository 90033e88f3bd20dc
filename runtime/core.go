package runtime

import (
	"context"
	"log/slog"

	"line-relay/contract"
	"line-relay/domain"
	"line-relay/errors"
)

var _ contract.IRelayCore = (*Core)(nil)

// Core decides, for every join, exit and inbound message, what happens to the
// line and where the payload goes. It never talks to a connection itself: the
// transport acts on the returned JoinResult or Route.
//
// Presence is global to the process, not per line. A token already online
// short-circuits any further join to Refresh, whatever the line.
type Core struct {
	log      *slog.Logger
	presence contract.IPresence
	pairing  contract.IPairingRegistry
	mailbox  contract.IMailboxStore
	profile  domain.Profile
}

func NewCore(
	log *slog.Logger,
	presence contract.IPresence,
	pairing contract.IPairingRegistry,
	mailbox contract.IMailboxStore,
	profile domain.Profile,
) *Core {
	return &Core{
		log:      log,
		presence: presence,
		pairing:  pairing,
		mailbox:  mailbox,
		profile:  profile,
	}
}

// JoinLine marks token online, then seats it on line.
// When the join fails, LineBusy included, the token is marked offline again:
// it holds no seat, and staying online would turn its next attempt into a Refresh.
func (c *Core) JoinLine(ctx context.Context, token domain.Token, line domain.LineID) (domain.JoinResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.JoinResult{}, err
	}
	if !c.presence.MarkOnline(token) {
		c.log.Debug("Join refreshed", "line", line, "token", token.Fingerprint())
		return domain.JoinResult{Kind: domain.Refresh}, nil
	}

	result, err := c.join(token, line)
	if err != nil {
		c.presence.MarkOffline(token)
		return domain.JoinResult{}, err
	}
	c.log.Info("Line joined",
		"line", line,
		"token", token.Fingerprint(),
		"kind", result.Kind.String(),
		"backlog", len(result.Backlog))
	return result, nil
}

func (c *Core) join(token domain.Token, line domain.LineID) (domain.JoinResult, error) {
	occupancy, err := c.pairing.Join(line, token)
	if err != nil {
		return domain.JoinResult{}, c.internal("join", line, err)
	}

	switch occupancy.Outcome {
	case domain.FirstOccupant:
		return domain.JoinResult{Kind: domain.BecameFirstOccupant}, nil
	case domain.SecondOccupant:
		backlog, err := c.backlog(line, occupancy, token)
		if err != nil {
			return domain.JoinResult{}, err
		}
		return domain.JoinResult{Kind: domain.BecameSecondOccupant, Backlog: backlog}, nil
	case domain.AlreadyPresent:
		backlog, err := c.backlog(line, occupancy, token)
		if err != nil {
			return domain.JoinResult{}, err
		}
		return domain.JoinResult{Kind: domain.Rejoined, Backlog: backlog}, nil
	case domain.LineFull:
		c.log.Info("Line busy", "line", line, "token", token.Fingerprint())
		return domain.JoinResult{}, errors.ErrLineBusy
	default:
		return domain.JoinResult{}, c.internal("join", line, errors.ErrInvalidRequest)
	}
}

// backlog drains what the other occupant queued while token was away.
func (c *Core) backlog(line domain.LineID, occupancy domain.Occupancy, token domain.Token) ([]domain.Message, error) {
	partner, ok := occupancy.Partner(token)
	if !ok {
		return []domain.Message{}, nil
	}
	backlog, err := c.mailbox.DrainAll(line, partner)
	if err != nil {
		return nil, c.internal("drain", line, err)
	}
	return backlog, nil
}

// ExitLine marks token offline, then removes it from line.
// A token that was not listed is already gone and does not fail the call.
func (c *Core) ExitLine(ctx context.Context, token domain.Token, line domain.LineID) error {
	c.presence.MarkOffline(token)
	if err := ctx.Err(); err != nil {
		return err
	}

	err := c.pairing.Leave(line, token)
	switch {
	case err == nil:
		c.log.Info("Line left", "line", line, "token", token.Fingerprint())
		return nil
	case errors.Is(err, errors.ErrNotPresent):
		c.log.Warn("Leaving a line the token is not listed in", "line", line, "token", token.Fingerprint())
		return nil
	default:
		return c.internal("leave", line, err)
	}
}

// ReceiveMessage routes an inbound message. The partner, when listed and
// online, is the only delivery target; otherwise the message is queued.
func (c *Core) ReceiveMessage(ctx context.Context, message domain.Message) (domain.Route, error) {
	if err := ctx.Err(); err != nil {
		return domain.Route{}, err
	}
	occupants, err := c.pairing.Occupants(message.Line)
	if err != nil {
		return domain.Route{}, c.internal("occupants", message.Line, err)
	}
	if !domain.IsOccupant(occupants, message.Sender) {
		c.log.Info("Message from a token outside the line",
			"line", message.Line,
			"token", message.Sender.Fingerprint())
		return domain.Route{}, errors.ErrNotInLine
	}

	partner, ok := domain.PartnerOf(occupants, message.Sender)
	if ok && c.presence.IsOnline(partner) {
		return domain.Route{Kind: domain.DeliverLive, To: partner}, nil
	}
	if err := c.enqueue(message); err != nil {
		return domain.Route{}, err
	}
	return domain.Route{Kind: domain.PushedToQueue}, nil
}

// Enqueue appends message to its sender's mailbox without any routing decision.
// The transport uses it when a DeliverLive target vanished before delivery.
func (c *Core) Enqueue(ctx context.Context, message domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.enqueue(message)
}

func (c *Core) enqueue(message domain.Message) error {
	err := c.mailbox.Append(message)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errors.ErrMailboxFull):
		c.log.Warn("Mailbox full", "line", message.Line, "token", message.Sender.Fingerprint())
		return errors.ErrMailboxFull
	default:
		return c.internal("append", message.Line, err)
	}
}

// SetOffline drops token from presence and keeps its seats.
func (c *Core) SetOffline(token domain.Token) {
	c.presence.MarkOffline(token)
	c.log.Debug("Token offline", "token", token.Fingerprint())
}

// Outstanding returns the oldest message token queued on line that the
// partner has not picked up yet.
func (c *Core) Outstanding(ctx context.Context, token domain.Token, line domain.LineID) (domain.Message, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Message{}, false, err
	}
	occupants, err := c.pairing.Occupants(line)
	if err != nil {
		return domain.Message{}, false, c.internal("occupants", line, err)
	}
	if !domain.IsOccupant(occupants, token) {
		return domain.Message{}, false, errors.ErrNotInLine
	}

	head, err := c.mailbox.PeekHead(line, token)
	switch {
	case err == nil:
		return head, true, nil
	case errors.Is(err, errors.ErrMailboxEmpty):
		return domain.Message{}, false, nil
	default:
		return domain.Message{}, false, c.internal("peek", line, err)
	}
}

func (c *Core) Profile() domain.Profile {
	return c.profile
}

// internal logs the store failure and hides it behind ErrInternal.
func (c *Core) internal(op string, line domain.LineID, err error) error {
	c.log.Error("Store operation failed", "op", op, "line", line, "error", err)
	return errors.ErrInternal
}
