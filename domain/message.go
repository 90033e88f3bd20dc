// Package domain contains core concepts of the relay.
// This file defines Message events and related rules.
// Messages are immutable and validated by the domain.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is immutable once built.
type Message struct {
	ID      uuid.UUID
	Line    LineID
	Sender  Token
	Content string
	At      time.Time
}

func NewMessage(line LineID, sender Token, content string) Message {
	return Message{
		ID:      uuid.New(),
		Line:    line,
		Sender:  sender,
		Content: content,
		At:      time.Now().UTC(),
	}
}
