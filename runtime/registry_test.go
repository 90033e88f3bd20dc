package runtime

import (
	"context"
	"strings"
	"testing"

	"line-relay/domain"
	"line-relay/domain/event"

	"github.com/stretchr/testify/require"
)

type Sink struct {
	id int
}

func (s *Sink) Consume(ctx context.Context, e event.Event) error {
	return nil
}

func token(c string) domain.Token {
	t, err := domain.ParseToken(strings.Repeat(c, domain.TokenSize))
	if err != nil {
		panic(err)
	}
	return t
}

func TestRegistry_Bind_One_Token(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	t1 := token("a")
	sink := &Sink{id: 1}

	// Given no connection is bound
	_, ok := registry.Sink(t1)
	req.False(ok)

	// When a connection binds the token
	registry.Bind(t1, sink)

	// Then the sink is found
	found, ok := registry.Sink(t1)
	req.True(ok)
	req.Same(sink, found)
}

func TestRegistry_Bind_Replaces_Previous_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	t1 := token("a")
	older, newer := &Sink{id: 1}, &Sink{id: 2}

	registry.Bind(t1, older)
	registry.Bind(t1, newer)

	// When the older connection closes
	registry.Unbind(t1, older)

	// Then the newer one is still bound
	found, ok := registry.Sink(t1)
	req.True(ok)
	req.Same(newer, found)
}

func TestRegistry_Unbind(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	t1, t2 := token("a"), token("b")
	sink1, sink2 := &Sink{id: 1}, &Sink{id: 2}

	registry.Bind(t1, sink1)
	registry.Bind(t2, sink2)

	registry.Unbind(t1, sink1)

	_, ok := registry.Sink(t1)
	req.False(ok)
	found, ok := registry.Sink(t2)
	req.True(ok)
	req.Same(sink2, found)

	// Unbinding an unknown token is harmless
	registry.Unbind(token("z"), sink1)
	req.Len(registry.sessions, 1)
}
