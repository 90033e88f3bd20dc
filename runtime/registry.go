package runtime

import (
	"sync"

	"line-relay/contract"
	"line-relay/domain"
)

var _ contract.IRegistry = (*Registry)(nil)

// Registry maps a token to the sink of the connection currently serving it.
// Only live connections of this process are known here.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.Token]contract.EventSink // map token -> Sink
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[domain.Token]contract.EventSink),
	}
}

// Bind registers sink as the live connection of token.
// A newer connection for the same token replaces the previous one.
func (r *Registry) Bind(token domain.Token, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = sink
}

// Unbind removes the binding only when it still points to sink, so a closing
// connection never evicts the one that replaced it.
func (r *Registry) Unbind(token domain.Token, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.sessions[token]; ok && current == sink {
		delete(r.sessions, token)
	}
}

// Sink returns the live connection of token, if any.
func (r *Registry) Sink(token domain.Token) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sink, ok := r.sessions[token]
	return sink, ok
}
