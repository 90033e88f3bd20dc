package runtime

import (
	"sync"

	"line-relay/contract"
	"line-relay/domain"
)

var _ contract.IPresence = (*Presence)(nil)

// Presence is the process-local set of tokens holding a live connection.
// It is created empty at startup and injected wherever it is needed,
// it is never shared with another process.
type Presence struct {
	mu     sync.RWMutex
	online map[domain.Token]struct{}
}

func NewPresence() *Presence {
	return &Presence{online: make(map[domain.Token]struct{})}
}

// MarkOnline adds token and reports whether it was absent.
// Check and insert happen under the same lock, so among concurrent callers
// for one token exactly one gets true.
func (p *Presence) MarkOnline(token domain.Token) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.online[token]; ok {
		return false
	}
	p.online[token] = struct{}{}
	return true
}

// MarkOffline is a no-op for an absent token.
func (p *Presence) MarkOffline(token domain.Token) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.online, token)
}

func (p *Presence) IsOnline(token domain.Token) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.online[token]
	return ok
}

func (p *Presence) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.online)
}
