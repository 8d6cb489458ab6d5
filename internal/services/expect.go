package services

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/imharvol/bog-utils-bot/internal/domain"
)

// DefaultExpectationTimeout is how long an expectation stays pending when no
// explicit timeout is given.
const DefaultExpectationTimeout = 3 * time.Minute

// Expectation describes a one-shot wait for a qualifying follow-up message.
// At least one of ReplyTo / MessageFrom must be set. Check defaults to
// always-true; OnMatch and OnMismatch default to no-ops. The zero value of
// the Keep flags removes the expectation after evaluation, which is the
// common case for conversational prompts.
type Expectation struct {
	ReplyTo     int
	MessageFrom int64

	Check      func(msg domain.IncomingMessage) bool
	OnMatch    func(msg domain.IncomingMessage)
	OnMismatch func(msg domain.IncomingMessage)

	KeepOnMatch    bool
	KeepOnMismatch bool

	Timeout time.Duration
}

type pendingExpectation struct {
	id    int64
	exp   Expectation
	timer *time.Timer
}

// ExpectationRegistry correlates inbound messages with pending conversational
// flows. Each registration resolves exactly once: matched, mismatched, or
// expired. Removal is idempotent, so a timeout racing a delivered message can
// never fire a callback twice.
type ExpectationRegistry struct {
	mu      sync.Mutex
	nextID  int64
	pending []*pendingExpectation
	log     *zap.Logger
}

func NewExpectationRegistry(log *zap.Logger) *ExpectationRegistry {
	return &ExpectationRegistry{log: log}
}

// Expect registers the expectation and arms its expiry timer.
func (r *ExpectationRegistry) Expect(exp Expectation) error {
	if exp.ReplyTo == 0 && exp.MessageFrom == 0 {
		return domain.ErrInvalidExpectation
	}

	if exp.Check == nil {
		exp.Check = func(domain.IncomingMessage) bool { return true }
	}
	if exp.OnMatch == nil {
		exp.OnMatch = func(domain.IncomingMessage) {}
	}
	if exp.OnMismatch == nil {
		exp.OnMismatch = func(domain.IncomingMessage) {}
	}
	if exp.Timeout <= 0 {
		exp.Timeout = DefaultExpectationTimeout
	}

	r.mu.Lock()
	r.nextID++
	p := &pendingExpectation{id: r.nextID, exp: exp}
	p.timer = time.AfterFunc(exp.Timeout, func() {
		if r.remove(p.id) {
			r.log.Debug("expectation expired",
				zap.Int("reply_to", exp.ReplyTo),
				zap.Int64("message_from", exp.MessageFrom))
		}
	})
	r.pending = append(r.pending, p)
	r.mu.Unlock()
	return nil
}

// HandleMessage evaluates the message against every pending expectation in
// registration order. Each expectation is evaluated independently; one
// message may resolve several of them.
func (r *ExpectationRegistry) HandleMessage(msg domain.IncomingMessage) {
	r.mu.Lock()
	candidates := make([]*pendingExpectation, len(r.pending))
	copy(candidates, r.pending)
	r.mu.Unlock()

	for _, p := range candidates {
		if p.exp.MessageFrom != 0 && p.exp.MessageFrom != msg.From {
			continue
		}
		if p.exp.ReplyTo != 0 && p.exp.ReplyTo != msg.ReplyTo {
			continue
		}

		if p.exp.Check(msg) {
			if !p.exp.KeepOnMatch {
				if !r.remove(p.id) {
					continue // already expired
				}
				p.timer.Stop()
			} else if !r.contains(p.id) {
				continue
			}
			p.exp.OnMatch(msg)
		} else {
			if !p.exp.KeepOnMismatch {
				if !r.remove(p.id) {
					continue
				}
				p.timer.Stop()
			} else if !r.contains(p.id) {
				continue
			}
			p.exp.OnMismatch(msg)
		}
	}
}

// PendingCount reports how many expectations are still waiting.
func (r *ExpectationRegistry) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Stop cancels every pending expectation without invoking callbacks.
func (r *ExpectationRegistry) Stop() {
	r.mu.Lock()
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()

	for _, p := range pending {
		if p.timer != nil {
			p.timer.Stop()
		}
	}
}

func (r *ExpectationRegistry) remove(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.pending {
		if p.id == id {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			return true
		}
	}
	return false
}

func (r *ExpectationRegistry) contains(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.pending {
		if p.id == id {
			return true
		}
	}
	return false
}
