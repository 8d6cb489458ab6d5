package eventbus

import (
	"sync"

	"github.com/imharvol/bog-utils-bot/internal/domain"
	"github.com/imharvol/bog-utils-bot/internal/ports"
)

type inMemoryEventBus struct {
	mu          sync.RWMutex
	subscribers map[chan domain.ContractEvent]struct{}
}

// NewInMemoryEventBus returns a process-local pub/sub for contract events.
// Publish never blocks; a subscriber that falls more than a buffer's worth
// behind loses events rather than stalling the watcher.
func NewInMemoryEventBus() ports.EventBus {
	return &inMemoryEventBus{
		subscribers: make(map[chan domain.ContractEvent]struct{}),
	}
}

func (b *inMemoryEventBus) Publish(event domain.ContractEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func (b *inMemoryEventBus) Subscribe() (<-chan domain.ContractEvent, func()) {
	ch := make(chan domain.ContractEvent, 32)
	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()
	unsubscribe := func() {
		b.mu.Lock()
		delete(b.subscribers, ch)
		close(ch)
		b.mu.Unlock()
	}
	return ch, unsubscribe
}
