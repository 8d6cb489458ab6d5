package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/imharvol/bog-utils-bot/internal/domain"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewInMemoryEventBus()

	ch1, cancel1 := bus.Subscribe()
	defer cancel1()
	ch2, cancel2 := bus.Subscribe()
	defer cancel2()

	evt := domain.ContractEvent{Name: "OrderExecuted", OrderID: "1", TxHash: "0xtx"}
	bus.Publish(evt)

	for _, ch := range []<-chan domain.ContractEvent{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, evt, got)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewInMemoryEventBus()

	ch, cancel := bus.Subscribe()
	cancel()

	bus.Publish(domain.ContractEvent{Name: "OrderExecuted", OrderID: "1"})

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should be closed after unsubscribe")
	case <-time.After(100 * time.Millisecond):
		t.Fatal("channel not closed")
	}
}

func TestPublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	bus := NewInMemoryEventBus()
	done := make(chan struct{})
	go func() {
		bus.Publish(domain.ContractEvent{Name: "OrderExecuted", OrderID: "1"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked")
	}
}
