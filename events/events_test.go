package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_DeliversToSubscribers(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	var received []Event
	done := make(chan struct{})

	bus.Subscribe(EventTypeBalanceChange, func(ctx context.Context, event Event) {
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		close(done)
	})

	bus.Publish(BalanceChangeEvent{
		UserID:       "user1",
		OldBalance:   500,
		NewBalance:   400,
		ChangeAmount: -100,
		Reason:       ReasonBet,
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, received, 1)
	event, ok := received[0].(BalanceChangeEvent)
	assert.True(t, ok)
	assert.Equal(t, "user1", event.UserID)
	assert.Equal(t, int64(-100), event.ChangeAmount)
}

func TestBus_IgnoresOtherEventTypes(t *testing.T) {
	bus := NewBus()

	invoked := make(chan struct{}, 1)
	bus.Subscribe(EventTypeMatchStarted, func(ctx context.Context, event Event) {
		invoked <- struct{}{}
	})

	bus.Publish(BetPlacedEvent{UserID: "user1", Wrestler: "Hulk", Amount: 50})

	select {
	case <-invoked:
		t.Fatal("handler received an event type it never subscribed to")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_RecoversFromPanickingHandler(t *testing.T) {
	bus := NewBus()

	done := make(chan struct{})
	bus.Subscribe(EventTypeMatchResolved, func(ctx context.Context, event Event) {
		panic("boom")
	})
	bus.Subscribe(EventTypeMatchResolved, func(ctx context.Context, event Event) {
		close(done)
	})

	bus.Publish(MatchResolvedEvent{Winner: "Hulk", PayoutMultiplier: 2})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("panic in one handler blocked the others")
	}
}
