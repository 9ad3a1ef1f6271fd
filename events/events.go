package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBalanceChange EventType = "balance_change"
	EventTypeBetPlaced     EventType = "bet_placed"
	EventTypeMatchStarted  EventType = "match_started"
	EventTypeMatchResolved EventType = "match_resolved"
)

// Balance change reasons
const (
	ReasonInitial   = "initial"
	ReasonBet       = "bet"
	ReasonPayout    = "payout"
	ReasonGrant     = "grant"
	ReasonDonateIn  = "donate_in"
	ReasonDonateOut = "donate_out"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BalanceChangeEvent represents a balance change that occurred
type BalanceChangeEvent struct {
	UserID       string
	OldBalance   int64
	NewBalance   int64
	ChangeAmount int64
	Reason       string
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// BetPlacedEvent represents a bet that was placed on the open match
type BetPlacedEvent struct {
	UserID   string
	Wrestler string
	Amount   int64
}

func (e BetPlacedEvent) Type() EventType {
	return EventTypeBetPlaced
}

// MatchStartedEvent represents a new betting round being opened
type MatchStartedEvent struct {
	MatchID   string
	Wrestlers []string
}

func (e MatchStartedEvent) Type() EventType {
	return EventTypeMatchStarted
}

// MatchResolvedEvent represents a match result being processed
type MatchResolvedEvent struct {
	MatchID          string
	Winner           string
	PayoutMultiplier int
	BetCount         int
}

func (e MatchResolvedEvent) Type() EventType {
	return EventTypeMatchResolved
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Publish emits an event to all registered handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	// Call handlers asynchronously to avoid blocking the command path
	ctx := context.Background()
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}
