package service

import (
	"ringside/events"
	"ringside/models"
)

// InitialCoins is the balance a user starts with the first time they are seen
const InitialCoins int64 = 500

// DefaultHistoryLimit bounds how many history records are surfaced to users
const DefaultHistoryLimit = 5

// BalanceStore defines the interface for the coins document
type BalanceStore interface {
	// Get returns a user's balance and whether the user has been seen before
	Get(userID string) (int64, bool)

	// Set replaces a user's balance and persists the document
	Set(userID string, balance int64)

	// All returns a copy of every known balance
	All() map[string]int64
}

// MatchStore defines the interface for the current match document
type MatchStore interface {
	// Current returns the open match, or nil when no match exists
	Current() *models.Match

	// Put replaces the current match
	Put(m *models.Match)

	// Clear removes the current match
	Clear()
}

// BetStore defines the interface for the current bets document
type BetStore interface {
	// Get returns a user's bet on the open match, if any
	Get(userID string) (models.Bet, bool)

	// Put records or overwrites a user's bet
	Put(userID string, bet models.Bet)

	// All returns a copy of every outstanding bet keyed by user ID
	All() map[string]models.Bet

	// Clear removes every outstanding bet
	Clear()
}

// HistoryStore defines the interface for the bet history document
type HistoryStore interface {
	// Append pushes a record onto a user's history
	Append(userID string, rec models.HistoryRecord)

	// ForUser returns a user's full history, oldest first
	ForUser(userID string) []models.HistoryRecord

	// FinalizeLast sets the result text on a user's most recent record,
	// a no-op for users with no history
	FinalizeLast(userID string, result string)
}

// StateStore defines the interface for the betting-open flag document
type StateStore interface {
	// IsOpen reports whether betting is currently open
	IsOpen() bool

	// SetOpen sets the betting-open flag
	SetOpen(open bool)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// BalanceService defines the interface for coin ledger operations.
//
// GetBalance, Adjust and ValidateWager do not take the shared betting mutex;
// compound operations that call them (Place, Resolve, Grant, Donate) hold it
// for the whole read-modify-write.
type BalanceService interface {
	// GetBalance returns a user's balance, initializing unseen users to
	// InitialCoins as a persisted side effect
	GetBalance(userID string) int64

	// Adjust applies a delta to a user's balance, clamping the result to
	// zero, and returns the new balance. An over-debit never fails; the
	// clamp is a deliberate, documented policy.
	Adjust(userID string, delta int64, reason string) int64

	// ValidateWager reports whether amount is positive and covered by the
	// user's balance
	ValidateWager(userID string, amount int64) bool

	// RankedBalances returns all balances sorted descending
	RankedBalances() []models.RankedBalance

	// Grant adds coins to a user's balance (privileged, checked by caller)
	Grant(userID string, amount int64) (int64, error)

	// Donate transfers coins between users and returns the donor's new
	// balance
	Donate(fromID, toID string, amount int64) (int64, error)
}

// MatchService defines the interface for the match lifecycle
type MatchService interface {
	// Start opens a new betting round, clearing any prior bets
	Start(wrestlers []string) (*models.Match, error)

	// Close stops accepting bets for the current round
	Close() error

	// CurrentState returns a read-only snapshot for display commands
	CurrentState() *models.MatchState
}

// BetService defines the interface for placing bets
type BetService interface {
	// Place validates and records a bet on the wrestler at the 1-based
	// choice position, debiting the ledger and appending a pending history
	// record. A second Place by the same user overwrites the stored bet
	// without refunding the first stake.
	Place(userID string, choice int, amount int64) (*models.Bet, error)
}

// HistoryService defines the interface for per-user bet history
type HistoryService interface {
	// Append pushes a record onto a user's history
	Append(userID string, rec models.HistoryRecord)

	// Recent returns up to limit records, most recent first
	Recent(userID string, limit int) []models.HistoryRecord

	// Finalize replaces the pending result on a user's latest record
	Finalize(userID string, result string)
}

// PayoutService defines the interface for resolving a match
type PayoutService interface {
	// Resolve pays out every outstanding bet against the declared winner
	// and resets the match, bets and betting flag for the next round
	Resolve(winner string) (*models.PayoutResult, error)
}
