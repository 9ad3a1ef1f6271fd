package service

import (
	"fmt"
	"sort"
	"sync"

	"ringside/events"
	"ringside/models"
)

type balanceService struct {
	mu        *sync.Mutex
	balances  BalanceStore
	publisher EventPublisher
}

// NewBalanceService creates a new balance service. The mutex serializes the
// compound read-modify-write operations (Grant, Donate) against the other
// betting flows that share it.
func NewBalanceService(mu *sync.Mutex, balances BalanceStore, publisher EventPublisher) BalanceService {
	return &balanceService{
		mu:        mu,
		balances:  balances,
		publisher: publisher,
	}
}

// GetBalance returns a user's balance, initializing unseen users to
// InitialCoins. The initialization is persisted once; calling twice yields
// the same value.
func (s *balanceService) GetBalance(userID string) int64 {
	if balance, ok := s.balances.Get(userID); ok {
		return balance
	}
	s.balances.Set(userID, InitialCoins)
	s.publisher.Publish(events.BalanceChangeEvent{
		UserID:       userID,
		OldBalance:   0,
		NewBalance:   InitialCoins,
		ChangeAmount: InitialCoins,
		Reason:       events.ReasonInitial,
	})
	return InitialCoins
}

// Adjust applies a delta to a user's balance and clamps the result to zero.
// ValidateWager is supposed to stop an over-debit upstream; when it doesn't,
// the clamp silently absorbs the difference rather than failing.
func (s *balanceService) Adjust(userID string, delta int64, reason string) int64 {
	before := s.GetBalance(userID)
	after := before + delta
	if after < 0 {
		after = 0
	}
	s.balances.Set(userID, after)
	s.publisher.Publish(events.BalanceChangeEvent{
		UserID:       userID,
		OldBalance:   before,
		NewBalance:   after,
		ChangeAmount: after - before,
		Reason:       reason,
	})
	return after
}

// ValidateWager reports whether amount is positive and covered by the user's
// balance. Looking up the balance initializes unseen users.
func (s *balanceService) ValidateWager(userID string, amount int64) bool {
	return amount > 0 && amount <= s.GetBalance(userID)
}

// RankedBalances returns all known balances sorted descending, ties broken by
// user ID for a stable order.
func (s *balanceService) RankedBalances() []models.RankedBalance {
	all := s.balances.All()
	ranked := make([]models.RankedBalance, 0, len(all))
	for userID, balance := range all {
		ranked = append(ranked, models.RankedBalance{UserID: userID, Balance: balance})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Balance != ranked[j].Balance {
			return ranked[i].Balance > ranked[j].Balance
		}
		return ranked[i].UserID < ranked[j].UserID
	})
	return ranked
}

// Grant adds coins to a user's balance. The privilege check belongs to the
// caller; the service only validates the amount.
func (s *balanceService) Grant(userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: grant amount must be positive", ErrInvalidWager)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.Adjust(userID, amount, events.ReasonGrant), nil
}

// Donate transfers coins from one user to another and returns the donor's new
// balance.
func (s *balanceService) Donate(fromID, toID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: donation amount must be positive", ErrInvalidWager)
	}
	if fromID == toID {
		return 0, fmt.Errorf("%w: cannot donate to yourself", ErrInvalidWager)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	donorBalance := s.GetBalance(fromID)
	if amount > donorBalance {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrInvalidWager, donorBalance, amount)
	}

	newBalance := s.Adjust(fromID, -amount, events.ReasonDonateOut)
	s.Adjust(toID, amount, events.ReasonDonateIn)

	return newBalance, nil
}
