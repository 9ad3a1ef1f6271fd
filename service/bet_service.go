package service

import (
	"fmt"
	"sync"

	"ringside/events"
	"ringside/models"
)

type betService struct {
	mu        *sync.Mutex
	state     StateStore
	matches   MatchStore
	bets      BetStore
	balances  BalanceService
	history   HistoryService
	publisher EventPublisher
}

// NewBetService creates a new bet service
func NewBetService(mu *sync.Mutex, state StateStore, matches MatchStore, bets BetStore, balances BalanceService, history HistoryService, publisher EventPublisher) BetService {
	return &betService{
		mu:        mu,
		state:     state,
		matches:   matches,
		bets:      bets,
		balances:  balances,
		history:   history,
		publisher: publisher,
	}
}

// Place validates and records a bet for the open match. On any validation
// failure nothing is stored and no balance moves. On success the stake is
// debited immediately and a pending history record is appended; a repeat
// Place by the same user overwrites the stored bet without refunding the
// first stake.
func (s *betService) Place(userID string, choice int, amount int64) (*models.Bet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsOpen() {
		return nil, ErrBettingClosed
	}

	match := s.matches.Current()
	if match == nil {
		return nil, ErrNoActiveMatch
	}

	wrestler, ok := match.WrestlerAt(choice)
	if !ok {
		return nil, fmt.Errorf("%w: choose between 1 and %d", ErrInvalidChoice, len(match.Wrestlers))
	}

	if !s.balances.ValidateWager(userID, amount) {
		return nil, fmt.Errorf("%w: you currently have %d coins", ErrInvalidWager, s.balances.GetBalance(userID))
	}

	bet := models.Bet{Wrestler: wrestler, Amount: amount}
	s.bets.Put(userID, bet)
	s.balances.Adjust(userID, -amount, events.ReasonBet)
	s.history.Append(userID, models.HistoryRecord{
		MatchID: match.ID,
		Match:   match.Description(),
		Bet:     bet,
		Result:  models.HistoryResultPending,
	})

	s.publisher.Publish(events.BetPlacedEvent{
		UserID:   userID,
		Wrestler: wrestler,
		Amount:   amount,
	})

	return &bet, nil
}
