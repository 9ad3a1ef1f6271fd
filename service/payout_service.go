package service

import (
	"sort"
	"sync"

	"ringside/events"
	"ringside/models"
)

type payoutService struct {
	mu        *sync.Mutex
	matches   MatchStore
	bets      BetStore
	state     StateStore
	balances  BalanceService
	history   HistoryService
	publisher EventPublisher
}

// NewPayoutService creates a new payout service
func NewPayoutService(mu *sync.Mutex, matches MatchStore, bets BetStore, state StateStore, balances BalanceService, history HistoryService, publisher EventPublisher) PayoutService {
	return &payoutService{
		mu:        mu,
		matches:   matches,
		bets:      bets,
		state:     state,
		balances:  balances,
		history:   history,
		publisher: publisher,
	}
}

// Resolve pays out every outstanding bet against the declared winner. The
// payout multiplier is the number of wrestlers in the match, a flat pot-style
// multiplier rather than stake-weighted odds. Resolving does not require
// betting to have been closed first. Afterwards the bets, match and betting
// flag are all reset for the next round.
func (s *payoutService) Resolve(winner string) (*models.PayoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match := s.matches.Current()
	if match == nil || !match.HasWrestler(winner) {
		return nil, ErrInvalidWinner
	}

	multiplier := len(match.Wrestlers)
	allBets := s.bets.All()

	// iterate in a stable order so reporting is deterministic
	userIDs := make([]string, 0, len(allBets))
	for userID := range allBets {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)

	outcomes := make([]models.BetOutcome, 0, len(allBets))
	for _, userID := range userIDs {
		bet := allBets[userID]
		outcome := models.BetOutcome{UserID: userID, Bet: bet}
		if bet.Wrestler == winner {
			outcome.Won = true
			outcome.Payout = bet.Amount * int64(multiplier)
			s.balances.Adjust(userID, outcome.Payout, events.ReasonPayout)
			s.history.Finalize(userID, models.WonResult(outcome.Payout))
		} else {
			// the stake was debited at placement time, nothing to credit
			s.history.Finalize(userID, models.LostResult(bet.Amount))
		}
		outcomes = append(outcomes, outcome)
	}

	s.bets.Clear()
	s.matches.Clear()
	s.state.SetOpen(false)

	s.publisher.Publish(events.MatchResolvedEvent{
		MatchID:          match.ID,
		Winner:           winner,
		PayoutMultiplier: multiplier,
		BetCount:         len(outcomes),
	})

	return &models.PayoutResult{
		Winner:           winner,
		PayoutMultiplier: multiplier,
		Outcomes:         outcomes,
	}, nil
}
