package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"ringside/events"
	"ringside/models"
)

// MaxWrestlers caps how many wrestlers a single match may have, matching the
// eight choice slots the bet and result commands expose.
const MaxWrestlers = 8

type matchService struct {
	mu        *sync.Mutex
	matches   MatchStore
	bets      BetStore
	state     StateStore
	publisher EventPublisher
}

// NewMatchService creates a new match lifecycle service
func NewMatchService(mu *sync.Mutex, matches MatchStore, bets BetStore, state StateStore, publisher EventPublisher) MatchService {
	return &matchService{
		mu:        mu,
		matches:   matches,
		bets:      bets,
		state:     state,
		publisher: publisher,
	}
}

// Start opens a new betting round. Any bets from a prior unresolved round are
// discarded without refund.
func (s *matchService) Start(wrestlers []string) (*models.Match, error) {
	if len(wrestlers) < 2 {
		return nil, ErrInvalidMatch
	}
	if len(wrestlers) > MaxWrestlers {
		return nil, fmt.Errorf("%w: at most %d wrestlers", ErrInvalidMatch, MaxWrestlers)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	match := &models.Match{
		ID:        uuid.NewString(),
		Wrestlers: append([]string(nil), wrestlers...),
	}
	s.matches.Put(match)
	s.bets.Clear()
	s.state.SetOpen(true)

	s.publisher.Publish(events.MatchStartedEvent{
		MatchID:   match.ID,
		Wrestlers: match.Wrestlers,
	})

	return match, nil
}

// Close stops accepting bets for the current round. The match stays resolvable.
func (s *matchService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsOpen() {
		return ErrNoActiveBetting
	}
	s.state.SetOpen(false)
	return nil
}

// CurrentState returns a read-only snapshot for display commands
func (s *matchService) CurrentState() *models.MatchState {
	return &models.MatchState{
		IsBettingOpen: s.state.IsOpen(),
		Match:         s.matches.Current(),
		Bets:          s.bets.All(),
	}
}
