package service

import "errors"

// Domain errors surfaced to users as messages, never fatal to the process.
// Call sites match with errors.Is.
var (
	// ErrInvalidMatch means a round was started with too few or too many wrestlers
	ErrInvalidMatch = errors.New("must specify at least 2 wrestlers")

	// ErrNoActiveBetting means close was called with no open round
	ErrNoActiveBetting = errors.New("there is no active bet to close")

	// ErrBettingClosed means a bet was placed while betting is not open
	ErrBettingClosed = errors.New("there is no active betting right now")

	// ErrNoActiveMatch means a bet was placed with no match to bet on
	ErrNoActiveMatch = errors.New("no active match found")

	// ErrInvalidChoice means the chosen wrestler number is out of range
	ErrInvalidChoice = errors.New("invalid wrestler choice")

	// ErrInvalidWager means the amount is non-positive or exceeds the balance
	ErrInvalidWager = errors.New("invalid bet amount")

	// ErrInvalidWinner means the declared winner is not part of the match
	ErrInvalidWinner = errors.New("invalid winner")
)
