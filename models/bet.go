package models

// Bet represents one user's stake on a wrestler for the current match
type Bet struct {
	Wrestler string `json:"wrestler"`
	Amount   int64  `json:"amount"`
}

// BetOutcome represents the outcome of a single bet after resolution
type BetOutcome struct {
	UserID string
	Bet    Bet
	Won    bool
	Payout int64
}

// PayoutResult represents the full breakdown of a resolved match
type PayoutResult struct {
	Winner           string
	PayoutMultiplier int
	Outcomes         []BetOutcome
}
