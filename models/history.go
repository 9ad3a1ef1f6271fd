package models

import "fmt"

// Result strings for history records. Pending records are finalized in place
// when the match resolves.
const HistoryResultPending = "Pending"

// WonResult formats the terminal result text for a winning bet
func WonResult(payout int64) string {
	return fmt.Sprintf("Won %d coins", payout)
}

// LostResult formats the terminal result text for a losing bet
func LostResult(amount int64) string {
	return fmt.Sprintf("Lost %d coins", amount)
}

// HistoryRecord is a persisted record of one pending or resolved bet
type HistoryRecord struct {
	MatchID string `json:"matchId,omitempty"`
	Match   string `json:"match"`
	Bet     Bet    `json:"bet"`
	Result  string `json:"result"`
}

// IsPending reports whether the record has not been resolved yet
func (r *HistoryRecord) IsPending() bool {
	return r.Result == HistoryResultPending
}
