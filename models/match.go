package models

// Match represents the currently open betting round
type Match struct {
	ID        string   `json:"id,omitempty"`
	Wrestlers []string `json:"wrestlers"`
}

// HasWrestler checks whether a wrestler is part of the match
func (m *Match) HasWrestler(name string) bool {
	for _, w := range m.Wrestlers {
		if w == name {
			return true
		}
	}
	return false
}

// WrestlerAt returns the wrestler at the given 1-based position
func (m *Match) WrestlerAt(choice int) (string, bool) {
	if choice < 1 || choice > len(m.Wrestlers) {
		return "", false
	}
	return m.Wrestlers[choice-1], true
}

// Description returns the display form of the match, e.g. "A vs B vs C"
func (m *Match) Description() string {
	desc := ""
	for i, w := range m.Wrestlers {
		if i > 0 {
			desc += " vs "
		}
		desc += w
	}
	return desc
}

// MatchState is a read-only snapshot of the current round for display
type MatchState struct {
	IsBettingOpen bool           `json:"isBettingOpen"`
	Match         *Match         `json:"match"`
	Bets          map[string]Bet `json:"bets"`
}
