package models

// RankedBalance is one row of the coin ranking, sorted descending by balance
type RankedBalance struct {
	UserID  string `json:"userId"`
	Balance int64  `json:"balance"`
}
