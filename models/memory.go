package models

// Memory is one remembered AI interaction for a user. Only the most recent
// interactions are kept per user.
type Memory struct {
	Timestamp int64  `json:"timestamp"`
	Content   string `json:"content"`
}
