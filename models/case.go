package models

// Case represents a landmark court decision
type Case struct {
	Title      string `json:"title"`
	Court      string `json:"court"`
	Summary    string `json:"summary"`
	Citation   string `json:"citation"`
	KeyHolding string `json:"key_holding"`
}
