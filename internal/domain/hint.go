package domain

// Hint reveals an unfound quartile word to the player, at a time cost.
type Hint struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	PenaltyMS  int64  `json:"penaltyMs"`
}
