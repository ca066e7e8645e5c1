package hint

// Time penalties in milliseconds for the nth hint (1-indexed). The
// schedule doubles each step and caps at the final entry.
var penalties = []int64{30_000, 60_000, 120_000, 240_000, 480_000}

// Penalty returns the millisecond cost of the nth hint. Numbers beyond
// the schedule pay the capped final penalty.
func Penalty(hintNumber int) int64 {
	if hintNumber >= 1 && hintNumber <= len(penalties) {
		return penalties[hintNumber-1]
	}
	return penalties[len(penalties)-1]
}
