package solver

// Points by tile count: longer assemblies pay disproportionately more,
// with the quartile bonus at 4.
var points = map[int]int{1: 2, 2: 4, 3: 7, 4: 10}

// ScoreWord returns the points for a word built from tileCount tiles.
// Counts outside 1-4 score zero.
func ScoreWord(tileCount int) int { return points[tileCount] }
