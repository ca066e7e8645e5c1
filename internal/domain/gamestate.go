package domain

import "sort"

// GameState is the in-memory bookkeeping for one player's session over a
// puzzle. Persistence of sessions belongs to the host application.
type GameState struct {
	Puzzle       *Puzzle
	FoundWords   map[string]struct{}
	CurrentScore int
	HintsUsed    int
}

// NewGameState starts a fresh session over the given puzzle.
func NewGameState(p *Puzzle) *GameState {
	return &GameState{Puzzle: p, FoundWords: make(map[string]struct{})}
}

// Submit records a found word and returns the points awarded. Unknown or
// already-found words award zero.
func (g *GameState) Submit(text string) int {
	w, ok := g.Puzzle.ValidWords[text]
	if !ok {
		return 0
	}
	if _, seen := g.FoundWords[text]; seen {
		return 0
	}
	g.FoundWords[text] = struct{}{}
	g.CurrentScore += w.Points
	return w.Points
}

// IsSolved reports whether the session has reached the solve threshold.
func (g *GameState) IsSolved() bool { return g.CurrentScore >= SolveThreshold }

// UnfoundQuartiles returns the quartile words not yet found, sorted
// lexicographically for reproducible hint selection.
func (g *GameState) UnfoundQuartiles() []string {
	var out []string
	for _, q := range g.Puzzle.QuartileWords {
		if _, seen := g.FoundWords[q]; !seen {
			out = append(out, q)
		}
	}
	sort.Strings(out)
	return out
}
