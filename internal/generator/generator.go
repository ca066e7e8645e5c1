// Package generator assembles daily quartile puzzles by constraint
// search: pick five candidate words, tile them, then keep the board only
// if the solver rediscovers exactly those five quartiles with enough
// total points on offer.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/quartiles/internal/domain"
	"svw.info/quartiles/internal/ports"
	"svw.info/quartiles/internal/solver"
	"svw.info/quartiles/internal/tiler"
)

// Config tunes the generation search.
type Config struct {
	MaxAttempts    int // candidate selections tried before giving up
	MinTotalPoints int // minimum summed points across all valid words
	MinWordLength  int
	MaxWordLength  int
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    1000,
		MinTotalPoints: 130,
		MinWordLength:  domain.MinQuartileLength,
		MaxWordLength:  domain.MaxQuartileLength,
	}
}

var (
	// ErrNoCandidates means the lexicon holds fewer than five eligible
	// quartile words. Permanent for this lexicon and exclusion set.
	ErrNoCandidates = errors.New("too few eligible quartile candidates")

	// ErrExhausted means the attempt budget was spent without producing
	// a valid puzzle.
	ErrExhausted = errors.New("puzzle generation exhausted attempt budget")
)

// QuartileGenerator implements ports.Generator over a lexicon and solver.
type QuartileGenerator struct {
	Lexicon ports.Lexicon
	Solver  ports.Solver
	Config  Config
}

// New wires a generator with the given collaborators.
func New(lex ports.Lexicon, s ports.Solver, cfg Config) *QuartileGenerator {
	return &QuartileGenerator{Lexicon: lex, Solver: s, Config: cfg}
}

// Generate produces one valid puzzle or fails after Config.MaxAttempts.
// The same seed, lexicon, and exclusion set reproduce the same puzzle.
// Only ErrNoCandidates, ErrExhausted, solver errors, and context
// cancellation cross this boundary; every structural rejection inside an
// attempt is retry control flow.
func (g *QuartileGenerator) Generate(ctx context.Context, seed int64, excluded map[string]struct{}) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	candidates := g.candidates(excluded)
	if len(candidates) < domain.QuartileCount {
		return nil, ports.Stats{Duration: time.Since(start)},
			fmt.Errorf("%w: have %d, need %d", ErrNoCandidates, len(candidates), domain.QuartileCount)
	}

	rng := rand.New(rand.NewSource(seed))
	nodes := 0
	for attempt := 1; attempt <= g.Config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Attempts: attempt, Duration: time.Since(start)}, err
		}

		selected := sample(rng, candidates, domain.QuartileCount)

		tiles, ok := decomposeAll(selected)
		if !ok {
			continue
		}

		words, st, err := g.Solver.FindWords(ctx, tiles)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Attempts: attempt, Duration: time.Since(start)}, err
		}

		// The 4-tile words on the board must be exactly the five we hid.
		if !quartilesMatch(words, selected) {
			continue
		}

		total := solver.TotalPoints(words)
		if total < g.Config.MinTotalPoints {
			continue
		}

		p := &domain.Puzzle{
			Seed:          seed,
			Tiles:         tiles,
			QuartileWords: selected,
			ValidWords:    words,
			TotalPoints:   total,
			CreatedAt:     time.Now().UnixNano(),
		}
		return p, ports.Stats{Nodes: nodes, Attempts: attempt, Duration: time.Since(start)}, nil
	}

	return nil, ports.Stats{Nodes: nodes, Attempts: g.Config.MaxAttempts, Duration: time.Since(start)},
		fmt.Errorf("%w (%d attempts)", ErrExhausted, g.Config.MaxAttempts)
}

// candidates returns every lexicon word eligible to hide as a quartile:
// in the configured length band, carrying a definition (hint quality),
// and not in the caller's cooldown set. Lexicographic order keeps seeded
// runs reproducible.
func (g *QuartileGenerator) candidates(excluded map[string]struct{}) []string {
	var out []string
	for _, word := range g.Lexicon.WordsWithPrefix("") {
		if len(word) < g.Config.MinWordLength || len(word) > g.Config.MaxWordLength {
			continue
		}
		if _, skip := excluded[word]; skip {
			continue
		}
		if _, ok := g.Lexicon.Definition(word); !ok {
			continue
		}
		out = append(out, word)
	}
	return out
}

func sample(rng *rand.Rand, pool []string, n int) []string {
	idx := rng.Perm(len(pool))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

// decomposeAll tiles the five selected words with sequential IDs 0-19,
// feeding each word's fragments into the forbidden set so no two tiles
// on the board carry the same letters.
func decomposeAll(selected []string) ([]domain.Tile, bool) {
	tiles := make([]domain.Tile, 0, domain.BoardTiles)
	forbidden := make(map[string]struct{}, domain.BoardTiles)
	for _, word := range selected {
		frags, ok := tiler.Decompose(word, forbidden)
		if !ok {
			return nil, false
		}
		for _, frag := range frags {
			t, err := domain.NewTile(len(tiles), frag)
			if err != nil {
				return nil, false
			}
			tiles = append(tiles, t)
			forbidden[frag] = struct{}{}
		}
	}
	if len(tiles) != domain.BoardTiles {
		return nil, false
	}
	return tiles, true
}

// quartilesMatch verifies set equality between the solver's 4-tile
// findings and the selected words. A selected word the solver attributes
// to fewer than 4 tiles also fails here: such a board is ambiguous and
// gets rejected.
func quartilesMatch(words map[string]domain.Word, selected []string) bool {
	sel := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		sel[s] = struct{}{}
	}
	n := 0
	for text, w := range words {
		if w.TileCount() != domain.TilesPerQuartile {
			continue
		}
		if _, ok := sel[text]; !ok {
			return false
		}
		n++
	}
	return n == len(sel)
}
