package solver

import (
	"context"
	"time"

	"svw.info/quartiles/internal/domain"
	"svw.info/quartiles/internal/ports"
)

// WordFinder enumerates every dictionary word latent in a tile set.
type WordFinder struct {
	Lexicon ports.Lexicon
}

// NewWordFinder wires a finder over the given lexicon.
func NewWordFinder(lex ports.Lexicon) *WordFinder { return &WordFinder{Lexicon: lex} }

// FindWords explores ordered permutations of 1-4 distinct tiles by
// incremental extension: a permutation is only extended while its
// concatenated letters remain a valid dictionary prefix, so a dead
// prefix cuts the whole branch rather than one candidate.
//
// The result is keyed by word text. A text formable by several
// permutations keeps its minimal tile count (ties: first found in tile
// order), which is the canonical attribution used for scoring and
// quartile determination.
func (s *WordFinder) FindWords(ctx context.Context, tiles []domain.Tile) (map[string]domain.Word, ports.Stats, error) {
	start := time.Now()
	found := make(map[string]domain.Word)
	used := make([]bool, len(tiles))
	ids := make([]int, 0, domain.TilesPerQuartile)
	nodes := 0

	var extend func(prefix string) error
	extend = func(prefix string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := range tiles {
			if used[i] {
				continue
			}
			nodes++
			cand := prefix + tiles[i].Letters
			if !s.Lexicon.ContainsPrefix(cand) {
				continue
			}
			used[i] = true
			ids = append(ids, tiles[i].ID)
			if s.Lexicon.Contains(cand) {
				record(found, cand, ids)
			}
			if len(ids) < domain.TilesPerQuartile {
				if err := extend(cand); err != nil {
					return err
				}
			}
			ids = ids[:len(ids)-1]
			used[i] = false
		}
		return nil
	}

	if err := extend(""); err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return found, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func record(found map[string]domain.Word, text string, ids []int) {
	if prev, ok := found[text]; ok && prev.TileCount() <= len(ids) {
		return
	}
	cp := make([]int, len(ids))
	copy(cp, ids)
	found[text] = domain.Word{Text: text, TileIDs: cp, Points: ScoreWord(len(cp))}
}

// TotalPoints sums the points of every found word.
func TotalPoints(words map[string]domain.Word) int {
	total := 0
	for _, w := range words {
		total += w.Points
	}
	return total
}
