// Package tiler splits candidate words into board tiles.
package tiler

import (
	"strings"

	"svw.info/quartiles/internal/domain"
)

// Decompose splits word into exactly 4 contiguous fragments of 2-4
// letters whose concatenation reproduces the word, skipping any fragment
// in forbidden. Returns ok=false when no such split exists — a normal
// outcome the generator answers by picking a different word.
//
// Deterministic: fragment lengths are tried in the fixed order 2, 3, 4,
// so the same word and forbidden set always yield the same split.
func Decompose(word string, forbidden map[string]struct{}) ([]string, bool) {
	up := strings.ToUpper(word)
	if len(up) < domain.MinQuartileLength || len(up) > domain.MaxQuartileLength {
		return nil, false
	}
	tiles := make([]string, 0, domain.TilesPerQuartile)
	if !backtrack(up, forbidden, &tiles) {
		return nil, false
	}
	return tiles, true
}

func backtrack(remaining string, forbidden map[string]struct{}, tiles *[]string) bool {
	if remaining == "" {
		return len(*tiles) == domain.TilesPerQuartile
	}
	if len(*tiles) >= domain.TilesPerQuartile {
		return false
	}
	left := domain.TilesPerQuartile - len(*tiles) - 1 // tiles still owed after this one
	for size := domain.MinTileLetters; size <= domain.MaxTileLetters; size++ {
		if size > len(remaining) {
			break
		}
		frag := remaining[:size]
		if _, bad := forbidden[frag]; bad {
			continue
		}
		// A repeat within the word would also put identical tiles on
		// the board.
		if contains(*tiles, frag) {
			continue
		}
		rest := len(remaining) - size
		// The leftover must still be splittable into the owed tiles.
		if rest > 0 && (rest < domain.MinTileLetters*left || rest > domain.MaxTileLetters*left) {
			continue
		}
		if rest == 0 && left != 0 {
			continue
		}
		*tiles = append(*tiles, frag)
		if backtrack(remaining[size:], forbidden, tiles) {
			return true
		}
		*tiles = (*tiles)[:len(*tiles)-1]
	}
	return false
}

func contains(frags []string, frag string) bool {
	for _, f := range frags {
		if f == frag {
			return true
		}
	}
	return false
}
