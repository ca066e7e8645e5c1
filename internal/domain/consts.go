package domain

import (
	"fmt"
	"strings"
)

// Board geometry. Every puzzle carries 20 tiles: 5 quartile words of 4
// tiles each, every tile 2-4 letters.
const (
	BoardTiles       = 20
	QuartileCount    = 5
	TilesPerQuartile = 4
	MinTileLetters   = 2
	MaxTileLetters   = 4
)

// Quartile candidate words must fit a 4-way split into 2-4 letter tiles.
const (
	MinQuartileLength = TilesPerQuartile * MinTileLetters // 8
	MaxQuartileLength = TilesPerQuartile * MaxTileLetters // 16
)

// SolveThreshold is the score at which a player's session counts as
// solved. Distinct from the generator's richness threshold.
const SolveThreshold = 100

// NewTile validates and normalizes a tile fragment.
func NewTile(id int, letters string) (Tile, error) {
	up := strings.ToUpper(letters)
	if n := len(up); n < MinTileLetters || n > MaxTileLetters {
		return Tile{}, fmt.Errorf("tile must have %d-%d letters, got %d", MinTileLetters, MaxTileLetters, n)
	}
	for _, r := range up {
		if r < 'A' || r > 'Z' {
			return Tile{}, fmt.Errorf("tile letters must be alphabetic, got %q", letters)
		}
	}
	return Tile{ID: id, Letters: up}, nil
}
