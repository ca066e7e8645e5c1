package validator

import (
	"context"
	"fmt"

	"svw.info/quartiles/internal/domain"
	"svw.info/quartiles/internal/ports"
)

// Structural re-checks the invariants of an emitted or loaded puzzle.
type Structural struct {
	MinTotalPoints int
}

func New(minTotalPoints int) *Structural { return &Structural{MinTotalPoints: minTotalPoints} }

var _ ports.Validator = (*Structural)(nil)

func (v *Structural) Validate(ctx context.Context, p *domain.Puzzle) (bool, []string, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	var conf []string

	if len(p.Tiles) != domain.BoardTiles {
		conf = append(conf, fmt.Sprintf("expected %d tiles, got %d", domain.BoardTiles, len(p.Tiles)))
	}
	seenID := make(map[int]struct{}, len(p.Tiles))
	seenLetters := make(map[string]struct{}, len(p.Tiles))
	for _, t := range p.Tiles {
		if _, err := domain.NewTile(t.ID, t.Letters); err != nil {
			conf = append(conf, fmt.Sprintf("tile %d: %v", t.ID, err))
		}
		if _, dup := seenID[t.ID]; dup {
			conf = append(conf, fmt.Sprintf("duplicate tile id %d", t.ID))
		}
		seenID[t.ID] = struct{}{}
		if _, dup := seenLetters[t.Letters]; dup {
			conf = append(conf, fmt.Sprintf("duplicate tile letters %q", t.Letters))
		}
		seenLetters[t.Letters] = struct{}{}
	}

	if len(p.QuartileWords) != domain.QuartileCount {
		conf = append(conf, fmt.Sprintf("expected %d quartile words, got %d", domain.QuartileCount, len(p.QuartileWords)))
	}
	for _, q := range p.QuartileWords {
		w, ok := p.ValidWords[q]
		if !ok {
			conf = append(conf, fmt.Sprintf("quartile %q missing from valid words", q))
			continue
		}
		if w.TileCount() != domain.TilesPerQuartile {
			conf = append(conf, fmt.Sprintf("quartile %q attributed to %d tiles", q, w.TileCount()))
		}
	}
	// No accidental 4-tile words beyond the declared quartiles.
	for text, w := range p.ValidWords {
		if w.TileCount() == domain.TilesPerQuartile && !p.IsQuartile(text) {
			conf = append(conf, fmt.Sprintf("undeclared 4-tile word %q", text))
		}
	}

	total := 0
	for _, w := range p.ValidWords {
		total += w.Points
	}
	if total != p.TotalPoints {
		conf = append(conf, fmt.Sprintf("recorded total %d, recomputed %d", p.TotalPoints, total))
	}
	if v.MinTotalPoints > 0 && p.TotalPoints < v.MinTotalPoints {
		conf = append(conf, fmt.Sprintf("total points %d below threshold %d", p.TotalPoints, v.MinTotalPoints))
	}

	return len(conf) == 0, conf, nil
}
