package hint

import (
	"context"
	"sort"

	"svw.info/quartiles/internal/domain"
	"svw.info/quartiles/internal/ports"
)

// NoDefinition is shown when the lexicon has no entry for a hint word.
const NoDefinition = "No definition available"

// QuartileHinter reveals unfound quartile words with their definitions.
type QuartileHinter struct {
	Lexicon ports.Lexicon
}

func NewQuartileHinter(lex ports.Lexicon) *QuartileHinter {
	return &QuartileHinter{Lexicon: lex}
}

// Hint picks the lexicographically smallest unfound quartile, so the
// same state always yields the same hint. ok is false once every
// quartile has been found.
func (h *QuartileHinter) Hint(ctx context.Context, p *domain.Puzzle, found map[string]struct{}, hintNumber int) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}
	var unfound []string
	for _, q := range p.QuartileWords {
		if _, seen := found[q]; !seen {
			unfound = append(unfound, q)
		}
	}
	if len(unfound) == 0 {
		return domain.Hint{}, false, nil
	}
	sort.Strings(unfound)
	word := unfound[0]
	def, ok := h.Lexicon.Definition(word)
	if !ok {
		def = NoDefinition
	}
	return domain.Hint{Word: word, Definition: def, PenaltyMS: Penalty(hintNumber)}, true, nil
}
