package ports

import (
	"context"
	"time"

	"svw.info/quartiles/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int // candidate permutations or search nodes visited
	Attempts int // generation attempts consumed
	Duration time.Duration
}

// Lexicon is the read-only dictionary view the engine works against.
// Implementations must be immutable after construction so a single
// instance can be shared across concurrent solver and generator runs.
type Lexicon interface {
	Contains(word string) bool
	ContainsPrefix(prefix string) bool
	Definition(word string) (string, bool)
	Len() int
	WordsWithPrefix(prefix string) []string
}

// Solver enumerates every dictionary word latent in a tile set, keyed by
// text with the canonical (minimal tile count) attribution.
type Solver interface {
	FindWords(ctx context.Context, tiles []domain.Tile) (map[string]domain.Word, Stats, error)
}

// Generator produces a valid puzzle or fails after a bounded number of
// attempts. excluded holds quartile words barred from reuse (cooldown).
type Generator interface {
	Generate(ctx context.Context, seed int64, excluded map[string]struct{}) (*domain.Puzzle, Stats, error)
}

// Hinter picks an unfound quartile to reveal. hintNumber is 1-indexed and
// drives the penalty schedule. ok is false when every quartile is found.
type Hinter interface {
	Hint(ctx context.Context, p *domain.Puzzle, found map[string]struct{}, hintNumber int) (domain.Hint, bool, error)
}

// Validator performs structural checks on an emitted or loaded puzzle.
type Validator interface {
	Validate(ctx context.Context, p *domain.Puzzle) (ok bool, violations []string, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
