package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/quartiles/internal/dictionary"
	"svw.info/quartiles/internal/domain"
	"svw.info/quartiles/internal/solver"
	"svw.info/quartiles/internal/validator"
)

// fixtureLexicon holds five disjoint 8-letter quartile candidates plus
// shorter board words that lift the total score.
func fixtureLexicon() *dictionary.Trie {
	d := dictionary.New()
	for _, q := range []string{"ABCDEFGH", "IJKLMNOP", "QRSTUVWX", "AZBYCXDW", "EVFUGTHS"} {
		d.Add(q, "fixture definition for "+q)
	}
	// Two-tile words over the same fragments (4 points each).
	for _, w := range []string{"ABCD", "EFGH", "IJKL", "MNOP", "QRST", "UVWX", "AZBY", "CXDW", "EVFU", "GTHS"} {
		d.Add(w, "")
	}
	// A three-tile word (7 points).
	d.Add("ABCDEF", "")
	return d
}

func newGenerator(d *dictionary.Trie, cfg Config) *QuartileGenerator {
	return New(d, solver.NewWordFinder(d), cfg)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MinTotalPoints = 60 // fixture board carries ~97 points
	cfg.MaxAttempts = 50
	return cfg
}

func TestGenerateProducesValidPuzzle(t *testing.T) {
	g := newGenerator(fixtureLexicon(), testConfig())

	for _, seed := range []int64{1, 2, 3, 42, 12345} {
		p, st, err := g.Generate(context.Background(), seed, nil)
		require.NoError(t, err, "seed %d", seed)
		require.NotNil(t, p)
		assert.GreaterOrEqual(t, st.Attempts, 1)

		assert.Len(t, p.Tiles, domain.BoardTiles)
		assert.Len(t, p.QuartileWords, domain.QuartileCount)

		seenLetters := make(map[string]struct{})
		for i, tile := range p.Tiles {
			assert.Equal(t, i, tile.ID, "sequential tile IDs")
			assert.GreaterOrEqual(t, len(tile.Letters), domain.MinTileLetters)
			assert.LessOrEqual(t, len(tile.Letters), domain.MaxTileLetters)
			_, dup := seenLetters[tile.Letters]
			assert.False(t, dup, "duplicate tile letters %q", tile.Letters)
			seenLetters[tile.Letters] = struct{}{}
		}

		for _, q := range p.QuartileWords {
			w, ok := p.ValidWords[q]
			require.True(t, ok, "quartile %q must be findable", q)
			assert.Equal(t, domain.TilesPerQuartile, w.TileCount())
		}
		for text, w := range p.ValidWords {
			if w.TileCount() == domain.TilesPerQuartile {
				assert.True(t, p.IsQuartile(text), "accidental 4-tile word %q", text)
			}
		}
		assert.GreaterOrEqual(t, p.TotalPoints, testConfig().MinTotalPoints)

		ok, violations, err := validator.New(testConfig().MinTotalPoints).Validate(context.Background(), p)
		require.NoError(t, err)
		assert.True(t, ok, "validator violations: %v", violations)
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	g := newGenerator(fixtureLexicon(), testConfig())

	a, _, err := g.Generate(context.Background(), 7, nil)
	require.NoError(t, err)
	b, _, err := g.Generate(context.Background(), 7, nil)
	require.NoError(t, err)

	assert.Equal(t, a.QuartileWords, b.QuartileWords)
	assert.Equal(t, a.Tiles, b.Tiles)
	assert.Equal(t, a.TotalPoints, b.TotalPoints)
}

func TestGenerateTooFewCandidates(t *testing.T) {
	g := newGenerator(fixtureLexicon(), testConfig())

	// Cooling down one of the five eligible words leaves only four.
	excluded := map[string]struct{}{"ABCDEFGH": {}}
	_, _, err := g.Generate(context.Background(), 1, excluded)
	assert.ErrorIs(t, err, ErrNoCandidates)

	empty := newGenerator(dictionary.New(), testConfig())
	_, _, err = empty.Generate(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestGenerateExhaustsOnTileCollisions(t *testing.T) {
	// Every candidate needs the AA tile, so no two of them can share a
	// board; each attempt fails decomposition.
	d := dictionary.New()
	for _, q := range []string{"AABBCCDD", "AAEEFFGG", "AAHHIIJJ", "AAKKLLMM", "AANNOOPP"} {
		d.Add(q, "fixture definition")
	}
	cfg := testConfig()
	cfg.MaxAttempts = 10

	_, st, err := newGenerator(d, cfg).Generate(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 10, st.Attempts)
}

func TestGenerateExhaustsBelowScoreThreshold(t *testing.T) {
	// Only the five quartiles score (5 x 10 = 50), below the default
	// 130-point richness bar.
	d := dictionary.New()
	for _, q := range []string{"ABCDEFGH", "IJKLMNOP", "QRSTUVWX", "AZBYCXDW", "EVFUGTHS"} {
		d.Add(q, "fixture definition")
	}
	cfg := DefaultConfig()
	cfg.MaxAttempts = 10

	_, _, err := newGenerator(d, cfg).Generate(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestGenerateRejectsAccidentalQuartile(t *testing.T) {
	// ABCDIJKL is latent across two candidates' tiles but is not a
	// selected quartile, so every board that hides it must be rejected.
	d := fixtureLexicon()
	d.Add("ABCDIJKL", "")
	cfg := testConfig()
	cfg.MaxAttempts = 20

	_, _, err := newGenerator(d, cfg).Generate(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestGenerateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := newGenerator(fixtureLexicon(), testConfig()).Generate(ctx, 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
