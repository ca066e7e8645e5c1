package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/quartiles/internal/domain"
)

func samplePuzzle(id, date string, points int) *domain.Puzzle {
	return &domain.Puzzle{
		ID:            id,
		Seed:          42,
		Date:          date,
		Tiles:         []domain.Tile{{ID: 0, Letters: "TE"}, {ID: 1, Letters: "ST"}},
		QuartileWords: []string{"TESTWORD"},
		ValidWords: map[string]domain.Word{
			"TEST": {Text: "TEST", TileIDs: []int{0, 1}, Points: 4},
		},
		TotalPoints: points,
		CreatedAt:   1700000000,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := NewFS(t.TempDir())
	ctx := context.Background()

	p := samplePuzzle("p-1", "2026-08-23", 140)
	require.NoError(t, st.Save(ctx, p))

	got, err := st.Load(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, p.Tiles, got.Tiles)
	assert.Equal(t, p.QuartileWords, got.QuartileWords)
	assert.Equal(t, p.ValidWords, got.ValidWords)
	assert.Equal(t, p.TotalPoints, got.TotalPoints)
	assert.Equal(t, p.Date, got.Date)
}

func TestSaveRejectsMissingID(t *testing.T) {
	st := NewFS(t.TempDir())
	err := st.Save(context.Background(), &domain.Puzzle{})
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	st := NewFS(t.TempDir())
	_, err := st.Load(context.Background(), "nope")
	assert.Error(t, err)
}

func TestListReturnsMetasInCreationOrder(t *testing.T) {
	st := NewFS(t.TempDir())
	ctx := context.Background()

	a := samplePuzzle("a", "2026-08-21", 150)
	a.CreatedAt = 2
	b := samplePuzzle("b", "2026-08-22", 140)
	b.CreatedAt = 1
	require.NoError(t, st.Save(ctx, a))
	require.NoError(t, st.Save(ctx, b))

	metas, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, "b", metas[0].ID)
	assert.Equal(t, "a", metas[1].ID)
	assert.Equal(t, 150, metas[1].TotalPoints)
}

func TestListEmptyDir(t *testing.T) {
	st := NewFS(t.TempDir() + "/missing")
	metas, err := st.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}
