package domain

// Tile is a 2-4 letter fragment, the atomic selectable unit on the board.
// IDs are unique within a puzzle and stable for its lifetime.
type Tile struct {
	ID      int    `json:"id"`
	Letters string `json:"letters"`
}

// Word is a solver finding: a dictionary word together with the ordered
// tile IDs that form it. TileIDs holds the canonical (minimal tile count)
// interpretation when a text is formable in more than one way.
type Word struct {
	Text    string `json:"text"`
	TileIDs []int  `json:"tileIds"`
	Points  int    `json:"points"`
}

// TileCount returns the number of tiles forming this word.
func (w Word) TileCount() int { return len(w.TileIDs) }

// Puzzle is a complete generated board: exactly 20 tiles hiding exactly
// five quartile (4-tile) words.
type Puzzle struct {
	ID            string          `json:"id,omitempty"`
	Seed          int64           `json:"seed,omitempty"`
	Tiles         []Tile          `json:"tiles"`
	QuartileWords []string        `json:"quartileWords"`
	ValidWords    map[string]Word `json:"validWords"`
	TotalPoints   int             `json:"totalPoints"`
	CreatedAt     int64           `json:"createdAt,omitempty"`
	// Optional user metadata
	Name string `json:"name,omitempty"`
	Date string `json:"date,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Date        string `json:"date,omitempty"`
	TotalPoints int    `json:"totalPoints"`
	CreatedAt   int64  `json:"createdAt"`
}

// TileByID returns the tile with the given ID.
func (p *Puzzle) TileByID(id int) (Tile, bool) {
	for _, t := range p.Tiles {
		if t.ID == id {
			return t, true
		}
	}
	return Tile{}, false
}

// IsQuartile reports whether text is one of the puzzle's quartile words.
func (p *Puzzle) IsQuartile(text string) bool {
	for _, q := range p.QuartileWords {
		if q == text {
			return true
		}
	}
	return false
}
