package kakuro

// TileKind identifies which of the grid's four cell shapes a Tile is.
type TileKind int

const (
	Empty TileKind = iota
	Blank
	Prefilled
	ClueTile
)

// Tile is one grid cell, translated from the original's tagged
// Tile::Empty / Tile::Unknown{Blank, Prefilled} / Tile::Total vocabulary
// into a single flat struct — Go has no sum types, and a struct with an
// unused-field-per-kind is the idiom the rest of this lineage reaches for
// over a tagged-interface hierarchy for data this small.
type Tile struct {
	Kind TileKind

	// Hint is set only when Kind == Prefilled: the cryptarithm letter this
	// cell must resolve to, 'A'..'J'.
	Hint byte

	// Horizontal and Vertical are set only when Kind == ClueTile: the
	// 1- or 2-letter string encoding that direction's sum, or "" if the
	// clue carries no constraint in that direction.
	Horizontal string
	Vertical   string
}

func (t Tile) isUnknown() bool { return t.Kind == Blank || t.Kind == Prefilled }
