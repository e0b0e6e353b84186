// Package game implements the sliding-tile merge puzzle: the board
// transition engine, the merge-burst particle simulation, and the session
// state machine that ties them together. It contains no terminal code; the
// platform layer drives it through core.InputFrame and core.Screen.
package game

// Tile is a single board cell. Value 0 means empty; occupied tiles always
// hold a power of two >= 2. Merged marks a tile that was produced by a
// merge during the current turn, so it cannot merge again before the flags
// are cleared at the next turn boundary.
type Tile struct {
	Value  int
	Merged bool
}

// Empty reports whether the cell holds no tile.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// Occupied reports whether the cell holds a tile.
func (t Tile) Occupied() bool {
	return t.Value != 0
}

// Equal compares tiles by value only; the merge flag is not part of identity.
func (t Tile) Equal(other Tile) bool {
	return t.Value == other.Value
}
