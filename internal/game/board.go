package game

import "math/rand"

// BoardSize is the board dimension.
const BoardSize = 4

// Board is a BoardSize x BoardSize grid of tiles, row-major, origin
// top-left. It is mutated in place during a slide and owned exclusively by
// the session.
type Board [BoardSize][BoardSize]Tile

// Direction is a slide direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// delta returns the per-step cell offset toward the direction's target edge.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Cell identifies a board position by column and row.
type Cell struct {
	X, Y int
}

// MergeEvent records one merge produced by a slide: the destination cell
// and the doubled value now occupying it.
type MergeEvent struct {
	Cell  Cell
	Value int
}

// slideOrder returns source cells in processing order for a slide: within
// each line, the cell nearest the target edge (excluding the edge cell
// itself) first, then outward. This ordering is what guarantees a chain of
// three equal tiles merges only the two nearest the edge.
func slideOrder(dir Direction) []Cell {
	cells := make([]Cell, 0, BoardSize*(BoardSize-1))
	switch dir {
	case DirRight:
		for y := 0; y < BoardSize; y++ {
			for x := BoardSize - 2; x >= 0; x-- {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	case DirLeft:
		for y := 0; y < BoardSize; y++ {
			for x := 1; x < BoardSize; x++ {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	case DirDown:
		for y := BoardSize - 2; y >= 0; y-- {
			for x := 0; x < BoardSize; x++ {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	case DirUp:
		for y := 1; y < BoardSize; y++ {
			for x := 0; x < BoardSize; x++ {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Slide moves every tile toward the direction's edge, merging equal
// neighbors at most once per tile per turn. It reports whether any tile
// came to rest in a new cell (merges count: the consumed tile rests in the
// destination), the score gained from merges, and one event per merge at
// its destination cell. Tiles that do not move are not written, so a slide
// that cannot move anything leaves the board bit-identical.
//
// Merge flags must be cleared at the turn boundary, not here: the flags
// are what stop a tile from chain-merging within a single slide.
func (b *Board) Slide(dir Direction) (moved bool, score int, merges []MergeEvent) {
	dx, dy := dir.delta()

	for _, src := range slideOrder(dir) {
		t := b[src.Y][src.X]
		if t.Empty() {
			continue
		}

		// Scan contiguous cells toward the edge until a blocker or the
		// edge itself stops the tile.
		x, y := src.X, src.Y
		merged := false
		for {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= BoardSize || ny < 0 || ny >= BoardSize {
				break
			}
			next := b[ny][nx]
			if next.Occupied() {
				if next.Equal(t) && !next.Merged && !t.Merged {
					v := t.Value * 2
					b[ny][nx] = Tile{Value: v, Merged: true}
					b[src.Y][src.X] = Tile{}
					score += v
					merges = append(merges, MergeEvent{Cell: Cell{X: nx, Y: ny}, Value: v})
					moved = true
					merged = true
				}
				break
			}
			x, y = nx, ny
		}

		if !merged && (x != src.X || y != src.Y) {
			b[y][x] = t
			b[src.Y][src.X] = Tile{}
			moved = true
		}
	}

	return moved, score, merges
}

// ClearMergedFlags resets every tile's merge flag. Called once at the start
// of each turn, and again after a successful move as a safety re-clear.
func (b *Board) ClearMergedFlags() {
	for y := range b {
		for x := range b[y] {
			b[y][x].Merged = false
		}
	}
}

// EmptyCells returns the coordinates of all empty cells.
func (b *Board) EmptyCells() []Cell {
	var cells []Cell
	for y := range b {
		for x := range b[y] {
			if b[y][x].Empty() {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if at least one cell is empty.
func (b *Board) HasEmptyCell() bool {
	for y := range b {
		for x := range b[y] {
			if b[y][x].Empty() {
				return true
			}
		}
	}
	return false
}

// Sum returns the total of all tile values.
func (b *Board) Sum() int {
	total := 0
	for y := range b {
		for x := range b[y] {
			total += b[y][x].Value
		}
	}
	return total
}

// MaxTile returns the highest tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for y := range b {
		for x := range b[y] {
			if b[y][x].Value > maxVal {
				maxVal = b[y][x].Value
			}
		}
	}
	return maxVal
}

// HasPossibleMerge returns true if any two adjacent tiles hold equal values.
func (b *Board) HasPossibleMerge() bool {
	for y := range b {
		for x := range b[y] {
			t := b[y][x]
			if t.Empty() {
				continue
			}
			if x < BoardSize-1 && b[y][x+1].Equal(t) {
				return true
			}
			if y < BoardSize-1 && b[y+1][x].Equal(t) {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any slide could change the board. Note that the
// session's terminal check deliberately uses HasEmptyCell instead: the game
// ends when a move fills the board, even if a merge would still be legal.
func (b *Board) CanMove() bool {
	return b.HasEmptyCell() || b.HasPossibleMerge()
}

// spawnValue draws a 2 or a 4.
func spawnValue(rng *rand.Rand, fourProb float64) int {
	if rng.Float64() < fourProb {
		return 4
	}
	return 2
}

// Spawn places a new tile at a uniformly random empty cell and returns its
// position and value. Must only be called when an empty cell exists; the
// session guards this with HasEmptyCell.
func (b *Board) Spawn(rng *rand.Rand, fourProb float64) (Cell, int) {
	empty := b.EmptyCells()
	cell := empty[rng.Intn(len(empty))]
	value := spawnValue(rng, fourProb)
	b[cell.Y][cell.X] = Tile{Value: value}
	return cell, value
}

// Seed clears the board and places between min and max starting tiles
// (inclusive, uniform) of value 2 or 4 at random empty cells.
func (b *Board) Seed(rng *rand.Rand, min, max int, fourProb float64) {
	*b = Board{}
	n := min
	if max > min {
		n += rng.Intn(max - min + 1)
	}
	if n > BoardSize*BoardSize {
		n = BoardSize * BoardSize
	}
	for i := 0; i < n; i++ {
		b.Spawn(rng, fourProb)
	}
}
