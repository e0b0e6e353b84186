package game

// Snapshot captures the observable session state for tests and debugging.
type Snapshot struct {
	Tick      uint64
	Score     int
	Board     [BoardSize][BoardSize]int
	MaxTile   int
	State     PlayState
	Particles int // Live particle count
}

// Snapshot returns the current session snapshot. The board is reduced to
// plain values; merge flags are turn-internal state and not part of it.
func (s *Session) Snapshot() Snapshot {
	var values [BoardSize][BoardSize]int
	for y := range s.board {
		for x := range s.board[y] {
			values[y][x] = s.board[y][x].Value
		}
	}

	live := 0
	if s.particles != nil {
		live = s.particles.Len()
	}

	return Snapshot{
		Tick:      s.tick,
		Score:     s.score,
		Board:     values,
		MaxTile:   s.board.MaxTile(),
		State:     s.state,
		Particles: live,
	}
}
