package game

import (
	"testing"

	"github.com/vkotlyarov/tileburst/internal/config"
	"github.com/vkotlyarov/tileburst/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestSession(seed int64) *Session {
	s := NewSession(config.Default())
	s.Reset(testRuntime(seed))
	return s
}

// stepDir runs one tick with a single directional action.
func stepDir(s *Session, action core.Action) {
	in := core.NewInputFrame()
	in.Set(action)
	s.Step(in, 1.0/60.0)
}

func countTiles(b Board) int {
	count := 0
	for y := range b {
		for x := range b[y] {
			if b[y][x].Occupied() {
				count++
			}
		}
	}
	return count
}

func TestResetInvariants(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		s := newTestSession(seed)

		count := countTiles(s.Board())
		if count < 2 || count > 3 {
			t.Errorf("seed %d: starting tile count = %d, want 2..3", seed, count)
		}

		for _, row := range s.Board() {
			for _, tile := range row {
				if tile.Occupied() && tile.Value != 2 && tile.Value != 4 {
					t.Errorf("seed %d: starting tile value = %d, want 2 or 4", seed, tile.Value)
				}
			}
		}

		if s.Score() != 0 {
			t.Errorf("seed %d: starting score = %d, want 0", seed, s.Score())
		}
		if s.State() != StatePlaying {
			t.Errorf("seed %d: starting state = %v, want playing", seed, s.State())
		}
		if len(s.Particles()) != 0 {
			t.Errorf("seed %d: starting particles = %d, want 0", seed, len(s.Particles()))
		}
	}
}

func TestDeterministicReset(t *testing.T) {
	s1 := newTestSession(12345)
	s2 := newTestSession(12345)

	if s1.Board() != s2.Board() {
		t.Errorf("same seed should produce same board:\n%v\nvs\n%v",
			valuesOf(s1.Board()), valuesOf(s2.Board()))
	}
}

func TestMoveSpawnsExactlyOneTile(t *testing.T) {
	s := newTestSession(42)
	s.board = boardOf([BoardSize][BoardSize]int{
		{2, 2, 0, 0},
	})

	stepDir(s, core.ActionLeft)

	// The pair merged into one tile, then exactly one tile spawned.
	if count := countTiles(s.Board()); count != 2 {
		t.Errorf("tile count after move = %d, want 2 (merge result + spawn)", count)
	}
	if s.Score() != 4 {
		t.Errorf("score after move = %d, want 4", s.Score())
	}
	if s.State() != StatePlaying {
		t.Errorf("state after move = %v, want playing", s.State())
	}
}

func TestNoMovementNoSpawn(t *testing.T) {
	s := newTestSession(42)
	s.board = boardOf([BoardSize][BoardSize]int{
		{4, 2, 0, 0},
	})
	before := s.Board()

	stepDir(s, core.ActionLeft)

	if s.Board() != before {
		t.Errorf("board changed after no-op slide:\n%v\nwant\n%v",
			valuesOf(s.Board()), valuesOf(before))
	}
	if s.Score() != 0 {
		t.Errorf("score after no-op slide = %d, want 0", s.Score())
	}
	if len(s.Particles()) != 0 {
		t.Errorf("particles after no-op slide = %d, want 0", len(s.Particles()))
	}
}

func TestNoInputNoChange(t *testing.T) {
	s := newTestSession(42)
	before := s.Board()

	s.Step(core.NewInputFrame(), 1.0/60.0)

	if s.Board() != before {
		t.Error("board changed on a tick without directional input")
	}
}

func TestMergeSpawnsParticleBurst(t *testing.T) {
	s := newTestSession(42)
	s.board = boardOf([BoardSize][BoardSize]int{
		{2, 2, 0, 0},
		{4, 4, 0, 0},
	})

	stepDir(s, core.ActionLeft)

	// Two merges, one burst each.
	want := 2 * config.Default().Particles.Count
	if got := s.particles.Len(); got != want {
		t.Errorf("particle count after two merges = %d, want %d", got, want)
	}
}

func TestGameOverOnFullBoard(t *testing.T) {
	s := newTestSession(42)

	// One empty cell; sliding left merges nothing but shifts the last row,
	// and the forced spawn fills the board.
	s.board = boardOf([BoardSize][BoardSize]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{0, 8, 2, 8},
	})

	stepDir(s, core.ActionLeft)

	board := s.Board()
	if board.HasEmptyCell() {
		t.Fatal("board should be full after the spawn")
	}
	if s.State() != StateGameOver {
		t.Errorf("state = %v, want game_over on a full board", s.State())
	}
}

func TestGameOverIgnoresRemainingMerges(t *testing.T) {
	s := newTestSession(42)

	// The final board holds a vertical 8/8 pair, but the terminal check
	// only looks for empty cells.
	s.board = boardOf([BoardSize][BoardSize]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{8, 1024, 2048, 4096},
		{0, 8, 2, 8},
	})

	stepDir(s, core.ActionLeft)

	board := s.Board()
	if !board.HasPossibleMerge() {
		t.Fatal("test board should still hold a legal merge")
	}
	if s.State() != StateGameOver {
		t.Errorf("state = %v, want game_over even with a merge available", s.State())
	}
}

func TestNoInputAfterGameOver(t *testing.T) {
	s := newTestSession(42)
	s.state = StateGameOver
	before := s.Board()

	stepDir(s, core.ActionLeft)

	if s.Board() != before {
		t.Error("board changed by directional input after game over")
	}
	if s.State() != StateGameOver {
		t.Errorf("state = %v, want game_over", s.State())
	}
}

func TestRestart(t *testing.T) {
	s := newTestSession(42)
	s.board = boardOf([BoardSize][BoardSize]int{
		{2, 2, 0, 0},
	})
	stepDir(s, core.ActionLeft) // accumulate score and particles
	s.state = StateGameOver

	stepDir(s, core.ActionRestart)

	if s.State() != StatePlaying {
		t.Errorf("state after restart = %v, want playing", s.State())
	}
	if s.Score() != 0 {
		t.Errorf("score after restart = %d, want 0", s.Score())
	}
	if count := countTiles(s.Board()); count < 2 || count > 3 {
		t.Errorf("tile count after restart = %d, want 2..3", count)
	}
	if len(s.Particles()) != 0 {
		t.Errorf("particles after restart = %d, want 0", len(s.Particles()))
	}
}

func TestRestartVariesBoard(t *testing.T) {
	s := newTestSession(42)
	first := s.Board()

	// The RNG stream continues across restarts, so consecutive boards
	// should eventually differ.
	for i := 0; i < 10; i++ {
		stepDir(s, core.ActionRestart)
		if s.Board() != first {
			return
		}
	}
	t.Error("10 restarts produced identical boards")
}

func TestScoreAccumulates(t *testing.T) {
	s := newTestSession(42)
	s.board = boardOf([BoardSize][BoardSize]int{
		{2, 2, 4, 4},
	})

	stepDir(s, core.ActionLeft)
	if s.Score() != 12 {
		t.Fatalf("score after first move = %d, want 12", s.Score())
	}

	s.board = boardOf([BoardSize][BoardSize]int{
		{8, 8, 0, 0},
	})
	stepDir(s, core.ActionLeft)
	if s.Score() != 28 {
		t.Errorf("score after second move = %d, want 28", s.Score())
	}
}

func TestParticlesExpireAfterBurst(t *testing.T) {
	s := newTestSession(42)
	s.board = boardOf([BoardSize][BoardSize]int{
		{2, 2, 0, 0},
	})
	stepDir(s, core.ActionLeft)

	if s.particles.Len() == 0 {
		t.Fatal("merge should spawn particles")
	}

	// Run past the maximum particle lifetime with no input.
	lifetime := config.Default().Particles.Lifetime()
	ticks := int(lifetime*60) + 60
	for i := 0; i < ticks; i++ {
		s.Step(core.NewInputFrame(), 1.0/60.0)
	}

	if got := s.particles.Len(); got != 0 {
		t.Errorf("particles alive after %d ticks = %d, want 0", ticks, got)
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestSession(42)
	s.board = boardOf([BoardSize][BoardSize]int{
		{2, 2, 0, 0},
	})

	stepDir(s, core.ActionLeft)
	snap := s.Snapshot()

	if snap.Score != 4 {
		t.Errorf("Snapshot score = %d, want 4", snap.Score)
	}
	if snap.MaxTile != 4 {
		t.Errorf("Snapshot max tile = %d, want 4", snap.MaxTile)
	}
	if snap.State != StatePlaying {
		t.Errorf("Snapshot state = %v, want playing", snap.State)
	}
	if snap.Tick != 1 {
		t.Errorf("Snapshot tick = %d, want 1", snap.Tick)
	}
}

func TestTooSmallScreenBlocksTurns(t *testing.T) {
	s := NewSession(config.Default())
	s.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 42})
	before := s.Board()

	stepDir(s, core.ActionLeft)

	if s.Board() != before {
		t.Error("board changed while the screen was too small")
	}

	s.Resize(80, 24)
	if s.Board() != before {
		t.Error("resize must not touch the board")
	}
}
