package game

import (
	"math/rand"

	"github.com/vkotlyarov/tileburst/internal/config"
	"github.com/vkotlyarov/tileburst/internal/core"
)

// PlayState is the session's play state.
type PlayState int

const (
	StatePlaying PlayState = iota
	StateGameOver
	// StateVictory is reserved: no transition ever enters it.
	StateVictory
)

// String returns a human-readable name for the play state.
func (s PlayState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Session orchestrates turns: input -> slide -> spawn/terminal check ->
// particle tick. It owns the board, the score, the play state, and the
// particle collection, and is driven by a single frame loop.
type Session struct {
	cfg  config.Config
	rng  *rand.Rand
	tick uint64

	board     Board
	score     int
	state     PlayState
	particles *ParticleSystem

	screenW  int
	screenH  int
	tooSmall bool
}

// NewSession creates a session with the given tuning. Reset must be called
// before the first Step.
func NewSession(cfg config.Config) *Session {
	return &Session{cfg: cfg}
}

// Title returns the display name of the game.
func (s *Session) Title() string {
	return "tileburst"
}

// ID returns the identifier used for score storage.
func (s *Session) ID() string {
	return "tileburst"
}

// Reset (re)initializes the session: reseeds the RNG from the runtime
// config, places 2-3 starting tiles, zeroes the score, clears particles,
// and returns to Playing.
func (s *Session) Reset(rt core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(rt.Seed))
	s.tick = 0
	s.screenW = rt.ScreenW
	s.screenH = rt.ScreenH
	s.particles = NewParticleSystem(s.cfg.Particles, s.rng)
	s.restart()
	s.checkScreenSize()
}

// restart reseeds the board and clears per-game state. Unlike Reset it
// keeps the RNG stream, so an in-game restart does not replay the same
// board.
func (s *Session) restart() {
	s.board.Seed(s.rng, s.cfg.Rules.SeedTilesMin, s.cfg.Rules.SeedTilesMax, s.cfg.Rules.SpawnFourProb)
	s.score = 0
	s.state = StatePlaying
	s.particles.Clear()
}

// Resize updates the render dimensions without disturbing the board.
func (s *Session) Resize(w, h int) {
	s.screenW = w
	s.screenH = h
	s.checkScreenSize()
}

func (s *Session) checkScreenSize() {
	// Board (21 wide, 9 tall) + HUD rows
	minW := 25
	minH := 13
	s.tooSmall = s.screenW < minW || s.screenH < minH
}

// Step advances the session by one frame. Directional input triggers a
// turn while Playing; restart works in any state; particles always advance
// by the elapsed frame seconds and expired ones are dropped.
func (s *Session) Step(in core.InputFrame, dt float64) core.StepResult {
	s.tick++

	switch {
	case in.Has(core.ActionRestart):
		s.restart()
	case s.state == StatePlaying && !s.tooSmall:
		if dir, ok := directionFor(in); ok {
			s.playTurn(dir)
		}
	}

	s.particles.Tick(dt)
	s.particles.Prune()

	return core.StepResult{State: s.GameState()}
}

// directionFor extracts a slide direction from the frame, if any.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	default:
		return 0, false
	}
}

// playTurn runs one turn transition. A slide that moves nothing spawns
// nothing and changes no state.
func (s *Session) playTurn(dir Direction) {
	s.board.ClearMergedFlags() // turn boundary

	moved, delta, merges := s.board.Slide(dir)
	if !moved {
		return
	}

	s.board.ClearMergedFlags() // safety re-clear after a successful move
	s.score += delta

	for _, m := range merges {
		// Burst at the merged cell's center, colored by the pre-merge value.
		cx := float64(m.Cell.X) + 0.5
		cy := float64(m.Cell.Y) + 0.5
		s.particles.SpawnBurst(cx, cy, TileColor(m.Value/2), s.cfg.Particles.Count)
	}

	if s.board.HasEmptyCell() {
		s.board.Spawn(s.rng, s.cfg.Rules.SpawnFourProb)
	}

	// Terminal check is deliberately "board full", not "no legal move":
	// a full board ends the game even when a merge is still available.
	if !s.board.HasEmptyCell() {
		s.state = StateGameOver
	}
}

// Board returns a copy of the current board.
func (s *Session) Board() Board {
	return s.board
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// State returns the current play state.
func (s *Session) State() PlayState {
	return s.state
}

// Particles returns render snapshots of the currently visible particles.
func (s *Session) Particles() []ParticleView {
	return s.particles.Visible()
}

// GameState reports session status to the platform.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.state == StateGameOver,
	}
}
