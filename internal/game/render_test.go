package game

import (
	"strings"
	"testing"

	"github.com/vkotlyarov/tileburst/internal/core"
)

func TestTileColorRamp(t *testing.T) {
	tests := []struct {
		value int
		want  core.Color
	}{
		{0, core.ColorDefault},
		{2, core.ColorBlue},
		{4, core.ColorCyan},
		{8, core.ColorGreen},
		{2048, core.ColorMagenta},
		{4096, core.ColorBrightMagenta},
		{8192, core.ColorBrightWhite},
		{1 << 20, core.ColorBrightWhite}, // beyond the ramp clamps
	}

	for _, tt := range tests {
		if got := TileColor(tt.value); got != tt.want {
			t.Errorf("TileColor(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestRenderShowsTilesAndScore(t *testing.T) {
	s := newTestSession(42)
	s.board = boardOf([BoardSize][BoardSize]int{
		{2, 0, 0, 0},
		{0, 128, 0, 0},
	})

	screen := core.NewScreen(80, 24)
	s.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "128") {
		t.Error("render output should contain the tile value 128")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("render output should contain the score line")
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "┼") {
		t.Error("render output should contain the board grid")
	}
	if strings.Contains(out, "GAME OVER") {
		t.Error("game-over banner should not show while playing")
	}
}

func TestRenderGameOverBanner(t *testing.T) {
	s := newTestSession(42)
	s.state = StateGameOver

	screen := core.NewScreen(80, 24)
	s.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "GAME OVER") {
		t.Error("render output should contain the game-over banner")
	}
	if !strings.Contains(out, "Press R to restart") {
		t.Error("render output should contain the restart hint")
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := newTestSession(1)
	s.Reset(core.RuntimeConfig{ScreenW: 12, ScreenH: 6, TickRate: 60, Seed: 1})

	screen := core.NewScreen(12, 6)
	s.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "too small") {
		t.Errorf("render output should warn about the window size, got:\n%s", out)
	}
}

func TestParticleGlyphRamp(t *testing.T) {
	if particleGlyph(1.0) != '█' {
		t.Error("full alpha should use the solid glyph")
	}
	if particleGlyph(0.5) != '▒' {
		t.Error("half alpha should use the medium glyph")
	}
	if particleGlyph(0.1) != '░' {
		t.Error("low alpha should use the light glyph")
	}
}

func TestTileEqual(t *testing.T) {
	a := Tile{Value: 4}
	b := Tile{Value: 4, Merged: true}

	// Identity is value-only; the merge flag is turn-internal state.
	if !a.Equal(b) {
		t.Error("tiles with equal values should compare equal regardless of flags")
	}
	if a.Equal(Tile{Value: 8}) {
		t.Error("tiles with different values should not compare equal")
	}
	if (Tile{}).Occupied() {
		t.Error("zero tile should be empty")
	}
}
