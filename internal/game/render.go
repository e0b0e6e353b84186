package game

import (
	"fmt"
	"strconv"

	"github.com/vkotlyarov/tileburst/internal/core"
)

const (
	cellWidth  = 5 // Cell width including the left border column
	cellHeight = 2 // Cell height including the top border row
	hudHeight  = 3
)

// Render draws the session state into the screen buffer: HUD, board grid,
// tiles, particles, and the game-over overlay.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	if s.tooSmall {
		s.renderTooSmall(dst)
		return
	}

	boardW := BoardSize*cellWidth + 1
	boardH := BoardSize*cellHeight + 1
	boardX := (s.screenW - boardW) / 2
	boardY := hudHeight + 1

	s.renderHUD(dst, boardX, boardW)
	s.renderBoard(dst, boardX, boardY)
	s.renderParticles(dst, boardX, boardY)

	if s.state == StateGameOver {
		s.renderGameOver(dst, boardX, boardY, boardW, boardH)
	}
}

func (s *Session) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (s.screenW - len(msg)) / 2
	y := s.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	dst.DrawText((s.screenW-len(hint))/2, y+1, hint)
}

func (s *Session) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "tileburst"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", s.score)
	dst.DrawText(boardX+(boardW-len(scoreStr))/2, 1, scoreStr)

	maxStr := fmt.Sprintf("Max: %d", s.board.MaxTile())
	infoX := boardX + boardW - len(maxStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 2, maxStr)
}

func (s *Session) renderBoard(dst *core.Screen, boardX, boardY int) {
	// Grid borders with box-drawing intersections
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Tiles, centered in their cells and colored by value
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			t := s.board[y][x]
			if t.Empty() {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(t.Value)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, TileColor(t.Value))
		}
	}
}

// particleGlyph maps alpha to a density ramp so particles fade out as
// their life drains.
func particleGlyph(alpha float64) rune {
	switch {
	case alpha >= 0.66:
		return '█'
	case alpha >= 0.33:
		return '▒'
	default:
		return '░'
	}
}

func (s *Session) renderParticles(dst *core.Screen, boardX, boardY int) {
	for _, p := range s.Particles() {
		px := boardX + int(p.X*cellWidth)
		py := boardY + int(p.Y*cellHeight)
		glyph := particleGlyph(p.Alpha)
		for i := 0; i < p.Size; i++ {
			dst.SetCell(px+i, py, glyph, p.Color)
		}
	}
}

func (s *Session) renderGameOver(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", s.score),
		"Press R to restart",
	}

	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints shown by the platform.
func (s *Session) Controls() string {
	return "Arrows/WASD: Slide | R: Restart | Q: Quit"
}
