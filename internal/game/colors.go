package game

import (
	"math/bits"

	"github.com/vkotlyarov/tileburst/internal/core"
)

// tileColors is the display ramp indexed by log2(value)-1, so 2 maps to the
// first entry, 4 to the second, and so on up through 4096. Values beyond
// the ramp clamp to the last entry.
var tileColors = []core.Color{
	core.ColorBlue,
	core.ColorCyan,
	core.ColorGreen,
	core.ColorBrightGreen,
	core.ColorYellow,
	core.ColorBrightYellow,
	core.ColorOrange,
	core.ColorRed,
	core.ColorBrightRed,
	core.ColorMagenta,
	core.ColorBrightMagenta,
	core.ColorBrightWhite,
}

// TileColor returns the display color for a tile value. Empty or invalid
// values render in the default color.
func TileColor(value int) core.Color {
	if value < 2 {
		return core.ColorDefault
	}
	idx := bits.Len(uint(value)) - 2
	if idx >= len(tileColors) {
		idx = len(tileColors) - 1
	}
	return tileColors[idx]
}
