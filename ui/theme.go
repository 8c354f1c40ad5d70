package ui

import (
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type palette struct {
	background rl.Color
	board      rl.Color
	grid       rl.Color
	text       rl.Color
	muted      rl.Color
	food       rl.Color
	body       rl.Color
	head       rl.Color
	marker     rl.Color
}

var (
	darkPalette = palette{
		background: rl.NewColor(15, 18, 24, 255),
		board:      rl.NewColor(22, 27, 34, 255),
		grid:       rl.NewColor(38, 45, 56, 217),
		text:       rl.NewColor(230, 237, 243, 255),
		muted:      rl.NewColor(139, 148, 158, 255),
		food:       rl.NewColor(255, 107, 107, 255),
		body:       rl.NewColor(46, 160, 67, 255),
		head:       rl.NewColor(86, 211, 100, 255),
		marker:     rl.NewColor(13, 17, 23, 255),
	}
	lightPalette = palette{
		background: rl.NewColor(246, 248, 250, 255),
		board:      rl.NewColor(255, 255, 255, 255),
		grid:       rl.NewColor(216, 222, 228, 217),
		text:       rl.NewColor(31, 35, 40, 255),
		muted:      rl.NewColor(101, 109, 118, 255),
		food:       rl.NewColor(207, 34, 46, 255),
		body:       rl.NewColor(26, 127, 55, 255),
		head:       rl.NewColor(17, 99, 41, 255),
		marker:     rl.NewColor(255, 255, 255, 255),
	}
)

func paletteFor(theme types.Theme) palette {
	if theme == types.ThemeLight {
		return lightPalette
	}
	return darkPalette
}
