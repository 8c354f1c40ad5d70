// Package term renders the game in a terminal with termbox.
package term

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/nsf/termbox-go"
)

// canvas is the part of termbox the renderer draws through.
type canvas interface {
	Clear(fg, bg termbox.Attribute)
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Flush() error
}

type termboxCanvas struct{}

func (termboxCanvas) Clear(fg, bg termbox.Attribute) { termbox.Clear(fg, bg) }

func (termboxCanvas) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxCanvas) Flush() error { return termbox.Flush() }

type colors struct {
	fg, bg    termbox.Attribute
	grid      termbox.Attribute
	border    termbox.Attribute
	food      termbox.Attribute
	body      termbox.Attribute
	head      termbox.Attribute
	highlight termbox.Attribute
}

var (
	darkColors = colors{
		fg: termbox.ColorWhite, bg: termbox.ColorDefault,
		grid: termbox.ColorDarkGray, border: termbox.ColorLightGray,
		food: termbox.ColorLightRed, body: termbox.ColorGreen,
		head: termbox.ColorLightGreen | termbox.AttrBold, highlight: termbox.ColorYellow | termbox.AttrBold,
	}
	lightColors = colors{
		fg: termbox.ColorBlack, bg: termbox.ColorDefault,
		grid: termbox.ColorLightGray, border: termbox.ColorDarkGray,
		food: termbox.ColorRed, body: termbox.ColorGreen,
		head: termbox.ColorBlue | termbox.AttrBold, highlight: termbox.ColorMagenta | termbox.AttrBold,
	}
)

func colorsFor(theme types.Theme) colors {
	if theme == types.ThemeLight {
		return lightColors
	}
	return darkColors
}

const (
	cellWidth = 2 // terminal cells are roughly twice as tall as wide
	boardTop  = 2 // header line plus a blank line
)

var headGlyph = map[types.Point]rune{
	types.Up:    '^',
	types.Down:  'v',
	types.Left:  '<',
	types.Right: '>',
}

// Renderer draws a snapshot as text. Each board cell is two columns wide.
type Renderer struct {
	canvas canvas
	log    func(error)
}

// NewRenderer draws to the termbox back buffer. onErr receives flush
// failures and may be nil.
func NewRenderer(onErr func(error)) *Renderer {
	return &Renderer{canvas: termboxCanvas{}, log: onErr}
}

func (r *Renderer) Draw(snap game.Snapshot) {
	c := colorsFor(snap.Theme)
	r.canvas.Clear(c.fg, c.bg)

	r.text(0, 0, fmt.Sprintf("Score %d   Best %d   Speed %s", snap.Score, snap.Best, snap.Speed), c.fg, c.bg)

	w, h := snap.Grid.Width, snap.Grid.Height
	right := 1 + w*cellWidth
	bottom := boardTop + 1 + h

	for x := 1; x < right; x++ {
		r.canvas.SetCell(x, boardTop, '─', c.border, c.bg)
		r.canvas.SetCell(x, bottom, '─', c.border, c.bg)
	}
	for y := boardTop + 1; y < bottom; y++ {
		r.canvas.SetCell(0, y, '│', c.border, c.bg)
		r.canvas.SetCell(right, y, '│', c.border, c.bg)
	}
	r.canvas.SetCell(0, boardTop, '┌', c.border, c.bg)
	r.canvas.SetCell(right, boardTop, '┐', c.border, c.bg)
	r.canvas.SetCell(0, bottom, '└', c.border, c.bg)
	r.canvas.SetCell(right, bottom, '┘', c.border, c.bg)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.cell(types.Point{X: x, Y: y}, '·', ' ', c.grid, c.bg)
		}
	}

	if snap.HasFood {
		r.cell(snap.Food, '●', ' ', c.food, c.bg)
	}
	for i := len(snap.Snake) - 1; i > 0; i-- {
		r.cell(snap.Snake[i], '█', '█', c.body, c.bg)
	}
	if len(snap.Snake) > 0 {
		glyph, ok := headGlyph[snap.Heading]
		if !ok {
			glyph = '@'
		}
		r.cell(snap.Snake[0], glyph, ' ', c.head, c.bg)
	}

	status := ""
	switch snap.State {
	case game.Idle:
		status = "Space to play"
	case game.Paused:
		status = "PAUSED  Space to resume"
	case game.GameOver:
		status = "GAME OVER  Space to try again"
	}
	if status != "" {
		r.text(max(0, (right+1-len([]rune(status)))/2), boardTop+1+h/2, status, c.highlight, c.bg)
	}
	r.text(0, bottom+1, "arrows/wasd move  p pause  r reset  1-3 speed  t theme  q quit", c.grid, c.bg)

	if err := r.canvas.Flush(); err != nil && r.log != nil {
		r.log(err)
	}
}

func (r *Renderer) cell(p types.Point, left, right rune, fg, bg termbox.Attribute) {
	x := 1 + p.X*cellWidth
	y := boardTop + 1 + p.Y
	r.canvas.SetCell(x, y, left, fg, bg)
	r.canvas.SetCell(x+1, y, right, fg, bg)
}

func (r *Renderer) text(x, y int, s string, fg, bg termbox.Attribute) {
	for _, ch := range s {
		r.canvas.SetCell(x, y, ch, fg, bg)
		x++
	}
}
