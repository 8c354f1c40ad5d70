package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // padding around the board
	headerHeight  = 40 // score line above the board
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	boardSize    int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// UpdateDimensions fits the square board into the current window.
func (r *Renderer) UpdateDimensions(grid types.Grid) {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*3 - headerHeight
	r.cellSize = min(availableWidth/int32(grid.Width), availableHeight/int32(grid.Height))
	if r.cellSize < 4 {
		r.cellSize = 4
	}
	r.boardSize = r.cellSize * int32(grid.Width)

	r.offsetX = (r.screenWidth - r.boardSize) / 2
	r.offsetY = borderPadding*2 + headerHeight
}

func (r *Renderer) Draw(snap game.Snapshot) {
	r.UpdateDimensions(snap.Grid)
	pal := paletteFor(snap.Theme)

	rl.BeginDrawing()
	rl.ClearBackground(pal.background)

	r.drawHeader(snap, pal)

	// Board and faint grid lines
	rl.DrawRectangle(r.offsetX, r.offsetY, r.boardSize, r.boardSize, pal.board)
	for i := int32(1); i < int32(snap.Grid.Width); i++ {
		x := r.offsetX + i*r.cellSize
		rl.DrawLine(x, r.offsetY, x, r.offsetY+r.boardSize, pal.grid)
	}
	for i := int32(1); i < int32(snap.Grid.Height); i++ {
		y := r.offsetY + i*r.cellSize
		rl.DrawLine(r.offsetX, y, r.offsetX+r.boardSize, y, pal.grid)
	}

	if snap.HasFood {
		r.drawCell(snap.Food, r.cellSize/6, 0.6, pal.food)
	}

	// Tail first so the head is painted last
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		color := pal.body
		roundness := float32(0.4)
		if i == 0 {
			color = pal.head
			roundness = 0.6
		}
		r.drawCell(snap.Snake[i], r.cellSize/8, roundness, color)
	}
	if len(snap.Snake) > 0 {
		r.drawHeadMarker(snap.Snake[0], snap.Heading, pal.marker)
	}

	switch snap.State {
	case game.GameOver:
		r.drawOverlay("Game Over", "Press Space to try again", pal)
	case game.Paused:
		r.drawOverlay("Paused", "Press Space to resume", pal)
	case game.Idle:
		r.drawOverlay("", "Press Space to play", pal)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawHeader(snap game.Snapshot, pal palette) {
	fontSize := int32(20)
	y := borderPadding + (headerHeight-fontSize)/2
	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), r.offsetX, y, fontSize, pal.text)

	best := fmt.Sprintf("Best: %d", snap.Best)
	rl.DrawText(best, r.offsetX+r.boardSize/3, y, fontSize, pal.text)

	speed := fmt.Sprintf("Speed: %s", snap.Speed)
	width := rl.MeasureText(speed, fontSize)
	rl.DrawText(speed, r.offsetX+r.boardSize-width, y, fontSize, pal.muted)
}

func (r *Renderer) drawCell(p types.Point, inset int32, roundness float32, color rl.Color) {
	rec := rl.NewRectangle(
		float32(r.offsetX+int32(p.X)*r.cellSize+inset),
		float32(r.offsetY+int32(p.Y)*r.cellSize+inset),
		float32(r.cellSize-2*inset),
		float32(r.cellSize-2*inset),
	)
	rl.DrawRectangleRounded(rec, roundness, 6, color)
}

// drawHeadMarker draws a small triangle pointing where the snake is heading.
func (r *Renderer) drawHeadMarker(head, dir types.Point, color rl.Color) {
	x := float32(r.offsetX + int32(head.X)*r.cellSize)
	y := float32(r.offsetY + int32(head.Y)*r.cellSize)
	c := float32(r.cellSize)
	h := c / 2
	q := c / 4

	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: x + c - q, Y: y + h},
			rl.Vector2{X: x + h, Y: y + q},
			rl.Vector2{X: x + h, Y: y + c - q},
			color)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: x + q, Y: y + h},
			rl.Vector2{X: x + h, Y: y + c - q},
			rl.Vector2{X: x + h, Y: y + q},
			color)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: x + h, Y: y + c - q},
			rl.Vector2{X: x + c - q, Y: y + h},
			rl.Vector2{X: x + q, Y: y + h},
			color)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: x + h, Y: y + q},
			rl.Vector2{X: x + q, Y: y + h},
			rl.Vector2{X: x + c - q, Y: y + h},
			color)
	}
}

func (r *Renderer) drawOverlay(title, hint string, pal palette) {
	centerX := r.offsetX + r.boardSize/2
	centerY := r.offsetY + r.boardSize/2

	if title != "" {
		rl.DrawRectangle(r.offsetX, r.offsetY, r.boardSize, r.boardSize, rl.Fade(rl.Black, 0.45))
		size := int32(32)
		width := rl.MeasureText(title, size)
		rl.DrawText(title, centerX-width/2, centerY-size, size, rl.White)
	}

	size := int32(18)
	width := rl.MeasureText(hint, size)
	color := pal.muted
	if title != "" {
		color = rl.White
	}
	rl.DrawText(hint, centerX-width/2, centerY+8, size, color)
}
