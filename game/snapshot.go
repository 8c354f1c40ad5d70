package game

import (
	"time"

	"snake-classic/game/types"
)

// Snapshot is a read-only copy of what a renderer needs for one frame.
type Snapshot struct {
	Session string
	Grid    types.Grid
	Snake   []types.Point // head first
	Heading types.Point
	Food    types.Point
	HasFood bool
	Score   int
	Best    int
	State   RunState
	Speed   types.Speed
	Theme   types.Theme
	Steps   int
	Started time.Time
}

// Snapshot copies the current state. Theme is owned by the settings and is
// filled in by the caller.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Session: g.UUID,
		Grid:    g.Grid,
		Snake:   g.snake.Cells(),
		Heading: g.snake.Direction,
		Food:    g.food,
		HasFood: g.hasFood,
		Score:   g.Score,
		Best:    g.best,
		State:   g.state,
		Speed:   g.speed,
		Steps:   g.Steps,
		Started: g.StartTime,
	}
}
