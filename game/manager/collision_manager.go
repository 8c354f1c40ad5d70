package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Wrap folds pos back onto the grid. Walls do not kill, they teleport.
func (cm *CollisionManager) Wrap(pos types.Point) types.Point {
	return types.Point{
		X: ((pos.X % cm.grid.Width) + cm.grid.Width) % cm.grid.Width,
		Y: ((pos.Y % cm.grid.Height) + cm.grid.Height) % cm.grid.Height,
	}
}

// NextHead is the cell the snake's head enters when moving along dir.
func (cm *CollisionManager) NextHead(snake *entity.Snake, dir types.Point) types.Point {
	return cm.Wrap(snake.GetHead().Add(dir))
}

// IsSelfCollision checks pos against every current segment, tail included:
// the tail has not moved yet when the head arrives.
func (cm *CollisionManager) IsSelfCollision(pos types.Point, snake *entity.Snake) bool {
	return snake.Occupies(pos)
}

// ValidateSpawnPosition checks if a position is valid for spawning food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
