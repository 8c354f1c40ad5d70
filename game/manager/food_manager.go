package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const (
	maxSpawnTries = 64 // random probes before scanning for free cells
	denseNum      = 3  // occupancy above denseNum/denseDen of the board
	denseDen      = 4  // goes straight to the scan
)

// ErrBoardFull is returned when the snake covers every cell.
var ErrBoardFull = errors.New("no free cell for food")

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

// NewFoodManager seeds its own generator so a given seed replays the same
// food sequence.
func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a uniformly random cell not covered by the snake.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, error) {
	total := fm.grid.Cells()
	occupied := snake.Len()
	if occupied >= total {
		return types.Point{}, ErrBoardFull
	}

	if occupied*denseDen < total*denseNum {
		for i := 0; i < maxSpawnTries; i++ {
			food := types.Point{
				X: fm.rng.Intn(fm.grid.Width),
				Y: fm.rng.Intn(fm.grid.Height),
			}
			if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
				return food, nil
			}
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	taken := make(map[types.Point]struct{}, snake.Len())
	for _, p := range snake.Body {
		taken[p] = struct{}{}
	}
	free := make([]types.Point, 0, fm.grid.Cells()-len(taken))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
