package game

import (
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// RunState is the lifecycle of a single play session.
type RunState int

const (
	Idle RunState = iota
	Running
	Paused
	GameOver
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "idle"
	}
}

// Outcome is what a single Step did.
type Outcome int

const (
	Halted    Outcome = iota // not running, nothing moved
	Continued                // moved, possibly ate
	Collided                 // ran into itself
	Cleared                  // ate the last free cell
)

func (o Outcome) String() string {
	switch o {
	case Continued:
		return "continued"
	case Collided:
		return "collided"
	case Cleared:
		return "cleared"
	default:
		return "halted"
	}
}

// Ended reports whether the outcome finished the session.
func (o Outcome) Ended() bool {
	return o == Collided || o == Cleared
}

type Game struct {
	UUID      string
	Grid      types.Grid
	Score     int
	Steps     int
	StartTime time.Time

	snake        *entity.Snake
	food         types.Point
	hasFood      bool
	best         int
	speed        types.Speed
	stepInterval time.Duration
	state        RunState

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// NewGame creates a reset, idle game on the fixed board. best seeds the
// in-memory best score; seed drives food placement.
func NewGame(best int, speed types.Speed, seed uint64) *Game {
	return newGame(types.DefaultGrid, best, speed, seed)
}

func newGame(grid types.Grid, best int, speed types.Speed, seed uint64) *Game {
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		Grid:         grid,
		best:         best,
		speed:        speed,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, seed),
	}
	g.Reset(speed.Interval())
	return g
}

// Reset starts a fresh session: a three cell snake in the middle of the
// board heading right, no score, the given step interval, new food, Idle.
// The best score survives.
func (g *Game) Reset(base time.Duration) {
	center := types.Point{X: g.Grid.Width / 2, Y: g.Grid.Height / 2}
	g.snake = entity.NewSnake(center, types.StartLength, types.Right)
	g.Score = 0
	g.Steps = 0
	g.stepInterval = base
	g.state = Idle
	g.UUID = uuid.New().String()
	g.StartTime = time.Now()
	g.SpawnFood()
}

// SpawnFood places food on a random free cell. On a full board the game is
// left without food and ErrBoardFull is returned.
func (g *Game) SpawnFood() error {
	food, err := g.foodMgr.GenerateFood(g.snake)
	if err != nil {
		g.hasFood = false
		return errors.Wrap(err, "spawn food")
	}
	g.food = food
	g.hasFood = true
	return nil
}

// SetDirection queues dir for the next step. Reversals and non unit vectors
// are dropped silently; the return value says whether dir was taken.
func (g *Game) SetDirection(dir types.Point) bool {
	return g.snake.SetDirection(dir)
}

// Step advances the snake one cell. It only acts while Running.
func (g *Game) Step() Outcome {
	if g.state != Running {
		return Halted
	}
	g.Steps++

	newHead := g.collisionMgr.NextHead(g.snake, g.snake.Turn())
	if g.collisionMgr.IsSelfCollision(newHead, g.snake) {
		g.end()
		return Collided
	}

	g.snake.Move(newHead)
	if !g.hasFood || !g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.snake.RemoveTail()
		return Continued
	}

	g.Score++
	g.stepInterval -= types.SpeedUpStep
	if g.stepInterval < types.MinStepInterval {
		g.stepInterval = types.MinStepInterval
	}
	if err := g.SpawnFood(); err != nil {
		g.end()
		return Cleared
	}
	return Continued
}

func (g *Game) end() {
	g.state = GameOver
	if g.Score > g.best {
		g.best = g.Score
	}
}

// Start begins or resumes play. From GameOver it deals a new session first.
func (g *Game) Start() {
	switch g.state {
	case Idle, Paused:
		g.state = Running
	case GameOver:
		g.Reset(g.speed.Interval())
		g.state = Running
	}
}

func (g *Game) Pause() {
	if g.state == Running {
		g.state = Paused
	}
}

func (g *Game) Resume() {
	if g.state == Paused {
		g.state = Running
	}
}

// SetSpeed changes the base interval used by the next Reset and applies it
// to the current session right away.
func (g *Game) SetSpeed(speed types.Speed) {
	g.speed = speed
	g.stepInterval = speed.Interval()
}

func (g *Game) State() RunState {
	return g.state
}

func (g *Game) Speed() types.Speed {
	return g.speed
}

func (g *Game) StepInterval() time.Duration {
	return g.stepInterval
}

func (g *Game) Best() int {
	return g.best
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

// GetFood returns the food cell and whether there is any.
func (g *Game) GetFood() (types.Point, bool) {
	return g.food, g.hasFood
}

// ElapsedTime returns how long the current session has lasted.
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.StartTime)
}
