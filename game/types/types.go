package types

import (
	"strings"
	"time"
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Point is a grid cell. It is also used as a unit direction vector.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Opposite returns the reversed vector.
func (p Point) Opposite() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsDirection reports whether p is one of the four unit vectors.
func (p Point) IsDirection() bool {
	return p == Up || p == Down || p == Left || p == Right
}

var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Game constants
const (
	GridSize        = 24
	StartLength     = 3
	MinStepInterval = 55 * time.Millisecond
	SpeedUpStep     = 2 * time.Millisecond
)

// DefaultGrid is the fixed 24x24 board.
var DefaultGrid = Grid{Width: GridSize, Height: GridSize}

// Speed selects the base step interval of a new game.
type Speed int

const (
	SpeedSlow Speed = iota
	SpeedNormal
	SpeedFast
)

// Interval returns the base step interval for the speed.
func (s Speed) Interval() time.Duration {
	switch s {
	case SpeedSlow:
		return 150 * time.Millisecond
	case SpeedFast:
		return 80 * time.Millisecond
	default:
		return 110 * time.Millisecond
	}
}

func (s Speed) String() string {
	switch s {
	case SpeedSlow:
		return "slow"
	case SpeedFast:
		return "fast"
	default:
		return "normal"
	}
}

// ParseSpeed accepts slow, normal or fast (case insensitive).
func ParseSpeed(s string) (Speed, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "slow":
		return SpeedSlow, true
	case "normal", "":
		return SpeedNormal, true
	case "fast":
		return SpeedFast, true
	}
	return SpeedNormal, false
}

// Theme is the persisted appearance preference.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme accepts dark or light (case insensitive).
func ParseTheme(s string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return ThemeDark, true
	case "light":
		return ThemeLight, true
	}
	return ThemeDark, false
}
