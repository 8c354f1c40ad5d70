// Package loop drives a game.Game from any frame source. Input arrives on two
// channels, a direction channel and a control channel, and both are drained
// once per frame so the order in which they act is fixed.
package loop

import (
	"context"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/rs/zerolog"
)

// Renderer draws one frame. It must not keep the snapshot's slices.
type Renderer interface {
	Draw(snap game.Snapshot)
}

// Game is the state machine the loop advances. *game.Game implements it.
type Game interface {
	Start()
	Pause()
	Reset(base time.Duration)
	SetSpeed(speed types.Speed)
	SetDirection(dir types.Point) bool
	Step() game.Outcome
	State() game.RunState
	Speed() types.Speed
	StepInterval() time.Duration
	Best() int
	Snapshot() game.Snapshot
}

// Settings is the persisted state the loop reads and updates.
type Settings interface {
	Best() int
	RecordBest(score int) bool
	Theme() types.Theme
	ToggleTheme() types.Theme
	Save() error
}

type ControlKind int

const (
	Start ControlKind = iota
	Pause
	Reset
	SetSpeed
	ToggleTheme
)

func (k ControlKind) String() string {
	switch k {
	case Start:
		return "start"
	case Pause:
		return "pause"
	case Reset:
		return "reset"
	case SetSpeed:
		return "speed"
	case ToggleTheme:
		return "theme"
	default:
		return "unknown"
	}
}

// Control is a start/pause/reset style command. Speed is only read for
// SetSpeed.
type Control struct {
	Kind  ControlKind
	Speed types.Speed
}

// Input is one decoded key press: either a direction or a control.
type Input struct {
	Direction types.Point
	Control   *Control
}

// DirectionInput and ControlInput build Inputs for key tables.
func DirectionInput(d types.Point) Input { return Input{Direction: d} }

func ControlInput(kind ControlKind) Input { return Input{Control: &Control{Kind: kind}} }

func SpeedInput(speed types.Speed) Input {
	return Input{Control: &Control{Kind: SetSpeed, Speed: speed}}
}

const controlBuffer = 16

type Loop struct {
	game     Game
	settings Settings
	renderer Renderer
	log      zerolog.Logger

	directions chan types.Point
	controls   chan Control

	ticking  bool
	lastStep time.Time
}

func New(g Game, settings Settings, renderer Renderer, log zerolog.Logger) *Loop {
	return &Loop{
		game:       g,
		settings:   settings,
		renderer:   renderer,
		log:        log.With().Str("component", "loop").Logger(),
		directions: make(chan types.Point, 1),
		controls:   make(chan Control, controlBuffer),
	}
}

// Direction records a direction change. Only the newest unread one is
// kept; it is validated by the game when the next frame drains it.
func (l *Loop) Direction(d types.Point) {
	for {
		select {
		case l.directions <- d:
			return
		default:
		}
		select {
		case <-l.directions:
		default:
		}
	}
}

// Control queues a command for the next frame. It reports false if the
// queue is full and the command was dropped.
func (l *Loop) Control(c Control) bool {
	select {
	case l.controls <- c:
		return true
	default:
		l.log.Warn().Stringer("control", c.Kind).Msg("control queue full, dropping")
		return false
	}
}

// Dispatch forwards a decoded key press to the matching channel.
func (l *Loop) Dispatch(in Input) {
	switch {
	case in.Control != nil:
		l.Control(*in.Control)
	case in.Direction != types.Point{}:
		l.Direction(in.Direction)
	}
}

// Ticking reports whether the game is scheduled to advance.
func (l *Loop) Ticking() bool {
	return l.ticking
}

// Frame runs one scheduling iteration: commands, then at most one step if
// it is due, then a redraw regardless.
func (l *Loop) Frame(now time.Time) {
	l.drainControls(now)

	select {
	case d := <-l.directions:
		l.game.SetDirection(d)
	default:
	}

	if l.ticking && l.game.State() == game.Running && now.Sub(l.lastStep) >= l.game.StepInterval() {
		l.lastStep = now
		if out := l.game.Step(); out.Ended() {
			l.finish(out)
		}
	}

	l.renderer.Draw(l.Snapshot())
}

// Run calls Frame for every tick of frames until ctx is cancelled or frames
// is closed.
func (l *Loop) Run(ctx context.Context, frames <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case now, ok := <-frames:
			if !ok {
				return nil
			}
			l.Frame(now)
		}
	}
}

// Snapshot is the game state plus the persisted theme.
func (l *Loop) Snapshot() game.Snapshot {
	snap := l.game.Snapshot()
	snap.Theme = l.settings.Theme()
	return snap
}

func (l *Loop) drainControls(now time.Time) {
	for {
		select {
		case c := <-l.controls:
			l.apply(c, now)
		default:
			return
		}
	}
}

func (l *Loop) apply(c Control, now time.Time) {
	switch c.Kind {
	case Start:
		l.game.Start()
		if l.game.State() == game.Running && !l.ticking {
			l.ticking = true
			l.lastStep = now
			l.log.Debug().Str("session", l.game.Snapshot().Session).Msg("ticking")
		}
	case Pause:
		l.game.Pause()
		l.ticking = false
	case Reset:
		l.game.Reset(l.game.Speed().Interval())
		l.ticking = false
		l.log.Debug().Str("session", l.game.Snapshot().Session).Msg("reset")
	case SetSpeed:
		l.game.SetSpeed(c.Speed)
		l.log.Debug().Stringer("speed", c.Speed).Dur("interval", l.game.StepInterval()).Msg("speed changed")
	case ToggleTheme:
		theme := l.settings.ToggleTheme()
		if err := l.settings.Save(); err != nil {
			l.log.Error().Err(err).Msg("saving theme")
		}
		l.log.Debug().Stringer("theme", theme).Msg("theme changed")
	}
}

func (l *Loop) finish(out game.Outcome) {
	l.ticking = false
	if l.settings.RecordBest(l.game.Best()) {
		if err := l.settings.Save(); err != nil {
			l.log.Error().Err(err).Msg("saving best score")
		}
	}
	snap := l.game.Snapshot()
	l.log.Info().
		Str("session", snap.Session).
		Stringer("outcome", out).
		Int("score", snap.Score).
		Int("best", l.settings.Best()).
		Int("steps", snap.Steps).
		Dur("duration", time.Since(snap.Started).Round(time.Millisecond)).
		Msg("game over")
}
