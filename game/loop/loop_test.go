package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/rs/zerolog"
)

type recordingRenderer struct {
	frames []game.Snapshot
}

func (r *recordingRenderer) Draw(snap game.Snapshot) {
	r.frames = append(r.frames, snap)
}

func (r *recordingRenderer) last() game.Snapshot {
	return r.frames[len(r.frames)-1]
}

type memorySettings struct {
	best    int
	theme   types.Theme
	saves   int
	saveErr error
}

func (m *memorySettings) Best() int { return m.best }

func (m *memorySettings) RecordBest(score int) bool {
	if score > m.best {
		m.best = score
		return true
	}
	return false
}

func (m *memorySettings) Theme() types.Theme { return m.theme }

func (m *memorySettings) ToggleTheme() types.Theme {
	m.theme = m.theme.Toggle()
	return m.theme
}

func (m *memorySettings) Save() error {
	m.saves++
	return m.saveErr
}

// scriptedGame wraps a real game but can be told to end on a given step.
type scriptedGame struct {
	*game.Game
	endOn int
	steps int
	best  int
}

func (s *scriptedGame) Step() game.Outcome {
	if s.State() != game.Running {
		return game.Halted
	}
	s.steps++
	if s.steps == s.endOn {
		s.Game.Pause()
		s.best = 9
		return game.Collided
	}
	return s.Game.Step()
}

func (s *scriptedGame) Best() int {
	if s.best > 0 {
		return s.best
	}
	return s.Game.Best()
}

func newTestLoop(g Game) (*Loop, *recordingRenderer, *memorySettings) {
	r := &recordingRenderer{}
	st := &memorySettings{}
	return New(g, st, r, zerolog.Nop()), r, st
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestFrameDrawsEvenWhenIdle(t *testing.T) {
	l, r, _ := newTestLoop(game.NewGame(0, types.SpeedNormal, 1))
	l.Frame(t0)
	l.Frame(t0.Add(time.Second))
	if len(r.frames) != 2 {
		t.Fatalf("drew %d frames, want 2", len(r.frames))
	}
	if r.last().State != game.Idle {
		t.Fatalf("state = %v, want idle", r.last().State)
	}
	if head := r.last().Snake[0]; head != (types.Point{X: 12, Y: 12}) {
		t.Fatalf("idle game moved to %v", head)
	}
}

func TestStepsOnlyWhenIntervalElapsed(t *testing.T) {
	g := game.NewGame(0, types.SpeedNormal, 1)
	l, r, _ := newTestLoop(g)
	interval := types.SpeedNormal.Interval()

	l.Control(Control{Kind: Start})
	l.Frame(t0)
	if !l.Ticking() {
		t.Fatalf("not ticking after start")
	}
	start := r.last().Snake[0]

	l.Frame(t0.Add(interval / 2))
	if got := r.last().Snake[0]; got != start {
		t.Fatalf("stepped early: head %v -> %v", start, got)
	}

	l.Frame(t0.Add(interval))
	moved := r.last().Snake[0]
	if moved == start {
		t.Fatalf("did not step after a full interval")
	}

	// The next step is measured from the last one.
	l.Frame(t0.Add(interval + interval/2))
	if got := r.last().Snake[0]; got != moved {
		t.Fatalf("stepped twice within one interval")
	}
	if len(r.frames) != 4 {
		t.Fatalf("drew %d frames, want 4", len(r.frames))
	}
}

func TestDirectionLastWriterWins(t *testing.T) {
	g := game.NewGame(0, types.SpeedNormal, 1)
	l, r, _ := newTestLoop(g)
	l.Control(Control{Kind: Start})
	l.Frame(t0)

	l.Direction(types.Up)
	l.Direction(types.Down)
	l.Frame(t0.Add(types.SpeedNormal.Interval()))
	if head := r.last().Snake[0]; head != (types.Point{X: 12, Y: 13}) {
		t.Fatalf("head = %v, want (12,13) from the newer down command", head)
	}
}

func TestReversalThroughLoopIsIgnored(t *testing.T) {
	g := game.NewGame(0, types.SpeedNormal, 1)
	l, r, _ := newTestLoop(g)
	l.Control(Control{Kind: Start})
	l.Frame(t0)

	l.Direction(types.Left)
	l.Frame(t0.Add(types.SpeedNormal.Interval()))
	if head := r.last().Snake[0]; head != (types.Point{X: 13, Y: 12}) {
		t.Fatalf("head = %v, want (13,12)", head)
	}
}

func TestPauseStopsTicking(t *testing.T) {
	g := game.NewGame(0, types.SpeedNormal, 1)
	l, r, _ := newTestLoop(g)
	interval := types.SpeedNormal.Interval()

	l.Control(Control{Kind: Start})
	l.Frame(t0)
	l.Control(Control{Kind: Pause})
	l.Frame(t0.Add(interval))
	if l.Ticking() || r.last().State != game.Paused {
		t.Fatalf("ticking=%v state=%v after pause", l.Ticking(), r.last().State)
	}
	paused := r.last().Snake[0]
	l.Frame(t0.Add(10 * interval))
	if r.last().Snake[0] != paused {
		t.Fatalf("paused game moved")
	}

	// Resuming re-anchors the schedule instead of catching up.
	l.Control(Control{Kind: Start})
	l.Frame(t0.Add(11 * interval))
	if r.last().Snake[0] != paused {
		t.Fatalf("resumed game stepped on the resume frame")
	}
	l.Frame(t0.Add(12 * interval))
	if r.last().Snake[0] == paused {
		t.Fatalf("resumed game never stepped")
	}
}

func TestResetRendersWithoutTicking(t *testing.T) {
	g := game.NewGame(0, types.SpeedNormal, 1)
	l, r, _ := newTestLoop(g)
	l.Control(Control{Kind: Start})
	l.Frame(t0)
	l.Frame(t0.Add(types.SpeedNormal.Interval()))

	l.Control(Control{Kind: Reset})
	l.Frame(t0.Add(5 * types.SpeedNormal.Interval()))
	if l.Ticking() {
		t.Fatalf("still ticking after reset")
	}
	snap := r.last()
	if snap.State != game.Idle || snap.Snake[0] != (types.Point{X: 12, Y: 12}) {
		t.Fatalf("after reset: state=%v head=%v", snap.State, snap.Snake[0])
	}
}

func TestGameOverStopsTickingAndSavesBest(t *testing.T) {
	sg := &scriptedGame{Game: game.NewGame(0, types.SpeedNormal, 1), endOn: 2}
	l, r, st := newTestLoop(sg)
	interval := types.SpeedNormal.Interval()

	l.Control(Control{Kind: Start})
	l.Frame(t0)
	l.Frame(t0.Add(interval))
	l.Frame(t0.Add(2 * interval))
	if l.Ticking() {
		t.Fatalf("still ticking after the game ended")
	}
	if st.best != 9 || st.saves != 1 {
		t.Fatalf("settings best=%d saves=%d, want 9 and 1", st.best, st.saves)
	}
	frames := len(r.frames)
	if frames != 3 {
		t.Fatalf("drew %d frames, want 3 including the final one", frames)
	}

	l.Frame(t0.Add(3 * interval))
	if sg.steps != 2 {
		t.Fatalf("stepped %d times after game over", sg.steps-2)
	}
}

func TestBestNotSavedWhenNotBeaten(t *testing.T) {
	sg := &scriptedGame{Game: game.NewGame(0, types.SpeedNormal, 1), endOn: 1}
	l, _, st := newTestLoop(sg)
	st.best = 20

	l.Control(Control{Kind: Start})
	l.Frame(t0)
	l.Frame(t0.Add(types.SpeedNormal.Interval()))
	if st.saves != 0 || st.best != 20 {
		t.Fatalf("saves=%d best=%d, want no save and best 20", st.saves, st.best)
	}
}

func TestSaveErrorIsNotFatal(t *testing.T) {
	sg := &scriptedGame{Game: game.NewGame(0, types.SpeedNormal, 1), endOn: 1}
	l, r, st := newTestLoop(sg)
	st.saveErr = errors.New("disk full")

	l.Control(Control{Kind: Start})
	l.Frame(t0)
	l.Frame(t0.Add(types.SpeedNormal.Interval()))
	if st.saves != 1 || len(r.frames) != 2 {
		t.Fatalf("saves=%d frames=%d", st.saves, len(r.frames))
	}
}

func TestSpeedAndThemeControls(t *testing.T) {
	g := game.NewGame(0, types.SpeedNormal, 1)
	l, r, st := newTestLoop(g)

	l.Control(Control{Kind: SetSpeed, Speed: types.SpeedFast})
	l.Control(Control{Kind: ToggleTheme})
	l.Frame(t0)
	if g.StepInterval() != types.SpeedFast.Interval() || r.last().Speed != types.SpeedFast {
		t.Fatalf("speed not applied: interval=%v speed=%v", g.StepInterval(), r.last().Speed)
	}
	if r.last().Theme != types.ThemeLight || st.saves != 1 {
		t.Fatalf("theme=%v saves=%d", r.last().Theme, st.saves)
	}

	l.Control(Control{Kind: Reset})
	l.Frame(t0.Add(time.Millisecond))
	if g.StepInterval() != types.SpeedFast.Interval() {
		t.Fatalf("reset dropped the selected speed: %v", g.StepInterval())
	}
}

func TestControlQueueOverflowDrops(t *testing.T) {
	l, _, _ := newTestLoop(game.NewGame(0, types.SpeedNormal, 1))
	for i := 0; i < controlBuffer; i++ {
		if !l.Control(Control{Kind: Pause}) {
			t.Fatalf("control %d dropped before the buffer filled", i)
		}
	}
	if l.Control(Control{Kind: Pause}) {
		t.Fatalf("control accepted past the buffer")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	l, r, _ := newTestLoop(game.NewGame(0, types.SpeedNormal, 1))
	frames := make(chan time.Time)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx, frames) }()

	frames <- t0
	frames <- t0.Add(time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after cancel")
	}
	if len(r.frames) != 2 {
		t.Fatalf("drew %d frames, want 2", len(r.frames))
	}
}

func TestRunStopsWhenFramesClose(t *testing.T) {
	l, _, _ := newTestLoop(game.NewGame(0, types.SpeedNormal, 1))
	frames := make(chan time.Time)
	close(frames)
	if err := l.Run(context.Background(), frames); err != nil {
		t.Fatalf("Run() = %v", err)
	}
}

func TestDispatch(t *testing.T) {
	g := game.NewGame(0, types.SpeedNormal, 1)
	l, r, _ := newTestLoop(g)
	l.Dispatch(ControlInput(Start))
	l.Dispatch(SpeedInput(types.SpeedSlow))
	l.Dispatch(DirectionInput(types.Up))
	l.Dispatch(Input{})
	l.Frame(t0)
	if r.last().State != game.Running || r.last().Speed != types.SpeedSlow {
		t.Fatalf("state=%v speed=%v", r.last().State, r.last().Speed)
	}
	l.Frame(t0.Add(types.SpeedSlow.Interval()))
	if head := r.last().Snake[0]; head != (types.Point{X: 12, Y: 11}) {
		t.Fatalf("head = %v, want (12,11)", head)
	}
}
