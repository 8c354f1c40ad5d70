package term

import (
	"context"
	"time"

	"snake-classic/game/loop"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Run takes over the terminal and drives l at fps frames per second until
// ctx is cancelled or the player quits. The renderer passed to l must draw
// through termbox, see NewRenderer.
func Run(ctx context.Context, l *loop.Loop, fps int, log zerolog.Logger) error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.OutputNormal)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// PollEvent cannot be interrupted safely once Close has run, so the
	// reader is left blocked until the process exits.
	go func() {
		for {
			ev := termbox.PollEvent()
			switch {
			case ev.Type == termbox.EventError:
				log.Error().Err(ev.Err).Msg("terminal input")
				cancel()
				return
			case isQuit(ev):
				cancel()
				return
			}
			if in, ok := inputForEvent(ev); ok {
				l.Dispatch(in)
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	log.Info().Int("fps", fps).Msg("terminal opened")
	return l.Run(ctx, ticker.C)
}
