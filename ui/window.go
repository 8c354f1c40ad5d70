package ui

import (
	"context"
	"time"

	"snake-classic/game/loop"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

const (
	windowWidth  = 620
	windowHeight = 680
)

// Run opens the window and drives l once per display refresh until the
// window is closed or ctx is cancelled. raylib must stay on the calling
// goroutine, so this never returns early on its own.
func Run(ctx context.Context, l *loop.Loop, fps int, log zerolog.Logger) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(fps))
	log.Info().Int("fps", fps).Msg("window opened")

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}
		pollInput(l)
		l.Frame(time.Now())
	}
	log.Info().Msg("window closed")
}
