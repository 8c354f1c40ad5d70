package ui

import (
	"snake-classic/game/loop"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyInputs = map[int32]loop.Input{
	rl.KeyUp:    loop.DirectionInput(types.Up),
	rl.KeyW:     loop.DirectionInput(types.Up),
	rl.KeyDown:  loop.DirectionInput(types.Down),
	rl.KeyS:     loop.DirectionInput(types.Down),
	rl.KeyLeft:  loop.DirectionInput(types.Left),
	rl.KeyA:     loop.DirectionInput(types.Left),
	rl.KeyRight: loop.DirectionInput(types.Right),
	rl.KeyD:     loop.DirectionInput(types.Right),

	rl.KeySpace: loop.ControlInput(loop.Start),
	rl.KeyEnter: loop.ControlInput(loop.Start),
	rl.KeyP:     loop.ControlInput(loop.Pause),
	rl.KeyR:     loop.ControlInput(loop.Reset),
	rl.KeyT:     loop.ControlInput(loop.ToggleTheme),
	rl.KeyOne:   loop.SpeedInput(types.SpeedSlow),
	rl.KeyTwo:   loop.SpeedInput(types.SpeedNormal),
	rl.KeyThree: loop.SpeedInput(types.SpeedFast),
}

// pollInput forwards this frame's key presses in the order they happened.
// Unmapped keys are ignored.
func pollInput(l *loop.Loop) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if in, ok := keyInputs[key]; ok {
			l.Dispatch(in)
		}
	}
}
