package term

import (
	"snake-classic/game/loop"
	"snake-classic/game/types"

	"github.com/nsf/termbox-go"
)

var keyInputs = map[termbox.Key]loop.Input{
	termbox.KeyArrowUp:    loop.DirectionInput(types.Up),
	termbox.KeyArrowDown:  loop.DirectionInput(types.Down),
	termbox.KeyArrowLeft:  loop.DirectionInput(types.Left),
	termbox.KeyArrowRight: loop.DirectionInput(types.Right),
	termbox.KeySpace:      loop.ControlInput(loop.Start),
	termbox.KeyEnter:      loop.ControlInput(loop.Start),
}

var runeInputs = map[rune]loop.Input{
	'w': loop.DirectionInput(types.Up),
	's': loop.DirectionInput(types.Down),
	'a': loop.DirectionInput(types.Left),
	'd': loop.DirectionInput(types.Right),
	'p': loop.ControlInput(loop.Pause),
	'r': loop.ControlInput(loop.Reset),
	't': loop.ControlInput(loop.ToggleTheme),
	'1': loop.SpeedInput(types.SpeedSlow),
	'2': loop.SpeedInput(types.SpeedNormal),
	'3': loop.SpeedInput(types.SpeedFast),
}

// inputForEvent decodes a key event. Letters are case-insensitive.
func inputForEvent(ev termbox.Event) (loop.Input, bool) {
	if ev.Type != termbox.EventKey {
		return loop.Input{}, false
	}
	if ev.Ch == 0 {
		in, ok := keyInputs[ev.Key]
		return in, ok
	}
	ch := ev.Ch
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	in, ok := runeInputs[ch]
	return in, ok
}

func isQuit(ev termbox.Event) bool {
	if ev.Type != termbox.EventKey {
		return false
	}
	switch {
	case ev.Ch == 0:
		return ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC
	default:
		return ev.Ch == 'q' || ev.Ch == 'Q'
	}
}
