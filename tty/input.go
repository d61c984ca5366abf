package tty

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"snejk/game"
	"snejk/game/types"
)

// Translate maps a terminal key to a controller input. Keys with no meaning
// become InputNone.
func Translate(ev *tcell.EventKey, naming bool) game.Input {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return game.Input{Kind: game.InputQuit}
	}

	if naming {
		switch ev.Key() {
		case tcell.KeyEnter:
			return game.Input{Kind: game.InputSubmit}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return game.Input{Kind: game.InputBackspace}
		case tcell.KeyRune:
			return game.Char(ev.Rune())
		}
		return game.Input{}
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return game.Direction(types.Up)
	case tcell.KeyDown:
		return game.Direction(types.Down)
	case tcell.KeyLeft:
		return game.Direction(types.Left)
	case tcell.KeyRight:
		return game.Direction(types.Right)
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 's':
			return game.Input{Kind: game.InputStart}
		case 'l':
			return game.Input{Kind: game.InputLeaderboard}
		case 'r':
			return game.Input{Kind: game.InputRestart}
		case 'q':
			return game.Input{Kind: game.InputQuit}
		}
	}
	return game.Input{}
}
