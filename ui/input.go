package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snejk/game"
	"snejk/game/types"
)

var directionKeys = map[int32]types.Heading{
	rl.KeyUp:    types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyRight: types.Right,
}

var commandKeys = map[int32]game.InputKind{
	rl.KeyS: game.InputStart,
	rl.KeyL: game.InputLeaderboard,
	rl.KeyR: game.InputRestart,
	rl.KeyQ: game.InputQuit,
}

// PollInput drains the keys pressed since the last frame. While a name is
// being typed, letters are text rather than commands.
func PollInput(naming bool) []game.Input {
	var events []game.Input

	if rl.WindowShouldClose() {
		return append(events, game.Input{Kind: game.InputQuit})
	}

	if naming {
		for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
			events = append(events, game.Char(rune(ch)))
		}
		if rl.IsKeyPressed(rl.KeyBackspace) {
			events = append(events, game.Input{Kind: game.InputBackspace})
		}
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
			events = append(events, game.Input{Kind: game.InputSubmit})
		}
		return events
	}

	for key := rl.GetKeyPressed(); key > 0; key = rl.GetKeyPressed() {
		if h, ok := directionKeys[key]; ok {
			events = append(events, game.Direction(h))
			continue
		}
		if kind, ok := commandKeys[key]; ok {
			events = append(events, game.Input{Kind: kind})
		}
	}
	return events
}
