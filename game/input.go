package game

import "snejk/game/types"

// Phase is a game-flow state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseLeaderboard
	PhaseExit
)

// String names the phase for logs.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	case PhaseLeaderboard:
		return "leaderboard"
	case PhaseExit:
		return "exit"
	}
	return "unknown"
}

// InputKind enumerates the discrete events frontends feed the controller.
type InputKind int

const (
	InputNone InputKind = iota
	InputDirection
	InputStart
	InputLeaderboard
	InputRestart
	InputQuit
	InputChar
	InputBackspace
	InputSubmit
)

// Input is one event from a frontend. Only the field matching Kind is set.
type Input struct {
	Kind    InputKind
	Heading types.Heading // InputDirection
	Rune    rune          // InputChar
}

// Direction asks the snake to turn toward h.
func Direction(h types.Heading) Input { return Input{Kind: InputDirection, Heading: h} }

// Char is one typed rune during name entry.
func Char(r rune) Input { return Input{Kind: InputChar, Rune: r} }

// Cues receives fire-and-forget notifications for audio or visual effects.
type Cues interface {
	FoodEaten()
	Died()
	PhaseChanged(from, to Phase)
}

// NopCues ignores every cue.
type NopCues struct{}

func (NopCues) FoodEaten()                  {}
func (NopCues) Died()                       {}
func (NopCues) PhaseChanged(from, to Phase) {}
