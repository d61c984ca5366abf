// Package tty renders the game in a terminal. Each board cell is two columns
// wide so the board keeps its square shape.
package tty

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snejk/game"
	"snejk/game/manager"
	"snejk/game/types"
)

const (
	originX = 1
	originY = 2
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSnake  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHazard = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

var headRunes = map[types.Heading]rune{
	types.Up:    '▲',
	types.Down:  '▼',
	types.Left:  '◀',
	types.Right: '▶',
}

type Screen struct {
	screen tcell.Screen
}

// NewScreen takes over the terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	return &Screen{screen: s}, nil
}

// NewScreenFrom wraps an already initialised screen, such as a simulation screen.
func NewScreenFrom(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

// Sync redraws the whole terminal, used after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Events reads terminal events on its own goroutine until quit is closed.
func (s *Screen) Events(quit <-chan struct{}) <-chan tcell.Event {
	ch := make(chan tcell.Event, 100)
	go s.screen.ChannelEvents(ch, quit)
	return ch
}

func (s *Screen) text(x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (s *Screen) centered(snap game.Snapshot, y int, str string, style tcell.Style) {
	width := snap.Grid.Cols()*2 + 2
	x := originX + (width-len([]rune(str)))/2
	if x < originX {
		x = originX
	}
	s.text(x, y, str, style)
}

// cell writes a two-column board cell.
func (s *Screen) cell(p types.Point, r rune, style tcell.Style) {
	x := originX + 1 + (p.X/types.CellSize)*2
	y := originY + 1 + p.Y/types.CellSize
	s.screen.SetContent(x, y, r, nil, style)
	s.screen.SetContent(x+1, y, ' ', nil, style)
}

func (s *Screen) Draw(snap game.Snapshot) {
	s.screen.Clear()

	s.text(originX, 0, fmt.Sprintf("SNEJK  score %-5d best %-5d games %d", snap.Score, best(snap), snap.Stats.GamesPlayed), styleTitle)
	s.drawBorder(snap)

	switch snap.Phase {
	case game.PhaseMenu:
		mid := originY + snap.Grid.Rows()/2
		if snap.Naming {
			s.centered(snap, mid-1, "Enter your name:", styleText)
			s.centered(snap, mid+1, snap.NameInput+"_", styleTitle)
		} else {
			s.centered(snap, mid-1, "S start   L leaderboard   Q quit", styleText)
		}
	case game.PhasePlaying:
		s.drawBoard(snap)
	case game.PhaseGameOver:
		s.drawBoard(snap)
		s.drawGameOver(snap)
	case game.PhaseLeaderboard:
		s.drawLeaderboard(snap)
	}

	s.screen.Show()
}

func (s *Screen) drawBorder(snap game.Snapshot) {
	w := snap.Grid.Cols()*2 + 1
	h := snap.Grid.Rows() + 1
	for x := 0; x <= w; x++ {
		s.screen.SetContent(originX+x, originY, '─', nil, styleBorder)
		s.screen.SetContent(originX+x, originY+h, '─', nil, styleBorder)
	}
	for y := 0; y <= h; y++ {
		s.screen.SetContent(originX, originY+y, '│', nil, styleBorder)
		s.screen.SetContent(originX+w, originY+y, '│', nil, styleBorder)
	}
	s.screen.SetContent(originX, originY, '┌', nil, styleBorder)
	s.screen.SetContent(originX+w, originY, '┐', nil, styleBorder)
	s.screen.SetContent(originX, originY+h, '└', nil, styleBorder)
	s.screen.SetContent(originX+w, originY+h, '┘', nil, styleBorder)
}

func (s *Screen) drawBoard(snap game.Snapshot) {
	s.cell(snap.Food, '●', styleFood)
	if snap.HazardActive {
		s.cell(snap.Hazard, '▓', styleHazard)
	}
	for i := len(snap.Body) - 1; i > 0; i-- {
		s.cell(snap.Body[i], '█', styleSnake)
	}
	if len(snap.Body) > 0 {
		s.cell(snap.Body[0], headRunes[snap.Heading], styleHead)
	}
}

func (s *Screen) drawGameOver(snap game.Snapshot) {
	mid := originY + snap.Grid.Rows()/2
	reason := ""
	switch snap.LastCollision {
	case manager.SelfCollision:
		reason = " (bit yourself)"
	case manager.HazardCollision:
		reason = " (hit the hazard)"
	}
	s.centered(snap, mid-1, "GAME OVER"+reason, styleTitle)
	s.centered(snap, mid, fmt.Sprintf("final score %d", snap.Score), styleText)
	s.centered(snap, mid+1, "R restart   Q quit", styleText)
}

func (s *Screen) drawLeaderboard(snap game.Snapshot) {
	y := originY + 2
	s.centered(snap, y, "LEADERBOARD", styleTitle)
	y += 2
	if len(snap.Leaderboard) == 0 {
		s.centered(snap, y, "no scores yet", styleText)
		return
	}
	for i, e := range snap.Leaderboard {
		s.text(originX+6, y, fmt.Sprintf("%2d. %-16s %5d", i+1, e.Name, e.Score), styleText)
		y++
	}
}

func best(snap game.Snapshot) int {
	if len(snap.Leaderboard) == 0 {
		return 0
	}
	return snap.Leaderboard[0].Score
}
