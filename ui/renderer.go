package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snejk/game"
	"snejk/game/manager"
	"snejk/game/types"
)

const (
	borderPadding = 10  // Padding around game area
	StatsPanel    = 200 // Width of the panel right of the board
)

var (
	fieldColor  = rl.Color{R: 34, G: 52, B: 30, A: 255}
	snakeColor  = rl.Color{R: 90, G: 200, B: 80, A: 255}
	headColor   = rl.Color{R: 130, G: 240, B: 110, A: 255}
	hazardColor = rl.Color{R: 120, G: 80, B: 40, A: 255}
)

// WindowSize returns the window needed to fit a board of the given size.
func WindowSize(grid types.Grid) (int32, int32) {
	return int32(grid.Width) + StatsPanel + borderPadding*3, int32(grid.Height) + borderPadding*2
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
	cellSize     int32
}

func NewRenderer() *Renderer {
	r := &Renderer{
		offsetX:  borderPadding,
		offsetY:  borderPadding,
		cellSize: types.CellSize,
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	switch s.Phase {
	case game.PhaseMenu:
		if s.Naming {
			r.drawNameEntry(s)
		} else {
			r.drawMenu(s)
		}
	case game.PhasePlaying:
		r.drawBoard(s)
	case game.PhaseGameOver:
		r.drawBoard(s)
		r.drawGameOver(s)
	case game.PhaseLeaderboard:
		r.drawLeaderboard(s)
	}

	r.drawStatsPanel(s)
	rl.EndDrawing()
}

func (r *Renderer) boardWidth(s game.Snapshot) int32  { return int32(s.Grid.Width) }
func (r *Renderer) boardHeight(s game.Snapshot) int32 { return int32(s.Grid.Height) }

func (r *Renderer) cell(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X), r.offsetY + int32(p.Y)
}

func (r *Renderer) drawBoard(s game.Snapshot) {
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.boardWidth(s)+2, r.boardHeight(s)+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.boardWidth(s), r.boardHeight(s), fieldColor)

	fx, fy := r.cell(s.Food)
	rl.DrawCircle(fx+r.cellSize/2, fy+r.cellSize/2, float32(r.cellSize)/2-2, rl.Red)

	if s.HazardActive {
		hx, hy := r.cell(s.Hazard)
		rl.DrawRectangle(hx+3, hy+3, r.cellSize-6, r.cellSize-6, hazardColor)
	}

	// Draw tail first so the head stays on top when segments overlap.
	for i := len(s.Body) - 1; i >= 0; i-- {
		x, y := r.cell(s.Body[i])
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, color)
	}
	if len(s.Body) > 0 {
		r.drawHeading(s.Body[0], s.Heading)
	}

	rl.DrawText(fmt.Sprintf("Score: %d", s.Score), r.offsetX+10, r.offsetY+10, 20, rl.White)
}

func (r *Renderer) drawHeading(head types.Point, h types.Heading) {
	headX, headY := r.cell(head)
	size := float32(r.cellSize)
	half := size / 2
	x, y := float32(headX), float32(headY)

	var a, b, c rl.Vector2
	switch h {
	case types.Right:
		a, b, c = rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x + half, Y: y + size}
	case types.Left:
		a, b, c = rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + half, Y: y}
	case types.Down:
		a, b, c = rl.Vector2{X: x + half, Y: y + size}, rl.Vector2{X: x + size, Y: y + half}, rl.Vector2{X: x, Y: y + half}
	default:
		a, b, c = rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + size, Y: y + half}
	}
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) centered(s game.Snapshot, text string, y, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, r.offsetX+(r.boardWidth(s)-width)/2, y, fontSize, color)
}

func (r *Renderer) drawMenu(s game.Snapshot) {
	mid := r.offsetY + r.boardHeight(s)/2
	r.centered(s, "SNEJK", mid-80, 60, snakeColor)
	r.centered(s, "Press 'S' to Start, 'L' for Leaderboard", mid+10, 20, rl.White)
	r.centered(s, "Esc to quit", mid+40, 16, rl.Gray)
}

func (r *Renderer) drawNameEntry(s game.Snapshot) {
	r.centered(s, "Enter your name:", r.offsetY+50, 24, rl.White)
	r.centered(s, s.NameInput+"_", r.offsetY+100, 24, rl.Yellow)
}

func (r *Renderer) drawGameOver(s game.Snapshot) {
	mid := r.offsetY + r.boardHeight(s)/2
	rl.DrawRectangle(r.offsetX, mid-70, r.boardWidth(s), 130, rl.Fade(rl.Black, 0.75))
	r.centered(s, "Game Over", mid-50, 40, rl.Red)

	reason := ""
	switch s.LastCollision {
	case manager.SelfCollision:
		reason = "You bit yourself. "
	case manager.HazardCollision:
		reason = "You hit the hazard. "
	}
	r.centered(s, fmt.Sprintf("%sFinal score: %d", reason, s.Score), mid, 20, rl.White)
	r.centered(s, "Press 'R' to Restart, 'Q' to Quit", mid+30, 20, rl.White)
}

func (r *Renderer) drawLeaderboard(s game.Snapshot) {
	r.centered(s, "Leaderboard", r.offsetY+10, 30, rl.Gold)
	if len(s.Leaderboard) == 0 {
		r.centered(s, "No scores yet", r.offsetY+80, 20, rl.Gray)
		return
	}
	y := r.offsetY + 60
	for i, e := range s.Leaderboard {
		entry := fmt.Sprintf("%d. %s - %d", i+1, e.Name, e.Score)
		rl.DrawText(entry, r.offsetX+50, y, 20, rl.White)
		y += 30
	}
}

func (r *Renderer) drawStatsPanel(s game.Snapshot) {
	statsX := r.offsetX + r.boardWidth(s) + borderPadding
	statsY := r.offsetY
	fontSize := int32(18)
	lineHeight := int32(26)

	rl.DrawRectangle(statsX-5, 0, r.screenWidth-statsX+5, r.screenHeight, rl.DarkGray)

	if s.PlayerName != "" {
		rl.DrawText(s.PlayerName, statsX, statsY, fontSize, rl.Yellow)
		statsY += lineHeight
	}
	rl.DrawText(fmt.Sprintf("Score: %d", s.Score), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Length: %d", len(s.Body)), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight * 2

	best := 0
	if len(s.Leaderboard) > 0 {
		best = s.Leaderboard[0].Score
	}
	rl.DrawText(fmt.Sprintf("Best: %d", best), statsX, statsY, fontSize, rl.Green)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Games: %d", s.Stats.GamesPlayed), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Avg: %.1f", s.Stats.AverageScore), statsX, statsY, fontSize, rl.Green)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Avg time: %.0fs", s.Stats.AverageDuration.Seconds()), statsX, statsY, fontSize, rl.Purple)
}
