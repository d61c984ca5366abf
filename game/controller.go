package game

import (
	"log"
	"strings"
	"time"
	"unicode"

	"golang.org/x/exp/rand"

	"snejk/config"
	"snejk/game/manager"
	"snejk/game/types"
	"snejk/leaderboard"
	"snejk/stats"
)

// Controller drives the game flow: menu, name entry, play, game over and the
// leaderboard screen. It is not safe for concurrent use; one frame loop owns it.
type Controller struct {
	cfg   config.Config
	phase Phase
	board *Board
	rng   types.Rand

	score         int
	name          string
	naming        bool
	nameBuf       []rune
	pending       types.Heading
	hasPending    bool
	lastCollision manager.CollisionType

	leaderboard *leaderboard.Leaderboard
	history     *stats.GameStats
	cues        Cues

	now          func() time.Time
	lastStep     time.Time
	phaseEntered time.Time
	gameStart    time.Time
}

// NewController starts in the menu. A nil rng is seeded from the clock, a nil
// leaderboard or history is kept in memory and nil cues are silent.
func NewController(cfg config.Config, lb *leaderboard.Leaderboard, history *stats.GameStats, cues Cues, rng types.Rand) *Controller {
	if lb == nil {
		lb = leaderboard.New(&leaderboard.MemoryStore{})
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if history == nil {
		history, _ = stats.NewGameStats("")
	}
	if cues == nil {
		cues = NopCues{}
	}

	c := &Controller{
		cfg:         cfg,
		phase:       PhaseMenu,
		rng:         rng,
		leaderboard: lb,
		history:     history,
		cues:        cues,
		now:         time.Now,
	}
	c.board = NewBoard(cfg.Grid, rng)
	c.phaseEntered = c.now()
	return c
}

func (c *Controller) Phase() Phase {
	return c.phase
}

func (c *Controller) Running() bool {
	return c.phase != PhaseExit
}

func (c *Controller) Score() int {
	return c.score
}

func (c *Controller) Board() *Board {
	return c.board
}

func (c *Controller) PlayerName() string {
	return c.name
}

// Naming reports whether the modal name entry owns the input.
func (c *Controller) Naming() bool {
	return c.naming
}

// Handle applies one input event. Events that mean nothing in the current
// phase are ignored.
func (c *Controller) Handle(in Input) {
	if in.Kind == InputQuit {
		c.naming = false
		c.setPhase(PhaseExit)
		return
	}

	switch c.phase {
	case PhaseMenu:
		if c.naming {
			c.handleNameEntry(in)
			return
		}
		switch in.Kind {
		case InputStart:
			c.naming = true
			c.nameBuf = c.nameBuf[:0]
		case InputLeaderboard:
			c.setPhase(PhaseLeaderboard)
		}

	case PhasePlaying:
		if in.Kind == InputDirection {
			c.pending = in.Heading
			c.hasPending = true
		}

	case PhaseGameOver:
		if in.Kind == InputRestart {
			c.startGame()
		}
	}
}

func (c *Controller) handleNameEntry(in Input) {
	switch in.Kind {
	case InputChar:
		if unicode.IsPrint(in.Rune) && len(c.nameBuf) < c.cfg.MaxNameLength {
			c.nameBuf = append(c.nameBuf, in.Rune)
		}
	case InputBackspace:
		if len(c.nameBuf) > 0 {
			c.nameBuf = c.nameBuf[:len(c.nameBuf)-1]
		}
	case InputSubmit:
		name := strings.TrimSpace(string(c.nameBuf))
		if name == "" {
			return
		}
		c.name = name
		c.naming = false
		c.startGame()
	}
}

// Update paces the simulation against the wall clock and ends the
// leaderboard dwell. Frontends call it once per frame.
func (c *Controller) Update(now time.Time) {
	switch c.phase {
	case PhasePlaying:
		if now.Sub(c.lastStep) >= c.cfg.StepDelay {
			c.lastStep = now
			c.Step()
		}
	case PhaseLeaderboard:
		if now.Sub(c.phaseEntered) >= c.cfg.LeaderboardDwell {
			c.setPhase(PhaseMenu)
		}
	}
}

// Step advances play by exactly one tick.
func (c *Controller) Step() {
	if c.phase != PhasePlaying {
		return
	}

	snake := c.board.Snake()
	if c.hasPending {
		snake.SetHeading(c.pending)
		c.hasPending = false
	}
	snake.Move(c.board.Grid)

	// Food never spawns on the snake or the hazard, so an eating tick cannot
	// collide; the segment just grown may still overlap a length-1 head.
	if c.board.HeadOnFood() {
		snake.Grow(snake.Tail())
		c.board.GenerateFood()
		c.score += types.FoodPoints
		c.cues.FoodEaten()

		if _, active := c.board.Hazard(); !active && c.score >= types.HazardThreshold {
			c.board.GenerateHazard()
		}
		return
	}

	if collision := c.board.Collision(); collision != manager.NoCollision {
		c.lastCollision = collision
		c.gameOver()
	}
}

// Reset replaces the board and clears the score. The player name is kept.
func (c *Controller) Reset() {
	c.board = NewBoard(c.cfg.Grid, c.rng)
	c.score = 0
	c.hasPending = false
	c.lastCollision = manager.NoCollision
}

func (c *Controller) startGame() {
	c.Reset()
	now := c.now()
	c.gameStart = now
	c.lastStep = now
	c.setPhase(PhasePlaying)
}

func (c *Controller) gameOver() {
	c.setPhase(PhaseGameOver)
	c.cues.Died()

	log.Printf("[snejk] game over: %s scored %d (%s collision)", c.name, c.score, c.lastCollision)

	if err := c.leaderboard.Insert(c.score, c.name); err != nil {
		log.Printf("[snejk] %v", err)
	}

	c.history.AddGame(c.name, c.score, c.gameStart, c.now())
	if err := c.history.SaveToFile(); err != nil {
		log.Printf("[snejk] save stats: %v", err)
	}
}

func (c *Controller) setPhase(p Phase) {
	if p == c.phase {
		return
	}
	from := c.phase
	c.phase = p
	c.phaseEntered = c.now()
	c.cues.PhaseChanged(from, p)
}

// Snapshot is everything a frontend needs to draw one frame.
type Snapshot struct {
	Phase         Phase
	Grid          types.Grid
	Body          []types.Point
	Heading       types.Heading
	Food          types.Point
	Hazard        types.Point
	HazardActive  bool
	Score         int
	Leaderboard   []leaderboard.Entry
	PlayerName    string
	NameInput     string
	Naming        bool
	LastCollision manager.CollisionType
	Stats         stats.Summary
}

func (c *Controller) Snapshot() Snapshot {
	snake := c.board.Snake()
	hazard, active := c.board.Hazard()
	return Snapshot{
		Phase:         c.phase,
		Grid:          c.board.Grid,
		Body:          snake.Body(),
		Heading:       snake.Heading(),
		Food:          c.board.Food(),
		Hazard:        hazard,
		HazardActive:  active,
		Score:         c.score,
		Leaderboard:   c.leaderboard.Entries(),
		PlayerName:    c.name,
		NameInput:     string(c.nameBuf),
		Naming:        c.naming,
		LastCollision: c.lastCollision,
		Stats:         c.history.Summary(),
	}
}
