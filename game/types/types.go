package types

// Point is a pixel coordinate on the board, always a multiple of CellSize.
type Point struct {
	X, Y int
}

// Grid represents the board dimensions in pixels
type Grid struct {
	Width  int
	Height int
}

// Cols returns the number of cells across the board.
func (g Grid) Cols() int { return g.Width / CellSize }

// Rows returns the number of cells down the board.
func (g Grid) Rows() int { return g.Height / CellSize }

// Contains reports whether p lies inside the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Heading is the snake's current direction of travel.
type Heading int

const (
	Up Heading = iota
	Down
	Left
	Right
)

// Opposite returns the heading pointing the other way.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the one-cell pixel offset for h.
func (h Heading) Delta() Point {
	switch h {
	case Up:
		return Point{X: 0, Y: -CellSize}
	case Down:
		return Point{X: 0, Y: CellSize}
	case Left:
		return Point{X: -CellSize, Y: 0}
	default:
		return Point{X: CellSize, Y: 0}
	}
}

// String names the heading for logs.
func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Rand is the subset of a pseudo-random generator the board needs.
// *golang.org/x/exp/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Game constants
const (
	CellSize              = 20
	BoardWidth            = 600
	BoardHeight           = 600
	FoodPoints            = 10  // Score per food item
	HazardThreshold       = 100 // Score at which the hazard appears
	MaxLeaderboardEntries = 10
)
