package manager

import (
	"snejk/game/entity"
	"snejk/game/types"
)

// CollisionType is the reason a tick ended the game.
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
	HazardCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	case HazardCollision:
		return "hazard"
	}
	return "none"
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies the snake's current head position. A hazard is
// only considered once active.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake, hazard types.Point, hazardActive bool) CollisionType {
	if cm.IsHazardCollision(snake.Head(), hazard, hazardActive) {
		return HazardCollision
	}
	if snake.CheckSelfCollision() {
		return SelfCollision
	}
	return NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

func (cm *CollisionManager) IsHazardCollision(pos types.Point, hazard types.Point, active bool) bool {
	return active && pos == hazard
}

// ValidateSpawnPosition checks that pos is on the board, cell aligned and
// clear of every snake segment.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	if pos.X%types.CellSize != 0 || pos.Y%types.CellSize != 0 {
		return false
	}
	return !snake.Occupies(pos)
}
