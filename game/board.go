package game

import (
	"snejk/game/entity"
	"snejk/game/manager"
	"snejk/game/types"
)

// Board owns the snake, the food and the one-shot hazard.
type Board struct {
	Grid types.Grid

	snake        *entity.Snake
	food         types.Point
	hazard       types.Point
	hazardActive bool

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// NewBoard places a length-1 snake just left of centre and rolls the first food.
func NewBoard(grid types.Grid, rng types.Rand) *Board {
	collisionMgr := manager.NewCollisionManager(grid)
	b := &Board{
		Grid:         grid,
		snake:        entity.NewSnake(StartPosition(grid)),
		hazard:       types.Point{X: -1, Y: -1},
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
	}
	b.GenerateFood()
	return b
}

// StartPosition is where every new snake appears.
func StartPosition(grid types.Grid) types.Point {
	return types.Point{X: grid.Width/2 - types.CellSize, Y: grid.Height / 2}
}

func (b *Board) GenerateFood() {
	b.food = b.foodMgr.GenerateFood(b.snake, b.hazard, b.hazardActive)
}

// GenerateHazard places the hazard and activates it. It stays put until the
// board is replaced.
func (b *Board) GenerateHazard() {
	b.hazard = b.foodMgr.GenerateHazard(b.snake, b.food)
	b.hazardActive = true
}

func (b *Board) Snake() *entity.Snake {
	return b.snake
}

func (b *Board) Food() types.Point {
	return b.food
}

// Hazard returns the hazard cell and whether it has spawned.
func (b *Board) Hazard() (types.Point, bool) {
	return b.hazard, b.hazardActive
}

func (b *Board) HeadOnFood() bool {
	return b.collisionMgr.IsFoodCollision(b.snake.Head(), b.food)
}

// Collision reports what, if anything, the head ran into.
func (b *Board) Collision() manager.CollisionType {
	return b.collisionMgr.CheckCollision(b.snake, b.hazard, b.hazardActive)
}
