package manager

import (
	"snejk/game/entity"
	"snejk/game/types"
)

// FoodManager places food and the hazard on random free cells.
type FoodManager struct {
	grid         types.Grid
	rng          types.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng types.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

func (fm *FoodManager) randomCell() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Cols()) * types.CellSize,
		Y: fm.rng.Intn(fm.grid.Rows()) * types.CellSize,
	}
}

// GenerateFood rerolls until the cell is clear of the snake and, once it is
// active, the hazard.
func (fm *FoodManager) GenerateFood(snake *entity.Snake, hazard types.Point, hazardActive bool) types.Point {
	for {
		food := fm.randomCell()
		if fm.collisionMgr.IsHazardCollision(food, hazard, hazardActive) {
			continue
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food
		}
	}
}

// GenerateHazard rerolls until the cell is neither the food nor the head.
func (fm *FoodManager) GenerateHazard(snake *entity.Snake, food types.Point) types.Point {
	for {
		hazard := fm.randomCell()
		if hazard != food && hazard != snake.Head() {
			return hazard
		}
	}
}
