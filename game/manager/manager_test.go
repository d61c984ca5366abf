package manager

import (
	"testing"

	"golang.org/x/exp/rand"

	"snejk/game/entity"
	"snejk/game/types"
)

var grid = types.Grid{Width: types.BoardWidth, Height: types.BoardHeight}

// longSnake builds a snake that winds across most of the top rows.
func longSnake(n int) *entity.Snake {
	s := entity.NewSnake(types.Point{X: 0, Y: 0})
	for i := 0; i < n; i++ {
		s.Grow(s.Tail())
		s.Move(grid)
		if (i+1)%grid.Cols() == 0 {
			s.SetHeading(types.Down)
			s.Move(grid)
			s.SetHeading(types.Right)
		}
	}
	return s
}

// scriptedRand replays a fixed sequence of values.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)] % n
	r.calls++
	return v
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.New(rand.NewSource(42)), cm)
	snake := longSnake(200)

	for i := 0; i < 2000; i++ {
		food := fm.GenerateFood(snake, types.Point{X: -1, Y: -1}, false)
		if snake.Occupies(food) {
			t.Fatalf("trial %d: food %v placed on snake", i, food)
		}
		if !grid.Contains(food) {
			t.Fatalf("trial %d: food %v out of bounds", i, food)
		}
		if food.X%types.CellSize != 0 || food.Y%types.CellSize != 0 {
			t.Fatalf("trial %d: food %v not cell aligned", i, food)
		}
	}
}

func TestGenerateFoodRerolls(t *testing.T) {
	cm := NewCollisionManager(grid)
	snake := entity.NewSnake(types.Point{X: 40, Y: 60})
	// First roll lands on the head (2,3), second on (5,5).
	rng := &scriptedRand{values: []int{2, 3, 5, 5}}
	fm := NewFoodManager(grid, rng, cm)

	food := fm.GenerateFood(snake, types.Point{X: -1, Y: -1}, false)
	if food != (types.Point{X: 100, Y: 100}) {
		t.Errorf("expected reroll to (100,100), got %v", food)
	}
	if rng.calls != 4 {
		t.Errorf("expected 4 draws, got %d", rng.calls)
	}
}

func TestGenerateFoodAvoidsActiveHazard(t *testing.T) {
	cm := NewCollisionManager(grid)
	snake := entity.NewSnake(types.Point{X: 40, Y: 60})
	hazard := types.Point{X: 100, Y: 100}

	// First roll lands on the hazard (5,5), second on (7,1).
	rng := &scriptedRand{values: []int{5, 5, 7, 1}}
	fm := NewFoodManager(grid, rng, cm)
	if food := fm.GenerateFood(snake, hazard, true); food != (types.Point{X: 140, Y: 20}) {
		t.Errorf("expected reroll to (140,20), got %v", food)
	}

	// An inactive hazard does not block its cell.
	rng = &scriptedRand{values: []int{5, 5}}
	fm = NewFoodManager(grid, rng, cm)
	if food := fm.GenerateFood(snake, hazard, false); food != hazard {
		t.Errorf("expected (100,100), got %v", food)
	}
}

func TestGenerateHazardAvoidsFoodAndHead(t *testing.T) {
	cm := NewCollisionManager(grid)
	snake := entity.NewSnake(types.Point{X: 40, Y: 60})
	food := types.Point{X: 100, Y: 100}
	// Head, then food, then a free cell.
	rng := &scriptedRand{values: []int{2, 3, 5, 5, 7, 1}}
	fm := NewFoodManager(grid, rng, cm)

	hazard := fm.GenerateHazard(snake, food)
	if hazard != (types.Point{X: 140, Y: 20}) {
		t.Errorf("expected (140,20), got %v", hazard)
	}
}

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(grid)
	snake := entity.NewSnake(types.Point{X: 100, Y: 100})

	if got := cm.CheckCollision(snake, types.Point{X: 100, Y: 100}, false); got != NoCollision {
		t.Errorf("inactive hazard should not collide, got %v", got)
	}
	if got := cm.CheckCollision(snake, types.Point{X: 100, Y: 100}, true); got != HazardCollision {
		t.Errorf("expected hazard collision, got %v", got)
	}
	if got := cm.CheckCollision(snake, types.Point{X: 0, Y: 0}, true); got != NoCollision {
		t.Errorf("expected no collision, got %v", got)
	}
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(grid)
	snake := entity.NewSnake(types.Point{X: 100, Y: 100})

	tests := []struct {
		pos  types.Point
		want bool
	}{
		{types.Point{X: 0, Y: 0}, true},
		{types.Point{X: 100, Y: 100}, false},
		{types.Point{X: 600, Y: 0}, false},
		{types.Point{X: -20, Y: 0}, false},
		{types.Point{X: 10, Y: 0}, false},
	}
	for _, tt := range tests {
		if got := cm.ValidateSpawnPosition(tt.pos, snake); got != tt.want {
			t.Errorf("ValidateSpawnPosition(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}
