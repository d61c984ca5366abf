package game

import (
	"testing"

	"golang.org/x/exp/rand"

	"snejk/game/manager"
	"snejk/game/types"
)

var testGrid = types.Grid{Width: types.BoardWidth, Height: types.BoardHeight}

func TestNewBoard(t *testing.T) {
	b := NewBoard(testGrid, rand.New(rand.NewSource(1)))

	if b.Snake().Len() != 1 {
		t.Fatalf("expected length 1, got %d", b.Snake().Len())
	}
	if b.Snake().Head() != (types.Point{X: 280, Y: 300}) {
		t.Errorf("unexpected start %v", b.Snake().Head())
	}
	if b.Snake().Occupies(b.Food()) {
		t.Error("food placed on snake")
	}
	if _, active := b.Hazard(); active {
		t.Error("hazard must start inactive")
	}
	if b.Collision() != manager.NoCollision {
		t.Error("fresh board should have no collision")
	}
}

func TestBoardSeededIsReproducible(t *testing.T) {
	a := NewBoard(testGrid, rand.New(rand.NewSource(99)))
	b := NewBoard(testGrid, rand.New(rand.NewSource(99)))

	for i := 0; i < 20; i++ {
		if a.Food() != b.Food() {
			t.Fatalf("roll %d: %v != %v", i, a.Food(), b.Food())
		}
		a.GenerateFood()
		b.GenerateFood()
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	b := NewBoard(testGrid, rand.New(rand.NewSource(3)))
	snake := b.Snake()
	for i := 0; i < 60; i++ {
		snake.Grow(snake.Tail())
		snake.Move(b.Grid)
	}

	for i := 0; i < 1000; i++ {
		b.GenerateFood()
		if snake.Occupies(b.Food()) {
			t.Fatalf("trial %d: food %v on snake", i, b.Food())
		}
	}
}

func TestGenerateHazard(t *testing.T) {
	b := NewBoard(testGrid, rand.New(rand.NewSource(5)))
	for i := 0; i < 200; i++ {
		b.GenerateHazard()
		hazard, active := b.Hazard()
		if !active {
			t.Fatal("hazard should be active after spawning")
		}
		if hazard == b.Food() || hazard == b.Snake().Head() {
			t.Fatalf("hazard %v overlaps food %v or head", hazard, b.Food())
		}
	}
}

func TestHeadOnFood(t *testing.T) {
	b := NewBoard(testGrid, rand.New(rand.NewSource(2)))
	b.food = b.Snake().Head()
	if !b.HeadOnFood() {
		t.Error("expected head on food")
	}
}
