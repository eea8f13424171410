package manager

import (
	"polysnake/game/types"
)

// RandomSource supplies uniform integers in [0, n). *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Food is a square the snake eats when its head enters it.
type Food struct {
	Position types.Point // top-left corner
	Size     float64
}

// Contains reports whether p lies in the square, edges included.
func (f Food) Contains(p types.Point) bool {
	return f.Position.X <= p.X && p.X <= f.Position.X+f.Size &&
		f.Position.Y <= p.Y && p.Y <= f.Position.Y+f.Size
}

type FoodManager struct {
	field    types.Playfield
	cellSize float64
	size     float64
	rng      RandomSource
	food     Food
}

// NewFoodManager returns a manager with no food placed yet; call Place.
func NewFoodManager(field types.Playfield, cellSize, size float64, rng RandomSource) *FoodManager {
	return &FoodManager{
		field:    field,
		cellSize: cellSize,
		size:     size,
		rng:      rng,
	}
}

// Place rolls a new food position, keeping one grid cell clear of the right
// and bottom edges.
func (fm *FoodManager) Place() Food {
	maxX := int(fm.field.Width - fm.cellSize)
	maxY := int(fm.field.Height - fm.cellSize)
	fm.food = Food{
		Position: types.Point{
			X: float64(fm.rng.Intn(maxX + 1)),
			Y: float64(fm.rng.Intn(maxY + 1)),
		},
		Size: fm.size,
	}
	return fm.food
}

func (fm *FoodManager) Current() Food {
	return fm.food
}
