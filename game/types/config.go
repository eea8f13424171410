package types

import (
	"errors"
	"fmt"
)

// Game defaults.
const (
	DefaultWidth           = 1280
	DefaultHeight          = 720
	DefaultCellSize        = 40
	DefaultSpeed           = 600 // pixels per second
	DefaultInitialLength   = 50
	DefaultLengthIncrement = 90
	DefaultThickness       = 10
	DefaultFPS             = 60

	// CornerTolerance is the bounding-box slack used when a perpendicular
	// body segment is tested against the head segment.
	CornerTolerance = 1.0
)

// Config holds the tunables of a game session.
type Config struct {
	Width           float64
	Height          float64
	CellSize        float64
	Speed           float64
	InitialLength   float64
	LengthIncrement float64
	Thickness       float64
	Tolerance       float64
	FPS             int
	Seed            uint64
}

func DefaultConfig() Config {
	return Config{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		CellSize:        DefaultCellSize,
		Speed:           DefaultSpeed,
		InitialLength:   DefaultInitialLength,
		LengthIncrement: DefaultLengthIncrement,
		Thickness:       DefaultThickness,
		Tolerance:       CornerTolerance,
		FPS:             DefaultFPS,
	}
}

func (c Config) Playfield() Playfield {
	return Playfield{Width: c.Width, Height: c.Height}
}

// FoodSize is the side of the food square.
func (c Config) FoodSize() float64 {
	return 4 * c.Thickness
}

var ErrInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: playfield %gx%g", ErrInvalidConfig, c.Width, c.Height)
	case c.CellSize <= 0 || c.CellSize >= c.Width || c.CellSize >= c.Height:
		return fmt.Errorf("%w: cell size %g", ErrInvalidConfig, c.CellSize)
	case c.Speed <= 0:
		return fmt.Errorf("%w: speed %g", ErrInvalidConfig, c.Speed)
	case c.InitialLength <= 0 || c.InitialLength >= c.Width/2:
		return fmt.Errorf("%w: initial length %g", ErrInvalidConfig, c.InitialLength)
	case c.LengthIncrement <= 0:
		return fmt.Errorf("%w: length increment %g", ErrInvalidConfig, c.LengthIncrement)
	case c.Thickness <= 0:
		return fmt.Errorf("%w: thickness %g", ErrInvalidConfig, c.Thickness)
	case c.Tolerance < 0:
		return fmt.Errorf("%w: tolerance %g", ErrInvalidConfig, c.Tolerance)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	}
	return nil
}
