package types

// Direction is the heading of the snake's head.
type Direction int

const (
	None Direction = iota // idle, before the first key press
	Up
	Down
	Left
	Right
)

// Opposite returns the reverse heading. None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

// Vector returns the unit step for d in screen coordinates (Y grows downward).
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Directions lists the four headings in the order input is polled.
var Directions = [4]Direction{Up, Down, Left, Right}
