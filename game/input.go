package game

import "polysnake/game/types"

// Input exposes the pressed state of the four direction keys.
type Input interface {
	Pressed(dir types.Direction) bool
}

// requestedDirection returns the first pressed heading that does not reverse
// the current one, polling up, down, left, right in that order.
func requestedDirection(in Input, current types.Direction) types.Direction {
	for _, dir := range types.Directions {
		if in.Pressed(dir) && dir != current.Opposite() {
			return dir
		}
	}
	return current
}
