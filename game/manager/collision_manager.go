package manager

import (
	"math"

	"polysnake/game/entity"
	"polysnake/game/types"
)

type CollisionManager struct {
	field     types.Playfield
	thickness float64
	tolerance float64
}

// NewCollisionManager returns a detector for snakes of the given thickness.
// tolerance is the bounding-box slack for perpendicular segments.
func NewCollisionManager(field types.Playfield, thickness, tolerance float64) *CollisionManager {
	return &CollisionManager{
		field:     field,
		thickness: thickness,
		tolerance: tolerance,
	}
}

// CheckSelfCollision tests the segment ending at the head against the rest of
// the drawn body. The head segment and the segment it grows out of are
// skipped; seams are never drawn so they are never tested.
func (cm *CollisionManager) CheckSelfCollision(snake *entity.Snake) bool {
	segments := snake.Segments()
	if len(segments) < 2 {
		return false
	}
	head := segments[len(segments)-1]
	others := segments[:len(segments)-1]
	if prev := others[len(others)-1]; prev.End == head.Start {
		others = others[:len(others)-1]
	}

	for _, other := range others {
		if cm.Intersects(head, other, snake.TargetLength) {
			return true
		}
	}
	return false
}

// Intersects reports whether the head segment touches other.
//
// Parallel segments only collide once the snake is at least a full lap long
// on that axis; then the head end must lie inside the other segment's span
// and the two must be closer than half the thickness. Perpendicular segments
// collide when their bounding boxes overlap by more than the tolerance.
func (cm *CollisionManager) Intersects(head, other types.Segment, targetLength float64) bool {
	switch {
	case head.Horizontal() && other.Horizontal():
		return targetLength >= cm.field.Width &&
			math.Abs(head.Start.Y-other.Start.Y) <= cm.thickness/2 &&
			between(head.End.X, other.Start.X, other.End.X)
	case head.Vertical() && other.Vertical():
		return targetLength >= cm.field.Height &&
			math.Abs(head.Start.X-other.Start.X) <= cm.thickness/2 &&
			between(head.End.Y, other.Start.Y, other.End.Y)
	}

	hmin, hmax := head.Bounds()
	omin, omax := other.Bounds()
	tol := cm.tolerance
	switch {
	case omin.Y > hmax.Y-tol: // other lies below
		return false
	case omax.Y < hmin.Y+tol: // other lies above
		return false
	case omin.X > hmax.X-tol: // other lies right
		return false
	case omax.X < hmin.X+tol: // other lies left
		return false
	}
	return true
}

// IsFoodCollision checks whether pos is inside the food square.
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food Food) bool {
	return food.Contains(pos)
}

func between(v, a, b float64) bool {
	return (a <= v && v <= b) || (b <= v && v <= a)
}
