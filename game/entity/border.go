package entity

import (
	"fmt"
	"slices"

	"polysnake/game/types"
)

// BorderPoints returns a copy of the active crossing points, oldest first.
func (s *Snake) BorderPoints() []types.Point {
	return slices.Clone(s.borderPoints)
}

// Seams is the number of edge crossings the tail has not passed yet.
func (s *Snake) Seams() int {
	return len(s.borderPoints)
}

// wrapHead teleports a head that left the playfield to the opposite edge.
// The old head becomes the crossing point, then the re-entry point and a new
// head carrying the overshoot are appended. Overshoots wider than the
// playfield wrap again.
func (s *Snake) wrapHead() {
	for {
		head := s.Head()
		crossing, reentry, ok := s.edgeCrossing(head)
		if !ok {
			return
		}
		overshoot := head.Distance(crossing)
		s.borderPoints = append(s.borderPoints, crossing)

		last := len(s.body) - 1
		s.body[last] = vertex{Point: crossing, crossing: true}
		s.body = append(s.body,
			vertex{Point: reentry},
			vertex{Point: reentry.Add(s.Direction.Vector().Scale(overshoot))},
		)
	}
}

// edgeCrossing reports where head crossed the edge along the current heading
// and where it comes back in.
func (s *Snake) edgeCrossing(head types.Point) (crossing, reentry types.Point, ok bool) {
	w, h := s.field.Width, s.field.Height
	switch s.Direction {
	case types.Up:
		if head.Y < 0 {
			return types.Point{X: head.X, Y: 0}, types.Point{X: head.X, Y: h}, true
		}
	case types.Down:
		if head.Y > h {
			return types.Point{X: head.X, Y: h}, types.Point{X: head.X, Y: 0}, true
		}
	case types.Left:
		if head.X < 0 {
			return types.Point{X: 0, Y: head.Y}, types.Point{X: w, Y: head.Y}, true
		}
	case types.Right:
		if head.X > w {
			return types.Point{X: w, Y: head.Y}, types.Point{X: 0, Y: head.Y}, true
		}
	}
	return types.Point{}, types.Point{}, false
}

// retireSeam drops the oldest seam once the tail has reached its crossing
// point. The crossing vertex is at the front of the body and pairs with the
// head of the border point FIFO.
func (s *Snake) retireSeam() {
	if len(s.borderPoints) == 0 || s.borderPoints[0] != s.body[0].Point {
		panic(fmt.Sprintf("entity: seam at %v does not match border points %v", s.body[0].Point, s.borderPoints))
	}
	s.borderPoints = s.borderPoints[1:]
	s.body = s.body[1:]
}
