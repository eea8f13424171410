package entity

import (
	"fmt"
	"math"
	"slices"

	"polysnake/game/types"
)

// vertex is one point of the body polyline. A crossing vertex marks where the
// head left the playfield; the segment starting at it is a teleport and has
// no drawn geometry.
type vertex struct {
	types.Point
	crossing bool
}

// Snake is a continuously moving polyline, tail first and head last.
//
// Seams are identified by their position in the body (the crossing flag),
// never by comparing coordinates: a wrap can leave several vertices with the
// same value and only the flagged one is a seam.
type Snake struct {
	Direction    types.Direction
	TargetLength float64

	field        types.Playfield
	body         []vertex
	borderPoints []types.Point // FIFO, oldest crossing first
}

// NewSnake returns an idle two-point snake with its head at the centre of the
// playfield and its tail length pixels to the left.
func NewSnake(field types.Playfield, length float64) *Snake {
	head := field.Center()
	tail := types.Point{X: head.X - length, Y: head.Y}
	return NewSnakeFromPoints(field, length, tail, head)
}

// NewSnakeFromPoints builds a snake from explicit body points, tail first.
func NewSnakeFromPoints(field types.Playfield, targetLength float64, points ...types.Point) *Snake {
	s := &Snake{
		Direction:    types.None,
		TargetLength: targetLength,
		field:        field,
		body:         make([]vertex, 0, len(points)),
	}
	for _, p := range points {
		s.body = append(s.body, vertex{Point: p})
	}
	s.mustHoldBody()
	return s
}

func (s *Snake) Field() types.Playfield {
	return s.field
}

// Points returns a copy of the body positions, tail first.
func (s *Snake) Points() []types.Point {
	points := make([]types.Point, len(s.body))
	for i, v := range s.body {
		points[i] = v.Point
	}
	return points
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Head() types.Point {
	return s.body[len(s.body)-1].Point
}

func (s *Snake) Tail() types.Point {
	return s.body[0].Point
}

// Turn anchors the current head and switches heading. The duplicated head
// closes the last segment of the old heading so the new one starts fresh.
func (s *Snake) Turn(dir types.Direction) {
	if dir == s.Direction {
		return
	}
	head := s.body[len(s.body)-1]
	s.body = append(s.body, vertex{Point: head.Point})
	s.Direction = dir
}

// Advance moves the head distance pixels along the current heading, wrapping
// across the playfield edge when it leaves the bounds.
func (s *Snake) Advance(distance float64) {
	if s.Direction == types.None || distance == 0 {
		return
	}
	last := len(s.body) - 1
	s.body[last].Point = s.body[last].Add(s.Direction.Vector().Scale(distance))
	s.wrapHead()
	s.mustHoldBody()
}

// RetractTail pulls the tail distance pixels toward the head. Corners the tail
// reaches are collapsed, possibly several in one call. A negative distance
// pushes the tail outward instead.
func (s *Snake) RetractTail(distance float64) {
	if distance < 0 {
		s.extendTail(-distance)
		return
	}
	for distance > 0 {
		tail, next := s.body[0].Point, s.body[1].Point
		gap := tail.Distance(next)
		if distance < gap || len(s.body) == 2 {
			s.body[0].Point = moveToward(tail, next, math.Min(distance, gap))
			break
		}
		distance -= gap
		s.collapseCorner()
	}
	s.mustHoldBody()
}

// collapseCorner drops the front segment once the tail has fully traversed it.
func (s *Snake) collapseCorner() {
	s.body[0] = s.body[1]
	s.body = slices.Delete(s.body, 1, 2)
	if s.body[0].crossing {
		s.retireSeam()
	}
}

func (s *Snake) extendTail(distance float64) {
	away := s.tailHeading()
	s.body[0].Point = s.body[0].Add(away.Scale(distance))
	s.mustHoldBody()
}

// tailHeading returns the unit vector pointing from the body toward the tail,
// looking past zero-length segments at the front.
func (s *Snake) tailHeading() types.Point {
	for i := 0; i+1 < len(s.body) && !s.body[i].crossing; i++ {
		from, to := s.body[i+1].Point, s.body[i].Point
		if d := from.Distance(to); d > 0 {
			return types.Point{X: (to.X - from.X) / d, Y: (to.Y - from.Y) / d}
		}
	}
	if s.Direction != types.None {
		return s.Direction.Opposite().Vector()
	}
	return types.Left.Vector()
}

// Segments returns the drawn segments of the body, tail first. Seams are
// skipped.
func (s *Snake) Segments() []types.Segment {
	segments := make([]types.Segment, 0, len(s.body)-1)
	for i := 0; i+1 < len(s.body); i++ {
		if s.body[i].crossing {
			continue
		}
		segments = append(segments, types.Segment{Start: s.body[i].Point, End: s.body[i+1].Point})
	}
	return segments
}

// LastSegment is the segment ending at the head.
func (s *Snake) LastSegment() types.Segment {
	n := len(s.body)
	return types.Segment{Start: s.body[n-2].Point, End: s.body[n-1].Point}
}

// DrawnLength sums the drawn segments, leaving seams out.
func (s *Snake) DrawnLength() float64 {
	var length float64
	for _, seg := range s.Segments() {
		length += seg.Length()
	}
	return length
}

// CorrectLength nudges the tail so the drawn length matches TargetLength.
func (s *Snake) CorrectLength() {
	s.RetractTail(s.DrawnLength() - s.TargetLength)
}

// Move is one frame of motion: the head advances, then the tail follows.
func (s *Snake) Move(distance float64) {
	if s.Direction == types.None {
		return
	}
	s.Advance(distance)
	s.CorrectLength()
}

// Grow lengthens the snake by increment, pushing the tail out right away
// rather than waiting for the next length correction.
func (s *Snake) Grow(increment float64) {
	s.RetractTail(-increment)
	s.TargetLength += increment
}

func (s *Snake) mustHoldBody() {
	if len(s.body) < 2 {
		panic(fmt.Sprintf("entity: snake body has %d points, need at least 2", len(s.body)))
	}
}

func moveToward(from, to types.Point, distance float64) types.Point {
	d := from.Distance(to)
	if d == 0 {
		return from
	}
	k := distance / d
	return types.Point{X: from.X + (to.X-from.X)*k, Y: from.Y + (to.Y-from.Y)*k}
}
