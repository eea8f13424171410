package types

import "math"

// Point is a position on the playfield in screen pixels.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Segment is a piece of the snake between two consecutive body points.
// Movement only happens along the cardinal directions, so every drawn
// segment is either horizontal or vertical.
type Segment struct {
	Start, End Point
}

// Horizontal reports whether both ends share the same Y. A zero-length
// segment counts as horizontal.
func (s Segment) Horizontal() bool {
	return s.Start.Y == s.End.Y
}

func (s Segment) Vertical() bool {
	return !s.Horizontal()
}

func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Bounds returns the min and max corners of the segment's bounding box.
func (s Segment) Bounds() (min, max Point) {
	min = Point{X: math.Min(s.Start.X, s.End.X), Y: math.Min(s.Start.Y, s.End.Y)}
	max = Point{X: math.Max(s.Start.X, s.End.X), Y: math.Max(s.Start.Y, s.End.Y)}
	return min, max
}

// Playfield is the wrapping surface the snake moves on.
type Playfield struct {
	Width  float64
	Height float64
}

// Contains reports whether p lies inside the playfield, edges included.
func (f Playfield) Contains(p Point) bool {
	return p.X >= 0 && p.X <= f.Width && p.Y >= 0 && p.Y <= f.Height
}

func (f Playfield) Center() Point {
	return Point{X: f.Width / 2, Y: f.Height / 2}
}

type Color struct {
	R, G, B, A uint8
}

var (
	Black  = Color{R: 0, G: 0, B: 0, A: 255}
	Yellow = Color{R: 255, G: 255, B: 0, A: 255}
	Red    = Color{R: 255, G: 0, B: 0, A: 255}
	Green  = Color{R: 0, G: 255, B: 0, A: 255}
)
