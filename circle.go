package piano

import (
	"math"
)

// Circle is a closed circular [Curve], for keyboards that wrap into a full
// ring. Traversal starts at angle 0 and runs counterclockwise, so
// PointAt(0) and PointAt(Length) meet at the point right of the center.
// The seam between the first and last key is treated like the ends of an
// open curve; tangents are not wrapped across it.
type Circle struct {
	Center Point
	Radius float64
}

var _ Curve = Circle{}

func (c Circle) Length() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

// PointAt returns the point at arc length s counterclockwise from angle 0.
// Arguments outside [0, Length] are treated as the nearest endpoint.
func (c Circle) PointAt(s float64) Point {
	length := c.Length()
	var th float64
	if length > 0 {
		th = 2 * math.Pi * (clamp(s, 0, length) / length)
	}
	sin, cos := math.Sincos(th)
	return Point{
		X: c.Center.X + c.Radius*cos,
		Y: c.Center.Y + c.Radius*sin,
	}
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// circle.
func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{
		X0: c.Center.X - r,
		Y0: c.Center.Y - r,
		X1: c.Center.X + r,
		Y1: c.Center.Y + r,
	}
}
