package piano

import (
	"math"
)

// Arc is a circular arc [Curve] with a closed-form arc length. The sweep is
// signed; a negative sweep traverses the circle in the opposite direction,
// which flips the side the keyboard ribbon's normal points to.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

var _ Curve = Arc{}

func (a Arc) Length() float64 {
	return math.Abs(a.SweepAngle) * a.Radius
}

// PointAt returns the point at arc length s along the sweep. Arguments
// outside [0, Length] are treated as the nearest endpoint.
func (a Arc) PointAt(s float64) Point {
	length := a.Length()
	th := a.StartAngle
	if length > 0 {
		th += a.SweepAngle * (clamp(s, 0, length) / length)
	}
	sin, cos := math.Sincos(th)
	return Point{
		X: a.Center.X + a.Radius*cos,
		Y: a.Center.Y + a.Radius*sin,
	}
}
