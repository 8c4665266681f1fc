package piano

// Line is a straight line segment, the simplest [Curve].
type Line struct {
	P0 Point
	P1 Point
}

var _ Curve = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// PointAt returns the point at arc length s from P0. Arguments outside
// [0, Length] are treated as the nearest endpoint. A zero-length line
// reports every point as P0.
func (l Line) PointAt(s float64) Point {
	length := l.Length()
	if length == 0 {
		return l.P0
	}
	return l.P0.Lerp(l.P1, clamp(s, 0, length)/length)
}

// Reverse returns the line traversed in the opposite direction. Reversing
// flips which side of the ribbon the normal points to.
func (l Line) Reverse() Line {
	return Line{P0: l.P1, P1: l.P0}
}
