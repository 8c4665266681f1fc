package piano

import (
	"sort"
)

// Polyline is a [Curve] made of straight segments between consecutive
// points. Arc length queries are answered from a cumulative length table
// built once at construction, so PointAt is a binary search plus a lerp.
type Polyline struct {
	pts []Point
	// sums[i] is the arc length from the start to pts[i].
	sums []float64
}

var _ Curve = Polyline{}

// NewPolyline builds a polyline through the given points. The points are
// copied. Fewer than two points yield a degenerate curve of length 0.
func NewPolyline(pts ...Point) Polyline {
	p := Polyline{
		pts:  make([]Point, len(pts)),
		sums: make([]float64, len(pts)),
	}
	copy(p.pts, pts)
	for i := 1; i < len(pts); i++ {
		p.sums[i] = p.sums[i-1] + pts[i-1].Distance(pts[i])
	}
	return p
}

func (p Polyline) Length() float64 {
	if len(p.sums) == 0 {
		return 0
	}
	return p.sums[len(p.sums)-1]
}

// PointAt returns the point at arc length s from the start. Arguments
// outside [0, Length] are treated as the nearest endpoint.
func (p Polyline) PointAt(s float64) Point {
	if len(p.pts) == 0 {
		return Point{}
	}
	s = clamp(s, 0, p.Length())
	i := sort.SearchFloat64s(p.sums, s)
	if i == 0 {
		return p.pts[0]
	}
	// NaN coordinates make the length table incomparable and the search
	// lands past the end.
	if i == len(p.sums) {
		return p.pts[len(p.pts)-1]
	}
	seg := p.sums[i] - p.sums[i-1]
	if seg == 0 {
		return p.pts[i]
	}
	return p.pts[i-1].Lerp(p.pts[i], (s-p.sums[i-1])/seg)
}
