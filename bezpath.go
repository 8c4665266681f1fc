package piano

import (
	"sort"
)

// BezPath is a [Curve] over a run of cubic Bézier segments. Disconnected
// neighbouring segments are bridged with straight lines raised to cubics,
// so the path is always continuous.
//
// Segment lengths are measured once at construction and cached in a prefix
// table. PointAt locates the owning segment by binary search and then
// solves for the parameter within that segment, so queries stay cheap even
// on long paths.
type BezPath struct {
	segs []CubicBez
	// sums[i] is the arc length from the start of the path to the start
	// of segs[i]; the final entry is the total length.
	sums []float64
}

var _ Curve = BezPath{}

// NewBezPath builds a path from the given segments, measured to
// [DefaultAccuracy].
func NewBezPath(segs ...CubicBez) BezPath {
	var path BezPath
	for _, seg := range segs {
		if n := len(path.segs); n > 0 {
			if prev := path.segs[n-1].P3; prev != seg.P0 {
				path.segs = append(path.segs, CubicBezFromLine(Line{P0: prev, P1: seg.P0}))
			}
		}
		path.segs = append(path.segs, seg)
	}
	path.sums = make([]float64, len(path.segs)+1)
	for i, seg := range path.segs {
		path.sums[i+1] = path.sums[i] + seg.Arclen(DefaultAccuracy)
	}
	return path
}

func (p BezPath) Length() float64 {
	if len(p.sums) == 0 {
		return 0
	}
	return p.sums[len(p.sums)-1]
}

// PointAt returns the point at arc length s from the start of the path.
// Arguments outside [0, Length] are treated as the nearest endpoint.
func (p BezPath) PointAt(s float64) Point {
	if len(p.segs) == 0 {
		return Point{}
	}
	s = clamp(s, 0, p.Length())
	i := sort.SearchFloat64s(p.sums, s)
	if i == 0 {
		return p.segs[0].P0
	}
	// NaN coordinates make the length table incomparable and the search
	// lands past the end.
	if i == len(p.sums) {
		return p.segs[len(p.segs)-1].P3
	}
	seg := p.segs[i-1]
	segLen := p.sums[i] - p.sums[i-1]
	if segLen == 0 {
		return seg.P3
	}
	t := seg.solveForArclen(s-p.sums[i-1], DefaultAccuracy)
	return seg.Eval(t)
}
