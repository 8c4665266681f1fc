package piano

import (
	"fmt"
)

// Quad is one key's footprint: a closed quadrilateral with ordered
// vertices. The winding is part of the contract; drawing the corners in a
// permuted order produces a self-intersecting bow-tie. For quads built by
// [Layout], P0→P1 runs along one long edge in curve direction and P2→P3
// back along the other.
type Quad struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Vertices returns the corners in winding order.
func (q Quad) Vertices() [4]Point {
	return [4]Point{q.P0, q.P1, q.P2, q.P3}
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// quad.
func (q Quad) BoundingBox() Rect {
	return NewRectFromPoints(q.P0, q.P1).UnionPoint(q.P2).UnionPoint(q.P3)
}

// SignedArea returns the shoelace area of the quad. Keys laid out on a
// degenerate curve collapse to area 0.
func (q Quad) SignedArea() float64 {
	v := q.Vertices()
	var sum float64
	for i, pt := range v {
		next := v[(i+1)%len(v)]
		sum += Vec2(pt).Cross(Vec2(next))
	}
	return 0.5 * sum
}

func (q Quad) String() string {
	return fmt.Sprintf("[%v %v %v %v]", q.P0, q.P1, q.P2, q.P3)
}

// IsInf reports whether at least one coordinate is infinite.
func (q Quad) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf() || q.P3.IsInf()
}

// IsNaN reports whether at least one coordinate is NaN.
func (q Quad) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN() || q.P3.IsNaN()
}
