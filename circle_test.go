package piano

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCircleLength(t *testing.T) {
	c := Circle{Center: Pt(0, 0), Radius: 100}
	if got, want := c.Length(), 200*math.Pi; math.Abs(got-want) > 1e-12 {
		t.Errorf("got length %v, want %v", got, want)
	}

	neg := Circle{Center: Pt(0, 0), Radius: -100}
	if got := neg.Length(); got != c.Length() {
		t.Errorf("got length %v for negative radius, want %v", got, c.Length())
	}
}

func TestCirclePointAt(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	c := Circle{Center: Pt(10, 20), Radius: 100}
	length := c.Length()

	diff(t, Pt(110, 20), c.PointAt(0))
	diff(t, Pt(10, 120), c.PointAt(length/4), approx)
	diff(t, Pt(-90, 20), c.PointAt(length/2), approx)
	diff(t, Pt(10, -80), c.PointAt(3*length/4), approx)

	// The traversal closes where it started.
	diff(t, Pt(110, 20), c.PointAt(length), approx)
	diff(t, c.PointAt(length), c.PointAt(length+5))
}

func TestCircleDegenerate(t *testing.T) {
	c := Circle{Center: Pt(4, 5), Radius: 0}
	if got := c.Length(); got != 0 {
		t.Errorf("got length %v, want 0", got)
	}
	diff(t, Pt(4, 5), c.PointAt(0))
	diff(t, Pt(4, 5), c.PointAt(3))
}

func TestCircleBoundingBox(t *testing.T) {
	c := Circle{Center: Pt(10, 20), Radius: 100}
	diff(t, Rect{X0: -90, Y0: -80, X1: 110, Y1: 120}, c.BoundingBox())
}

// A keyboard laid out on a ring stays within the annulus the ribbon
// thickness defines.
func TestLayoutOnRing(t *testing.T) {
	c := Circle{Center: Pt(600, 600), Radius: 500}
	kb := Layout(c, Options{NumWhiteKeys: 12, Thickness: 80})

	if got := len(kb.White); got != 12 {
		t.Fatalf("got %d white keys, want 12", got)
	}
	if got := len(kb.Black); got != 8 {
		t.Errorf("got %d black keys, want 8", got)
	}
	check := func(kind string, quads []Quad) {
		for i, q := range quads {
			if q.IsNaN() || q.IsInf() {
				t.Errorf("got non-finite %s key %d: %v", kind, i, q)
				continue
			}
			for _, pt := range q.Vertices() {
				d := pt.Distance(c.Center)
				if d < 500-40-1e-9 || d > 500+40+1e-9 {
					t.Errorf("got %s key %d corner %v at radius %v, outside the ribbon", kind, i, pt, d)
				}
			}
		}
	}
	check("white", kb.White)
	check("black", kb.Black)
}
