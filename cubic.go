package piano

import (
	"math"
)

// CubicBez is a single cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// CubicBezFromLine raises a line segment to a cubic Bézier with uniform
// parametrization (control points at even thirds).
func CubicBezFromLine(l Line) CubicBez {
	return CubicBez{
		P0: l.P0,
		P1: l.P0.Lerp(l.P1, 1.0/3.0),
		P2: l.P0.Lerp(l.P1, 2.0/3.0),
		P3: l.P1,
	}
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// deriv evaluates the first derivative of the cubic at t.
func (c CubicBez) deriv(t float64) Vec2 {
	mt := 1.0 - t
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	return d01.Mul(mt * mt).Add(d12.Mul(2.0 * mt * t)).Add(d23.Mul(t * t)).Mul(3.0)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Subsegment returns the cubic between parameters t0 and t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.deriv(t0).Mul(scale))
	p2 := p3.Translate(c.deriv(t1).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Arclen computes the arc length of the cubic to the given accuracy.
//
// The implementation uses Legendre-Gauss quadrature, starting with an
// 8-point evaluation and escalating to 16 and 24 points based on an error
// estimate derived from the curve's deviation from linearity. Segments
// whose estimate still exceeds the requested accuracy are subdivided and
// measured recursively.
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The factor of 3 for the first derivative is deferred to the
	// quadrature core.
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		f := ddNorm2 / dNorm2
		est += wi * f
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm Vec2, dm1 Vec2, dm2 Vec2) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += math.Sqrt(2.25) * wi * (dpx + dmx)
	}
	return sum
}

// solveForArclen solves for the parameter at which the arc length from the
// start of the cubic reaches the given value.
//
// The root is found with [solveITP]. The function measures increasingly
// smaller subsegments relative to the previous probe, which is cheaper than
// repeatedly measuring from t = 0.
func (c CubicBez) solveForArclen(arclen, accuracy float64) float64 {
	if arclen <= 0.0 {
		return 0.0
	}
	total := c.Arclen(accuracy)
	if arclen >= total {
		return 1.0
	}
	tLast := 0.0
	arclenLast := 0.0
	epsilon := accuracy / total
	n := 1.0 - min(math.Ceil(math.Log2(epsilon)), 0.0)
	innerAccuracy := accuracy / n
	f := func(t float64) float64 {
		var rangeStart, rangeEnd, dir float64
		if t > tLast {
			rangeStart = tLast
			rangeEnd = t
			dir = 1.0
		} else {
			rangeStart = t
			rangeEnd = tLast
			dir = -1.0
		}
		arc := c.Subsegment(rangeStart, rangeEnd).Arclen(innerAccuracy)
		arclenLast += arc * dir
		tLast = t
		return arclenLast - arclen
	}
	return solveITP(f, 0.0, 1.0, epsilon, -arclen, total-arclen)
}
