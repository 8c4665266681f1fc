package piano

import (
	"math"
)

// DefaultAccuracy is a reasonable accuracy for arc length computations on
// curves that can only measure themselves numerically.
const DefaultAccuracy = 1e-6

// Curve is a continuous planar path addressed by arc length. It is the
// geometry primitive the keyboard layout is computed against.
//
// Length reports the total arc length and is constant for a given value.
// PointAt returns the point at the given distance from the start of the
// path. PointAt is defined on [0, Length]; implementations in this package
// treat arguments outside that range as the nearest endpoint, but callers
// are expected to clamp first.
//
// A Curve must be immutable while a layout is being computed. [Line],
// [Polyline], [Arc], [Circle] and [BezPath] implement it; anything else
// that can answer the two queries is substitutable.
type Curve interface {
	Length() float64
	PointAt(s float64) Point
}

func clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}

// solveITP finds a root of f within the bracket [a, b] using the [ITP
// method], which is as robust as bisection but typically converges faster.
//
// The values ya = f(a) and yb = f(b) are passed in because callers usually
// know them already. It is assumed that ya < 0 and yb > 0. When f is
// monotonic the result is within epsilon of the zero crossing.
//
// The method's tuning parameters are hardwired: k1 = 0.2 / (b - a), k2 = 2,
// n0 = 1. These values have been tested to work well on arc length
// problems.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func solveITP(f func(float64) float64, a, b, epsilon, ya, yb float64) float64 {
	k1 := 0.2 / (b - a)
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := 1 + n1_2
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2.0*epsilon {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs8Half = [...][2]float64{
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs16Half = [...][2]float64{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}

var gaussLegendreCoeffs24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}
