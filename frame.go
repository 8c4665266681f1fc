package piano

// tangentStep is the half-width of the central difference used to estimate
// tangents, in arc length units.
const tangentStep = 0.5

// tangentFloor is the smallest chord magnitude the frame sampler will
// divide by. Chords below it (closed curves, cusps, zero-length curves)
// are treated as having this magnitude, so degenerate inputs produce
// zero-area keys instead of NaN coordinates.
const tangentFloor = 1e-6

// Frame is the local coordinate frame of a curve at some arc length: the
// point itself, the unit tangent, and the tangent turned 90 degrees. The
// quarter turn fixes which side of the curve is the "front" of the ribbon
// consistently along its whole length; traversing the curve in the
// opposite direction flips it.
type Frame struct {
	Position Point
	Tangent  Vec2
	Normal   Vec2
}

// FrameAt samples the frame at arc length s, clamped to the curve's
// domain. The tangent is estimated by central finite differencing of the
// points at s ± 0.5, each clamped independently. FrameAt is a pure
// function of (c, s).
func FrameAt(c Curve, s float64) Frame {
	length := c.Length()
	s = clamp(s, 0, length)
	prev := c.PointAt(clamp(s-tangentStep, 0, length))
	next := c.PointAt(clamp(s+tangentStep, 0, length))
	chord := next.Sub(prev)
	mag := chord.Hypot()
	if mag < tangentFloor {
		mag = tangentFloor
	}
	tangent := chord.Div(mag)
	return Frame{
		Position: c.PointAt(s),
		Tangent:  tangent,
		Normal:   tangent.Turn90(),
	}
}
