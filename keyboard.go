package piano

// Defaults merged into [Options] fields left at zero.
const (
	DefaultThickness       = 80.0
	DefaultBlackWidthRatio = 0.6
	DefaultBlackDepth      = 0.6
	DefaultStrokeWidth     = 2.0
)

// blackKeyMargin keeps black keys strictly inside the window formed by the
// white keys bracketing them, in arc length units.
const blackKeyMargin = 0.001

// Options configures [Layout]. Zero fields take the defaults documented on
// them; merging happens once, at the entry point, so the computation never
// consults hidden global state.
type Options struct {
	// NumWhiteKeys is the exact white-key count and always wins over
	// Density. Zero means unset. Negative counts are clamped to a
	// single key rather than rejected.
	NumWhiteKeys int

	// Density picks the key count from a named tier when NumWhiteKeys
	// is unset. DensityAuto is resolved by the host from a measured
	// width (see [ResolveDensity]); handed to Layout unresolved, it
	// counts as DensityLG.
	Density Density

	// StartOn rotates the note cadence. NoteA and NoteC are the
	// conventional rotations. Defaults to NoteA.
	StartOn Note

	// Thickness is the ribbon thickness; white keys straddle the curve
	// by half of it on each side. Defaults to DefaultThickness.
	Thickness float64

	// WhiteKeySpan overrides the computed white-key arc span when
	// positive. A shorter span leaves the tail of the curve bare; a
	// longer one crowds the trailing keys against the curve's end.
	WhiteKeySpan float64

	// BlackWidthRatio sizes black keys along the curve as a fraction of
	// the white-key span. Defaults to DefaultBlackWidthRatio.
	BlackWidthRatio float64

	// BlackDepth sizes the black-key extrusion as a fraction of
	// Thickness. Defaults to DefaultBlackDepth.
	BlackDepth float64

	// Orientation selects the ribbon edge black keys anchor to: +1
	// anchors them at the negative-normal edge and extrudes towards the
	// positive one, -1 mirrors that. Any non-negative value counts as
	// +1, any negative value as -1.
	Orientation int

	// StrokeWidth is the outline width the consumer intends to draw
	// with. The geometry itself only uses it to derive view-box
	// padding. Defaults to DefaultStrokeWidth.
	StrokeWidth float64

	// FitViewBox asks Layout to compute a padded display frame around
	// the finished keyboard. The zero value leaves fitting off;
	// DefaultOptions turns it on.
	FitViewBox bool

	// ViewBoxPadding overrides the derived frame padding
	// max(8, StrokeWidth*4) when positive.
	ViewBoxPadding float64
}

// DefaultOptions returns the explicit defaults bundle: a full piano's 52
// white keys (DensityLG) starting on A, with view-box fitting enabled.
func DefaultOptions() Options {
	return Options{
		Density:         DensityLG,
		StartOn:         NoteA,
		Thickness:       DefaultThickness,
		BlackWidthRatio: DefaultBlackWidthRatio,
		BlackDepth:      DefaultBlackDepth,
		Orientation:     1,
		StrokeWidth:     DefaultStrokeWidth,
		FitViewBox:      true,
	}
}

// withDefaults merges the defaults into zero fields and normalizes
// Orientation to ±1. FitViewBox is taken as given.
func (o Options) withDefaults() Options {
	if o.NumWhiteKeys == 0 {
		o.NumWhiteKeys = o.Density.KeyCount()
	}
	if o.StartOn == 0 {
		o.StartOn = NoteA
	}
	if o.Thickness == 0 {
		o.Thickness = DefaultThickness
	}
	if o.BlackWidthRatio == 0 {
		o.BlackWidthRatio = DefaultBlackWidthRatio
	}
	if o.BlackDepth == 0 {
		o.BlackDepth = DefaultBlackDepth
	}
	if o.Orientation >= 0 {
		o.Orientation = 1
	} else {
		o.Orientation = -1
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = DefaultStrokeWidth
	}
	return o
}

// viewBoxPad returns the display-frame padding: the explicit override when
// positive, otherwise max(8, StrokeWidth*4).
func (o Options) viewBoxPad() float64 {
	if o.ViewBoxPadding > 0 {
		return o.ViewBoxPadding
	}
	return max(8, o.StrokeWidth*4)
}

// Keyboard is the computed key geometry: one quad per white key and one
// per emitted black key, in curve order, in the same coordinate space as
// the input curve.
type Keyboard struct {
	White []Quad
	Black []Quad

	// ViewBox is the fitted display frame, meaningful only when Fitted
	// is true. Consumers keep their previous frame otherwise.
	ViewBox Rect
	Fitted  bool
}

// BoundingBox returns the tight bounds over every key vertex. It reports
// false when the keyboard has no keys or the bounds are not finite.
func (kb Keyboard) BoundingBox() (Rect, bool) {
	first := true
	var bbox Rect
	for _, quads := range [2][]Quad{kb.White, kb.Black} {
		for _, q := range quads {
			if first {
				bbox = q.BoundingBox()
				first = false
			} else {
				bbox = bbox.Union(q.BoundingBox())
			}
		}
	}
	if first || bbox.IsNaN() || bbox.IsInf() {
		return Rect{}, false
	}
	return bbox, true
}

// Layout places a piano keyboard along the curve and returns its geometry.
//
// The curve is partitioned into equal arcs, one per white key; each white
// key becomes a quad straddling the curve by half the ribbon thickness on
// each side of the local normal. Black keys are centered on the seams
// between white keys wherever the note cadence calls for one (no black key
// follows B or E, and none follows the last white key), sized by the
// black-key ratios, shifted as needed to stay between the bracketing white
// keys, anchored flush with one ribbon edge and extruded towards the
// other.
//
// Layout never fails on numeric input. Degenerate input degrades instead:
// a zero-length curve yields stacked zero-area white keys and no black
// keys, and a black key whose window collapses is omitted. The result is a
// pure function of (c, opts); identical inputs produce identical quads,
// coordinate for coordinate.
func Layout(c Curve, opts Options) Keyboard {
	o := opts.withDefaults()
	n := max(o.NumWhiteKeys, 1)
	length := c.Length()
	span := o.WhiteKeySpan
	if span <= 0 {
		span = length / float64(n)
	}
	bounds := Partition(c, n, span)
	half := o.Thickness / 2

	kb := Keyboard{White: make([]Quad, 0, n)}
	for i := 0; i < n; i++ {
		kb.White = append(kb.White, whiteQuad(c, bounds[i], bounds[i+1], half))
	}

	cad := CadenceStartingOn(o.StartOn)
	anchor := -half
	if o.Orientation != 1 {
		anchor = half
	}
	depth := o.Thickness * o.BlackDepth
	width := span * o.BlackWidthRatio
	last := len(bounds) - 1
	for i := 0; i <= n-2; i++ {
		if !cad.At(i).HasSharp() {
			continue
		}
		seam := bounds[i+1]
		s0 := seam - width/2
		s1 := seam + width/2
		// Shift the whole interval back inside the window formed by
		// the bracketing white keys. The width only gives when the
		// window itself is narrower than the key; a collapsed window
		// omits the key.
		lo := bounds[i] + blackKeyMargin
		hi := bounds[min(i+2, last)] - blackKeyMargin
		if s0 < lo {
			s1 += lo - s0
			s0 = lo
		}
		if s1 > hi {
			s0 -= s1 - hi
			s1 = hi
		}
		s0 = max(s0, lo)
		if s1 <= s0 {
			continue
		}
		kb.Black = append(kb.Black, blackQuad(c, s0, s1, anchor, depth, o.Orientation))
	}

	if o.FitViewBox {
		if frame, ok := FitViewBox(kb, o.viewBoxPad()); ok {
			kb.ViewBox = frame
			kb.Fitted = true
		}
	}
	return kb
}

// whiteQuad builds the centered quad for the white key spanning [s0, s1]:
// start-outer, end-outer, end-inner, start-inner.
func whiteQuad(c Curve, s0, s1, half float64) Quad {
	f0 := FrameAt(c, s0)
	f1 := FrameAt(c, s1)
	return Quad{
		P0: f0.Position.Translate(f0.Normal.Mul(half)),
		P1: f1.Position.Translate(f1.Normal.Mul(half)),
		P2: f1.Position.Translate(f1.Normal.Mul(-half)),
		P3: f0.Position.Translate(f0.Normal.Mul(-half)),
	}
}

// blackQuad builds the edge-anchored quad for a black key spanning
// [s0, s1]. One long edge sits at the anchor offset, the far edge at
// anchor + depth*orientation; the winding matches whiteQuad.
func blackQuad(c Curve, s0, s1, anchor, depth float64, orientation int) Quad {
	f0 := FrameAt(c, s0)
	f1 := FrameAt(c, s1)
	far := anchor + depth*float64(orientation)
	return Quad{
		P0: f0.Position.Translate(f0.Normal.Mul(anchor)),
		P1: f1.Position.Translate(f1.Normal.Mul(anchor)),
		P2: f1.Position.Translate(f1.Normal.Mul(far)),
		P3: f0.Position.Translate(f0.Normal.Mul(far)),
	}
}
