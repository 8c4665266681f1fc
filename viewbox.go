package piano

// FitViewBox computes a display frame tightly enclosing every key of the
// keyboard, inflated by pad on all sides. It reports false when the
// keyboard is empty or its bounds are not finite; callers then keep
// whatever frame they were using before, so a bad recompute never
// corrupts the display.
func FitViewBox(kb Keyboard, pad float64) (Rect, bool) {
	bbox, ok := kb.BoundingBox()
	if !ok {
		return Rect{}, false
	}
	return bbox.Inflate(pad, pad), true
}
