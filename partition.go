package piano

// Partition splits the curve into keyCount equal arcs and returns the
// keyCount+1 boundary arc lengths, starting at 0 and clamped to the
// curve's total length.
//
// A positive span overrides the computed arc width Length/keyCount. A span
// shorter than that leaves the tail of the curve bare; a longer one piles
// the trailing boundaries up at the curve's end, since every boundary is
// min(i*span, Length).
//
// Partition cannot fail: key counts below 1 are clamped to 1, and a
// zero-length curve yields an all-zero boundary sequence. The result is
// always non-decreasing.
func Partition(c Curve, keyCount int, span float64) []float64 {
	keyCount = max(keyCount, 1)
	length := c.Length()
	if span <= 0 {
		span = length / float64(keyCount)
	}
	bounds := make([]float64, keyCount+1)
	for i := range bounds {
		bounds[i] = min(float64(i)*span, length)
	}
	return bounds
}
