// Package piano lays out piano keyboards along arbitrary planar curves.
//
// The input is a [Curve]: anything that can report its total arc length
// and the point at a given arc length. [Layout] partitions the curve into
// equal arcs, one per white key, samples a local position/tangent/normal
// frame at every boundary, and emits one quadrilateral per key: white keys
// straddle the curve by half the ribbon thickness on each side, black keys
// sit on the seams between white keys wherever the note cadence calls for
// one, anchored flush with one ribbon edge and extruded towards the other.
// The result is a ribbon-shaped keyboard that follows the curve.
//
// The package ships five curve implementations ([Line], [Polyline], [Arc],
// [Circle] and [BezPath], the latter measuring cubic Béziers by adaptive
// Legendre-Gauss quadrature), but any type satisfying the two-method
// interface can be laid out. The individual stages are exported too:
// [Partition] produces the boundary arc lengths, [FrameAt] the local
// frames, [ResolveDensity] maps a viewport width to a responsive key
// count, and [FitViewBox] computes a padded display frame around the
// finished keyboard.
//
// Everything is a pure function over immutable values: identical inputs
// produce identical geometry, and there are no failure states. Degenerate
// input such as a zero-length curve, a collapsed black-key window, or a
// key count below one degrades to zero-area or omitted keys instead of an
// error.
//
// Rendering is a thin consumer of the computed quads. [WriteSVG] emits the
// keyboard as an SVG document; [Draw] and [Keyboard.Image] paint it onto a
// raster surface.
package piano
