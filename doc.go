// Package bezier provides piecewise cubic Bézier curves that are sampled
// incrementally. It was designed for interactive editors and plotters that
// redraw a curve after every small edit, where resampling the whole curve
// each time would be wasteful.
//
// # Handles and segments
//
// A [Curve] is controlled by an ordered sequence of [Handle] values. Each
// handle has a position the curve passes through and two tangent points,
// Before and After. Segment i of a curve is the cubic Bézier with control
// points
//
//	handles[i].Position, handles[i].After, handles[i+1].Before, handles[i+1].Position
//
// A curve with n handles thus has n−1 segments.
//
// Every handle has a [Continuity], describing the smoothness of the curve at
// its position:
//   - [Broken] handles don't constrain their tangents.
//   - [Aligned] handles keep both tangents on one line.
//   - [Mirrored] handles additionally keep both tangents of equal length.
//   - [Detached] handles hide the segment(s) on one or both sides, which lets a
//     single curve describe several disjoint pieces.
//
// The constructors [NewHandle], [NewAligned], [NewMirrored] and [NewDetached]
// derive the After point from Before and Position where the continuity
// requires it, and [Handle.WithBefore] and [Handle.WithAfter] keep the
// continuity intact when one tangent moves.
//
// # Sampling
//
// [Curve.Calculate] samples every visible segment at a fixed number of
// parameter values, the curve's detail, and returns the concatenation of all
// samples. Hidden segments don't contribute any points, so for a curve with
// detail d and k visible segments, Calculate returns exactly d·k points.
// Segment i is sampled at t = j/d for j in [0, d); the endpoint of a segment is
// the first sample of the next one.
//
// Samples are cached per segment. Edits made through the methods of [Curve]
// invalidate exactly those segments whose control points changed, and
// Calculate only resamples those. Its cost is proportional to the number of
// segments plus the number of points that actually changed.
//
// Segments are evaluated in the power basis: the control points are converted
// to the coefficients of c0 + c1·t + c2·t² + c3·t³ once per segment (see
// [CubicBez.Coefficients]), and each sample is then a cheap polynomial
// evaluation.
//
// # Knot insertion
//
// [Curve.KnotInsert] splits a segment in two using de Casteljau's algorithm.
// The control points of the neighbouring handles are adjusted so that the
// curve traces exactly the same path as before, up to floating point error.
// This is useful for refining a curve before editing part of it.
//
// # Scalars
//
// All types are generic over the floating point type used for coordinates.
// Most users will want float64; float32 halves the memory used by the sample
// buffer.
package bezier
