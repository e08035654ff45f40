// Package bezier computes the intersections of planar Bézier curves of
// arbitrary degree.
//
// The package centers on a single question: given two polynomial parametric
// curves, at which parameter pairs (s, t) do they cross? Answers are reported
// in the parameter domains of the original curves, with enough information
// for callers to evaluate exact coordinates. It is meant as the numeric core
// for higher-level geometry — surface intersection, boolean region
// operations — which supplies curves and consumes parameter pairs.
//
// # Algorithm
//
// Intersections are found by recursive subdivision with a Newton polish. Each
// round inspects a list of candidate segment pairs. Pairs whose bounding
// boxes are disjoint are dropped; boxes that touch exactly are resolved by
// matching endpoints (see [Intersecter]); the rest are subdivided for the
// next round. Once both segments of a pair deviate from their chords by less
// than a fixed threshold, the pair is resolved in closed form: the chords are
// intersected ([SegmentIntersection]), the parameters are mapped back to the
// root curves, and one Newton step against the true curves ([NewtonRefine])
// removes most of the linearization error.
//
// The subdivision loop is deliberately round-based rather than recursive:
// [Intersecter.Step] runs exactly one round, so callers can impose their own
// budget. [AllIntersections] wraps the loop with a default budget.
//
// # Failure modes
//
// Two numeric conditions are surfaced as distinct errors rather than
// resolved internally, so that callers can fall back to a different
// intersection strategy:
//
//   - [ErrParallel]: the chords of a near-linear pair are exactly parallel
//     and neither the collinear-line rule nor the bounding-box rule settles
//     the case.
//   - [ErrWiggleFailure]: a Newton-refined parameter cannot be snapped into
//     the unit interval within tolerance. This indicates numerical breakdown
//     and is never silently clamped.
//
// # Limitations
//
// The package does not compute self-intersections, does not deduplicate
// coincident results (two subdivision paths may find the same geometric
// point), and does not validate its input; curves must have at least two
// control points.
package bezier
