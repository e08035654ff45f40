package bezier

// SegmentIntersection computes where two directed line segments meet, if
// their supporting lines are not parallel.
//
// The segments are parametrized as L0(s) = start0 + s·(end0 − start0) and
// L1(t) = start1 + t·(end1 − start1); the returned s and t satisfy
// L0(s) == L1(t). The 2×2 system is solved by Cramer's rule in cross-product
// form. The parameters are not clamped: values outside [0, 1] mean the
// supporting lines cross beyond the segments, and it is up to the caller to
// check the range it cares about.
//
// ok is false iff the direction vectors are exactly parallel (their cross
// product is zero), in which case the system has no unique solution.
func SegmentIntersection(start0, end0, start1, end1 Point) (s, t float64, ok bool) {
	delta0 := end0.Sub(start0)
	delta1 := end1.Sub(start1)
	cross := delta0.Cross(delta1)
	if cross == 0.0 {
		return 0, 0, false
	}
	startDelta := start1.Sub(start0)
	s = startDelta.Cross(delta1) / cross
	t = startDelta.Cross(delta0) / cross
	return s, t, true
}

// ParallelDifferent disambiguates a pair of parallel line segments: it
// reports whether the segments live on different lines, or on the same line
// without touching. It must only be called when the two segments are known to
// be parallel, e.g. after [SegmentIntersection] has failed.
//
// Returns false exactly when the segments are collinear and their spans
// overlap, i.e. when they share at least one point.
func ParallelDifferent(start0, end0, start1, end1 Point) bool {
	delta0 := end0.Sub(start0)
	// Parallel lines are the same line iff they have the same perpendicular
	// offset from the origin, which the cross product against the shared
	// direction measures (scaled by ‖delta0‖).
	line0Const := Vec2(start0).Cross(delta0)
	start1Against := Vec2(start1).Cross(delta0)
	if line0Const != start1Against {
		return true
	}
	// Same line. Project the second segment's endpoints onto the first
	// segment's direction; the first segment spans [0, ‖delta0‖²] in this
	// parametrization.
	norm0Sq := delta0.Hypot2()
	startNumer := start1.Sub(start0).Dot(delta0)
	if inInterval(startNumer, 0.0, norm0Sq) {
		return false
	}
	endNumer := end1.Sub(start0).Dot(delta0)
	if inInterval(endNumer, 0.0, norm0Sq) {
		return false
	}
	// Neither endpoint lies in the first segment's span; the segments still
	// overlap if the second one contains the first outright.
	return !inInterval(0.0, min(startNumer, endNumer), max(startNumer, endNumer))
}

// collinearParameters returns segment-local parameters (s, t) of a point
// shared by two overlapping collinear segments, preferring an endpoint of the
// second segment. It must only be called after [ParallelDifferent] has
// returned false for the same endpoints.
func collinearParameters(start0, end0, start1, end1 Point) (s, t float64, ok bool) {
	delta0 := end0.Sub(start0)
	norm0Sq := delta0.Hypot2()
	startNumer := start1.Sub(start0).Dot(delta0)
	if inInterval(startNumer, 0.0, norm0Sq) {
		return startNumer / norm0Sq, 0.0, true
	}
	endNumer := end1.Sub(start0).Dot(delta0)
	if inInterval(endNumer, 0.0, norm0Sq) {
		return endNumer / norm0Sq, 1.0, true
	}
	if min(startNumer, endNumer) <= 0.0 && 0.0 <= max(startNumer, endNumer) {
		// The second segment contains the first; start0 projects to
		// parameter 0 on the first segment and the projection along the
		// second is affine in t.
		return 0.0, startNumer / (startNumer - endNumer), true
	}
	return 0, 0, false
}
