package bezier

import "errors"

const (
	// linearizationThreshold is the chord deviation below which a segment is
	// treated as a line and resolved in closed form.
	linearizationThreshold = 0x1p-26
	// paramWiggle widens the [0, 1] acceptance interval for chord parameters
	// of segments that are nearly, but not exactly, linear; the true
	// intersection of such a segment can lie just beyond the chord.
	paramWiggle = 0x1p-16
)

var (
	// ErrParallel is returned when the chords of a near-linear candidate
	// pair are exactly parallel and neither segment is an exact line, so the
	// pair can be neither accepted nor rejected by chord intersection.
	// Callers should fall back to a different intersection strategy.
	ErrParallel = errors.New("bezier: parallel chords cannot be resolved by linearization")

	// ErrWiggleFailure is returned when a Newton-refined parameter lands too
	// far outside the unit interval to be snapped back in. It indicates
	// numerical breakdown and is never silently clamped.
	ErrWiggleFailure = errors.New("bezier: refined parameter is not near the unit interval")
)

// fromLinearized resolves a candidate pair whose segments are both within
// linearizationThreshold of their chords. It intersects the chords, maps the
// chord parameters back to the root curves' domains, and polishes the result
// with one Newton step there.
//
// ok is false when the pair provably does not intersect. A non-nil error is
// one of [ErrParallel] and [ErrWiggleFailure] and aborts the query's current
// round.
func fromLinearized(first, second *segment) (s, t float64, ok bool, err error) {
	s, t, ok = SegmentIntersection(first.chordStart(), first.chordEnd(),
		second.chordStart(), second.chordEnd())
	if ok {
		// An exact line admits no tolerance: a chord parameter outside
		// [0, 1] is outside the segment. Curved segments get paramWiggle of
		// slack, paid back by the Newton step below.
		if first.err == 0.0 && !inInterval(s, 0.0, 1.0) {
			return 0, 0, false, nil
		}
		if second.err == 0.0 && !inInterval(t, 0.0, 1.0) {
			return 0, 0, false, nil
		}
		if !inInterval(s, -paramWiggle, 1.0+paramWiggle) {
			return 0, 0, false, nil
		}
		if !inInterval(t, -paramWiggle, 1.0+paramWiggle) {
			return 0, 0, false, nil
		}
	} else {
		if first.err == 0.0 && second.err == 0.0 {
			// Both segments are exact lines, so parallelism can be settled
			// exactly: either the lines differ and the pair is rejected, or
			// the segments overlap and any shared point will do.
			if ParallelDifferent(first.chordStart(), first.chordEnd(),
				second.chordStart(), second.chordEnd()) {
				return 0, 0, false, nil
			}
			s, t, ok = collinearParameters(first.chordStart(), first.chordEnd(),
				second.chordStart(), second.chordEnd())
			if !ok {
				return 0, 0, false, nil
			}
		} else {
			if IntersectBoxes(first.root.Nodes, second.root.Nodes) == BoxesDisjoint {
				return 0, 0, false, nil
			}
			return 0, 0, false, ErrParallel
		}
	}

	refinedS, refinedT := NewtonRefine(*first.root, first.mapParam(s),
		*second.root, second.mapParam(t))
	refinedS, ok = wiggleInterval(refinedS)
	if !ok {
		return 0, 0, false, ErrWiggleFailure
	}
	refinedT, ok = wiggleInterval(refinedT)
	if !ok {
		return 0, 0, false, ErrWiggleFailure
	}
	return refinedS, refinedT, true, nil
}
