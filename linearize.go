package bezier

import "math"

// LinearizationError bounds how far a Bézier curve with the given control
// points deviates from the chord joining its endpoints.
//
// The bound is computed from the second finite differences of the control
// points: for a curve of degree d, the deviation over the unit interval is at
// most d(d−1)/8 times the largest second difference, taken per dimension.
// See Sederberg's CAGD notes, chapter 2, for the derivation. The bound is
// tight enough that subdividing a quadratic halves the error twice over.
//
// A two-point curve is already a line and has error exactly 0.
func LinearizationError(nodes []Point) float64 {
	degree := len(nodes) - 1
	if degree < 2 {
		return 0.0
	}
	var worstX, worstY float64
	for i := 0; i < len(nodes)-2; i++ {
		dx := nodes[i+2].X - 2.0*nodes[i+1].X + nodes[i].X
		dy := nodes[i+2].Y - 2.0*nodes[i+1].Y + nodes[i].Y
		worstX = max(worstX, math.Abs(dx))
		worstY = max(worstY, math.Abs(dy))
	}
	worst := math.Hypot(worstX, worstY)
	return 0.125 * float64(degree) * float64(degree-1) * worst
}
