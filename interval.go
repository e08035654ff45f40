package bezier

// inInterval reports whether value lies in [start, end], inclusive on both
// ends.
func inInterval(value, start, end float64) bool {
	return start <= value && value <= end
}

// snapWiggle is the tolerance used by wiggleInterval when snapping values to
// the boundaries of the unit interval.
const snapWiggle = 0x1p-44

// wiggleInterval snaps a value into [0, 1]: values within snapWiggle of a
// boundary are moved onto it. The second return value is false if the value
// is too far outside the unit interval to be snapped.
func wiggleInterval(value float64) (float64, bool) {
	switch {
	case -snapWiggle < value && value < snapWiggle:
		return 0.0, true
	case snapWiggle <= value && value <= 1.0-snapWiggle:
		return value, true
	case 1.0-snapWiggle < value && value < 1.0+snapWiggle:
		return 1.0, true
	default:
		return 0.0, false
	}
}

// vectorClose reports whether two points are equal to within eps, relative to
// the smaller of their magnitudes. A point at the origin is compared
// absolutely, since no relative scale exists there.
func vectorClose(p1, p2 Point, eps float64) bool {
	size1 := Vec2(p1).Hypot()
	size2 := Vec2(p2).Hypot()
	if size1 == 0.0 {
		return size2 <= eps
	} else if size2 == 0.0 {
		return size1 <= eps
	}
	return p1.Sub(p2).Hypot() <= eps*min(size1, size2)
}
