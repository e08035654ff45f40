package bezier

// BoxIntersection classifies how the axis-aligned bounding boxes of two sets
// of control points relate to one another.
type BoxIntersection int

const (
	// BoxesOverlap means the boxes share interior points.
	BoxesOverlap BoxIntersection = iota
	// BoxesTangent means the boxes touch along an edge or at a corner but
	// share no interior points.
	BoxesTangent
	// BoxesDisjoint means the boxes have no points in common.
	BoxesDisjoint
)

func (bi BoxIntersection) String() string {
	switch bi {
	case BoxesOverlap:
		return "overlap"
	case BoxesTangent:
		return "tangent"
	case BoxesDisjoint:
		return "disjoint"
	default:
		return "unknown"
	}
}

// IntersectBoxes classifies the bounding boxes of two control point sets.
//
// The tangent case compares coordinates with exact floating-point equality:
// boxes that are one ULP apart classify as disjoint, and boxes overlapping by
// one ULP classify as overlapping. Subdivision by midpoints preserves exact
// coordinate contact, which is what makes this usable in practice.
func IntersectBoxes(nodes1, nodes2 []Point) BoxIntersection {
	b1 := boundsOf(nodes1)
	b2 := boundsOf(nodes2)
	if b2.X1 < b1.X0 || b1.X1 < b2.X0 ||
		b2.Y1 < b1.Y0 || b1.Y1 < b2.Y0 {
		return BoxesDisjoint
	}
	if b2.X1 == b1.X0 || b1.X1 == b2.X0 ||
		b2.Y1 == b1.Y0 || b1.Y1 == b2.Y0 {
		return BoxesTangent
	}
	return BoxesOverlap
}

// IntersectBoxLine classifies the bounding box of a control point set against
// a directed line segment: [BoxesOverlap] if the segment meets the box,
// [BoxesDisjoint] otherwise.
//
// The test checks whether either segment endpoint lies in the box, then
// intersects the segment with three of the four box edges. The fourth (left)
// edge needs no test: a segment with neither endpoint inside the box crosses
// at least two edges, so one of the tested edges already witnesses it. The
// edge tests tolerate [SegmentIntersection] failing on parallel lines for the
// same reason — a parallel segment that meets the box has an endpoint inside
// it.
func IntersectBoxLine(nodes []Point, lineStart, lineEnd Point) BoxIntersection {
	b := boundsOf(nodes)
	if b.ContainsInclusive(lineStart) || b.ContainsInclusive(lineEnd) {
		return BoxesOverlap
	}
	edges := [3][2]Point{
		{Pt(b.X0, b.Y0), Pt(b.X1, b.Y0)}, // bottom
		{Pt(b.X1, b.Y0), Pt(b.X1, b.Y1)}, // right
		{Pt(b.X1, b.Y1), Pt(b.X0, b.Y1)}, // top
	}
	for _, edge := range edges {
		s, t, ok := SegmentIntersection(edge[0], edge[1], lineStart, lineEnd)
		if ok && inInterval(s, 0.0, 1.0) && inInterval(t, 0.0, 1.0) {
			return BoxesOverlap
		}
	}
	return BoxesDisjoint
}
