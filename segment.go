package bezier

// segment is a piece of a root curve produced by subdivision. It carries its
// own control points, the sub-interval of the root's parameter domain it
// covers, and a reference to the root so that results can be reported in the
// root's domain. Segments are immutable once created and live for at most one
// round of the subdivision loop.
type segment struct {
	nodes      []Point
	start, end float64
	root       *Curve
	// err bounds the deviation between the segment and its chord; computed
	// once, since the nodes never change.
	err float64
}

func newSegment(nodes []Point, start, end float64, root *Curve) *segment {
	return &segment{
		nodes: nodes,
		start: start,
		end:   end,
		root:  root,
		err:   LinearizationError(nodes),
	}
}

// linearized reports whether the segment is close enough to its chord for the
// closed-form chord intersection to take over from subdivision.
func (sg *segment) linearized() bool {
	return sg.err < linearizationThreshold
}

// chordStart and chordEnd are the endpoints of the segment's chord, which
// coincide with the curve's endpoints.
func (sg *segment) chordStart() Point { return sg.nodes[0] }
func (sg *segment) chordEnd() Point   { return sg.nodes[len(sg.nodes)-1] }

// mapParam maps a segment-local parameter in [0, 1] to the root curve's
// domain. The map is affine, so local 0 and 1 recover the interval bounds
// exactly.
func (sg *segment) mapParam(local float64) float64 {
	return sg.start + local*(sg.end-sg.start)
}

// subdivide splits the segment at its parametric midpoint.
func (sg *segment) subdivide() (*segment, *segment) {
	left, right := Curve{Nodes: sg.nodes}.Subdivide()
	mid := 0.5 * (sg.start + sg.end)
	return newSegment(left.Nodes, sg.start, mid, sg.root),
		newSegment(right.Nodes, mid, sg.end, sg.root)
}

// halves returns the segment's children for the next round. A segment that
// has already linearized is not split further; its chord cannot get any
// straighter.
func (sg *segment) halves() ([2]*segment, int) {
	if sg.linearized() {
		return [2]*segment{sg}, 1
	}
	left, right := sg.subdivide()
	return [2]*segment{left, right}, 2
}
