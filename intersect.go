package bezier

import "errors"

// closeEps is the tolerance used to match segment endpoints when bounding
// boxes touch without overlapping.
const closeEps = 0x1p-40

// DefaultMaxRounds is the subdivision round budget used by
// [AllIntersections] when no explicit budget is configured. Each round
// quarters the candidate segments' chord error, so well-conditioned curve
// pairs resolve long before this many rounds.
const DefaultMaxRounds = 20

// ErrNoConvergence is returned by [AllIntersections] when candidate pairs
// remain after the round budget is exhausted.
var ErrNoConvergence = errors.New("bezier: subdivision did not converge to linear segments")

// Intersection is one point where two curves meet, expressed as a parameter
// pair in the root curves' domains: First.Eval(S) == Second.Eval(T) up to the
// accuracy of the search. Records are not deduplicated; distinct subdivision
// paths can discover the same geometric point more than once.
type Intersection struct {
	First  *Curve
	S      float64
	Second *Curve
	T      float64
}

// Point evaluates the intersection's coordinates on the first curve.
func (x Intersection) Point() Point {
	return x.First.Eval(x.S)
}

// candidatePair pairs one segment from each curve's subdivision tree. Pairs
// are consumed by the round that inspects them.
type candidatePair struct {
	first, second *segment
}

// tangentIntersections resolves a candidate pair whose bounding boxes touch
// without overlapping. Curves in such a pair can only meet at segment
// endpoints, so the four endpoint combinations are tested for coincidence and
// each match is recorded at the exactly mapped endpoint parameters.
func tangentIntersections(first, second *segment, intersections []Intersection) []Intersection {
	firstEnds := [2]Point{first.chordStart(), first.chordEnd()}
	secondEnds := [2]Point{second.chordStart(), second.chordEnd()}
	for i, nodeFirst := range firstEnds {
		for j, nodeSecond := range secondEnds {
			if !vectorClose(nodeFirst, nodeSecond, closeEps) {
				continue
			}
			intersections = append(intersections, Intersection{
				First:  first.root,
				S:      first.mapParam(float64(i)),
				Second: second.root,
				T:      second.mapParam(float64(j)),
			})
		}
	}
	return intersections
}

// intersectOneRound inspects every candidate pair once. Pairs with both sides
// linearized are resolved in closed form; pairs with disjoint boxes are
// dropped; pairs with tangent boxes resolve through their endpoints; the
// remaining pairs are subdivided into the next round's candidates. A
// sentinel error from the linearized path aborts the round immediately.
func intersectOneRound(candidates []candidatePair, intersections []Intersection) ([]candidatePair, []Intersection, error) {
	var accepted []candidatePair
	for _, pair := range candidates {
		first, second := pair.first, pair.second

		var box BoxIntersection
		switch {
		case first.linearized() && second.linearized():
			s, t, ok, err := fromLinearized(first, second)
			if err != nil {
				return nil, intersections, err
			}
			if ok {
				intersections = append(intersections, Intersection{
					First:  first.root,
					S:      s,
					Second: second.root,
					T:      t,
				})
			}
			continue
		case first.linearized():
			box = IntersectBoxLine(second.nodes, first.chordStart(), first.chordEnd())
		case second.linearized():
			box = IntersectBoxLine(first.nodes, second.chordStart(), second.chordEnd())
		default:
			box = IntersectBoxes(first.nodes, second.nodes)
		}

		switch box {
		case BoxesDisjoint:
			// No intersection possible anywhere in this pair.
		case BoxesTangent:
			intersections = tangentIntersections(first, second, intersections)
		default:
			accepted = append(accepted, pair)
		}
	}

	var next []candidatePair
	for _, pair := range accepted {
		firsts, n1 := pair.first.halves()
		seconds, n2 := pair.second.halves()
		for _, f := range firsts[:n1] {
			for _, s := range seconds[:n2] {
				next = append(next, candidatePair{f, s})
			}
		}
	}
	return next, intersections, nil
}

// Intersecter finds the intersections of a pair of curves, one subdivision
// round at a time.
//
// Each Intersecter owns its candidate list and result collection outright, so
// independent queries may run concurrently without synchronization. The root
// curves are only read.
type Intersecter struct {
	candidates    []candidatePair
	intersections []Intersection
}

// NewIntersecter prepares an intersection query between two curves. The
// curves must each have at least two control points and must not be modified
// for the lifetime of the query.
func NewIntersecter(first, second *Curve) *Intersecter {
	f := newSegment(first.Nodes, 0.0, 1.0, first)
	s := newSegment(second.Nodes, 0.0, 1.0, second)
	return &Intersecter{
		candidates: []candidatePair{{f, s}},
	}
}

// Step runs one subdivision round. It reports done == true once no candidate
// pairs remain, at which point [Intersecter.Intersections] is complete.
// Callers decide how many rounds to spend; see [AllIntersections] for the
// standard budgeted loop.
//
// The returned error is [ErrParallel] or [ErrWiggleFailure]; either aborts
// the round, and the query should be abandoned in favor of a different
// strategy. Intersections found before the abort remain available.
func (ix *Intersecter) Step() (done bool, err error) {
	if len(ix.candidates) == 0 {
		return true, nil
	}
	next, intersections, err := intersectOneRound(ix.candidates, ix.intersections)
	ix.intersections = intersections
	if err != nil {
		return false, err
	}
	ix.candidates = next
	return len(ix.candidates) == 0, nil
}

// Candidates returns the number of candidate segment pairs awaiting the next
// round.
func (ix *Intersecter) Candidates() int {
	return len(ix.candidates)
}

// Intersections returns the intersections found so far. The slice is owned by
// the Intersecter and grows across rounds.
func (ix *Intersecter) Intersections() []Intersection {
	return ix.intersections
}

// IntersectOptions configures [AllIntersections]. The zero value and a nil
// options pointer both select the defaults.
type IntersectOptions struct {
	// MaxRounds bounds the number of subdivision rounds. Zero or negative
	// values select DefaultMaxRounds.
	MaxRounds int
}

// AllIntersections returns all parameter pairs at which two curves intersect.
//
// It runs [Intersecter.Step] until the candidate list empties or the round
// budget is exhausted, in which case it returns [ErrNoConvergence] along with
// the intersections found so far. [ErrParallel] and [ErrWiggleFailure] pass
// through from the underlying rounds.
func AllIntersections(first, second *Curve, opts *IntersectOptions) ([]Intersection, error) {
	maxRounds := DefaultMaxRounds
	if opts != nil && opts.MaxRounds > 0 {
		maxRounds = opts.MaxRounds
	}
	ix := NewIntersecter(first, second)
	for round := 0; round < maxRounds; round++ {
		done, err := ix.Step()
		if err != nil {
			return ix.Intersections(), err
		}
		if done {
			return ix.Intersections(), nil
		}
	}
	return ix.Intersections(), ErrNoConvergence
}
