package bezier

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestAllIntersectionsCrossingLines(t *testing.T) {
	first := NewCurve(Pt(0.0, 0.0), Pt(2.0, 2.0))
	second := NewCurve(Pt(0.0, 2.0), Pt(2.0, 0.0))
	got, err := AllIntersections(&first, &second, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d intersections, want 1", len(got))
	}
	if got[0].S != 0.5 || got[0].T != 0.5 {
		t.Errorf("got (%g, %g), want (0.5, 0.5)", got[0].S, got[0].T)
	}
	assertNear(t, got[0].Point(), Pt(1.0, 1.0), 0)
}

func TestAllIntersectionsLineAndQuadratic(t *testing.T) {
	// The parabola y = 2x(1−x) crosses y = 0.4375 at the two roots of
	// 2s² − 2s + 0.4375, which are irrational and in particular never land
	// on a subdivision boundary.
	first := NewCurve(Pt(0.0, 0.0), Pt(0.5, 1.0), Pt(1.0, 0.0))
	second := NewCurve(Pt(0.0, 0.4375), Pt(1.0, 0.4375))
	got, err := AllIntersections(&first, &second, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d intersections, want 2", len(got))
	}
	slices.SortFunc(got, func(a, b Intersection) int {
		switch {
		case a.S < b.S:
			return -1
		case a.S > b.S:
			return 1
		default:
			return 0
		}
	})
	sLow := (2.0 - math.Sqrt(0.5)) / 4.0
	sHigh := (2.0 + math.Sqrt(0.5)) / 4.0
	const epsilon = 1e-9
	for i, want := range []float64{sLow, sHigh} {
		if math.Abs(got[i].S-want) > epsilon {
			t.Errorf("root %d: got s=%.17g, want %.17g", i, got[i].S, want)
		}
		// The line is parametrized over x, so t equals the crossing's x,
		// which equals s for this parabola.
		if math.Abs(got[i].T-want) > epsilon {
			t.Errorf("root %d: got t=%.17g, want %.17g", i, got[i].T, want)
		}
		assertNear(t, got[i].Point(), Pt(want, 0.4375), epsilon)
	}
}

func TestAllIntersectionsCrossingQuadratics(t *testing.T) {
	first := NewCurve(Pt(0.0, 0.0), Pt(0.5, 1.0), Pt(1.0, 0.0))
	second := NewCurve(Pt(1.0, 0.75), Pt(0.5, -0.25), Pt(0.0, 0.75))
	got, err := AllIntersections(&first, &second, nil)
	if err != nil {
		t.Fatal(err)
	}
	// The curves cross transversally at (0.25, 0.75) and (0.75, 0.25);
	// records are not deduplicated, so count at least the two distinct
	// points rather than exactly two records.
	var low, high bool
	const epsilon = 1e-9
	for _, x := range got {
		if math.Abs(x.S-0.25) < epsilon && math.Abs(x.T-0.75) < epsilon {
			low = true
		}
		if math.Abs(x.S-0.75) < epsilon && math.Abs(x.T-0.25) < epsilon {
			high = true
		}
		assertNear(t, x.First.Eval(x.S), x.Second.Eval(x.T), 1e-9)
	}
	if !low || !high {
		t.Errorf("missing a crossing; got %d records: %v", len(got), got)
	}
}

func TestAllIntersectionsSharedEndpoint(t *testing.T) {
	// Curves touching only at a shared endpoint resolve through box
	// tangency and yield exactly one record.
	first := NewCurve(Pt(0.0, 0.0), Pt(0.5, 0.25), Pt(1.0, 1.0))
	second := NewCurve(Pt(1.0, 1.0), Pt(1.5, 1.75), Pt(2.0, 2.0))
	got, err := AllIntersections(&first, &second, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d intersections, want 1", len(got))
	}
	if got[0].S != 1.0 || got[0].T != 0.0 {
		t.Errorf("got (%g, %g), want (1, 0)", got[0].S, got[0].T)
	}
}

func TestAllIntersectionsDisjoint(t *testing.T) {
	first := NewCurve(Pt(0.0, 0.0), Pt(0.5, 1.0), Pt(1.0, 0.0))
	second := NewCurve(Pt(100.0, 100.0), Pt(100.5, 101.0), Pt(101.0, 100.0))

	ix := NewIntersecter(&first, &second)
	done, err := ix.Step()
	if err != nil {
		t.Fatal(err)
	}
	// A single round suffices: the pair is dropped, no candidates remain.
	if !done || ix.Candidates() != 0 {
		t.Errorf("done=%t with %d candidates, want immediate convergence", done, ix.Candidates())
	}
	if n := len(ix.Intersections()); n != 0 {
		t.Errorf("got %d intersections, want 0", n)
	}
}

func TestAllIntersectionsCollinearOverlap(t *testing.T) {
	first := NewCurve(Pt(0.0, 0.0), Pt(2.0, 2.0))
	second := NewCurve(Pt(1.0, 1.0), Pt(3.0, 3.0))
	got, err := AllIntersections(&first, &second, nil)
	if err != nil {
		t.Fatalf("collinear overlap must not fail, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d intersections, want 1", len(got))
	}
	if first.Eval(got[0].S) != second.Eval(got[0].T) {
		t.Errorf("record (%g, %g) names different points", got[0].S, got[0].T)
	}
}

func TestAllIntersectionsCoincidentCurves(t *testing.T) {
	// Two copies of the same curved segment overlap everywhere; once
	// linearized, every candidate pair has parallel chords that neither rule
	// resolves. The query must surface ErrParallel for a caller to switch
	// strategies.
	first := NewCurve(Pt(0.0, 0.0), Pt(0.5, 1.0), Pt(1.0, 0.0))
	second := NewCurve(Pt(0.0, 0.0), Pt(0.5, 1.0), Pt(1.0, 0.0))
	_, err := AllIntersections(&first, &second, nil)
	if !errors.Is(err, ErrParallel) {
		t.Errorf("got %v, want ErrParallel", err)
	}
}

func TestAllIntersectionsBudget(t *testing.T) {
	first := NewCurve(Pt(0.0, 0.0), Pt(0.5, 1.0), Pt(1.0, 0.0))
	second := NewCurve(Pt(0.0, 0.4375), Pt(1.0, 0.4375))
	_, err := AllIntersections(&first, &second, &IntersectOptions{MaxRounds: 1})
	if !errors.Is(err, ErrNoConvergence) {
		t.Errorf("got %v, want ErrNoConvergence", err)
	}
}

func TestIntersecterStepwise(t *testing.T) {
	// The round loop is externally driven; spending rounds one at a time
	// reaches the same result as AllIntersections.
	first := NewCurve(Pt(0.0, 0.0), Pt(0.5, 1.0), Pt(1.0, 0.0))
	second := NewCurve(Pt(0.0, 0.4375), Pt(1.0, 0.4375))

	ix := NewIntersecter(&first, &second)
	rounds := 0
	for {
		done, err := ix.Step()
		if err != nil {
			t.Fatal(err)
		}
		rounds++
		if done {
			break
		}
		if rounds > DefaultMaxRounds {
			t.Fatal("query did not converge")
		}
	}
	if len(ix.Intersections()) != 2 {
		t.Errorf("got %d intersections, want 2", len(ix.Intersections()))
	}
	if rounds < 2 {
		t.Errorf("converged after %d rounds; a curved pair needs several", rounds)
	}
}

func TestSegmentMapParamRoundTrip(t *testing.T) {
	// Children of a subdivided segment map their local endpoints exactly
	// onto the parent's interval bounds.
	root := &Curve{Nodes: []Point{Pt(0.0, 0.0), Pt(0.5, 1.0), Pt(1.0, 0.0)}}
	parent := newSegment(root.Nodes, 0.25, 0.75, root)
	left, right := parent.subdivide()

	if left.mapParam(0.0) != 0.25 || left.mapParam(1.0) != 0.5 {
		t.Errorf("left child maps to [%g, %g], want [0.25, 0.5]",
			left.mapParam(0.0), left.mapParam(1.0))
	}
	if right.mapParam(0.0) != 0.5 || right.mapParam(1.0) != 0.75 {
		t.Errorf("right child maps to [%g, %g], want [0.5, 0.75]",
			right.mapParam(0.0), right.mapParam(1.0))
	}
	if left.root != root || right.root != root {
		t.Error("children must share the parent's root")
	}
}

func TestVectorClose(t *testing.T) {
	if !vectorClose(Pt(1.0, 1.0), Pt(1.0, 1.0), closeEps) {
		t.Error("a point is close to itself")
	}
	if vectorClose(Pt(1.0, 1.0), Pt(1.0, 1.0+1e-9), closeEps) {
		t.Error("1e-9 apart is not close at 2^-40 relative tolerance")
	}
	if !vectorClose(Pt(0.0, 0.0), Pt(0.0, 0.0), closeEps) {
		t.Error("the origin is close to itself")
	}
	if vectorClose(Pt(0.0, 0.0), Pt(1.0, 0.0), closeEps) {
		t.Error("distinct points are not close")
	}
}
