package bezier

import (
	"fmt"
	"slices"
	"strings"
)

// Curve is a planar Bézier curve of arbitrary degree, described by its
// ordered control points. A curve with n control points has degree n−1; it
// must have at least two control points.
//
// Curves are treated as immutable: none of the methods modify Nodes, and
// callers must not modify a curve while an intersection query derived from it
// is in progress.
type Curve struct {
	Nodes []Point
}

// NewCurve returns the curve with the given control points.
func NewCurve(nodes ...Point) Curve {
	return Curve{Nodes: nodes}
}

// Degree returns the polynomial degree of the curve, one less than the number
// of control points.
func (c Curve) Degree() int {
	return len(c.Nodes) - 1
}

func (c Curve) Start() Point { return c.Nodes[0] }
func (c Curve) End() Point   { return c.Nodes[len(c.Nodes)-1] }

func (c Curve) String() string {
	sb := &strings.Builder{}
	sb.WriteString("Curve[")
	for i, node := range c.Nodes {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(sb, node)
	}
	sb.WriteString("]")
	return sb.String()
}

// Eval evaluates the curve at parameter t using de Casteljau's algorithm.
// Generally, t is in the range [0, 1], but the curve extends over all of ℝ
// and evaluation outside the unit interval is permitted.
func (c Curve) Eval(t float64) Point {
	tmp := slices.Clone(c.Nodes)
	for n := len(tmp); n > 1; n-- {
		for i := 0; i < n-1; i++ {
			tmp[i] = tmp[i].Lerp(tmp[i+1], t)
		}
	}
	return tmp[0]
}

// EvalHodograph evaluates the curve's hodograph — its derivative curve, of
// one degree lower — at parameter t, yielding the tangent vector there.
func (c Curve) EvalHodograph(t float64) Vec2 {
	degree := float64(c.Degree())
	diffs := make([]Point, len(c.Nodes)-1)
	for i := range diffs {
		diffs[i] = Point(c.Nodes[i+1].Sub(c.Nodes[i]).Mul(degree))
	}
	return Vec2(Curve{Nodes: diffs}.Eval(t))
}

// Subdivide splits the curve at its parametric midpoint, returning the curves
// over [0, 1/2] and [1/2, 1]. Both halves have the same degree as c. The
// split uses only midpoints, so it is exact up to floating-point rounding.
func (c Curve) Subdivide() (Curve, Curve) {
	n := len(c.Nodes)
	left := make([]Point, n)
	right := make([]Point, n)
	tmp := slices.Clone(c.Nodes)
	left[0] = tmp[0]
	right[n-1] = tmp[n-1]
	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			tmp[i] = tmp[i].Midpoint(tmp[i+1])
		}
		left[k] = tmp[0]
		right[n-1-k] = tmp[n-1-k]
	}
	return Curve{Nodes: left}, Curve{Nodes: right}
}

// BoundingBox returns the axis-aligned bounding box of the curve's control
// polygon. The box contains the curve, but is not necessarily tight.
func (c Curve) BoundingBox() Rect {
	return boundsOf(c.Nodes)
}

// IsNaN reports whether any control point coordinate is NaN.
func (c Curve) IsNaN() bool {
	for _, node := range c.Nodes {
		if node.IsNaN() {
			return true
		}
	}
	return false
}
