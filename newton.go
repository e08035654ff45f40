package bezier

// NewtonRefine performs one Newton step on the guessed parameter pair (s, t)
// towards a root of F(s, t) = first(s) − second(t).
//
// The Jacobian is built from the curves' hodographs and the 2×2 system is
// solved with an explicit determinant. If the guess is already an exact root,
// it is returned unchanged; Newton's method is then idempotent. Likewise, a
// guess at which the Jacobian is singular — the tangents are parallel, as for
// two collinear lines — is returned unchanged rather than stepping to NaN.
//
// One step converges quadratically near a transversal intersection, and is
// exact for a pair of lines. The parameters refer to the full curves, so the
// step is free of accumulated subdivision error.
func NewtonRefine(first Curve, s float64, second Curve, t float64) (float64, float64) {
	delta := second.Eval(t).Sub(first.Eval(s))
	if delta == (Vec2{}) {
		return s, t
	}
	// Solve [first'(s) | −second'(t)] · (ds, dt) = delta.
	tangent1 := first.EvalHodograph(s)
	tangent2 := second.EvalHodograph(t)
	det := tangent2.Cross(tangent1)
	if det == 0.0 {
		return s, t
	}
	ds := tangent2.Cross(delta) / det
	dt := tangent1.Cross(delta) / det
	return s + ds, t + dt
}
