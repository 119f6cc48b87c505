// File: equality.go
// Title: Exact and Approximate Equality
// Description: Field-wise equality of expansions with absolute and relative
//              tolerance knobs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package asympx

import (
	"math"
)

const machineEpsilon = 2.220446049250313e-16

// Tolerance bounds |a−b| by Abs + Rel·max(|a|, |b|).
type Tolerance struct {
	Abs float64
	Rel float64
}

// DefaultTolerance is Abs = 0, Rel = √(machine epsilon).
func DefaultTolerance() Tolerance {
	return Tolerance{Rel: math.Sqrt(machineEpsilon)}
}

// exponentTolerance decides which exponents merge during addition. The
// absolute part lets exponents near zero merge with zero.
var exponentTolerance = Tolerance{
	Abs: math.Sqrt(machineEpsilon),
	Rel: math.Sqrt(machineEpsilon),
}

// Close reports whether a and b agree within t. Equal values always agree;
// an infinity agrees only with itself.
func (t Tolerance) Close(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return math.Abs(a-b) <= t.Abs+t.Rel*math.Max(math.Abs(a), math.Abs(b))
}

func closeScalar[T Scalar](t Tolerance, a, b T) bool {
	if a == b {
		return true
	}
	aa, ab := absT(a), absT(b)
	if math.IsInf(aa, 0) || math.IsInf(ab, 0) {
		return false
	}
	return absT(a-b) <= t.Abs+t.Rel*math.Max(aa, ab)
}

func pickTolerance(tol []Tolerance) Tolerance {
	if len(tol) > 0 {
		return tol[0]
	}
	return DefaultTolerance()
}

// Equal reports exact equality of all four fields.
func (x PowerExpansion[T]) Equal(y PowerExpansion[T]) bool {
	return x.a == y.a && x.b == y.b && x.alpha == y.alpha && x.beta == y.beta
}

// ApproxEqual compares each field within tol, DefaultTolerance if omitted.
// With a zero Tolerance it agrees with Equal.
func (x PowerExpansion[T]) ApproxEqual(y PowerExpansion[T], tol ...Tolerance) bool {
	t := pickTolerance(tol)
	return closeScalar(t, x.a, y.a) &&
		closeScalar(t, x.b, y.b) &&
		t.Close(x.alpha, y.alpha) &&
		t.Close(x.beta, y.beta)
}
