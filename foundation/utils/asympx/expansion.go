// File: expansion.go
// Title: Power Expansion Type
// Description: PowerExpansion construction, evaluation, conversion to and
//              from derivative pairs, kind promotion and formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package asympx

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/num/dual"
)

// PowerExpansion is the two-term expansion A·ε^α + B·ε^β with α < β.
// The zero value is not valid; use New, MustNew or FromScalar.
type PowerExpansion[T Scalar] struct {
	a, b        T
	alpha, beta float64
}

// New returns A·ε^α + B·ε^β. α must be finite and strictly less than β;
// β may be +Inf.
func New[T Scalar](a, b T, alpha, beta float64) (PowerExpansion[T], error) {
	if !validExponents(alpha, beta) {
		return PowerExpansion[T]{}, invariantError("new", alpha, beta)
	}
	return PowerExpansion[T]{a: a, b: b, alpha: normExponent(alpha), beta: normExponent(beta)}, nil
}

// MustNew is like New but panics on invalid exponents.
func MustNew[T Scalar](a, b T, alpha, beta float64) PowerExpansion[T] {
	x, err := New(a, b, alpha, beta)
	if err != nil {
		panic(err)
	}
	return x
}

// FromScalar promotes z to (z)ε^0 + (0)ε^+Inf.
func FromScalar[T Scalar](z T) PowerExpansion[T] {
	return PowerExpansion[T]{a: z, alpha: 0, beta: math.Inf(1)}
}

// A returns the leading coefficient.
func (x PowerExpansion[T]) A() T { return x.a }

// B returns the secondary coefficient.
func (x PowerExpansion[T]) B() T { return x.b }

// Alpha returns the leading exponent.
func (x PowerExpansion[T]) Alpha() float64 { return x.alpha }

// Beta returns the secondary exponent.
func (x PowerExpansion[T]) Beta() float64 { return x.beta }

// IsScalar reports whether x carries no ε dependence.
func (x PowerExpansion[T]) IsScalar() bool {
	var zero T
	return x.alpha == 0 && x.b == zero
}

// Evaluate returns A·ε^α + B·ε^β. Terms with a zero coefficient are
// skipped, so an infinite β never produces NaN.
func (x PowerExpansion[T]) Evaluate(eps T) T {
	var zero, sum T
	if x.a != zero {
		sum += x.a * powT(eps, x.alpha)
	}
	if x.b != zero {
		sum += x.b * powT(eps, x.beta)
	}
	return sum
}

// EvaluateComplex evaluates at a complex ε using principal powers.
func (x PowerExpansion[T]) EvaluateComplex(eps complex128) complex128 {
	var sum complex128
	if a := toComplex(x.a); a != 0 {
		sum += a * cmplx.Pow(eps, complex(x.alpha, 0))
	}
	if b := toComplex(x.b); b != 0 {
		sum += b * cmplx.Pow(eps, complex(x.beta, 0))
	}
	return sum
}

// Pair is a value with its first derivative.
type Pair[T Scalar] struct {
	Value T
	Deriv T
}

// FromPair returns (Value)ε^0 + (Deriv)ε^1.
func FromPair[T Scalar](p Pair[T]) PowerExpansion[T] {
	return PowerExpansion[T]{a: p.Value, b: p.Deriv, alpha: 0, beta: 1}
}

// ToPair converts back to a derivative pair. It fails unless α = 0 and β = 1.
func (x PowerExpansion[T]) ToPair() (Pair[T], error) {
	if x.alpha != 0 || x.beta != 1 {
		return Pair[T]{}, conversionError("to_pair", x.alpha, x.beta)
	}
	return Pair[T]{Value: x.a, Deriv: x.b}, nil
}

// FromDual converts a gonum dual number Real + Emag·ϵ.
func FromDual(d dual.Number) PowerExpansion[float64] {
	return FromPair(Pair[float64]{Value: d.Real, Deriv: d.Emag})
}

// ToDual converts to a gonum dual number; α, β must be 0, 1.
func ToDual(x PowerExpansion[float64]) (dual.Number, error) {
	if x.alpha != 0 || x.beta != 1 {
		return dual.Number{}, conversionError("to_dual", x.alpha, x.beta)
	}
	return dual.Number{Real: x.a, Emag: x.b}, nil
}

// Complex lifts x to complex coefficients.
func (x PowerExpansion[T]) Complex() PowerExpansion[complex128] {
	return PowerExpansion[complex128]{
		a:     toComplex(x.a),
		b:     toComplex(x.b),
		alpha: x.alpha,
		beta:  x.beta,
	}
}

// Promote lifts two expansions of possibly different kinds to the common
// complex kind.
func Promote[T, U Scalar](x PowerExpansion[T], y PowerExpansion[U]) (PowerExpansion[complex128], PowerExpansion[complex128]) {
	return x.Complex(), y.Complex()
}

// String renders "(A)ε^α + (B)ε^β".
func (x PowerExpansion[T]) String() string {
	return fmt.Sprintf("(%s)ε^%s + (%s)ε^%s",
		formatScalar(x.a), formatExponent(x.alpha),
		formatScalar(x.b), formatExponent(x.beta))
}

// Format implements fmt.Formatter. %+v names the fields, %#v prints a Go
// expression that rebuilds the value.
func (x PowerExpansion[T]) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('#'):
		fmt.Fprintf(f, "asympx.MustNew[%s](%s, %s, %s, %s)", kindName[T](),
			goScalar(x.a), goScalar(x.b), goExponent(x.alpha), goExponent(x.beta))
	case verb == 'v' && f.Flag('+'):
		fmt.Fprintf(f, "{A:%s B:%s α:%s β:%s}",
			formatScalar(x.a), formatScalar(x.b),
			formatExponent(x.alpha), formatExponent(x.beta))
	case verb == 'v' || verb == 's':
		fmt.Fprint(f, x.String())
	case verb == 'q':
		fmt.Fprintf(f, "%q", x.String())
	default:
		fmt.Fprintf(f, "%%!%c(asympx.PowerExpansion=%s)", verb, x.String())
	}
}

func goScalar[T Scalar](v T) string {
	switch c := any(v).(type) {
	case float64:
		return formatScalar(c)
	case complex128:
		return fmt.Sprintf("complex(%s, %s)", formatExponent(real(c)), formatExponent(imag(c)))
	}
	return ""
}

func goExponent(p float64) string {
	if math.IsInf(p, 1) {
		return "math.Inf(1)"
	}
	return formatExponent(p)
}
