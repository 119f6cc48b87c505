// File: analytic.go
// Title: Analytic Functions of Expansions
// Description: Logarithm and atanh with their singular branches, square
//              root and powers, functions composed through derivative pairs,
//              and component-wise real/imag/conj/abs.
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
	"math/cmplx"

	"github.com/msto63/asymptotix/foundation/utils/dualx"
)

// LogTolerance is the default threshold for Log: a leading coefficient at
// most this large counts as zero, one at least its inverse as infinite.
const LogTolerance = 1e-14

// Log returns log(x) using LogTolerance. See LogWithTolerance.
func (x PowerExpansion[T]) Log() (LogExpansion, error) {
	return x.LogWithTolerance(LogTolerance)
}

// LogWithTolerance returns the logarithm at a singular point. With x read as
// A + B·ε^α:
//
//	|A| ≤ tol or α < 0: α·log(ε) + log(B)
//	|A| ≥ 1/tol:        −α·log(ε) + log(B)
//
// Any other A is a regular point and yields a domain error.
func (x PowerExpansion[T]) LogWithTolerance(tol float64) (LogExpansion, error) {
	abs := absT(x.a)
	switch {
	case abs <= tol || x.alpha < 0:
		return NewLogExpansion(x.alpha, clog(x.b)), nil
	case abs >= 1/tol:
		return NewLogExpansion(-x.alpha, clog(x.b)), nil
	}
	return LogExpansion{}, domainError("log", x.String(),
		"leading coefficient must be near zero or infinity")
}

// Log1p returns Log(x + 1).
func (x PowerExpansion[T]) Log1p() (LogExpansion, error) {
	return x.AddScalar(fromReal[T](1)).Log()
}

// Atanh returns atanh(x). A leading coefficient near ±1 is a logarithmic
// singularity and yields a LogExpansion:
//
//	A ≈ +1: −α/2·log(ε) + log(2)/2 − log(−B)/2
//	A ≈ −1:  α/2·log(ε) − log(2)/2 + log(B)/2
//
// Otherwise the result is a regular expansion with leading coefficient
// atanh(A) and the secondary term propagated to first order.
func (x PowerExpansion[T]) Atanh() (AtanhResult[T], error) {
	t := DefaultTolerance()
	half := math.Ln2 / 2
	switch {
	case closeScalar(t, x.a, fromReal[T](1)):
		c := complex(half, 0) - clog(-x.b)/2
		return AtanhResult[T]{Log: NewLogExpansion(-x.alpha/2, c), Singular: true}, nil
	case closeScalar(t, x.a, fromReal[T](-1)):
		c := complex(-half, 0) + clog(x.b)/2
		return AtanhResult[T]{Log: NewLogExpansion(x.alpha/2, c), Singular: true}, nil
	}
	p, err := x.Apply(dualx.Atanh)
	if err != nil {
		return AtanhResult[T]{}, err
	}
	return AtanhResult[T]{Power: p}, nil
}

// AtanhResult holds Log when Singular is set and Power otherwise.
type AtanhResult[T Scalar] struct {
	Power    PowerExpansion[T]
	Log      LogExpansion
	Singular bool
}

// Sqrt returns √x. With A ≠ 0:
//
//	√x = √A·ε^(α/2) + (B/(2√A))·ε^(β−α/2)
//
// With A = 0 the order of the zero halves: √B·ε^(α/2).
func (x PowerExpansion[T]) Sqrt() PowerExpansion[T] {
	var zero T
	if x.a == zero {
		return PowerExpansion[T]{a: sqrtT(x.b), alpha: x.alpha / 2, beta: math.Inf(1)}
	}
	r := sqrtT(x.a)
	return PowerExpansion[T]{
		a:     r,
		b:     x.b / (fromReal[T](2) * r),
		alpha: x.alpha / 2,
		beta:  x.beta - x.alpha/2,
	}
}

// PowReal returns x^p. With A ≠ 0:
//
//	x^p = A^p·ε^(αp) + (p·B·A^(p−1))·ε^(αp+β−α)
//
// With A = 0 the exponent scales: B^p·ε^(αp).
func (x PowerExpansion[T]) PowReal(p float64) PowerExpansion[T] {
	var zero T
	if x.a == zero {
		return PowerExpansion[T]{a: powT(x.b, p), alpha: normExponent(x.alpha * p), beta: math.Inf(1)}
	}
	return PowerExpansion[T]{
		a:     powT(x.a, p),
		b:     fromReal[T](p) * x.b * powT(x.a, p-1),
		alpha: normExponent(x.alpha * p),
		beta:  normExponent(x.alpha*p + (x.beta - x.alpha)),
	}
}

// Pow returns x^p for a coefficient-kind exponent. A complex p with a
// non-zero imaginary part is only representable when the exponents do not
// move, i.e. A ≠ 0 and α = 0.
func (x PowerExpansion[T]) Pow(p T) (PowerExpansion[T], error) {
	pc := toComplex(p)
	if imag(pc) == 0 {
		return x.PowReal(real(pc)), nil
	}

	var zero T
	if x.a == zero || x.alpha != 0 {
		return PowerExpansion[T]{}, domainError("pow", formatScalar(p),
			"complex exponent would make the order of ε complex")
	}
	a := toComplex(x.a)
	b := toComplex(x.b)
	lead := cmplx.Pow(a, pc)
	second := pc * b * cmplx.Pow(a, pc-1)
	return PowerExpansion[T]{
		a:     any(lead).(T),
		b:     any(second).(T),
		alpha: 0,
		beta:  x.beta,
	}, nil
}

// PowInt returns x^n through PowReal.
func (x PowerExpansion[T]) PowInt(n int) PowerExpansion[T] {
	return x.PowReal(float64(n))
}

// Apply maps the pair (A, B) through f and keeps α and β. This is exact
// for α = 0, β = 1 and a first-order propagation otherwise.
func (x PowerExpansion[T]) Apply(f dualx.Function) (PowerExpansion[T], error) {
	a, b, err := dualx.Apply(f, x.a, x.b)
	if err != nil {
		return PowerExpansion[T]{}, err
	}
	return PowerExpansion[T]{a: a, b: b, alpha: x.alpha, beta: x.beta}, nil
}

func (x PowerExpansion[T]) mustApply(f dualx.Function) PowerExpansion[T] {
	z, err := x.Apply(f)
	if err != nil {
		panic(err)
	}
	return z
}

// Exp returns exp(x) composed through the derivative pair (A, B).
func (x PowerExpansion[T]) Exp() PowerExpansion[T] { return x.mustApply(dualx.Exp) }

// Expm1 returns exp(x) − 1 composed through the derivative pair (A, B).
func (x PowerExpansion[T]) Expm1() PowerExpansion[T] { return x.mustApply(dualx.Expm1) }

// Sin returns sin(x) composed through the derivative pair (A, B).
func (x PowerExpansion[T]) Sin() PowerExpansion[T] { return x.mustApply(dualx.Sin) }

// Cos returns cos(x) composed through the derivative pair (A, B).
func (x PowerExpansion[T]) Cos() PowerExpansion[T] { return x.mustApply(dualx.Cos) }

func (x PowerExpansion[T]) Tan() PowerExpansion[T]  { return x.mustApply(dualx.Tan) }
func (x PowerExpansion[T]) Sinh() PowerExpansion[T] { return x.mustApply(dualx.Sinh) }
func (x PowerExpansion[T]) Cosh() PowerExpansion[T] { return x.mustApply(dualx.Cosh) }
func (x PowerExpansion[T]) Tanh() PowerExpansion[T] { return x.mustApply(dualx.Tanh) }

// Real returns the real parts of both coefficients.
func (x PowerExpansion[T]) Real() PowerExpansion[float64] {
	return PowerExpansion[float64]{a: real(toComplex(x.a)), b: real(toComplex(x.b)), alpha: x.alpha, beta: x.beta}
}

// Imag returns the imaginary parts of both coefficients.
func (x PowerExpansion[T]) Imag() PowerExpansion[float64] {
	return PowerExpansion[float64]{a: imag(toComplex(x.a)), b: imag(toComplex(x.b)), alpha: x.alpha, beta: x.beta}
}

// Conj conjugates both coefficients.
func (x PowerExpansion[T]) Conj() PowerExpansion[T] {
	return PowerExpansion[T]{a: conjT(x.a), b: conjT(x.b), alpha: x.alpha, beta: x.beta}
}

// Abs returns |A|. The secondary term is discarded.
func (x PowerExpansion[T]) Abs() float64 {
	return absT(x.a)
}
