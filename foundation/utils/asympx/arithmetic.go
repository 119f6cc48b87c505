// File: arithmetic.go
// Title: Expansion Arithmetic
// Description: Addition by merging like orders, multiplication, inverse and
//              division of two-term expansions.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Products with a leading term at ε^+Inf vanish; zero orders unsigned

package asympx

import (
	"math"

	"github.com/msto63/asymptotix/foundation/core/errors"
)

type term[T Scalar] struct {
	coeff T
	exp   float64
}

func (x PowerExpansion[T]) terms() []term[T] {
	return []term[T]{{x.a, x.alpha}, {x.b, x.beta}}
}

// merge keeps the two lowest distinct orders of terms. Terms are sorted by
// exponent; on ties the earlier input term stays first. γ is the lowest
// exponent, δ the first exponent in sorted order not close to γ. A term
// close to both γ and δ counts toward γ. ok is false when every exponent is
// close to γ; the result is then the single merged term.
func merge[T Scalar](terms []term[T]) (PowerExpansion[T], bool) {
	sorted := make([]term[T], len(terms))
	copy(sorted, terms)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].exp < sorted[j-1].exp; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	gamma := sorted[0].exp
	delta := math.NaN()
	for _, t := range sorted[1:] {
		if !exponentTolerance.Close(t.exp, gamma) {
			delta = t.exp
			break
		}
	}

	var tot1, tot2 T
	for _, t := range sorted {
		switch {
		case exponentTolerance.Close(t.exp, gamma):
			tot1 += t.coeff
		case !math.IsNaN(delta) && exponentTolerance.Close(t.exp, delta):
			tot2 += t.coeff
		}
	}

	if math.IsNaN(delta) {
		return PowerExpansion[T]{a: tot1, alpha: normExponent(gamma), beta: math.Inf(1)}, false
	}
	return PowerExpansion[T]{a: tot1, b: tot2, alpha: normExponent(gamma), beta: normExponent(delta)}, true
}

func exponentsOf[T Scalar](terms []term[T]) []float64 {
	exps := make([]float64, len(terms))
	for i, t := range terms {
		exps[i] = t.exp
	}
	return exps
}

// Add returns x + y truncated to the two lowest orders. When all four
// exponents coincide the sum is the single merged term with β = +Inf;
// AddChecked reports that case as an error instead.
func (x PowerExpansion[T]) Add(y PowerExpansion[T]) PowerExpansion[T] {
	z, _ := merge(append(x.terms(), y.terms()...))
	return z
}

// AddChecked is Add but fails with an ambiguous merge error when the sum has
// no second order.
func (x PowerExpansion[T]) AddChecked(y PowerExpansion[T]) (PowerExpansion[T], error) {
	terms := append(x.terms(), y.terms()...)
	z, ok := merge(terms)
	if !ok {
		return z, errors.AmbiguousMerge(errors.ModuleAsympx, "add", exponentsOf(terms))
	}
	return z, nil
}

// IsZero reports whether both coefficients are zero.
func (x PowerExpansion[T]) IsZero() bool {
	var zero T
	return x.a == zero && x.b == zero
}

// Neg returns −x.
func (x PowerExpansion[T]) Neg() PowerExpansion[T] {
	return PowerExpansion[T]{a: -x.a, b: -x.b, alpha: x.alpha, beta: x.beta}
}

// Sub returns x + (−y).
func (x PowerExpansion[T]) Sub(y PowerExpansion[T]) PowerExpansion[T] {
	return x.Add(y.Neg())
}

// AddScalar returns x + z.
func (x PowerExpansion[T]) AddScalar(z T) PowerExpansion[T] {
	return x.Add(FromScalar(z))
}

// Scale multiplies both coefficients by k.
func (x PowerExpansion[T]) Scale(k T) PowerExpansion[T] {
	return PowerExpansion[T]{a: k * x.a, b: k * x.b, alpha: x.alpha, beta: x.beta}
}

// Mul returns x·y. For x = Aε^p + Bε^q and y = Cε^r + Dε^s:
//
//	A = C = 0: (BD)ε^(q+s)
//	A = 0:     (BC)ε^(q+r) + (BD)ε^(q+s)
//	C = 0:     (AD)ε^(p+s) + (BD)ε^(q+s)
//	otherwise the four cross terms merged as in Add.
//
// A factor with both coefficients zero yields the scalar zero, and so does a
// leading term that lands at ε^+Inf.
func (x PowerExpansion[T]) Mul(y PowerExpansion[T]) PowerExpansion[T] {
	var zero T
	p, q, r, s := x.alpha, x.beta, y.alpha, y.beta

	switch {
	case x.IsZero() || y.IsZero():
		return FromScalar(zero)
	case x.a == zero && y.a == zero:
		return leading(x.b*y.b, zero, q+s, math.Inf(1))
	case x.a == zero:
		return leading(x.b*y.a, x.b*y.b, q+r, q+s)
	case y.a == zero:
		return leading(x.a*y.b, x.b*y.b, p+s, q+s)
	}

	z, _ := merge([]term[T]{
		{x.a * y.a, p + r},
		{x.a * y.b, p + s},
		{x.b * y.a, q + r},
		{x.b * y.b, q + s},
	})
	return z
}

// leading builds a product whose leading term sits at ε^alpha. A leading
// exponent of +Inf means the product vanishes.
func leading[T Scalar](a, b T, alpha, beta float64) PowerExpansion[T] {
	if math.IsInf(alpha, 1) {
		var zero T
		return FromScalar(zero)
	}
	return PowerExpansion[T]{a: a, b: b, alpha: normExponent(alpha), beta: normExponent(beta)}
}

// Inv returns 1/x. With A ≠ 0:
//
//	1/x = (1/A)ε^(−α) − (B/A²)ε^(β−2α)
//
// With A = 0 the secondary coefficient leads: (1/B)ε^(−α).
func (x PowerExpansion[T]) Inv() PowerExpansion[T] {
	var zero T
	one := fromReal[T](1)
	if x.a == zero {
		return PowerExpansion[T]{a: one / x.b, alpha: normExponent(-x.alpha), beta: math.Inf(1)}
	}
	return PowerExpansion[T]{
		a:     one / x.a,
		b:     -x.b / (x.a * x.a),
		alpha: normExponent(-x.alpha),
		beta:  normExponent(x.beta - 2*x.alpha),
	}
}

// Div returns x·(1/y).
func (x PowerExpansion[T]) Div(y PowerExpansion[T]) PowerExpansion[T] {
	return x.Mul(y.Inv())
}

// DivScalar returns x·(1/z) through the same inverse as Div.
func (x PowerExpansion[T]) DivScalar(z T) PowerExpansion[T] {
	return x.Div(FromScalar(z))
}
