// File: logexpansion.go
// Title: Logarithmic Expansion Type
// Description: LogExpansion α·log(ε) + c, produced by logarithms and atanh
//              at singular points, with its additive algebra.
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
)

// LogExpansion is α·log(ε) + c.
type LogExpansion struct {
	exponent float64
	constant complex128
}

// NewLogExpansion returns exponent·log(ε) + constant.
func NewLogExpansion(exponent float64, constant complex128) LogExpansion {
	return LogExpansion{exponent: normExponent(exponent), constant: constant}
}

// Exponent returns α, the coefficient of log(ε).
func (l LogExpansion) Exponent() float64 { return l.exponent }

// Constant returns c.
func (l LogExpansion) Constant() complex128 { return l.constant }

// Evaluate returns α·log(ε) + c with the principal logarithm.
func (l LogExpansion) Evaluate(eps complex128) complex128 {
	if l.exponent == 0 {
		return l.constant
	}
	return complex(l.exponent, 0)*cmplx.Log(eps) + l.constant
}

// EvaluateAt1 returns c, the value at ε = 1.
func (l LogExpansion) EvaluateAt1() complex128 {
	return l.constant
}

func (l LogExpansion) Add(m LogExpansion) LogExpansion {
	return LogExpansion{exponent: normExponent(l.exponent + m.exponent), constant: l.constant + m.constant}
}

func (l LogExpansion) Neg() LogExpansion {
	return LogExpansion{exponent: normExponent(-l.exponent), constant: -l.constant}
}

func (l LogExpansion) Sub(m LogExpansion) LogExpansion {
	return l.Add(m.Neg())
}

// AddScalar shifts the constant.
func (l LogExpansion) AddScalar(z complex128) LogExpansion {
	return LogExpansion{exponent: l.exponent, constant: l.constant + z}
}

// Scale multiplies by a real k; a complex factor would make α complex.
func (l LogExpansion) Scale(k float64) LogExpansion {
	return LogExpansion{exponent: normExponent(k * l.exponent), constant: complex(k, 0) * l.constant}
}

// Exp returns exp(α·log(ε) + c) = e^c·ε^α.
func (l LogExpansion) Exp() PowerExpansion[complex128] {
	return PowerExpansion[complex128]{a: cmplx.Exp(l.constant), alpha: l.exponent, beta: math.Inf(1)}
}

// Equal reports exact equality of α and c.
func (l LogExpansion) Equal(m LogExpansion) bool {
	return l.exponent == m.exponent && l.constant == m.constant
}

// ApproxEqual compares α and c within tol, DefaultTolerance if omitted.
func (l LogExpansion) ApproxEqual(m LogExpansion, tol ...Tolerance) bool {
	t := pickTolerance(tol)
	return t.Close(l.exponent, m.exponent) && closeScalar(t, l.constant, m.constant)
}

// String renders "(α)log(ε) + (c)".
func (l LogExpansion) String() string {
	return fmt.Sprintf("(%s)log(ε) + (%s)", formatExponent(l.exponent), formatScalar(l.constant))
}
