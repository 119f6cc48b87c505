// File: scalar.go
// Title: Coefficient Kinds
// Description: The Scalar constraint and kind-dispatching helpers for
//              float64 and complex128 coefficients.
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
	"strconv"
	"strings"

	"github.com/msto63/asymptotix/foundation/utils/dualx"
)

// Scalar is the set of coefficient kinds.
type Scalar = dualx.Scalar

func fromReal[T Scalar](f float64) T {
	var zero T
	if _, ok := any(zero).(float64); ok {
		return any(f).(T)
	}
	return any(complex(f, 0)).(T)
}

func toComplex[T Scalar](x T) complex128 {
	switch v := any(x).(type) {
	case float64:
		return complex(v, 0)
	case complex128:
		return v
	}
	return 0
}

func absT[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float64:
		return math.Abs(v)
	case complex128:
		return cmplx.Abs(v)
	}
	return 0
}

func sqrtT[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float64:
		return any(math.Sqrt(v)).(T)
	case complex128:
		return any(cmplx.Sqrt(v)).(T)
	}
	return x
}

func powT[T Scalar](x T, p float64) T {
	switch v := any(x).(type) {
	case float64:
		return any(math.Pow(v, p)).(T)
	case complex128:
		return any(cmplx.Pow(v, complex(p, 0))).(T)
	}
	return x
}

func conjT[T Scalar](x T) T {
	if v, ok := any(x).(complex128); ok {
		return any(cmplx.Conj(v)).(T)
	}
	return x
}

// clog is the principal logarithm; negative reals give an imaginary part of π.
func clog[T Scalar](x T) complex128 {
	return cmplx.Log(toComplex(x))
}

func formatScalar[T Scalar](x T) string {
	switch v := any(x).(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case complex128:
		s := strconv.FormatComplex(v, 'g', -1, 128)
		return strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	return ""
}

// normExponent maps −0 to +0 so that a zero order never prints as ε^-0.
func normExponent(p float64) float64 {
	if p == 0 {
		return 0
	}
	return p
}

func formatExponent(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

// kindName is used by the %#v verb.
func kindName[T Scalar]() string {
	var zero T
	if _, ok := any(zero).(float64); ok {
		return "float64"
	}
	return "complex128"
}
