// File: dualx.go
// Title: Derivative Pair Application
// Description: Function identifiers, name lookup and generic application to
//              real and complex (value, derivative) pairs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package dualx

import (
	"math"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/num/dual"

	"github.com/msto63/asymptotix/foundation/core/errors"
)

// Scalar is the set of coefficient kinds a pair may hold.
type Scalar interface {
	float64 | complex128
}

// Function identifies an analytic function.
type Function int

const (
	Exp Function = iota
	Expm1
	Log
	Sqrt
	Sin
	Cos
	Tan
	Sinh
	Cosh
	Tanh
	Atanh
)

var functionNames = [...]string{
	Exp:   "exp",
	Expm1: "expm1",
	Log:   "log",
	Sqrt:  "sqrt",
	Sin:   "sin",
	Cos:   "cos",
	Tan:   "tan",
	Sinh:  "sinh",
	Cosh:  "cosh",
	Tanh:  "tanh",
	Atanh: "atanh",
}

// String returns the function's name
func (f Function) String() string {
	if f < 0 || int(f) >= len(functionNames) {
		return "unknown"
	}
	return functionNames[f]
}

// Functions returns every supported function in declaration order
func Functions() []Function {
	fs := make([]Function, len(functionNames))
	for i := range fs {
		fs[i] = Function(i)
	}
	return fs
}

// ParseFunction looks a function up by name, case-insensitively.
func ParseFunction(name string) (Function, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range functionNames {
		if candidate == n {
			return Function(i), nil
		}
	}
	return 0, errors.UnknownFunction(errors.ModuleDualx, "parse_function", name)
}

// Apply returns f(value) and f'(value)·deriv.
func Apply[T Scalar](f Function, value, deriv T) (T, T, error) {
	switch v := any(value).(type) {
	case float64:
		d := any(deriv).(float64)
		rv, rd, err := applyReal(f, v, d)
		return any(rv).(T), any(rd).(T), err
	case complex128:
		d := any(deriv).(complex128)
		cv, cd, err := applyComplex(f, v, d)
		return any(cv).(T), any(cd).(T), err
	}
	panic("dualx: unreachable scalar kind")
}

func applyReal(f Function, v, d float64) (float64, float64, error) {
	x := dual.Number{Real: v, Emag: d}
	var r dual.Number
	switch f {
	case Exp:
		r = dual.Exp(x)
	case Expm1:
		r = dual.Number{Real: math.Expm1(v), Emag: math.Exp(v) * d}
	case Log:
		r = dual.Log(x)
	case Sqrt:
		r = dual.Sqrt(x)
	case Sin:
		r = dual.Sin(x)
	case Cos:
		r = dual.Cos(x)
	case Tan:
		r = dual.Tan(x)
	case Sinh:
		r = dual.Sinh(x)
	case Cosh:
		r = dual.Cosh(x)
	case Tanh:
		r = dual.Tanh(x)
	case Atanh:
		r = dual.Atanh(x)
	default:
		return 0, 0, unknown(f)
	}
	return r.Real, r.Emag, nil
}

func applyComplex(f Function, v, d complex128) (complex128, complex128, error) {
	var fv, df complex128
	switch f {
	case Exp:
		fv = cmplx.Exp(v)
		df = fv
	case Expm1:
		fv = cmplx.Exp(v) - 1
		df = cmplx.Exp(v)
	case Log:
		fv = cmplx.Log(v)
		df = 1 / v
	case Sqrt:
		fv = cmplx.Sqrt(v)
		df = 1 / (2 * fv)
	case Sin:
		fv = cmplx.Sin(v)
		df = cmplx.Cos(v)
	case Cos:
		fv = cmplx.Cos(v)
		df = -cmplx.Sin(v)
	case Tan:
		fv = cmplx.Tan(v)
		df = 1 + fv*fv
	case Sinh:
		fv = cmplx.Sinh(v)
		df = cmplx.Cosh(v)
	case Cosh:
		fv = cmplx.Cosh(v)
		df = cmplx.Sinh(v)
	case Tanh:
		fv = cmplx.Tanh(v)
		df = 1 - fv*fv
	case Atanh:
		fv = cmplx.Atanh(v)
		df = 1 / (1 - v*v)
	default:
		return 0, 0, unknown(f)
	}
	return fv, df * d, nil
}

func unknown(f Function) error {
	return errors.UnknownFunction(errors.ModuleDualx, "apply", int(f))
}
