// File: builtins.go
// Title: Builtin Functions
// Description: Constructors, analytic functions and component accessors
//              available in expressions. Each builtin accepts numbers and
//              power expansions; log, log1p and atanh may return log
//              expansions.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: log1p honours the configured log tolerance

package expr

import (
	"math/cmplx"
	"sort"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
	"github.com/msto63/asymptotix/foundation/core/errors"
	"github.com/msto63/asymptotix/foundation/utils/asympx"
	"github.com/msto63/asymptotix/foundation/utils/dualx"
)

type builtin struct {
	arity int
	fn    func(args []Value) (Value, error)
	doc   string
	// withTol, when set, replaces fn if the evaluator carries a log tolerance
	withTol func(args []Value, tol float64) (Value, error)
}

var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"pe":    {4, builtinPE, "pe(A, B, α, β): A·ε^α + B·ε^β", nil},
		"num":   {1, builtinNum, "num(z): z as the expansion (z, 0, 0, inf)", nil},
		"dual":  {2, builtinDual, "dual(v, d): derivative pair (v, d, 0, 1)", nil},
		"inv":   {1, builtinInv, "inv(x): 1/x", nil},
		"sqrt":  {1, builtinSqrt, "sqrt(x): principal square root", nil},
		"log":   {1, builtinLog, "log(x): logarithm, a log expansion for expansions", logWithTolerance},
		"log1p": {1, builtinLog1p, "log1p(x): log(1 + x)", log1pWithTolerance},
		"atanh": {1, builtinAtanh, "atanh(x): inverse hyperbolic tangent", nil},
		"exp":   {1, builtinExp, "exp(x): exponential, also of log expansions", nil},
		"real":  {1, builtinReal, "real(x): real parts of the coefficients", nil},
		"imag":  {1, builtinImag, "imag(x): imaginary parts of the coefficients", nil},
		"conj":  {1, builtinConj, "conj(x): complex conjugate of the coefficients", nil},
		"abs":   {1, builtinAbs, "abs(x): |x|, |A| for expansions", nil},
		"eval":  {2, builtinEval, "eval(x, ε): substitute a number for ε", nil},
	}

	analytic := map[string]func(complex128) complex128{
		"sin":   cmplx.Sin,
		"cos":   cmplx.Cos,
		"tan":   cmplx.Tan,
		"sinh":  cmplx.Sinh,
		"cosh":  cmplx.Cosh,
		"tanh":  cmplx.Tanh,
		"expm1": func(z complex128) complex128 { return cmplx.Exp(z) - 1 },
	}
	for name, numeric := range analytic {
		f, err := dualx.ParseFunction(name)
		if err != nil {
			panic(err)
		}
		builtins[name] = builtin{1, analyticBuiltin(f, numeric), name + "(x): applied through the derivative pair (A, B)", nil}
	}
}

// Builtins returns the names of all builtin functions in sorted order
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a one-line usage string for a builtin function
func Describe(name string) (string, bool) {
	b, ok := builtins[name]
	return b.doc, ok
}

// Constants returns the names of the builtin constants in sorted order
func Constants() []string {
	names := make([]string, 0, len(constants))
	for name := range constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func analyticBuiltin(f dualx.Function, numeric func(complex128) complex128) func([]Value) (Value, error) {
	return func(args []Value) (Value, error) {
		x := args[0]
		switch x.Kind() {
		case KindNumber:
			z, _ := x.Number()
			return Number(numeric(z)), nil
		case KindExpansion:
			pe, _ := x.Expansion()
			r, err := pe.Apply(f)
			if err != nil {
				return Value{}, err
			}
			return FromExpansion(r), nil
		}
		return Value{}, typeMismatch(f.String(), x.Kind())
	}
}

// argNumber requires a plain number argument
func argNumber(fn string, v Value) (complex128, error) {
	if z, ok := v.Number(); ok {
		return z, nil
	}
	if pe, ok := v.Expansion(); ok && pe.IsScalar() {
		return pe.A(), nil
	}
	return 0, typeMismatch(fn, v.Kind())
}

// argReal requires a number with zero imaginary part
func argReal(fn string, v Value) (float64, error) {
	z, err := argNumber(fn, v)
	if err != nil {
		return 0, err
	}
	if imag(z) != 0 {
		return 0, errors.NewErrorBuilder(errors.ModuleExpr).
			Operation(fn).
			Messagef("expr.%s: exponent %s must be real", fn, FormatNumber(z)).
			Kind(mdwerror.CodeTypeMismatch).
			Detail("value", FormatNumber(z)).
			Build()
	}
	return real(z), nil
}

func builtinPE(args []Value) (Value, error) {
	a, err := argNumber("pe", args[0])
	if err != nil {
		return Value{}, err
	}
	b, err := argNumber("pe", args[1])
	if err != nil {
		return Value{}, err
	}
	alpha, err := argReal("pe", args[2])
	if err != nil {
		return Value{}, err
	}
	beta, err := argReal("pe", args[3])
	if err != nil {
		return Value{}, err
	}
	x, err := asympx.New(a, b, alpha, beta)
	if err != nil {
		return Value{}, err
	}
	return FromExpansion(x), nil
}

func builtinNum(args []Value) (Value, error) {
	z, err := argNumber("num", args[0])
	if err != nil {
		return Value{}, err
	}
	return FromExpansion(asympx.FromScalar(z)), nil
}

func builtinDual(args []Value) (Value, error) {
	v, err := argNumber("dual", args[0])
	if err != nil {
		return Value{}, err
	}
	d, err := argNumber("dual", args[1])
	if err != nil {
		return Value{}, err
	}
	return FromExpansion(asympx.FromPair(asympx.Pair[complex128]{Value: v, Deriv: d})), nil
}

func builtinInv(args []Value) (Value, error) {
	return args[0].Inv()
}

func builtinSqrt(args []Value) (Value, error) {
	switch x := args[0]; x.Kind() {
	case KindNumber:
		z, _ := x.Number()
		return Number(cmplx.Sqrt(z)), nil
	case KindExpansion:
		pe, _ := x.Expansion()
		return FromExpansion(pe.Sqrt()), nil
	}
	return Value{}, typeMismatch("sqrt", args[0].Kind())
}

func builtinLog(args []Value) (Value, error) {
	return logWithTolerance(args, asympx.LogTolerance)
}

func logWithTolerance(args []Value, tol float64) (Value, error) {
	switch x := args[0]; x.Kind() {
	case KindNumber:
		z, _ := x.Number()
		return Number(cmplx.Log(z)), nil
	case KindExpansion:
		pe, _ := x.Expansion()
		l, err := pe.LogWithTolerance(tol)
		if err != nil {
			return Value{}, err
		}
		return FromLog(l), nil
	}
	return Value{}, typeMismatch("log", args[0].Kind())
}

func builtinLog1p(args []Value) (Value, error) {
	return log1pWithTolerance(args, asympx.LogTolerance)
}

func log1pWithTolerance(args []Value, tol float64) (Value, error) {
	switch x := args[0]; x.Kind() {
	case KindNumber:
		z, _ := x.Number()
		return Number(cmplx.Log(1 + z)), nil
	case KindExpansion:
		pe, _ := x.Expansion()
		l, err := pe.AddScalar(1).LogWithTolerance(tol)
		if err != nil {
			return Value{}, err
		}
		return FromLog(l), nil
	}
	return Value{}, typeMismatch("log1p", args[0].Kind())
}

func builtinAtanh(args []Value) (Value, error) {
	switch x := args[0]; x.Kind() {
	case KindNumber:
		z, _ := x.Number()
		return Number(cmplx.Atanh(z)), nil
	case KindExpansion:
		pe, _ := x.Expansion()
		r, err := pe.Atanh()
		if err != nil {
			return Value{}, err
		}
		if r.Singular {
			return FromLog(r.Log), nil
		}
		return FromExpansion(r.Power), nil
	}
	return Value{}, typeMismatch("atanh", args[0].Kind())
}

func builtinExp(args []Value) (Value, error) {
	switch x := args[0]; x.Kind() {
	case KindNumber:
		z, _ := x.Number()
		return Number(cmplx.Exp(z)), nil
	case KindExpansion:
		pe, _ := x.Expansion()
		return FromExpansion(pe.Exp()), nil
	case KindLog:
		l, _ := x.Log()
		return FromExpansion(l.Exp()), nil
	}
	return Value{}, typeMismatch("exp", args[0].Kind())
}

func builtinReal(args []Value) (Value, error) {
	switch x := args[0]; x.Kind() {
	case KindNumber:
		z, _ := x.Number()
		return Real(real(z)), nil
	case KindExpansion:
		pe, _ := x.Expansion()
		return FromExpansion(pe.Real().Complex()), nil
	}
	return Value{}, typeMismatch("real", args[0].Kind())
}

func builtinImag(args []Value) (Value, error) {
	switch x := args[0]; x.Kind() {
	case KindNumber:
		z, _ := x.Number()
		return Real(imag(z)), nil
	case KindExpansion:
		pe, _ := x.Expansion()
		return FromExpansion(pe.Imag().Complex()), nil
	}
	return Value{}, typeMismatch("imag", args[0].Kind())
}

func builtinConj(args []Value) (Value, error) {
	switch x := args[0]; x.Kind() {
	case KindNumber:
		z, _ := x.Number()
		return Number(cmplx.Conj(z)), nil
	case KindExpansion:
		pe, _ := x.Expansion()
		return FromExpansion(pe.Conj()), nil
	}
	return Value{}, typeMismatch("conj", args[0].Kind())
}

func builtinAbs(args []Value) (Value, error) {
	switch x := args[0]; x.Kind() {
	case KindNumber:
		z, _ := x.Number()
		return Real(cmplx.Abs(z)), nil
	case KindExpansion:
		pe, _ := x.Expansion()
		return Real(pe.Abs()), nil
	}
	return Value{}, typeMismatch("abs", args[0].Kind())
}

func builtinEval(args []Value) (Value, error) {
	eps, err := argNumber("eval", args[1])
	if err != nil {
		return Value{}, err
	}
	return Number(args[0].EvaluateAt(eps)), nil
}
