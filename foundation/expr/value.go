// File: value.go
// Title: Expression Values
// Description: The dynamically typed result of evaluating an expression: a
//              complex number, a complex power expansion or a logarithmic
//              expansion, with the arithmetic that mixes them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package expr

import (
	"fmt"
	"math/cmplx"
	"strconv"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
	"github.com/msto63/asymptotix/foundation/core/errors"
	"github.com/msto63/asymptotix/foundation/utils/asympx"
)

// Kind identifies which field of a Value is populated
type Kind int

const (
	KindNumber Kind = iota
	KindExpansion
	KindLog
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindExpansion:
		return "expansion"
	case KindLog:
		return "log expansion"
	default:
		return "unknown"
	}
}

// Expansion is the coefficient kind the evaluator works in
type Expansion = asympx.PowerExpansion[complex128]

// Value is the result of evaluating an expression
type Value struct {
	kind Kind
	num  complex128
	pe   Expansion
	log  asympx.LogExpansion
}

// Number wraps a complex number
func Number(z complex128) Value { return Value{kind: KindNumber, num: z} }

// Real wraps a real number
func Real(f float64) Value { return Number(complex(f, 0)) }

// FromExpansion wraps a power expansion
func FromExpansion(x Expansion) Value { return Value{kind: KindExpansion, pe: x} }

// FromLog wraps a logarithmic expansion
func FromLog(l asympx.LogExpansion) Value { return Value{kind: KindLog, log: l} }

// Kind returns the populated variant
func (v Value) Kind() Kind { return v.kind }

// Number returns the numeric value and whether v is a number
func (v Value) Number() (complex128, bool) { return v.num, v.kind == KindNumber }

// Expansion returns v as a power expansion. Numbers are promoted with
// asympx.FromScalar; log expansions report false.
func (v Value) Expansion() (Expansion, bool) {
	switch v.kind {
	case KindNumber:
		return asympx.FromScalar(v.num), true
	case KindExpansion:
		return v.pe, true
	default:
		return Expansion{}, false
	}
}

// Log returns the logarithmic expansion and whether v is one
func (v Value) Log() (asympx.LogExpansion, bool) { return v.log, v.kind == KindLog }

// String renders numbers compactly and expansions in their display form
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return FormatNumber(v.num)
	case KindExpansion:
		return v.pe.String()
	case KindLog:
		return v.log.String()
	default:
		return "<invalid>"
	}
}

// FormatNumber prints real numbers without an imaginary part
func FormatNumber(z complex128) string {
	if imag(z) == 0 {
		return strconv.FormatFloat(real(z), 'g', -1, 64)
	}
	s := strconv.FormatComplex(z, 'g', -1, 128)
	return s[1 : len(s)-1]
}

// ApproxEqual compares two values of the same kind. A number and an
// expansion compare through promotion.
func (v Value) ApproxEqual(w Value, tol asympx.Tolerance) bool {
	if v.kind == KindLog || w.kind == KindLog {
		l, ok1 := v.Log()
		m, ok2 := w.Log()
		return ok1 && ok2 && l.ApproxEqual(m, tol)
	}
	x, _ := v.Expansion()
	y, _ := w.Expansion()
	return x.ApproxEqual(y, tol)
}

func typeMismatch(op string, kinds ...Kind) error {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return errors.NewErrorBuilder(errors.ModuleExpr).
		Operation(op).
		Messagef("expr.%s: not defined for %v", op, names).
		Kind(mdwerror.CodeTypeMismatch).
		Detail("operands", names).
		Build()
}

// realScalar extracts a real factor for operations on log expansions
func realScalar(z complex128) (float64, bool) {
	return real(z), imag(z) == 0
}

// Neg returns -v
func (v Value) Neg() Value {
	switch v.kind {
	case KindNumber:
		return Number(-v.num)
	case KindExpansion:
		return FromExpansion(v.pe.Neg())
	default:
		return FromLog(v.log.Neg())
	}
}

// Add returns v + w
func (v Value) Add(w Value) (Value, error) {
	switch {
	case v.kind == KindNumber && w.kind == KindNumber:
		return Number(v.num + w.num), nil
	case v.kind == KindLog && w.kind == KindLog:
		return FromLog(v.log.Add(w.log)), nil
	case v.kind == KindLog && w.kind == KindNumber:
		return FromLog(v.log.AddScalar(w.num)), nil
	case v.kind == KindNumber && w.kind == KindLog:
		return FromLog(w.log.AddScalar(v.num)), nil
	}
	x, ok1 := v.Expansion()
	y, ok2 := w.Expansion()
	if !ok1 || !ok2 {
		return Value{}, typeMismatch("add", v.kind, w.kind)
	}
	return FromExpansion(x.Add(y)), nil
}

// Sub returns v - w
func (v Value) Sub(w Value) (Value, error) {
	return v.Add(w.Neg())
}

// Mul returns v * w. A log expansion may only be scaled by a real number.
func (v Value) Mul(w Value) (Value, error) {
	switch {
	case v.kind == KindNumber && w.kind == KindNumber:
		return Number(v.num * w.num), nil
	case v.kind == KindLog && w.kind == KindNumber:
		if k, ok := realScalar(w.num); ok {
			return FromLog(v.log.Scale(k)), nil
		}
	case v.kind == KindNumber && w.kind == KindLog:
		if k, ok := realScalar(v.num); ok {
			return FromLog(w.log.Scale(k)), nil
		}
	case v.kind == KindExpansion && w.kind == KindNumber:
		return FromExpansion(v.pe.Scale(w.num)), nil
	case v.kind == KindNumber && w.kind == KindExpansion:
		return FromExpansion(w.pe.Scale(v.num)), nil
	case v.kind == KindExpansion && w.kind == KindExpansion:
		return FromExpansion(v.pe.Mul(w.pe)), nil
	}
	return Value{}, typeMismatch("mul", v.kind, w.kind)
}

// Div returns v / w
func (v Value) Div(w Value) (Value, error) {
	switch {
	case v.kind == KindNumber && w.kind == KindNumber:
		return Number(v.num / w.num), nil
	case v.kind == KindLog && w.kind == KindNumber:
		if k, ok := realScalar(w.num); ok {
			return FromLog(v.log.Scale(1 / k)), nil
		}
	case v.kind == KindExpansion && w.kind == KindNumber:
		return FromExpansion(v.pe.DivScalar(w.num)), nil
	case w.kind == KindExpansion && v.kind != KindLog:
		x, _ := v.Expansion()
		return FromExpansion(x.Div(w.pe)), nil
	}
	return Value{}, typeMismatch("div", v.kind, w.kind)
}

// Pow returns v ^ w. The exponent must be a number; an expansion raised to
// a complex power follows asympx.PowerExpansion.Pow.
func (v Value) Pow(w Value) (Value, error) {
	p, ok := w.Number()
	if !ok {
		if x, isPE := w.Expansion(); isPE && x.IsScalar() {
			p, ok = x.A(), true
		}
	}
	if !ok {
		return Value{}, typeMismatch("pow", v.kind, w.kind)
	}
	switch v.kind {
	case KindNumber:
		return Number(cmplx.Pow(v.num, p)), nil
	case KindExpansion:
		r, err := v.pe.Pow(p)
		if err != nil {
			return Value{}, err
		}
		return FromExpansion(r), nil
	}
	return Value{}, typeMismatch("pow", v.kind, w.kind)
}

// Inv returns 1/v
func (v Value) Inv() (Value, error) {
	switch v.kind {
	case KindNumber:
		return Number(1 / v.num), nil
	case KindExpansion:
		return FromExpansion(v.pe.Inv()), nil
	}
	return Value{}, typeMismatch("inv", v.kind)
}

// EvaluateAt substitutes ε into v. Numbers evaluate to themselves.
func (v Value) EvaluateAt(eps complex128) complex128 {
	switch v.kind {
	case KindExpansion:
		return v.pe.EvaluateComplex(eps)
	case KindLog:
		return v.log.Evaluate(eps)
	default:
		return v.num
	}
}

// GoString supports %#v for debugging
func (v Value) GoString() string {
	return fmt.Sprintf("expr.Value{%s: %s}", v.kind, v.String())
}
