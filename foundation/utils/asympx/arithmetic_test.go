// File: arithmetic_test.go
// Title: Unit Tests for Expansion Arithmetic
// Description: Addition and merge, products, inverses, division and the
//              order invariant of their results.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test implementation

package asympx

import (
	"math"
	"strings"
	"testing"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
	"github.com/msto63/asymptotix/foundation/core/errors"
)

func pe(a, b, alpha, beta float64) PowerExpansion[float64] {
	return MustNew(a, b, alpha, beta)
}

func assertExpansion(t *testing.T, got, want PowerExpansion[float64]) {
	t.Helper()
	if !got.ApproxEqual(want, Tolerance{Abs: 1e-14, Rel: 1e-12}) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		x, y PowerExpansion[float64]
		want PowerExpansion[float64]
	}{
		{"like orders", pe(1, 2, 0, 1), pe(3, 4, 0, 1), pe(4, 6, 0, 1)},
		{"truncates higher orders", pe(1, 1, 0, 1), pe(1, 1, 2, 3), pe(1, 1, 0, 1)},
		{"three coincide at the lead", pe(1, 2, 0, 1), pe(3, 4, 0, 2), pe(4, 2, 0, 1)},
		{"interleaved", pe(1, 1, 0, 2), pe(5, 7, 1, 3), pe(1, 5, 0, 1)},
		{"near-equal exponents merge", pe(1, 1, 0, 1), pe(1, 1, 1e-12, 2), pe(2, 1, 0, 1)},
		{"scalars", FromScalar(1.0), FromScalar(2.0), FromScalar(3.0)},
		{"scalar and expansion", FromScalar(3.0), pe(1, 2, 0, 1), pe(4, 2, 0, 1)},
		{"negative orders", pe(2, 1, -1, 0), pe(1, 1, 0, 1), pe(2, 2, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertExpansion(t, tt.x.Add(tt.y), tt.want)
		})
	}
}

func TestAddTruncationKeepsLowestOrders(t *testing.T) {
	z := pe(1, 1, 0, 1).Add(pe(1, 1, 2, 3))
	if z.Alpha() != 0 || z.Beta() != 1 {
		t.Errorf("exponents = %v, %v; want 0, 1", z.Alpha(), z.Beta())
	}
}

func TestAddCommutative(t *testing.T) {
	values := []PowerExpansion[float64]{
		pe(1, 2, 0, 1),
		pe(-3, 0.5, 0.5, 2),
		pe(0, 4, 2, 3),
		pe(1, 1, 2, 3),
		pe(2, -1, -1, 1),
		FromScalar(7.0),
	}
	for _, x := range values {
		for _, y := range values {
			if !x.Add(y).ApproxEqual(y.Add(x)) {
				t.Errorf("%v + %v = %v but reversed = %v", x, y, x.Add(y), y.Add(x))
			}
		}
	}
}

func TestAddAmbiguousMerge(t *testing.T) {
	x := pe(1, 2, 0, 1e-20)
	y := pe(3, 4, 0, 1e-20)

	z := x.Add(y)
	if z.A() != 10 || z.B() != 0 || z.Alpha() != 0 || !math.IsInf(z.Beta(), 1) {
		t.Errorf("Add() = %v, want single merged term", z)
	}

	_, err := x.AddChecked(y)
	if !mdwerror.HasCode(err, errors.CodeAsympxAmbiguousMerge) {
		t.Errorf("AddChecked() error = %v", err)
	}

	if _, err := pe(1, 2, 0, 1).AddChecked(pe(3, 4, 0, 1)); err != nil {
		t.Errorf("AddChecked() with two orders error = %v", err)
	}
}

func TestSubAndNeg(t *testing.T) {
	x := pe(1, 2, 0, 1)
	assertExpansion(t, x.Sub(x), pe(0, 0, 0, 1))
	assertExpansion(t, x.Neg(), pe(-1, -2, 0, 1))
	assertExpansion(t, x.AddScalar(2), pe(3, 2, 0, 1))
	assertExpansion(t, x.Scale(3), pe(3, 6, 0, 1))
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		x, y PowerExpansion[float64]
		want PowerExpansion[float64]
	}{
		{"both leading zero", pe(0, 2, 1, 2), pe(0, 3, 0.5, 1), pe(6, 0, 3, inf)},
		{"left leading zero", pe(0, 2, 1, 2), pe(3, 5, 0, 1), pe(6, 10, 2, 3)},
		{"right leading zero", pe(3, 5, 0, 1), pe(0, 2, 1, 2), pe(6, 10, 2, 3)},
		{"dual numbers", pe(1, 2, 0, 1), pe(3, 4, 0, 1), pe(3, 10, 0, 1)},
		{"fractional orders", pe(1, 1, 0, 0.5), pe(1, 1, 0, 0.5), pe(1, 2, 0, 0.5)},
		{"shifted orders", pe(2, 1, 1, 2), pe(3, 1, -1, 0), pe(6, 5, 0, 1)},
		{"scalar factor", pe(1, 2, 0, 1), FromScalar(3.0), pe(3, 6, 0, 1)},
		{"zero factor", FromScalar(0.0), pe(1, 2, 0, 1), FromScalar(0.0)},
		{"both leads zero, term at infinite order", pe(0, 5, 0, inf), pe(0, 1, 0, 1), FromScalar(0.0)},
		{"both leads zero, infinite orders", pe(0, 4, -1, inf), pe(0, 1, 1, inf), FromScalar(0.0)},
		{"left lead zero, term at infinite order", pe(0, 5, 0, inf), pe(2, 1, 0, 1), FromScalar(0.0)},
		{"right lead zero, term at infinite order", pe(2, 1, 0, 1), pe(0, 5, 0, inf), FromScalar(0.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.x.Mul(tt.y)
			assertExpansion(t, got, tt.want)
			if _, err := New(got.A(), got.B(), got.Alpha(), got.Beta()); err != nil {
				t.Errorf("Mul() = %v violates the order invariant: %v", got, err)
			}
		})
	}
}

func TestZeroOrderIsUnsigned(t *testing.T) {
	tests := []struct {
		name string
		got  PowerExpansion[float64]
	}{
		{"inverse", pe(2, 4, 0, 1).Inv()},
		{"inverse of vanishing lead", pe(0, 4, 0, 1).Inv()},
		{"negative power", pe(2, 1, 0, 1).PowReal(-1)},
		{"negative power of vanishing lead", pe(0, 4, 0, 1).PowReal(-0.5)},
		{"negative zero input", pe(1, 1, math.Copysign(0, -1), 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Signbit(tt.got.Alpha()) {
				t.Errorf("Alpha() = %v, want +0", tt.got.Alpha())
			}
			if s := tt.got.String(); strings.Contains(s, "ε^-0") {
				t.Errorf("String() = %q", s)
			}
		})
	}

	if l := NewLogExpansion(0, 1).Neg(); math.Signbit(l.Exponent()) {
		t.Errorf("LogExpansion.Neg() exponent = %v, want +0", l.Exponent())
	}
}

func TestInv(t *testing.T) {
	tests := []struct {
		name string
		x    PowerExpansion[float64]
		want PowerExpansion[float64]
	}{
		{"dual", pe(2, 4, 0, 1), pe(0.5, -1, 0, 1)},
		{"shifted", pe(2, 4, 1, 3), pe(0.5, -1, -1, 1)},
		{"scalar", FromScalar(4.0), FromScalar(0.25)},
		{"vanishing lead", pe(0, 4, 2, 3), pe(0.25, 0, -2, inf)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertExpansion(t, tt.x.Inv(), tt.want)
		})
	}
}

func TestInvTimesSelfIsOne(t *testing.T) {
	x := pe(2, 4, 0, 1)
	assertExpansion(t, x.Mul(x.Inv()), pe(1, 0, 0, 1))
}

func TestDiv(t *testing.T) {
	assertExpansion(t, pe(1, 2, 0, 1).Div(pe(2, 4, 0, 1)), pe(0.5, 0, 0, 1))
	assertExpansion(t, pe(1, 2, 0, 1).DivScalar(2), pe(0.5, 1, 0, 1))
	assertExpansion(t, pe(0, 6, 1, 2).DivScalar(2), pe(3, 0, 2, inf))
}

func TestComplexArithmetic(t *testing.T) {
	x := MustNew(complex(1, 1), complex(0, 2), 0, 1)
	y := MustNew(complex(2, 0), complex(1, -1), 0, 1)

	got := x.Mul(y)
	want := MustNew(complex(2, 2), complex(2, 0)+complex(0, 4), 0, 1)
	if !got.ApproxEqual(want) {
		t.Errorf("Mul() = %v, want %v", got, want)
	}
	if !x.Div(x).ApproxEqual(MustNew(complex(1, 0), 0, 0, 1), Tolerance{Abs: 1e-14}) {
		t.Errorf("x/x = %v", x.Div(x))
	}
}
