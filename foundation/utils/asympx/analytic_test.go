// File: analytic_test.go
// Title: Unit Tests for Analytic Functions
// Description: Logarithm at singular points, atanh, roots, powers and
//              functions applied through derivative pairs.
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
	"math/cmplx"
	"strings"
	"testing"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
	"github.com/msto63/asymptotix/foundation/core/errors"
	"github.com/msto63/asymptotix/foundation/utils/dualx"
)

func TestSqrt(t *testing.T) {
	tests := []struct {
		name string
		x    PowerExpansion[float64]
		want PowerExpansion[float64]
	}{
		{"vanishing lead halves the order", pe(0, 4, 2, 3), pe(2, 0, 1, inf)},
		{"dual", pe(4, 8, 0, 1), pe(2, 2, 0, 1)},
		{"factored", pe(4, 8, 2, 3), pe(2, 2, 1, 2)},
		{"scalar", FromScalar(9.0), FromScalar(3.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertExpansion(t, tt.x.Sqrt(), tt.want)
		})
	}
}

func TestSqrtSingularBranch(t *testing.T) {
	z := pe(0, 4, 2, 3).Sqrt()
	if z.Alpha() != 1 {
		t.Errorf("leading exponent = %v, want 1", z.Alpha())
	}
	if z.A() != 2 {
		t.Errorf("leading coefficient = %v, want 2", z.A())
	}
}

func TestSqrtSquared(t *testing.T) {
	x := pe(4, 8, 0, 1)
	r := x.Sqrt()
	assertExpansion(t, r.Mul(r), x)
}

func TestPowReal(t *testing.T) {
	tests := []struct {
		name string
		x    PowerExpansion[float64]
		p    float64
		want PowerExpansion[float64]
	}{
		{"cube of dual", pe(2, 3, 0, 1), 3, pe(8, 36, 0, 1)},
		{"vanishing lead", pe(0, 4, 1, 2), 0.5, pe(2, 0, 0.5, inf)},
		{"shifted", pe(2, 1, 1, 2), 2, pe(4, 4, 2, 3)},
		{"zeroth power", pe(2, 1, 1, 2), 0, pe(1, 0, 0, 1)},
		{"negative power matches Inv", pe(2, 4, 0, 1), -1, pe(2, 4, 0, 1).Inv()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertExpansion(t, tt.x.PowReal(tt.p), tt.want)
		})
	}
}

func TestPowIntMatchesMul(t *testing.T) {
	x := pe(1, 1, 0, 1)
	assertExpansion(t, x.PowInt(2), x.Mul(x))
}

func TestPowComplexExponent(t *testing.T) {
	x := MustNew(complex(2, 0), complex(1, 0), 0, 1)
	got, err := x.Pow(1i)
	if err != nil {
		t.Fatalf("Pow(i) error = %v", err)
	}
	wantA := cmplx.Pow(2, 1i)
	wantB := 1i * cmplx.Pow(2, 1i-1)
	if cmplx.Abs(got.A()-wantA) > 1e-14 || cmplx.Abs(got.B()-wantB) > 1e-14 {
		t.Errorf("Pow(i) = %v", got)
	}

	_, err = MustNew(complex(2, 0), complex(1, 0), 1, 2).Pow(1i)
	if !mdwerror.HasCode(err, errors.CodeAsympxDomainError) {
		t.Errorf("Pow(i) with α ≠ 0 error = %v", err)
	}

	sq, err := x.Pow(complex(2, 0))
	if err != nil || !sq.ApproxEqual(x.Mul(x)) {
		t.Errorf("Pow(2+0i) = %v, %v", sq, err)
	}
}

func TestLog(t *testing.T) {
	tests := []struct {
		name string
		x    PowerExpansion[float64]
		want LogExpansion
	}{
		{"vanishing lead", pe(0, 2, 1, 2), NewLogExpansion(1, complex(math.Ln2, 0))},
		{"tiny lead", pe(1e-15, 2, 1, 2), NewLogExpansion(1, complex(math.Ln2, 0))},
		{"negative order", pe(5, 2, -1, 0), NewLogExpansion(-1, complex(math.Ln2, 0))},
		{"huge lead", pe(1e20, 3, 1, 2), NewLogExpansion(-1, complex(math.Log(3), 0))},
		{"negative coefficient", pe(0, -1, 1, 2), NewLogExpansion(1, complex(0, math.Pi))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.x.Log()
			if err != nil {
				t.Fatalf("Log() error = %v", err)
			}
			if !got.ApproxEqual(tt.want) {
				t.Errorf("Log() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogDomainError(t *testing.T) {
	_, err := pe(0.5, 1, 0, 1).Log()
	if err == nil {
		t.Fatal("Log() at a regular point should fail")
	}
	if !mdwerror.HasCode(err, errors.CodeAsympxDomainError) {
		t.Errorf("error code = %v", mdwerror.GetCode(err))
	}
	if !strings.Contains(err.Error(), "(0.5)ε^0") {
		t.Errorf("error %q does not name the value", err.Error())
	}

	if _, err := pe(0.5, 1, 0, 1).LogWithTolerance(1); err != nil {
		t.Errorf("LogWithTolerance(1) error = %v", err)
	}
}

func TestLog1p(t *testing.T) {
	got, err := pe(-1, 2, 0, 1).Log1p()
	if err != nil {
		t.Fatalf("Log1p() error = %v", err)
	}
	want := NewLogExpansion(0, complex(math.Ln2, 0))
	if !got.ApproxEqual(want) {
		t.Errorf("Log1p() = %v, want %v", got, want)
	}

	if _, err := pe(0, 2, 1, 2).Log1p(); err == nil {
		t.Error("Log1p() of a small quantity lands on a regular point and should fail")
	}
}

func TestAtanh(t *testing.T) {
	t.Run("near plus one", func(t *testing.T) {
		r, err := pe(1, -2, 1, 2).Atanh()
		if err != nil || !r.Singular {
			t.Fatalf("Atanh() = %+v, %v", r, err)
		}
		want := NewLogExpansion(-0.5, 0)
		if !r.Log.ApproxEqual(want, Tolerance{Abs: 1e-15}) {
			t.Errorf("Atanh() = %v, want %v", r.Log, want)
		}
	})

	t.Run("near minus one", func(t *testing.T) {
		r, err := pe(-1, 4, 1, 2).Atanh()
		if err != nil || !r.Singular {
			t.Fatalf("Atanh() = %+v, %v", r, err)
		}
		want := NewLogExpansion(0.5, complex(math.Ln2/2, 0))
		if !r.Log.ApproxEqual(want) {
			t.Errorf("Atanh() = %v, want %v", r.Log, want)
		}
	})

	t.Run("regular point", func(t *testing.T) {
		r, err := pe(0.5, 1, 0, 1).Atanh()
		if err != nil || r.Singular {
			t.Fatalf("Atanh() = %+v, %v", r, err)
		}
		want := pe(math.Atanh(0.5), 1/0.75, 0, 1)
		assertExpansion(t, r.Power, want)
	})
}

func TestComposedFunctions(t *testing.T) {
	x := pe(0, 1, 0, 1)
	tests := []struct {
		name string
		got  PowerExpansion[float64]
		want PowerExpansion[float64]
	}{
		{"exp", x.Exp(), pe(1, 1, 0, 1)},
		{"expm1", x.Expm1(), pe(0, 1, 0, 1)},
		{"sin", x.Sin(), pe(0, 1, 0, 1)},
		{"cos", x.Cos(), pe(1, 0, 0, 1)},
		{"tan", x.Tan(), pe(0, 1, 0, 1)},
		{"sinh", x.Sinh(), pe(0, 1, 0, 1)},
		{"cosh", x.Cosh(), pe(1, 0, 0, 1)},
		{"tanh", x.Tanh(), pe(0, 1, 0, 1)},
		{"keeps exponents", pe(1, 2, 0.5, 3).Exp(), pe(math.E, 2*math.E, 0.5, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertExpansion(t, tt.got, tt.want)
		})
	}

	if _, err := x.Apply(dualx.Function(42)); err == nil {
		t.Error("Apply() with an unknown function should fail")
	}
}

func TestComponentWise(t *testing.T) {
	x := MustNew(complex(1, 2), complex(3, -4), 0.5, 1)

	assertExpansion(t, x.Real(), pe(1, 3, 0.5, 1))
	assertExpansion(t, x.Imag(), pe(2, -4, 0.5, 1))
	if want := MustNew(complex(1, -2), complex(3, 4), 0.5, 1); !x.Conj().Equal(want) {
		t.Errorf("Conj() = %v, want %v", x.Conj(), want)
	}
	if got := MustNew(complex(3, 4), 1, 0, 1).Abs(); got != 5 {
		t.Errorf("Abs() = %v, want 5", got)
	}
	if got := pe(-2, 100, 0, 1).Abs(); got != 2 {
		t.Errorf("Abs() = %v, want 2", got)
	}
	if got := pe(1, 2, 0, 1).Conj(); !got.Equal(pe(1, 2, 0, 1)) {
		t.Errorf("Conj() on real coefficients = %v", got)
	}
}
