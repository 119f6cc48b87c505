// File: doc.go
// Title: Package Documentation for asympx
// Description: Package asympx provides two-term asymptotic expansions and
//              logarithmic expansions at singular points.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial package documentation

// Package asympx provides two-term asymptotic expansions.
//
// Package: asympx
// Title: Asymptotic Expansion Arithmetic
// Description: PowerExpansion holds the leading two terms A·ε^α + B·ε^β of
//              a generalized power series in a formal small parameter ε.
//              Arithmetic and analytic functions propagate the two-term
//              form. LogExpansion holds α·log(ε) + c, the result of taking
//              the logarithm at a singular point.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// # Coefficient kinds
//
// Coefficients are float64 or complex128; exponents are always float64.
// Complex lifts a real expansion, Promote lifts two expansions to a common
// complex kind.
//
// # Truncation
//
// Every operation keeps only the two lowest orders. Addition merges terms
// whose exponents agree within a tolerance and drops anything beyond the
// second distinct order.
//
// # Vanishing leading coefficient
//
// When the leading coefficient is exactly zero, the singular branches of
// Inv, Sqrt, Pow and Log treat B as the leading coefficient at order α:
//
//	z := asympx.MustNew(0.0, 4.0, 2, 3)
//	r := z.Sqrt() // (2)ε^1 + (0)ε^+Inf
//
// # Usage
//
//	x := asympx.MustNew(1.0, 2.0, 0, 1) // 1 + 2ε
//	y := asympx.FromScalar(3.0)         // 3
//	s := x.Add(y)                       // (4)ε^0 + (2)ε^1
//	v := s.Evaluate(0.01)               // 4.02
//
//	l, err := asympx.MustNew(0.0, 2.0, 1, 2).Log() // (1)log(ε) + (0.693…)
package asympx
