// File: doc.go
// Title: Package Documentation for dualx
// Description: Package dualx applies named analytic functions to (value,
//              derivative) pairs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial package documentation

// Package dualx applies named analytic functions to (value, derivative) pairs.
//
// Package: dualx
// Title: Derivative Pair Functions
// Description: Forward-mode derivative propagation for a fixed set of analytic
//              functions. Real pairs are evaluated through gonum's dual
//              numbers; complex pairs use math/cmplx with the closed-form
//              derivative.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Apply(f, v, d) returns (f(v), f'(v)·d), the image of the first-order jet
// v + d·ε under f:
//
//	v, d, err := dualx.Apply(dualx.Sin, 0.0, 1.0) // (0, 1)
//
// Functions can be looked up by the name used in expressions:
//
//	f, err := dualx.ParseFunction("tanh")
package dualx
