// Package error provides the structured error type used across asymptotix.
//
// Package: error
// Title: asymptotix Error Handling Framework
// Description: Structured errors carrying a code, a severity, free-form details
//              and a captured stack trace. Every failure surfaced by the
//              expansion algebra, the expression language and the tooling is an
//              *Error so callers can branch on codes instead of message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Reduced to the codes used by the expansion toolkit
//
// Usage:
//
//	err := error.New("leading exponent must be below the secondary exponent").
//		WithCode(error.CodeInvariantViolation).
//		WithDetail("alpha", 2.0).
//		WithDetail("beta", 1.0)
//
//	if error.HasCode(err, error.CodeInvariantViolation) {
//		// caller supplied exponents in the wrong order
//	}
package error
