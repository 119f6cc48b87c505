// File: doc.go
// Title: Expression Language Package Documentation
// Description: Lexer, parser and evaluator for arithmetic on power and log
//              expansions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

/*
Package expr parses and evaluates expressions over asymptotic expansions.

Grammar, lowest precedence first:

	expr    := term (('+'|'-') term)*
	term    := unary (('*'|'/') unary)*
	unary   := ('-'|'+') unary | power
	power   := primary ('^' unary)?
	primary := NUMBER | IMAG | IDENT | IDENT '(' args ')' | '(' expr ')'

Power is right-associative: 2^-1^2 parses as 2^(-(1^2)). Numbers accept a
fraction and an exponent (1.5e-3); a trailing i makes them imaginary (2i).

Every value is a complex number, a PowerExpansion[complex128] or a
LogExpansion. Numbers are promoted to expansions when mixed with them.

	v, err := expr.Eval("sqrt(pe(0, 4, 2, 3))", nil)
	// v.String() == "(2+0i)ε^1 + (0+0i)ε^+Inf"

The constants inf, pi, e and i are fixed. Other identifiers are looked up
through a Resolver; Scope is an in-memory one and Chain combines several.

Parse failures are *ParseError values with line and column; they unwrap to
an error with code EXPR_SYNTAX. Unknown identifiers fail with
EXPR_UNKNOWN_SYMBOL and operand kinds an operator cannot combine with
EXPR_TYPE_MISMATCH. Errors from the expansion arithmetic pass through
unchanged.

An Evaluator holds parser state and is not safe for concurrent use; create
one per goroutine.
*/
package expr
