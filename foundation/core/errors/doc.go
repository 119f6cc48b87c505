// Package errors provides the standard error constructors for asymptotix
// modules.
//
// Package: errors
// Title: Standard Error Handling API
// Description: Module-scoped constructors on top of the core error package.
//              Every module reports failures through these functions so codes,
//              severities and the "module"/"operation" details stay uniform.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-17 v0.2.0: Expansion algebra kinds (invariant, conversion, domain, merge)
//
// # Error codes
//
// Codes are the upper-cased module name joined to a base code from the core
// error package, for example ASYMPX_DOMAIN_ERROR or EXPR_SYNTAX. IsKind matches
// the base code regardless of module.
//
// # Usage
//
//	err := errors.DomainError(errors.ModuleAsympx, "log", 0.5,
//		"leading coefficient must be near zero or infinity")
//
//	if errors.IsKind(err, mdwerror.CodeDomainError) {
//		// restrict the input domain and retry
//	}
package errors
