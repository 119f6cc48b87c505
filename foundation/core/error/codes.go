// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              expansion algebra, the expression language and the tooling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Expansion algebra and expression codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Expansion algebra
	CodeInvariantViolation Code = "INVARIANT_VIOLATION"
	CodeInvalidConversion  Code = "INVALID_CONVERSION"
	CodeDomainError        Code = "DOMAIN_ERROR"
	CodeAmbiguousMerge     Code = "AMBIGUOUS_MERGE"
	CodeUnknownFunction    Code = "UNKNOWN_FUNCTION"

	// Expression language
	CodeSyntax        Code = "SYNTAX"
	CodeUnknownSymbol Code = "UNKNOWN_SYMBOL"
	CodeTypeMismatch  Code = "TYPE_MISMATCH"
	CodeCyclicRef     Code = "CYCLIC_REFERENCE"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsClientError reports whether the code describes a caller mistake
// rather than a failure of the toolkit itself.
func (c Code) IsClientError() bool {
	switch c {
	case CodeInvalidInput, CodeInvariantViolation, CodeInvalidConversion,
		CodeDomainError, CodeAmbiguousMerge, CodeSyntax, CodeUnknownSymbol,
		CodeTypeMismatch, CodeNotFound, CodeValidationFailed, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidConfig, CodeUnknownFunction, CodeCyclicRef:
		return true
	}
	return false
}
