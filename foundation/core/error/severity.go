// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to pick the log level an error is
//              reported at.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-17 v0.1.1: Severity mapping for expansion codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake that is trivially recoverable
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation the caller can work around
	SeverityMedium

	// SeverityHigh indicates a broken precondition or an unusable resource
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeInvariantViolation, CodeDatabaseError, CodeConfigError:
		return SeverityHigh
	case CodeDomainError, CodeAmbiguousMerge, CodeTypeMismatch:
		return SeverityMedium
	case CodeInvalidInput, CodeInvalidConversion, CodeNotFound, CodeSyntax,
		CodeUnknownSymbol, CodeValidationFailed, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidConfig, CodeUnknownFunction, CodeCyclicRef:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
