// File: errors.go
// Title: Standard Error Constructors
// Description: Builder and module-scoped constructors for structured errors.
//              Codes are derived from the module name and a base code so that
//              every module reports the same failure kinds the same way.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-17 v0.2.0: Merged standards and utils; expansion algebra kinds

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleAsympx    = "asympx"
	ModuleDualx     = "dualx"
	ModuleExpr      = "expr"
	ModuleConfig    = "config"
	ModuleStore     = "store"
	ModuleWorksheet = "worksheet"
	ModuleTUI       = "tui"
	ModuleCLI       = "cli"
)

// Module-specific error codes
var (
	CodeAsympxInvariantViolation = ModuleCode(ModuleAsympx, mdwerror.CodeInvariantViolation)
	CodeAsympxInvalidConversion  = ModuleCode(ModuleAsympx, mdwerror.CodeInvalidConversion)
	CodeAsympxDomainError        = ModuleCode(ModuleAsympx, mdwerror.CodeDomainError)
	CodeAsympxAmbiguousMerge     = ModuleCode(ModuleAsympx, mdwerror.CodeAmbiguousMerge)
	CodeDualxUnknownFunction     = ModuleCode(ModuleDualx, mdwerror.CodeUnknownFunction)
	CodeExprSyntax               = ModuleCode(ModuleExpr, mdwerror.CodeSyntax)
	CodeExprUnknownSymbol        = ModuleCode(ModuleExpr, mdwerror.CodeUnknownSymbol)
	CodeExprTypeMismatch         = ModuleCode(ModuleExpr, mdwerror.CodeTypeMismatch)
	CodeStoreCyclicRef           = ModuleCode(ModuleStore, mdwerror.CodeCyclicRef)
	CodeStoreDatabase            = ModuleCode(ModuleStore, mdwerror.CodeDatabaseError)
)

// ModuleCode joins a module name and a base code: ("asympx", DOMAIN_ERROR)
// becomes ASYMPX_DOMAIN_ERROR.
func ModuleCode(module string, base mdwerror.Code) mdwerror.Code {
	return mdwerror.Code(strings.ToUpper(module) + "_" + string(base))
}

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	hasSev    bool
	code      mdwerror.Code
	base      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.hasSev = true
	return eb
}

// Kind sets the base code; the final code is prefixed with the module name
func (eb *ErrorBuilder) Kind(base mdwerror.Code) *ErrorBuilder {
	eb.base = base
	return eb
}

// Code sets the full error code verbatim
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.base == "" {
		eb.base = mdwerror.CodeUnknown
	}
	if eb.code == "" {
		eb.code = ModuleCode(eb.module, eb.base)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	eb.details["kind"] = string(eb.base)
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	severity := mdwerror.GetSeverityFromCode(eb.base)
	if eb.hasSev {
		severity = eb.severity
	}

	return err.
		WithCode(eb.code).
		WithOperation(eb.operation).
		WithDetails(eb.details).
		WithSeverity(severity)
}

// InvariantViolation reports a constructor called with arguments that break a
// type invariant.
func InvariantViolation(module, operation, invariant string, details map[string]interface{}) *mdwerror.Error {
	b := NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: invariant violated: %s", module, operation, invariant).
		Kind(mdwerror.CodeInvariantViolation).
		Detail("invariant", invariant)
	for k, v := range details {
		b.Detail(k, v)
	}
	return b.Build()
}

// InvalidConversion reports a value that cannot be viewed as the requested
// representation.
func InvalidConversion(module, operation, reason string, value interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %s", module, operation, reason).
		Kind(mdwerror.CodeInvalidConversion).
		Detail("value", value).
		Build()
}

// DomainError reports an operation evaluated outside the domain it is defined on
func DomainError(module, operation string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %v is outside the domain: %s", module, operation, value, reason).
		Kind(mdwerror.CodeDomainError).
		Detail("value", value).
		Detail("reason", reason).
		Build()
}

// AmbiguousMerge reports a term merge that cannot produce two distinct orders
func AmbiguousMerge(module, operation string, exponents []float64) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: all exponents %v coincide, no secondary order", module, operation, exponents).
		Kind(mdwerror.CodeAmbiguousMerge).
		Detail("exponents", exponents).
		Build()
}

// UnknownFunction reports a function name or id with no implementation
func UnknownFunction(module, operation string, name interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: unknown function %v", module, operation, name).
		Kind(mdwerror.CodeUnknownFunction).
		Detail("function", name).
		Build()
}

// CyclicReference reports definitions that refer back to themselves. path
// lists the names in resolution order, ending with the repeated one.
func CyclicReference(module, operation string, path []string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: cyclic reference %s", module, operation, strings.Join(path, " -> ")).
		Kind(mdwerror.CodeCyclicRef).
		Detail("path", path).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Kind(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Messagef("invalid format in %s: expected %s", module, expectedFormat).
		Kind(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found in %s.%s", identifier, module, operation).
		Kind(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// OperationFailed wraps a cause as a failed module operation
func OperationFailed(module, operation string, kind mdwerror.Code, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Kind(kind).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("validation failed: value %v out of range [%v, %v] in %s.%s", value, min, max, module, operation).
		Kind(mdwerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	return detailString(err, "module")
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	return detailString(err, "operation")
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// IsKind reports whether err carries the given base code, for any module
func IsKind(err error, base mdwerror.Code) bool {
	return detailString(err, "kind") == string(base)
}

func detailString(err error, key string) string {
	var mdwErr *mdwerror.Error
	if !stderrors.As(err, &mdwErr) {
		return ""
	}
	if v, ok := mdwErr.Detail(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
