// File: errors.go
// Title: Expansion Errors
// Description: Constructors for the structured errors returned by asympx and
//              the exponent ordering check.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package asympx

import (
	"math"

	"github.com/msto63/asymptotix/foundation/core/errors"
)

func invariantError(op string, alpha, beta float64) error {
	return errors.InvariantViolation(errors.ModuleAsympx, op, "α < β with finite α", map[string]interface{}{
		"alpha": alpha,
		"beta":  beta,
	})
}

func conversionError(op string, alpha, beta float64) error {
	return errors.InvalidConversion(errors.ModuleAsympx, op, "α, β must equal 0, 1 to convert",
		map[string]float64{"alpha": alpha, "beta": beta})
}

func domainError(op string, value interface{}, reason string) error {
	return errors.DomainError(errors.ModuleAsympx, op, value, reason)
}

func validExponents(alpha, beta float64) bool {
	return !math.IsNaN(alpha) && !math.IsInf(alpha, 0) && !math.IsNaN(beta) && alpha < beta
}
