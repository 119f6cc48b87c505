// File: validation.go
// Title: Configuration Validation Implementation
// Description: Rule-based validation of configuration values: required keys,
//              types, numeric ranges and enumerations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-17 v0.2.0: OneOf and Above rules; environment overrides are validated too;
//                       defaults no longer written under a read lock

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool     // Whether the key is required
	Type     string   // "string", "int", "float" or "bool"
	Min      *float64 // Inclusive lower bound for numbers
	Above    *float64 // Exclusive lower bound for numbers
	Max      *float64 // Inclusive upper bound for numbers
	OneOf    []string // Allowed values for strings, case-insensitive
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns nil for a valid result, otherwise a validation error listing
// every failure.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Bound returns a pointer to v, for use as ValidationRule.Min or Max
func Bound(v float64) *float64 {
	return &v
}

// Validate validates the configuration against the provided rules
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	c.mu.RLock()
	var value interface{} = c.getValue(key)
	if env := c.getEnvValue(key); env != "" {
		value = env
	}
	c.mu.RUnlock()

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
	case "bool":
		switch v := value.(type) {
		case bool:
		case string:
			if _, err := strconv.ParseBool(v); err != nil {
				return fmt.Errorf("field '%s' must be a bool, got %q", key, v)
			}
		default:
			return fmt.Errorf("field '%s' must be a bool, got %T", key, value)
		}
	case "int", "float":
		f, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("field '%s' must be a number, got %v", key, value)
		}
		if rule.Type == "int" && f != float64(int64(f)) {
			return fmt.Errorf("field '%s' must be an integer, got %v", key, value)
		}
		if rule.Min != nil && f < *rule.Min {
			return fmt.Errorf("field '%s' must be >= %v, got %v", key, *rule.Min, f)
		}
		if rule.Above != nil && f <= *rule.Above {
			return fmt.Errorf("field '%s' must be > %v, got %v", key, *rule.Above, f)
		}
		if rule.Max != nil && f > *rule.Max {
			return fmt.Errorf("field '%s' must be <= %v, got %v", key, *rule.Max, f)
		}
	}

	if len(rule.OneOf) > 0 {
		s := strings.ToLower(fmt.Sprint(value))
		for _, allowed := range rule.OneOf {
			if s == strings.ToLower(allowed) {
				return nil
			}
		}
		return fmt.Errorf("field '%s' must be one of %v, got %v", key, rule.OneOf, value)
	}

	return nil
}
