// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration with
//              environment overrides, defaults, discovery and rule-based
//              validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Trimmed to load, discover and validate

/*
Package config provides configuration management for asymptotix tools.

Files are TOML by default; ".yaml" and ".yml" are read as YAML. Keys are
addressed in dot notation. With an environment prefix, every key can be
overridden by an environment variable: tolerance.rel with prefix ASYMP is
read from ASYMP_TOLERANCE_REL.

	cfg, err := config.Discover(config.DiscoveryOptions{
		Filenames: []string{"asymp"},
		EnvPrefix: "ASYMP",
		Defaults: map[string]interface{}{
			"tolerance.rel": 1.4901161193847656e-08,
			"log.level":     "warn",
		},
	})
	if err != nil {
		return err
	}

	rel := cfg.GetFloat("tolerance.rel")

Validation checks required keys, types and numeric ranges:

	result := cfg.Validate(config.ValidationRules{
		"tolerance.rel": {Type: "float", Min: config.Bound(0)},
		"log.level":     {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "off"}},
	})
	if !result.Valid {
		return result.Err()
	}
*/
package config
