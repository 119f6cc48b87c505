// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of directories for the first configuration
//              file matching the given base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-17 v0.2.0: User config directory; optional files fall back to defaults

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search, in order
	Filenames  []string               // Base filenames without extension
	Extensions []string               // Extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values
	Required   bool                   // Fail when no file is found
}

// DefaultPaths returns the working directory followed by the user's
// configuration directory for app.
func DefaultPaths(app string) []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, app))
	}
	return paths
}

// Discover finds and loads the first matching configuration file. Without a
// match it returns a defaults-only configuration unless Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return FromDefaults(options.EnvPrefix, options.Defaults), nil
	}

	return LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
}

// FindConfigFile returns the first existing candidate file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", mdwerror.New("no configuration file found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searched", candidates)
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := options.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	filenames := options.Filenames
	if len(filenames) == 0 {
		filenames = []string{"config"}
	}
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = []string{".toml", ".yaml", ".yml"}
	}

	var files []string
	for _, path := range paths {
		for _, filename := range filenames {
			for _, ext := range extensions {
				files = append(files, filepath.Join(path, filename+ext))
			}
		}
	}
	return files
}
