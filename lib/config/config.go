// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the wristcomp
// application.
//
// Configuration is loaded from a single YAML file specified by:
//   - WRISTCOMP_CONFIG environment variable, or
//   - --config flag passed to the command, or
//   - the per-user default location (os.UserConfigDir()/wristcomp/config.yaml)
//
// A missing file at the default location is not an error: the built-in
// defaults apply. A file named explicitly (env var or flag) must exist.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for the wristcomp application.
type Config struct {
	// StatePath is the file holding the persisted device document
	// (stats, inventory, settings). This is the only parameter the
	// state store itself consumes.
	StatePath string `yaml:"state_path"`

	// LogFile, when non-empty, receives JSON-formatted log records in
	// addition to the stderr handler.
	LogFile string `yaml:"log_file"`

	// LogLevel sets the minimum level for all log handlers.
	// One of: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the default configuration: the device document in
// the working directory, no log file, info-level logging.
func Default() *Config {
	return &Config{
		StatePath: "watch_data.json",
		LogFile:   "",
		LogLevel:  "info",
	}
}

// Load loads configuration from the WRISTCOMP_CONFIG environment
// variable when set (the file must exist), otherwise from the per-user
// default location when present, otherwise returns Default().
func Load() (*Config, error) {
	if configPath := os.Getenv("WRISTCOMP_CONFIG"); configPath != "" {
		return LoadFile(configPath)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return Default(), nil
	}
	defaultPath := filepath.Join(configDir, "wristcomp", "config.yaml")
	if _, err := os.Stat(defaultPath); err != nil {
		return Default(), nil
	}
	return LoadFile(defaultPath)
}

// LoadFile loads configuration from a specific file path, merging the
// file's values over the defaults.
//
// The config file is the single source of truth. Environment variables
// do not override config values; the only expansion performed is ${HOME}
// and similar path variables for portability.
func LoadFile(path string) (*Config, error) {
	configuration := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, configuration); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	configuration.expandVariables()
	return configuration, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.StatePath = expandVars(c.StatePath, vars)
	c.LogFile = expandVars(c.LogFile, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.StatePath == "" {
		errs = append(errs, fmt.Errorf("state_path is required"))
	}

	levels := []string{"debug", "info", "warn", "error"}
	if !contains(levels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level must be one of: %v", levels))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// EnsurePaths creates the directories holding the state file and the
// log file if they don't exist.
func (c *Config) EnsurePaths() error {
	for _, path := range []string{c.StatePath, c.LogFile} {
		if path == "" {
			continue
		}
		directory := filepath.Dir(path)
		if directory == "." {
			continue
		}
		if err := os.MkdirAll(directory, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", directory, err)
		}
	}

	return nil
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
