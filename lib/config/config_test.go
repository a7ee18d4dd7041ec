// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.StatePath != "watch_data.json" {
		t.Errorf("expected state_path=watch_data.json, got %s", cfg.StatePath)
	}

	if cfg.LogFile != "" {
		t.Errorf("expected empty log_file, got %s", cfg.LogFile)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected log_level=info, got %s", cfg.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoad_WithWristcompConfig(t *testing.T) {
	// Save and restore WRISTCOMP_CONFIG.
	origConfig := os.Getenv("WRISTCOMP_CONFIG")
	defer os.Setenv("WRISTCOMP_CONFIG", origConfig)

	// Create temp config file.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
state_path: /test/state.json
log_level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	// Set WRISTCOMP_CONFIG and load.
	os.Setenv("WRISTCOMP_CONFIG", configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.StatePath != "/test/state.json" {
		t.Errorf("expected state_path=/test/state.json, got %s", cfg.StatePath)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("expected log_level=debug, got %s", cfg.LogLevel)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	origConfig := os.Getenv("WRISTCOMP_CONFIG")
	defer os.Setenv("WRISTCOMP_CONFIG", origConfig)

	os.Setenv("WRISTCOMP_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file, got nil")
	}
}

func TestLoadFile_MergesOverDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Only state_path set; log_level keeps its default.
	configContent := `
state_path: /custom/state.json
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if cfg.StatePath != "/custom/state.json" {
		t.Errorf("expected state_path=/custom/state.json, got %s", cfg.StatePath)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default log_level=info preserved, got %s", cfg.LogLevel)
	}
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("state_path: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadFile(configPath); err == nil {
		t.Fatal("expected parse error for invalid YAML, got nil")
	}
}

func TestExpandVariables(t *testing.T) {
	origHome := os.Getenv("HOME")
	defer os.Setenv("HOME", origHome)
	os.Setenv("HOME", "/home/tester")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
state_path: ${HOME}/.local/share/wristcomp/state.json
log_file: ${WRISTCOMP_LOG:-/tmp/wristcomp.log}
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	want := "/home/tester/.local/share/wristcomp/state.json"
	if cfg.StatePath != want {
		t.Errorf("expected state_path=%s, got %s", want, cfg.StatePath)
	}

	if cfg.LogFile != "/tmp/wristcomp.log" {
		t.Errorf("expected log_file=/tmp/wristcomp.log, got %s", cfg.LogFile)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty state path", func(cfg *Config) { cfg.StatePath = "" }, true},
		{"bad log level", func(cfg *Config) { cfg.LogLevel = "loud" }, true},
		{"warn level", func(cfg *Config) { cfg.LogLevel = "warn" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestEnsurePaths(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &Config{
		StatePath: filepath.Join(tmpDir, "data", "state.json"),
		LogFile:   filepath.Join(tmpDir, "logs", "wristcomp.log"),
		LogLevel:  "info",
	}

	if err := cfg.EnsurePaths(); err != nil {
		t.Fatalf("EnsurePaths() failed: %v", err)
	}

	for _, directory := range []string{filepath.Join(tmpDir, "data"), filepath.Join(tmpDir, "logs")} {
		info, err := os.Stat(directory)
		if err != nil {
			t.Fatalf("expected directory %s to exist: %v", directory, err)
		}
		if !info.IsDir() {
			t.Errorf("expected %s to be a directory", directory)
		}
	}
}
