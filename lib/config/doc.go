// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for wristcomp.
//
// Configuration is loaded from a single file specified by either the
// WRISTCOMP_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]); when neither names a file, [Load] falls back to the
// per-user default location and, if that file is absent, to built-in
// defaults. An explicitly named file must exist.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- state path, log file, log level
//   - [Default] -- returns the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other wristcomp packages.
package config
