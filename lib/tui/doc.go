// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// the wrist device display. Built on bubbletea (Elm architecture) and
// lipgloss, these components handle the patterns that recur across
// screens: bar gauges, list scrollbars, modal panels, and ANSI-aware
// overlay splicing.
//
// The screen implementations in lib/wristui import this package for
// consistent look and behavior: same theme, same gauge rendering, same
// overlay mechanics. Each screen owns its own data access, layout, and
// key handling.
package tui
