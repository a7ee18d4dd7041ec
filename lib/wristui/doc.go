// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package wristui implements the wrist device's terminal user
// interface. Built on bubbletea (Elm architecture), it renders the
// simulated device as a fixed-width bordered frame with four top-level
// screens (dashboard, stats, inventory, settings), a full-frame item
// detail view, and two modal overlays (item editor, delete confirm).
//
// Generic UI components (theme, gauges, scrollbars, overlay panels,
// ANSI splicing) live in [tui] and are re-exported here for internal
// use. Device-specific logic (screens, navigation, key bindings, the
// log-to-notice bridge) stays in this package.
//
// Screens are addressed by [ScreenID] and arranged on a stack owned by
// [Navigator]: top-level screens replace the stack, detail and the
// modals push onto it, and dismissing pops back to whatever was
// beneath. Every reveal fires the revealed screen's resume hook so
// cursors and form fields are fresh without any screen polling for
// changes.
//
// Data flow:
//
//	[datastore.Store] <- JSON state file
//	        |
//	    [Model] <- bubbletea event loop
//	        |
//	  [terminal output]
package wristui
