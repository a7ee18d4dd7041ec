// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package datastore implements the persistent state manager for the
// wrist device: bounded stats, the carried-item inventory, and the
// settings map, stored as one JSON document on disk.
//
// [Store] owns the only writable copy of the [Document] and is
// injected by reference into every screen; there is no package-level
// singleton. Mutations run through a single commit path that honors
// the auto_save setting, and saves are atomic (temp file + rename).
// A missing or corrupt state file never fails startup: [Open] falls
// back to [DefaultDocument].
//
// The two invariants the store enforces are value clamping (every stat
// is within [0, 100] at all times) and case-insensitive name
// uniqueness in the inventory. Everything else is policy: unknown stat
// names read as zero, exact-case update/remove misses are benign false
// returns, and unknown settings keys round-trip verbatim through
// [SettingValue]'s raw variant.
//
// Data flow:
//
//	[watch_data.json]
//	        | (Open / Save, atomic rename)
//	    [Store] <- mutators from the UI event loop
//	        |
//	[snapshot accessors] -> screens
package datastore
