// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package datastore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wristcomp/wristcomp/lib/clock"
)

// Store is the single source of truth for the device document: stats,
// inventory, and settings. It owns the in-memory copy and the one file
// on disk that holds the durable representation.
//
// Every mutating method funnels through a single commit path that
// checks the auto_save setting; when the policy is off, mutations stay
// in memory until an explicit Save. Reset operations persist
// unconditionally. A mutator returns an error only when the write
// behind a commit fails; the in-memory mutation has already happened by
// then, so callers report the error and keep running.
//
// Store is not safe for concurrent use. The application drives it from
// a single event loop, which is the only writer and the only reader.
type Store struct {
	path     string
	clock    clock.Clock
	logger   *slog.Logger
	document Document
}

// Open creates a Store backed by the file at path. If the file exists
// and parses, its document becomes the in-memory state (stats clamped
// into range); a missing, unreadable, or corrupt file falls back to
// DefaultDocument so the device always starts usable.
func Open(path string, deviceClock clock.Clock, logger *slog.Logger) *Store {
	store := &Store{
		path:   path,
		clock:  deviceClock,
		logger: logger,
	}

	document, err := readDocument(path)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		logger.Debug("no state file, starting from defaults", "path", path)
		document = DefaultDocument()
		document.LastUpdated = deviceClock.Now().Format(time.RFC3339)
	default:
		logger.Warn("state file unusable, starting from defaults", "path", path, "error", err)
		document = DefaultDocument()
		document.LastUpdated = deviceClock.Now().Format(time.RFC3339)
	}

	document.normalize()
	store.document = document
	return store
}

// readDocument loads and decodes the document file at path.
func readDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading state file: %w", err)
	}

	var document Document
	if err := json.Unmarshal(data, &document); err != nil {
		return Document{}, fmt.Errorf("decoding state file: %w", err)
	}
	return document, nil
}

// Path returns the file the store persists to.
func (store *Store) Path() string { return store.path }

// LastUpdated returns the RFC 3339 timestamp of the last save, or the
// empty string if the document has never been saved.
func (store *Store) LastUpdated() string { return store.document.LastUpdated }

// Save stamps the document with the current time and writes it to disk
// atomically: the document is encoded to a temp file in the target
// directory and renamed into place, so a reader never observes a
// partially written file.
func (store *Store) Save() error {
	store.document.LastUpdated = store.clock.Now().Format(time.RFC3339)

	data, err := json.MarshalIndent(store.document, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(store.path)
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(directory, "state-*.json")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing state data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp state file: %w", err)
	}

	if err := os.Rename(tmpPath, store.path); err != nil {
		return fmt.Errorf("renaming state file to %s: %w", store.path, err)
	}

	success = true
	return nil
}

// commit persists the document when the auto_save policy is on. All
// mutators call this after updating memory; the policy read happens
// after the mutation, so turning auto_save off suppresses the commit
// of that very call.
func (store *Store) commit() error {
	if !store.autoSave() {
		return nil
	}
	return store.Save()
}

// autoSave reports the auto_save setting, defaulting to true when the
// key is absent or holds a non-boolean value.
func (store *Store) autoSave() bool {
	value, exists := store.document.Settings[SettingAutoSave]
	if !exists {
		return true
	}
	return value.BoolOr(true)
}

// Stat returns the value of the named stat. Unknown names read as 0:
// missing data is zero, not an error.
func (store *Store) Stat(name string) int {
	return store.document.Stats[name]
}

// Stats returns a copy of all stats.
func (store *Store) Stats() map[string]int {
	stats := make(map[string]int, len(store.document.Stats))
	for name, value := range store.document.Stats {
		stats[name] = value
	}
	return stats
}

// SetStat stores a stat value, clamped into [0, 100].
func (store *Store) SetStat(name string, value int) error {
	store.document.Stats[name] = clampStat(value)
	return store.commit()
}

// AdjustStat shifts a stat by delta, clamping the result into [0, 100].
// Repeated deltas at a boundary are idempotent: a stat at 0 stays at 0
// under further negative deltas.
func (store *Store) AdjustStat(name string, delta int) error {
	return store.SetStat(name, store.Stat(name)+delta)
}

// Items returns a copy of the inventory in insertion order.
func (store *Store) Items() []Item {
	items := make([]Item, len(store.document.Inventory))
	copy(items, store.document.Inventory)
	return items
}

// Item returns the inventory item with exactly the given name.
func (store *Store) Item(name string) (Item, bool) {
	for _, item := range store.document.Inventory {
		if item.Name == name {
			return item, true
		}
	}
	return Item{}, false
}

// AddItem adds an item to the inventory, or updates the existing entry
// whose name matches case-insensitively. On a match the stored name
// keeps its original casing and list position; only category, quantity,
// and weight are overwritten. Without a match the item is appended.
func (store *Store) AddItem(item Item) error {
	for index := range store.document.Inventory {
		existing := &store.document.Inventory[index]
		if strings.EqualFold(existing.Name, item.Name) {
			existing.Category = item.Category
			existing.Quantity = item.Quantity
			existing.Weight = item.Weight
			return store.commit()
		}
	}

	store.document.Inventory = append(store.document.Inventory, item)
	return store.commit()
}

// UpdateItem replaces the item whose name exactly matches originalName
// with the replacement, including its name; this is how an item is
// renamed. The exact-case match is deliberate and differs from
// AddItem's case-insensitive match. Returns false, untouched, when no
// item matches.
func (store *Store) UpdateItem(originalName string, replacement Item) (bool, error) {
	for index := range store.document.Inventory {
		if store.document.Inventory[index].Name == originalName {
			store.document.Inventory[index] = replacement
			return true, store.commit()
		}
	}
	return false, nil
}

// RemoveItem deletes the item whose name exactly matches. Returns
// false when no item matches.
func (store *Store) RemoveItem(name string) (bool, error) {
	for index, item := range store.document.Inventory {
		if item.Name == name {
			store.document.Inventory = append(
				store.document.Inventory[:index],
				store.document.Inventory[index+1:]...,
			)
			return true, store.commit()
		}
	}
	return false, nil
}

// Setting returns the value stored under key.
func (store *Store) Setting(key string) (SettingValue, bool) {
	value, exists := store.document.Settings[key]
	return value, exists
}

// Settings returns a copy of all settings.
func (store *Store) Settings() map[string]SettingValue {
	settings := make(map[string]SettingValue, len(store.document.Settings))
	for key, value := range store.document.Settings {
		settings[key] = value
	}
	return settings
}

// SetSetting stores a settings value. The commit policy is evaluated
// after the mutation, so SetSetting(SettingAutoSave, BoolValue(false))
// leaves the flip unpersisted until the next explicit Save.
func (store *Store) SetSetting(key string, value SettingValue) error {
	store.document.Settings[key] = value
	return store.commit()
}

// ResetStats restores the seeded default stat values and persists
// unconditionally, ignoring the auto_save policy.
func (store *Store) ResetStats() error {
	store.document.Stats = DefaultDocument().Stats
	return store.Save()
}

// ResetAll replaces the entire document with the defaults and persists
// unconditionally, ignoring the auto_save policy.
func (store *Store) ResetAll() error {
	store.document = DefaultDocument()
	return store.Save()
}
