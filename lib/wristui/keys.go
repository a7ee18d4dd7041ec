// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wristui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the device UI. The bindings are
// a flat set; each screen's key handler matches only the bindings that
// apply to it, so a key like "a" can mean "add item" on the inventory
// screen and "toggle auto-save" on the settings screen.
type KeyMap struct {
	// List / row movement.
	Up   key.Binding
	Down key.Binding

	// Stat adjustment (stats screen).
	Increase key.Binding
	Decrease key.Binding

	// Contextual screen switching: on each top-level screen the three
	// digits map to the other three top-level screens in canonical
	// order (dashboard, stats, inventory, settings).
	Digit1 key.Binding
	Digit2 key.Binding
	Digit3 key.Binding

	// Back is escape: dashboard-bound on top-level screens, dismiss on
	// modals. DetailBack adds "b" on the item detail screen.
	Back       key.Binding
	DetailBack key.Binding

	// Inventory actions.
	AddItem    key.Binding
	EditItem   key.Binding
	DeleteItem key.Binding
	ViewItem   key.Binding

	// Settings actions.
	ToggleAutoSave key.Binding
	ToggleCompact  key.Binding
	ResetStats     key.Binding
	ResetAll       key.Binding

	// Editor field movement and submission. Confirm doubles as the
	// delete confirmation on the confirm modal.
	NextField     key.Binding
	PreviousField key.Binding
	Confirm       key.Binding

	// Quit is bound on top-level screens only; modals and the detail
	// screen swallow it so "q" can appear in item text fields.
	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style movement
// (j/k) alongside arrow keys, digits for screen switching.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Increase: key.NewBinding(
		key.WithKeys("+", "=", "l", "right"),
		key.WithHelp("+", "increase"),
	),
	Decrease: key.NewBinding(
		key.WithKeys("-", "_", "h", "left"),
		key.WithHelp("-", "decrease"),
	),
	Digit1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "switch screen"),
	),
	Digit2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "switch screen"),
	),
	Digit3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "switch screen"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	DetailBack: key.NewBinding(
		key.WithKeys("b", "esc"),
		key.WithHelp("b", "back"),
	),
	AddItem: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add item"),
	),
	EditItem: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit item"),
	),
	DeleteItem: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete item"),
	),
	ViewItem: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "view item"),
	),
	ToggleAutoSave: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle auto-save"),
	),
	ToggleCompact: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "toggle compact mode"),
	),
	ResetStats: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset stats"),
	),
	ResetAll: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset all"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	PreviousField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous field"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "confirm"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}
