// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wristui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// openEditorForNew navigates to the inventory and opens the editor in
// create-new mode.
func openEditorForNew(t *testing.T, model Model) Model {
	t.Helper()

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	model = updated.(Model)

	if got := model.navigator.Current().ID; got != ScreenItemEditor {
		t.Fatalf("a should open the item editor, got %v", got)
	}
	return model
}

func TestEditorOpensForNewItem(t *testing.T) {
	model := openEditorForNew(t, newTestModel(t))

	view := model.View()
	if !strings.Contains(view, "ITEM EDITOR") {
		t.Error("editor should show its title")
	}
	for _, label := range []string{"Name", "Category", "Quantity", "Weight"} {
		if !strings.Contains(view, label) {
			t.Errorf("editor should show the %s field label", label)
		}
	}
	if !strings.Contains(view, "Tab next  Enter save  Esc cancel") {
		t.Error("editor should show its footer hints")
	}

	if got := model.editor.inputs[editorFieldName].Value(); got != "" {
		t.Errorf("name should start empty, got %q", got)
	}
	if got := model.editor.inputs[editorFieldQuantity].Value(); got != "1" {
		t.Errorf("quantity should default to 1, got %q", got)
	}
	if got := model.editor.inputs[editorFieldWeight].Value(); got != "0.0" {
		t.Errorf("weight should default to 0.0, got %q", got)
	}
	if model.editor.focusIndex != editorFieldName {
		t.Errorf("focus should start on the name field, got %d", model.editor.focusIndex)
	}
}

func TestEditorPrefillsExistingItem(t *testing.T) {
	model := newTestModel(t)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	model = updated.(Model)

	if got := model.navigator.Current().ID; got != ScreenItemEditor {
		t.Fatalf("e should open the item editor, got %v", got)
	}
	if got := model.editor.inputs[editorFieldName].Value(); got != "Phone" {
		t.Errorf("name should prefill Phone, got %q", got)
	}
	if got := model.editor.inputs[editorFieldCategory].Value(); got != "Electronics" {
		t.Errorf("category should prefill Electronics, got %q", got)
	}
	if got := model.editor.inputs[editorFieldQuantity].Value(); got != "1" {
		t.Errorf("quantity should prefill 1, got %q", got)
	}
	if got := model.editor.inputs[editorFieldWeight].Value(); got != "0.2" {
		t.Errorf("weight should prefill 0.2, got %q", got)
	}
}

func TestEditorTabCyclesFocus(t *testing.T) {
	model := openEditorForNew(t, newTestModel(t))

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = updated.(Model)
	if model.editor.focusIndex != editorFieldCategory {
		t.Errorf("tab should move focus to category, got %d", model.editor.focusIndex)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	model = updated.(Model)
	if model.editor.focusIndex != editorFieldName {
		t.Errorf("shift+tab should move focus back to name, got %d", model.editor.focusIndex)
	}

	// Backward from the first field wraps to the last.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	model = updated.(Model)
	if model.editor.focusIndex != editorFieldWeight {
		t.Errorf("shift+tab should wrap to weight, got %d", model.editor.focusIndex)
	}
}

func TestEditorSavesNewItem(t *testing.T) {
	model := openEditorForNew(t, newTestModel(t))

	// Type into the focused name field, then tab to category.
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Compass")})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Navigation")})
	model = updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	if got := model.navigator.Current().ID; got != ScreenInventory {
		t.Fatalf("saving should return to the inventory, got %v", got)
	}
	item, exists := model.store.Item("Compass")
	if !exists {
		t.Fatal("Compass should be saved")
	}
	if item.Category != "Navigation" {
		t.Errorf("category should be Navigation, got %q", item.Category)
	}
	if item.Quantity != 1 {
		t.Errorf("quantity should be the default 1, got %d", item.Quantity)
	}
	if item.Weight != 0 {
		t.Errorf("weight should be the default 0, got %v", item.Weight)
	}
	if !strings.Contains(model.View(), "Saved") {
		t.Error("status bar should show the Saved notice")
	}
}

func TestEditorBlankNameKeepsEditorOpen(t *testing.T) {
	model := openEditorForNew(t, newTestModel(t))
	itemsBefore := len(model.store.Items())

	// Whitespace counts as blank.
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("   ")})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	if got := model.navigator.Current().ID; got != ScreenItemEditor {
		t.Errorf("enter with a blank name should keep the editor open, got %v", got)
	}
	if got := len(model.store.Items()); got != itemsBefore {
		t.Errorf("nothing should be saved, item count went %d -> %d", itemsBefore, got)
	}
}

func TestEditorFallbackParsing(t *testing.T) {
	model := openEditorForNew(t, newTestModel(t))

	// Name only; garbage in the numeric fields, category left blank.
	model.editor.inputs[editorFieldName].SetValue("Rope")
	model.editor.inputs[editorFieldQuantity].SetValue("lots")
	model.editor.inputs[editorFieldWeight].SetValue("heavy")

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	item, exists := model.store.Item("Rope")
	if !exists {
		t.Fatal("Rope should be saved despite unparsable fields")
	}
	if item.Category != "Uncategorized" {
		t.Errorf("blank category should fall back to Uncategorized, got %q", item.Category)
	}
	if item.Quantity != 1 {
		t.Errorf("unparsable quantity should fall back to 1, got %d", item.Quantity)
	}
	if item.Weight != 0 {
		t.Errorf("unparsable weight should fall back to 0, got %v", item.Weight)
	}
}

func TestEditorRenamesItem(t *testing.T) {
	model := newTestModel(t)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	model = updated.(Model)

	model.editor.inputs[editorFieldName].SetValue("Smartphone")
	model.editor.inputs[editorFieldQuantity].SetValue("2")

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	if _, exists := model.store.Item("Phone"); exists {
		t.Error("the old name should be gone after a rename")
	}
	item, exists := model.store.Item("Smartphone")
	if !exists {
		t.Fatal("Smartphone should exist after the rename")
	}
	if item.Quantity != 2 {
		t.Errorf("quantity should be 2, got %d", item.Quantity)
	}
	if item.Category != "Electronics" {
		t.Errorf("category should survive the rename, got %q", item.Category)
	}

	// The rename keeps the item's position in the list.
	items := model.store.Items()
	if len(items) == 0 || items[0].Name != "Smartphone" {
		t.Error("the renamed item should keep its list position")
	}
}

func TestEditorEscapeCancels(t *testing.T) {
	model := openEditorForNew(t, newTestModel(t))
	itemsBefore := len(model.store.Items())

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Draft")})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(Model)

	if got := model.navigator.Current().ID; got != ScreenInventory {
		t.Errorf("esc should close the editor, got %v", got)
	}
	if got := len(model.store.Items()); got != itemsBefore {
		t.Errorf("cancel should save nothing, item count went %d -> %d", itemsBefore, got)
	}
}

func TestEditorEditVanishedItem(t *testing.T) {
	model := newTestModel(t)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	model = updated.(Model)
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	model = updated.(Model)

	// The item disappears while the editor is open (reset in another
	// code path). Saving is a silent no-op that still closes the form.
	if _, err := model.store.RemoveItem("Phone"); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)

	if got := model.navigator.Current().ID; got != ScreenInventory {
		t.Errorf("saving a vanished item should still close the editor, got %v", got)
	}
	if _, exists := model.store.Item("Phone"); exists {
		t.Error("the vanished item should not reappear")
	}
}
