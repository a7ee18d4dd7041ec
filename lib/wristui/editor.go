// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wristui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wristcomp/wristcomp/lib/datastore"
	"github.com/wristcomp/wristcomp/lib/tui"
)

// Editor field order. Name is first so a freshly opened editor starts
// on the field that decides whether anything gets saved at all.
const (
	editorFieldName = iota
	editorFieldCategory
	editorFieldQuantity
	editorFieldWeight
	editorFieldCount
)

// editorPanelInnerWidth keeps the modal at the device's fixed modal
// width regardless of content.
const editorPanelInnerWidth = 36

// editorModal is the add/edit item form: four text inputs with
// tab-cycled focus. An empty originalName means the form creates a new
// item; a non-empty one means it edits (and may rename) that item.
type editorModal struct {
	store        *datastore.Store
	inputs       [editorFieldCount]textinput.Model
	focusIndex   int
	originalName string
}

// newEditorModal builds the form with its placeholders and limits.
func newEditorModal(store *datastore.Store) *editorModal {
	modal := &editorModal{store: store}

	placeholders := [editorFieldCount]string{
		"Item name...",
		"Category (e.g. Essentials)",
		"Quantity",
		"Weight (kg)",
	}
	limits := [editorFieldCount]int{64, 64, 8, 10}

	for index := range modal.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[index]
		input.CharLimit = limits[index]
		input.Width = 30
		modal.inputs[index] = input
	}

	return modal
}

// refresh loads the form for the item named in the state: existing
// items prefill all four fields, while create-new (and a target that
// has vanished) prefills the numeric defaults only. Focus returns to
// the name field.
func (modal *editorModal) refresh(state ScreenState) {
	modal.originalName = state.ItemName

	name, category, quantity, weight := "", "", "1", "0.0"
	if state.ItemName != "" {
		if item, ok := modal.store.Item(state.ItemName); ok {
			name = item.Name
			category = item.Category
			quantity = strconv.Itoa(item.Quantity)
			weight = formatWeight(item.Weight)
		}
	}

	values := [editorFieldCount]string{name, category, quantity, weight}
	for index := range modal.inputs {
		modal.inputs[index].SetValue(values[index])
		modal.inputs[index].Blur()
	}

	modal.focusIndex = editorFieldName
	modal.inputs[editorFieldName].Focus()
}

// cycleFocus moves focus by direction (+1 forward, -1 backward),
// wrapping at the ends. Returns the new field's blink command.
func (modal *editorModal) cycleFocus(direction int) tea.Cmd {
	modal.inputs[modal.focusIndex].Blur()
	modal.focusIndex = (modal.focusIndex + direction + editorFieldCount) % editorFieldCount
	return modal.inputs[modal.focusIndex].Focus()
}

// handleEditorKeys handles input while the item editor is open. Tab
// and shift-tab move between fields, enter saves, escape cancels, and
// everything else goes to the focused text input.
func (model Model) handleEditorKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Back):
		model.navigator.Pop()
		return model, nil

	case key.Matches(message, model.keys.Confirm):
		return model.saveEditorItem()

	case key.Matches(message, model.keys.NextField):
		return model, model.editor.cycleFocus(1)

	case key.Matches(message, model.keys.PreviousField):
		return model, model.editor.cycleFocus(-1)
	}

	var cmd tea.Cmd
	focus := model.editor.focusIndex
	model.editor.inputs[focus], cmd = model.editor.inputs[focus].Update(message)
	return model, cmd
}

// saveEditorItem validates the form and writes the item to the store.
// A blank name saves nothing and keeps the editor open. Unparsable
// quantity falls back to 1, unparsable weight to 0, and a blank
// category to "Uncategorized". Editing an item that no longer exists
// is a silent no-op; the editor still closes.
func (model Model) saveEditorItem() (tea.Model, tea.Cmd) {
	editor := model.editor

	name := strings.TrimSpace(editor.inputs[editorFieldName].Value())
	if name == "" {
		return model, nil
	}

	category := strings.TrimSpace(editor.inputs[editorFieldCategory].Value())
	if category == "" {
		category = "Uncategorized"
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(editor.inputs[editorFieldQuantity].Value()))
	if err != nil {
		quantity = 1
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(editor.inputs[editorFieldWeight].Value()), 64)
	if err != nil {
		weight = 0
	}

	item := datastore.Item{Name: name, Category: category, Quantity: quantity, Weight: weight}

	if editor.originalName != "" {
		if _, err := model.store.UpdateItem(editor.originalName, item); err != nil {
			model.logger.Error("saving item failed", "item", name, "error", err)
		}
	} else {
		if err := model.store.AddItem(item); err != nil {
			model.logger.Error("saving item failed", "item", name, "error", err)
		}
	}

	model.navigator.Pop()
	return model, model.setNotice("Saved", noticeInfo)
}

// renderEditor renders the item editor as a centered overlay panel.
func (model Model) renderEditor() ([]string, int, int) {
	labels := [editorFieldCount]string{"Name", "Category", "Quantity", "Weight"}
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.ModalForeground)

	var lines []string
	for index := range model.editor.inputs {
		lines = append(lines, labelStyle.Render(labels[index]))
		lines = append(lines, model.editor.inputs[index].View())
		if index < editorFieldCount-1 {
			lines = append(lines, "")
		}
	}

	panel := tui.Panel{
		Title:         "ITEM EDITOR",
		Lines:         lines,
		Footer:        "Tab next  Enter save  Esc cancel",
		MinInnerWidth: editorPanelInnerWidth,
		Theme:         model.theme,
	}
	return panel.Render(model.width, model.height)
}
