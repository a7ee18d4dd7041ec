// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wristui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wristcomp/wristcomp/lib/tui"
)

// confirmModal asks before an item is removed from the inventory.
type confirmModal struct {
	itemName string
}

func (modal *confirmModal) refresh(state ScreenState) {
	modal.itemName = state.ItemName
}

// handleConfirmKeys handles input while the delete confirmation is
// open: enter deletes, escape cancels. Either way the modal closes.
func (model Model) handleConfirmKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Confirm):
		if _, err := model.store.RemoveItem(model.confirm.itemName); err != nil {
			model.logger.Error("deleting item failed", "item", model.confirm.itemName, "error", err)
		}
		model.navigator.Pop()
		return model, nil

	case key.Matches(message, model.keys.Back):
		model.navigator.Pop()
		return model, nil
	}

	return model, nil
}

// renderConfirm renders the delete confirmation as a centered overlay.
func (model Model) renderConfirm() ([]string, int, int) {
	question := lipgloss.NewStyle().
		Foreground(model.theme.ModalForeground).
		Render(fmt.Sprintf("Remove %q from inventory?", model.confirm.itemName))

	panel := tui.Panel{
		Title:         "DELETE ITEM?",
		Lines:         []string{question},
		Footer:        "Enter delete  Esc cancel",
		MinInnerWidth: editorPanelInnerWidth,
		Theme:         model.theme,
	}
	return panel.Render(model.width, model.height)
}
