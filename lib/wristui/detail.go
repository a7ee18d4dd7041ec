// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wristui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wristcomp/wristcomp/lib/datastore"
)

// detailScreen shows one inventory item's full fields. It remembers
// only the item name; the fields are read from the store on render, so
// the display stays current if the item changes while shown.
type detailScreen struct {
	store    *datastore.Store
	itemName string
}

// refresh records which item to display. A name that no longer exists
// renders as placeholders rather than failing.
func (screen *detailScreen) refresh(state ScreenState) {
	screen.itemName = state.ItemName
}

// handleDetailKeys handles input on the item detail screen. Only the
// back bindings are live here; the screen is a read-only leaf.
func (model Model) handleDetailKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(message, model.keys.DetailBack) {
		model.navigator.Pop()
	}
	return model, nil
}

// renderDetail renders the item detail screen. Missing items show "-"
// placeholders for every field.
func (model Model) renderDetail() string {
	innerWidth := deviceFrameWidth - frameChromeWidth

	name, category, quantity, weight := "-", "-", "-", "-"
	if item, ok := model.store.Item(model.detail.itemName); ok {
		name = item.Name
		category = item.Category
		quantity = strconv.Itoa(item.Quantity)
		weight = formatWeight(item.Weight)
	}

	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.NormalText)

	lines := []string{
		screenTitle(model.theme, innerWidth, "ITEM DETAILS"),
		"",
		labelStyle.Render("NAME") + ": " + name,
		labelStyle.Render("CATEGORY") + ": " + category,
		labelStyle.Render("QUANTITY") + ": " + quantity,
		labelStyle.Render("WEIGHT") + ": " + weight + " kg",
		"",
		navHint(model.theme, innerWidth, "NAV: [B]Back [Esc]Back"),
	}

	return deviceFrame(model.theme, deviceFrameWidth, lines)
}
