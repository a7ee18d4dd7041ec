// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wristui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/wristcomp/wristcomp/lib/datastore"
	"github.com/wristcomp/wristcomp/lib/tui"
)

// inventoryVisibleRows is the height of the item list window.
const inventoryVisibleRows = 8

// inventoryScreen holds the item list's cursor and scroll position.
// The items themselves are read from the store on every render, so the
// list is always current; the resume hook only has to keep the cursor
// inside the (possibly shrunk) list.
type inventoryScreen struct {
	store        *datastore.Store
	cursor       int
	scrollOffset int
}

// refresh clamps the cursor and scroll window after the inventory may
// have changed underneath the screen (item saved, item deleted, data
// reset).
func (screen *inventoryScreen) refresh(ScreenState) {
	total := len(screen.store.Items())
	if total == 0 {
		screen.cursor = 0
		screen.scrollOffset = 0
		return
	}
	if screen.cursor >= total {
		screen.cursor = total - 1
	}
	if screen.cursor < 0 {
		screen.cursor = 0
	}
	screen.ensureCursorVisible(total)
}

// ensureCursorVisible adjusts scrollOffset so the cursor is within the
// visible window.
func (screen *inventoryScreen) ensureCursorVisible(total int) {
	maxOffset := total - inventoryVisibleRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if screen.scrollOffset > maxOffset {
		screen.scrollOffset = maxOffset
	}
	if screen.cursor < screen.scrollOffset {
		screen.scrollOffset = screen.cursor
	}
	if screen.cursor >= screen.scrollOffset+inventoryVisibleRows {
		screen.scrollOffset = screen.cursor - inventoryVisibleRows + 1
	}
}

// selectedItemName returns the name under the cursor, or false when
// the inventory is empty.
func (screen *inventoryScreen) selectedItemName() (string, bool) {
	items := screen.store.Items()
	if screen.cursor < 0 || screen.cursor >= len(items) {
		return "", false
	}
	return items[screen.cursor].Name, true
}

// handleInventoryKeys handles input on the inventory screen: cursor
// movement, the item actions (add, edit, delete, view), and the shared
// top-level bindings.
func (model Model) handleInventoryKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	model, cmd, handled := model.handleTopLevelKeys(message)
	if handled {
		return model, cmd
	}

	switch {
	case key.Matches(message, model.keys.Back):
		model.navigator.Switch(ScreenDashboard)

	case key.Matches(message, model.keys.Up):
		if model.inventory.cursor > 0 {
			model.inventory.cursor--
			model.inventory.ensureCursorVisible(len(model.store.Items()))
		}

	case key.Matches(message, model.keys.Down):
		if model.inventory.cursor < len(model.store.Items())-1 {
			model.inventory.cursor++
			model.inventory.ensureCursorVisible(len(model.store.Items()))
		}

	case key.Matches(message, model.keys.AddItem):
		model.navigator.Push(ScreenState{ID: ScreenItemEditor})
		return model, textinput.Blink

	case key.Matches(message, model.keys.EditItem):
		if name, ok := model.inventory.selectedItemName(); ok {
			model.navigator.Push(ScreenState{ID: ScreenItemEditor, ItemName: name})
			return model, textinput.Blink
		}

	case key.Matches(message, model.keys.DeleteItem):
		if name, ok := model.inventory.selectedItemName(); ok {
			model.navigator.Push(ScreenState{ID: ScreenDeleteConfirm, ItemName: name})
		}

	case key.Matches(message, model.keys.ViewItem):
		if name, ok := model.inventory.selectedItemName(); ok {
			model.navigator.Push(ScreenState{ID: ScreenDetail, ItemName: name})
		}
	}

	return model, nil
}

// renderInventory renders the item list screen with its action hints.
func (model Model) renderInventory() string {
	innerWidth := deviceFrameWidth - frameChromeWidth

	lines := []string{
		screenTitle(model.theme, innerWidth, "INVENTORY"),
		"",
		sectionTitle(model.theme, "EDC ITEMS"),
	}
	// The list block is multi-line; the frame pads line by line.
	lines = append(lines, strings.Split(model.renderItemList(innerWidth), "\n")...)
	lines = append(lines,
		"",
		sectionTitle(model.theme, "ACTIONS"),
		faintLine(model.theme, "Add (A)  Edit (E)  Delete (D)  View (Enter)"),
		"",
		navHint(model.theme, innerWidth, "NAV: [Enter]View [Esc]Back [1]Home [2]Stats [3]Set"),
	)

	return deviceFrame(model.theme, deviceFrameWidth, lines)
}

// renderItemList renders the scrolling item window. A scrollbar column
// appears only when the inventory overflows the window.
func (model Model) renderItemList(innerWidth int) string {
	items := model.store.Items()
	if len(items) == 0 {
		return faintLine(model.theme, "Empty")
	}

	overflow := len(items) > inventoryVisibleRows
	rowWidth := innerWidth
	if overflow {
		rowWidth = innerWidth - 2
	}

	visible := inventoryVisibleRows
	if len(items) < visible {
		visible = len(items)
	}

	rows := make([]string, 0, visible)
	offset := model.inventory.scrollOffset
	for index := offset; index < offset+visible && index < len(items); index++ {
		rows = append(rows, model.renderItemRow(items[index], rowWidth, index == model.inventory.cursor))
	}

	if !overflow {
		return strings.Join(rows, "\n")
	}

	scrollbar := tui.RenderScrollbar(model.theme, visible, len(items), visible, offset)
	content := lipgloss.NewStyle().Width(rowWidth).Render(strings.Join(rows, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, content, " ", scrollbar)
}

// renderItemRow renders one "Name [Category] xN" list row.
func (model Model) renderItemRow(item datastore.Item, rowWidth int, selected bool) string {
	text := fmt.Sprintf("%s [%s] x%d", item.Name, item.Category, item.Quantity)

	if !selected {
		line := "  " + text
		if ansi.StringWidth(line) > rowWidth {
			line = ansi.Truncate(line, rowWidth, "…")
		}
		return lipgloss.NewStyle().Foreground(model.theme.NormalText).Render(line)
	}

	line := "▸ " + text
	if ansi.StringWidth(line) > rowWidth {
		line = ansi.Truncate(line, rowWidth, "…")
	}
	return lipgloss.NewStyle().
		Background(model.theme.SelectedBackground).
		Foreground(model.theme.SelectedForeground).
		Width(rowWidth).
		Render(line)
}
