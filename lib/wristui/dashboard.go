// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wristui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/wristcomp/wristcomp/lib/tui"
)

// dashboardPreviewItems is how many inventory entries the dashboard
// shows in its preview section.
const dashboardPreviewItems = 3

// handleDashboardKeys handles input on the home screen. The dashboard
// only switches and quits; escape is deliberately unbound here since
// there is nowhere further back to go.
func (model Model) handleDashboardKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	model, cmd, handled := model.handleTopLevelKeys(message)
	if handled {
		return model, cmd
	}
	return model, nil
}

// renderDashboard renders the home screen: top bar (device name,
// clock, battery), status monitor gauges, inventory preview, and nav
// hints. Compact mode drops the preview and the date line and narrows
// the frame.
func (model Model) renderDashboard() string {
	compact := model.compactMode()
	width := deviceFrameWidth
	if compact {
		width = compactFrameWidth
	}
	innerWidth := width - frameChromeWidth

	var lines []string
	lines = append(lines, model.renderTopBar(innerWidth, compact)...)
	lines = append(lines, "")
	lines = append(lines, sectionTitle(model.theme, "STATUS MONITOR"))
	for _, display := range statDisplays {
		lines = append(lines, model.renderStatLine(display))
	}

	if !compact {
		lines = append(lines, "")
		lines = append(lines, sectionTitle(model.theme, "INVENTORY"))
		lines = append(lines, model.renderInventoryPreview()...)
	}

	lines = append(lines, "")
	lines = append(lines, navHint(model.theme, innerWidth, "NAV: [1]Stats [2]Inv [3]Set [Q]Quit"))

	return deviceFrame(model.theme, width, lines)
}

// renderTopBar renders the dashboard header rows: device name on the
// left, clock centered, battery on the right. Compact mode collapses
// to two right-aligned rows without the date.
func (model Model) renderTopBar(innerWidth int, compact bool) []string {
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	timeStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.NormalText)
	dateStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	deviceName := model.deviceName()
	battery := batteryLine(model.theme)
	batteryWidth := ansi.StringWidth(battery)

	if compact {
		nameWidth := innerWidth - batteryWidth
		if nameWidth < 0 {
			nameWidth = 0
		}
		nameColumn := lipgloss.NewStyle().Width(nameWidth).
			Render(nameStyle.Render(ansi.Truncate(deviceName, nameWidth, "…")))
		timeColumn := lipgloss.NewStyle().Width(innerWidth).Align(lipgloss.Right).
			Render(timeStyle.Render(clockTime(model.now)))
		return []string{nameColumn + battery, timeColumn}
	}

	const clockColumnWidth = 12
	nameWidth := innerWidth - clockColumnWidth - batteryWidth
	if nameWidth < 0 {
		nameWidth = 0
	}

	nameColumn := lipgloss.NewStyle().Width(nameWidth).
		Render(nameStyle.Render(ansi.Truncate(deviceName, nameWidth, "…")))
	timeColumn := lipgloss.NewStyle().Width(clockColumnWidth).Align(lipgloss.Center).
		Render(timeStyle.Render(clockTime(model.now)))
	dateColumn := lipgloss.NewStyle().Width(clockColumnWidth).Align(lipgloss.Center).
		Render(dateStyle.Render(clockDate(model.now)))

	return []string{
		nameColumn + timeColumn + battery,
		strings.Repeat(" ", nameWidth) + dateColumn,
	}
}

// renderStatLine renders one status monitor row: glyph, label, gauge,
// percentage.
func (model Model) renderStatLine(display statDisplay) string {
	value := model.store.Stat(display.Name)
	color := model.theme.StatColor(display.Name)

	glyphStyle := lipgloss.NewStyle().Foreground(color)
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.NormalText)
	gauge := tui.RenderGauge(model.theme, color, value, statGaugeCells)

	return fmt.Sprintf("%s %s %s %3d%%",
		glyphStyle.Render(display.Glyph), labelStyle.Render(display.Label), gauge, value)
}

// renderInventoryPreview renders the first few inventory entries.
func (model Model) renderInventoryPreview() []string {
	items := model.store.Items()
	if len(items) == 0 {
		return []string{faintLine(model.theme, "No items")}
	}
	if len(items) > dashboardPreviewItems {
		items = items[:dashboardPreviewItems]
	}

	lines := make([]string, len(items))
	for index, item := range items {
		lines[index] = fmt.Sprintf("• %s x%d", item.Name, item.Quantity)
	}
	return lines
}
