// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wristui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wristcomp/wristcomp/lib/datastore"
	"github.com/wristcomp/wristcomp/lib/tui"
)

// statAdjustStep is how much one increase/decrease keypress shifts a
// stat.
const statAdjustStep = 5

// statsScreen holds the stat management screen's cursor: which of the
// four stat rows is selected for adjustment.
type statsScreen struct {
	store  *datastore.Store
	cursor int
}

// handleStatsKeys handles input on the stats screen: row selection and
// ±5 adjustments, plus the shared top-level bindings.
func (model Model) handleStatsKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	model, cmd, handled := model.handleTopLevelKeys(message)
	if handled {
		return model, cmd
	}

	switch {
	case key.Matches(message, model.keys.Back):
		model.navigator.Switch(ScreenDashboard)

	case key.Matches(message, model.keys.Up):
		if model.stats.cursor > 0 {
			model.stats.cursor--
		}

	case key.Matches(message, model.keys.Down):
		if model.stats.cursor < len(statDisplays)-1 {
			model.stats.cursor++
		}

	case key.Matches(message, model.keys.Increase):
		model.adjustSelectedStat(statAdjustStep)

	case key.Matches(message, model.keys.Decrease):
		model.adjustSelectedStat(-statAdjustStep)
	}

	return model, nil
}

// adjustSelectedStat shifts the selected stat by delta. The store
// clamps into [0, 100]; a persistence failure is logged and surfaced
// as a status notice, with the in-memory change already applied.
func (model *Model) adjustSelectedStat(delta int) {
	name := statDisplays[model.stats.cursor].Name
	if err := model.store.AdjustStat(name, delta); err != nil {
		model.logger.Error("saving stat failed", "stat", name, "error", err)
	}
}

// renderStats renders the stat management screen: one selectable row
// per stat with its gauge and value.
func (model Model) renderStats() string {
	innerWidth := deviceFrameWidth - frameChromeWidth

	lines := []string{
		screenTitle(model.theme, innerWidth, "STATS"),
		"",
	}

	for index, display := range statDisplays {
		selected := index == model.stats.cursor
		lines = append(lines, model.renderStatControl(index, display, selected)...)
		lines = append(lines, "")
	}

	lines = append(lines, navHint(model.theme, innerWidth,
		"NAV: [J/K]Row [+/-]Adjust [Esc]Back [1]Home [2]Inv [3]Set"))

	return deviceFrame(model.theme, deviceFrameWidth, lines)
}

// renderStatControl renders one stat row pair: the labeled header line
// and the gauge line beneath it.
func (model Model) renderStatControl(index int, display statDisplay, selected bool) []string {
	color := model.theme.StatColor(display.Name)
	value := model.store.Stat(display.Name)

	marker := "  "
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.NormalText)
	if selected {
		marker = "▸ "
		labelStyle = labelStyle.Foreground(model.theme.SelectedForeground)
	}

	glyphStyle := lipgloss.NewStyle().Foreground(color)
	header := fmt.Sprintf("%s%s %s",
		marker, glyphStyle.Render(display.Glyph), labelStyle.Render(statFullLabels[index]))

	gauge := tui.RenderGauge(model.theme, color, value, statGaugeCells)
	control := fmt.Sprintf("    %s %3d%%", gauge, value)

	return []string{header, control}
}
