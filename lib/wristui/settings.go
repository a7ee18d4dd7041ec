// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wristui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wristcomp/wristcomp/lib/datastore"
)

// handleSettingsKeys handles input on the settings screen: the two
// toggles, the two resets, and the shared top-level bindings.
func (model Model) handleSettingsKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	model, cmd, handled := model.handleTopLevelKeys(message)
	if handled {
		return model, cmd
	}

	switch {
	case key.Matches(message, model.keys.Back):
		model.navigator.Switch(ScreenDashboard)

	case key.Matches(message, model.keys.ToggleAutoSave):
		enabled := model.autoSaveEnabled()
		if err := model.store.SetSetting(datastore.SettingAutoSave, datastore.BoolValue(!enabled)); err != nil {
			model.logger.Error("saving settings failed", "setting", datastore.SettingAutoSave, "error", err)
		}

	case key.Matches(message, model.keys.ToggleCompact):
		compact := model.compactMode()
		if err := model.store.SetSetting(datastore.SettingCompactMode, datastore.BoolValue(!compact)); err != nil {
			model.logger.Error("saving settings failed", "setting", datastore.SettingCompactMode, "error", err)
		}

	case key.Matches(message, model.keys.ResetStats):
		if err := model.store.ResetStats(); err != nil {
			model.logger.Error("resetting stats failed", "error", err)
			return model, nil
		}
		return model, model.setNotice("Stats reset to defaults", noticeInfo)

	case key.Matches(message, model.keys.ResetAll):
		if err := model.store.ResetAll(); err != nil {
			model.logger.Error("resetting data failed", "error", err)
			return model, nil
		}
		return model, model.setNotice("All data reset to defaults", noticeInfo)
	}

	return model, nil
}

// renderSettings renders the device settings screen.
func (model Model) renderSettings() string {
	innerWidth := deviceFrameWidth - frameChromeWidth

	lastUpdated := model.store.LastUpdated()
	if lastUpdated == "" {
		lastUpdated = "-"
	}

	lines := []string{
		screenTitle(model.theme, innerWidth, "SETTINGS"),
		"",
		sectionTitle(model.theme, "DEVICE INFO"),
		"Name: " + model.deviceName(),
		"Auto-save: " + onOffLabel(model.autoSaveEnabled()),
		"Compact mode: " + onOffLabel(model.compactMode()),
		"File: " + model.store.Path(),
		"Updated: " + lastUpdated,
		"",
		sectionTitle(model.theme, "DATA MANAGEMENT"),
		faintLine(model.theme, "Toggle auto-save (A)  Toggle compact (C)"),
		faintLine(model.theme, "Reset stats (R)  Reset all (Shift-R)"),
		"",
		navHint(model.theme, innerWidth, "NAV: [Esc]Back [1]Home [2]Stats [3]Inv"),
	}

	return deviceFrame(model.theme, deviceFrameWidth, lines)
}
