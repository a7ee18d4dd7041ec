// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderGauge produces a horizontal bar gauge of the given width in cells.
// The filled portion is colored with fill, the remainder with the theme's
// GaugeEmpty color. Values outside [0, 100] are clamped before rendering.
//
// The fill boundary truncates rather than rounds: a value of 95 on a
// ten-cell gauge shows nine filled cells. Only a true 100 fills the bar,
// which keeps "almost full" visually distinct from "full".
func RenderGauge(theme Theme, fill lipgloss.Color, value, cells int) string {
	if cells <= 0 {
		return ""
	}
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	filled := value * cells / 100

	fillStyle := lipgloss.NewStyle().Foreground(fill)
	emptyStyle := lipgloss.NewStyle().Foreground(theme.GaugeEmpty)

	var builder strings.Builder
	if filled > 0 {
		builder.WriteString(fillStyle.Render(strings.Repeat("█", filled)))
	}
	if filled < cells {
		builder.WriteString(emptyStyle.Render(strings.Repeat("░", cells-filled)))
	}
	return builder.String()
}
