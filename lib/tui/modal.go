// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Panel is a bordered, titled box rendered as a centered overlay on
// top of the main view. Screens supply already-styled content lines;
// the panel adds the chrome: title, footer, background fill, border,
// and centering.
type Panel struct {
	// Title is shown bold on the panel's first inner line.
	Title string

	// Lines is the styled content between title and footer.
	Lines []string

	// Footer is the dim key-hint line at the bottom (e.g.
	// "Enter save  Esc cancel").
	Footer string

	// MinInnerWidth widens the panel beyond its natural content width,
	// keeping small forms from rendering as a sliver.
	MinInnerWidth int

	// Theme supplies the panel colors.
	Theme Theme
}

// Panel chrome overhead: 2 columns border + 2 columns padding = 4
// columns horizontal. Margin keeps the panel off the screen edges so
// the underlying view stays visible around it; it collapses to zero on
// very small screens.
const (
	panelChromeWidth = 4
	panelMargin      = 2
)

// Render produces the overlay lines for splicing onto the view, plus
// the anchor position (top-left corner in screen coordinates) that
// centers the panel.
func (panel Panel) Render(screenWidth, screenHeight int) ([]string, int, int) {
	backgroundStyle := lipgloss.NewStyle().
		Background(panel.Theme.ModalBackground)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(panel.Theme.HeaderForeground).
		Background(panel.Theme.ModalBackground)

	footerStyle := lipgloss.NewStyle().
		Foreground(panel.Theme.FaintText).
		Background(panel.Theme.ModalBackground)

	// Natural inner width: the widest of title, footer, content, and
	// the configured minimum; clamped so the panel plus margin fits.
	innerWidth := panel.MinInnerWidth
	if width := ansi.StringWidth(panel.Title); width > innerWidth {
		innerWidth = width
	}
	if width := ansi.StringWidth(panel.Footer); width > innerWidth {
		innerWidth = width
	}
	for _, line := range panel.Lines {
		if width := ansi.StringWidth(line); width > innerWidth {
			innerWidth = width
		}
	}
	maxInner := screenWidth - panelChromeWidth - panelMargin*2
	if innerWidth > maxInner && maxInner > 0 {
		innerWidth = maxInner
	}

	pad := func(styled string) string {
		width := ansi.StringWidth(styled)
		if width > innerWidth {
			return ansi.Truncate(styled, innerWidth, "…")
		}
		return styled + backgroundStyle.Render(strings.Repeat(" ", innerWidth-width))
	}

	var innerLines []string
	if panel.Title != "" {
		innerLines = append(innerLines, pad(titleStyle.Render(panel.Title)))
		innerLines = append(innerLines, pad(""))
	}
	for _, line := range panel.Lines {
		innerLines = append(innerLines, pad(line))
	}
	if panel.Footer != "" {
		innerLines = append(innerLines, pad(""))
		innerLines = append(innerLines, pad(footerStyle.Render(panel.Footer)))
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(panel.Theme.BorderColor).
		Background(panel.Theme.ModalBackground).
		Padding(0, 1)

	rendered := borderStyle.Render(strings.Join(innerLines, "\n"))
	resultLines := strings.Split(rendered, "\n")

	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}

	anchorX := (screenWidth - renderedWidth) / 2
	anchorY := (screenHeight - len(resultLines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}

	return resultLines, anchorX, anchorY
}
