// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wristui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/wristcomp/wristcomp/lib/datastore"
	"github.com/wristcomp/wristcomp/lib/tui"
)

// Device frame geometry. The frame simulates the device's physical
// screen: fixed width, centered in the terminal. Compact mode narrows
// it to the small-screen size. Inner width is the frame width minus
// the border (2) and horizontal padding (4).
const (
	deviceFrameWidth  = 60
	compactFrameWidth = 44
	frameChromeWidth  = 6

	// statGaugeCells is the cell count of stat and battery bars.
	statGaugeCells = 10

	// batteryLevel is the simulated charge percentage. The device has
	// no real battery to read; the constant keeps the gauge plausible.
	batteryLevel = 87
)

// statDisplay describes how one stat renders: its store name, the
// four-character label, and the signature glyph. Glyphs are plain
// ASCII so the fixed-width frame never misaligns on terminals with
// unreliable emoji widths.
type statDisplay struct {
	Name  string
	Label string
	Glyph string
}

// statDisplays lists the four vital stats in display order.
var statDisplays = [4]statDisplay{
	{Name: datastore.StatHydration, Label: "HYDR", Glyph: "~"},
	{Name: datastore.StatEnergy, Label: "ENER", Glyph: "*"},
	{Name: datastore.StatUrination, Label: "URIN", Glyph: "o"},
	{Name: datastore.StatStress, Label: "STRE", Glyph: "!"},
}

// statFullLabels maps display order to the full uppercase stat names
// used on the stats screen.
var statFullLabels = [4]string{"HYDRATION", "ENERGY", "URINATION", "STRESS"}

// deviceFrame wraps screen content in the bordered device bezel. Every
// line is padded (or truncated) to the frame's inner width so the
// bezel renders as a solid rectangle.
func deviceFrame(theme Theme, width int, lines []string) string {
	innerWidth := width - frameChromeWidth
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	padded := make([]string, len(lines))
	for index, line := range lines {
		if ansi.StringWidth(line) > innerWidth {
			line = ansi.Truncate(line, innerWidth, "…")
		}
		padded[index] = lineStyle.Render(line)
	}

	frameStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.BorderColor).
		Padding(1, 2)

	return frameStyle.Render(strings.Join(padded, "\n"))
}

// screenTitle renders the centered "◄ NAME ►" banner used by every
// screen except the dashboard (which carries the top bar instead).
func screenTitle(theme Theme, innerWidth int, name string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.HeaderForeground).
		Width(innerWidth).
		Align(lipgloss.Center).
		Render("◄ " + name + " ►")
}

// sectionTitle renders an underlined section heading.
func sectionTitle(theme Theme, text string) string {
	return lipgloss.NewStyle().
		Underline(true).
		Foreground(theme.HeaderForeground).
		Render(text)
}

// navHint renders the centered dim key-hint line at the bottom of a
// screen frame.
func navHint(theme Theme, innerWidth int, text string) string {
	return lipgloss.NewStyle().
		Foreground(theme.HelpText).
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(text)
}

// faintLine renders dim placeholder text ("Empty", "No items").
func faintLine(theme Theme, text string) string {
	return lipgloss.NewStyle().Foreground(theme.FaintText).Render(text)
}

// batteryLine renders the simulated battery indicator: label, gauge,
// percentage.
func batteryLine(theme Theme) string {
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.NormalText)
	gauge := tui.RenderGauge(theme, theme.SuccessText, batteryLevel, statGaugeCells)
	return fmt.Sprintf("%s %s %d%%", labelStyle.Render("BAT"), gauge, batteryLevel)
}

// clockTime formats the live clock reading.
func clockTime(now time.Time) string {
	return now.Format("15:04:05")
}

// clockDate formats the date line under the clock.
func clockDate(now time.Time) string {
	return now.Format("2006-01-02")
}

// onOffLabel renders a boolean setting as ON or OFF.
func onOffLabel(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}

// formatWeight renders an item weight the way it was entered: no
// trailing zeros, no forced precision ("0.2", not "0.20").
func formatWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'g', -1, 64)
}
