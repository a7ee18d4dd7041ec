// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSpliceOverlayBasic(t *testing.T) {
	// A simple 5-line view, each line 20 chars.
	viewLines := []string{
		"aaaaaaaaaaaaaaaaaaaa",
		"bbbbbbbbbbbbbbbbbbbb",
		"cccccccccccccccccccc",
		"dddddddddddddddddddd",
		"eeeeeeeeeeeeeeeeeeee",
	}
	view := strings.Join(viewLines, "\n")

	overlay := []string{
		"XXXX",
		"YYYY",
	}

	result := SpliceOverlay(view, overlay, 5, 1)
	resultLines := strings.Split(result, "\n")

	// Line 0 unchanged.
	if ansi.Strip(resultLines[0]) != "aaaaaaaaaaaaaaaaaaaa" {
		t.Errorf("line 0 should be unchanged: %q", ansi.Strip(resultLines[0]))
	}

	// Line 1: prefix + overlay + suffix, same visible width as before.
	stripped1 := ansi.Strip(resultLines[1])
	if stripped1 != "bbbbbXXXXbbbbbbbbbbb" {
		t.Errorf("line 1 splice = %q, want %q", stripped1, "bbbbbXXXXbbbbbbbbbbb")
	}

	// Line 2 carries the second overlay line.
	stripped2 := ansi.Strip(resultLines[2])
	if !strings.Contains(stripped2, "YYYY") {
		t.Errorf("line 2 missing overlay content: %q", stripped2)
	}

	// Lines 3-4 unchanged.
	if ansi.Strip(resultLines[3]) != "dddddddddddddddddddd" {
		t.Errorf("line 3 should be unchanged: %q", ansi.Strip(resultLines[3]))
	}
	if ansi.Strip(resultLines[4]) != "eeeeeeeeeeeeeeeeeeee" {
		t.Errorf("line 4 should be unchanged: %q", ansi.Strip(resultLines[4]))
	}
}

func TestSpliceOverlayAtLeftEdge(t *testing.T) {
	view := "aaaaaaaaaa\nbbbbbbbbbb"
	overlay := []string{"XXX"}

	result := SpliceOverlay(view, overlay, 0, 0)
	stripped := ansi.Strip(strings.Split(result, "\n")[0])
	if stripped != "XXXaaaaaaa" {
		t.Errorf("left-edge splice = %q, want %q", stripped, "XXXaaaaaaa")
	}
}

func TestSpliceOverlayCoversToRightEdge(t *testing.T) {
	view := "aaaaaaaaaa"
	overlay := []string{"XXXX"}

	// Overlay ends exactly at the line's right edge: no suffix.
	result := SpliceOverlay(view, overlay, 6, 0)
	stripped := ansi.Strip(result)
	if stripped != "aaaaaaXXXX" {
		t.Errorf("right-edge splice = %q, want %q", stripped, "aaaaaaXXXX")
	}
}

func TestSpliceOverlayBeyondBottom(t *testing.T) {
	view := "aaaa\nbbbb"
	overlay := []string{"XX"}

	// Anchor rows entirely below the view: nothing to splice.
	result := SpliceOverlay(view, overlay, 0, 10)
	if result != view {
		t.Error("overlay beyond view bounds should return view unchanged")
	}
}

func TestSpliceOverlayPartiallyAboveTop(t *testing.T) {
	view := "aaaa\nbbbb"
	overlay := []string{"XX", "YY"}

	// First overlay row is above the view and is dropped; the second
	// lands on row 0.
	result := SpliceOverlay(view, overlay, 0, -1)
	lines := strings.Split(result, "\n")

	if strings.Contains(ansi.Strip(lines[0]), "XX") {
		t.Errorf("row above the view should be dropped: %q", ansi.Strip(lines[0]))
	}
	if !strings.Contains(ansi.Strip(lines[0]), "YY") {
		t.Errorf("second overlay row should land on row 0: %q", ansi.Strip(lines[0]))
	}
	if ansi.Strip(lines[1]) != "bbbb" {
		t.Errorf("row 1 should be unchanged: %q", ansi.Strip(lines[1]))
	}
}

func TestSpliceOverlayEmptyOverlay(t *testing.T) {
	view := "aaaa\nbbbb"
	if result := SpliceOverlay(view, nil, 0, 0); result != view {
		t.Error("empty overlay should return view unchanged")
	}
}

func TestSpliceOverlayPreservesANSI(t *testing.T) {
	// View line with existing color escapes on both sides of the
	// splice region.
	view := "\x1b[31mred text here\x1b[0m\nnormal line here"
	overlay := []string{"TIP"}

	result := SpliceOverlay(view, overlay, 4, 0)
	lines := strings.Split(result, "\n")

	// Visible text: prefix "red ", overlay "TIP" over "tex", suffix
	// "t here".
	stripped := ansi.Strip(lines[0])
	if stripped != "red TIPt here" {
		t.Errorf("spliced line = %q, want %q", stripped, "red TIPt here")
	}

	// The prefix keeps its original color escape.
	if !strings.Contains(lines[0], "\x1b[31m") {
		t.Error("prefix color escape lost in splice")
	}

	// The overlay is isolated from surrounding styles by resets.
	if !strings.Contains(lines[0], "\x1b[0mTIP\x1b[0m") {
		t.Errorf("overlay should be wrapped in resets: %q", lines[0])
	}

	// Second line unchanged.
	if ansi.Strip(lines[1]) != "normal line here" {
		t.Errorf("second line changed: %q", ansi.Strip(lines[1]))
	}
}
