// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wristcomp/wristcomp/lib/datastore"
)

// Theme defines the color palette and visual properties for the wrist
// device UI. All colors use lipgloss ANSI 256-color codes for broad
// terminal compatibility.
//
// The fields cover universal chrome (text, selection, borders) and the
// semantic categories that recur across screens: the four vital stats
// each carry a signature color, and notices are tinted by severity.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Stat signature colors.
	StatHydration lipgloss.Color
	StatEnergy    lipgloss.Color
	StatUrination lipgloss.Color
	StatStress    lipgloss.Color

	// Gauge rendering: the empty portion of stat and battery bars.
	GaugeEmpty lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Severity accents: confirmations, save failures, destructive
	// prompts, and the battery gauge (which borrows SuccessText).
	SuccessText lipgloss.Color
	WarningText lipgloss.Color
	DangerText  lipgloss.Color

	// Modal overlays.
	ModalForeground lipgloss.Color
	ModalBackground lipgloss.Color
}

// StatColor returns the signature color for a stat name. Recognizes
// the four seeded stats and returns NormalText for anything else.
func (theme Theme) StatColor(name string) lipgloss.Color {
	switch name {
	case datastore.StatHydration:
		return theme.StatHydration
	case datastore.StatEnergy:
		return theme.StatEnergy
	case datastore.StatUrination:
		return theme.StatUrination
	case datastore.StatStress:
		return theme.StatStress
	default:
		return theme.NormalText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatHydration: lipgloss.Color("86"),  // cyan
	StatEnergy:    lipgloss.Color("220"), // yellow/amber
	StatUrination: lipgloss.Color("75"),  // blue
	StatStress:    lipgloss.Color("196"), // red

	GaugeEmpty: lipgloss.Color("238"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	SuccessText: lipgloss.Color("114"), // green
	WarningText: lipgloss.Color("208"), // orange
	DangerText:  lipgloss.Color("196"), // red

	ModalForeground: lipgloss.Color("252"),
	ModalBackground: lipgloss.Color("237"), // slightly lighter than terminal background
}
