// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wristui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wristcomp/wristcomp/lib/clock"
	"github.com/wristcomp/wristcomp/lib/datastore"
	"github.com/wristcomp/wristcomp/lib/tui"
)

// clockTickMsg drives the simulated device clock. Sent once a second;
// the handler reads the injected clock and reschedules itself.
type clockTickMsg struct{}

// noticeFadeMsg clears the status bar notice after a delay. The
// sequence number ties the fade to the notice that scheduled it, so a
// stale fade never clears a newer notice.
type noticeFadeMsg struct {
	sequence int
}

// noticeFadeDelay is how long a status bar notice stays visible.
const noticeFadeDelay = 4 * time.Second

// noticeInfo styles confirmation notices ("Saved", reset messages).
// Warn and error notices arrive through the log handler with their
// own levels.
const noticeInfo = slog.LevelInfo

// Model is the bubbletea model for the wrist device UI. One Model
// drives every screen; the Navigator decides which screen owns the
// keyboard and the frame.
type Model struct {
	store     *datastore.Store
	navigator *Navigator
	clock     clock.Clock
	logger    *slog.Logger
	theme     Theme
	keys      KeyMap

	// Terminal dimensions from the last WindowSizeMsg.
	width  int
	height int
	ready  bool

	// now is the displayed device time, refreshed by clockTickMsg.
	now time.Time

	// Screen state. Held as pointers so navigator resume hooks and
	// Update see the same state across Model copies.
	stats     *statsScreen
	inventory *inventoryScreen
	detail    *detailScreen
	editor    *editorModal
	confirm   *confirmModal

	// Transient status bar notice. noticeSequence invalidates
	// pending fades when a newer notice replaces an older one.
	notice         string
	noticeLevel    slog.Level
	noticeSequence int
}

// NewModel creates the device UI over an open store. The clock is the
// same one the store stamps documents with, so the displayed time and
// the persisted last_updated agree.
func NewModel(store *datastore.Store, deviceClock clock.Clock, logger *slog.Logger) Model {
	model := Model{
		store:     store,
		navigator: NewNavigator(),
		clock:     deviceClock,
		logger:    logger,
		theme:     DefaultTheme,
		keys:      DefaultKeyMap,
		now:       deviceClock.Now(),
		stats:     &statsScreen{store: store},
		inventory: &inventoryScreen{store: store},
		detail:    &detailScreen{store: store},
		confirm:   &confirmModal{},
	}
	model.editor = newEditorModal(store)

	model.navigator.Register(ScreenInventory, model.inventory.refresh)
	model.navigator.Register(ScreenDetail, model.detail.refresh)
	model.navigator.Register(ScreenItemEditor, model.editor.refresh)
	model.navigator.Register(ScreenDeleteConfirm, model.confirm.refresh)

	return model
}

// Init implements tea.Model. Starts the one-second clock tick.
func (model Model) Init() tea.Cmd {
	return clockTickCmd()
}

func clockTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return clockTickMsg{}
	})
}

// Update implements tea.Model. Routes keyboard events to the screen on
// top of the navigation stack and handles the cosmetic timers.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		// Ctrl+C quits from anywhere, including modals.
		if message.Type == tea.KeyCtrlC {
			return model, tea.Quit
		}

		switch model.navigator.Current().ID {
		case ScreenDashboard:
			return model.handleDashboardKeys(message)
		case ScreenStats:
			return model.handleStatsKeys(message)
		case ScreenInventory:
			return model.handleInventoryKeys(message)
		case ScreenSettings:
			return model.handleSettingsKeys(message)
		case ScreenDetail:
			return model.handleDetailKeys(message)
		case ScreenItemEditor:
			return model.handleEditorKeys(message)
		case ScreenDeleteConfirm:
			return model.handleConfirmKeys(message)
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true

	case clockTickMsg:
		model.now = model.clock.Now()
		return model, clockTickCmd()

	case noticeFadeMsg:
		if message.sequence == model.noticeSequence {
			model.notice = ""
		}

	case logRecordMsg:
		cmd := model.setNotice(message.Summary, message.Level)
		return model, cmd
	}

	return model, nil
}

// setNotice replaces the status bar notice and schedules its fade.
func (model *Model) setNotice(text string, level slog.Level) tea.Cmd {
	model.notice = text
	model.noticeLevel = level
	model.noticeSequence++
	sequence := model.noticeSequence
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{sequence: sequence}
	})
}

// handleTopLevelKeys handles the bindings shared by all four top-level
// screens: quit and the contextual digit switches. The digits address
// the other three top-level screens in dashboard/stats/inventory/
// settings order, matching the nav hints each screen renders.
func (model Model) handleTopLevelKeys(message tea.KeyMsg) (Model, tea.Cmd, bool) {
	targets := digitTargets(model.navigator.Current().ID)

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit, true

	case key.Matches(message, model.keys.Digit1):
		model.navigator.Switch(targets[0])
		return model, nil, true

	case key.Matches(message, model.keys.Digit2):
		model.navigator.Switch(targets[1])
		return model, nil, true

	case key.Matches(message, model.keys.Digit3):
		model.navigator.Switch(targets[2])
		return model, nil, true
	}

	return model, nil, false
}

// digitTargets returns the three screens the digit keys lead to from
// the given screen: every top-level screen except the current one, in
// canonical order.
func digitTargets(current ScreenID) [3]ScreenID {
	order := [4]ScreenID{ScreenDashboard, ScreenStats, ScreenInventory, ScreenSettings}
	var targets [3]ScreenID
	count := 0
	for _, id := range order {
		if id == current || count == len(targets) {
			continue
		}
		targets[count] = id
		count++
	}
	return targets
}

// deviceName reads the device_name setting, falling back to the bare
// product name when the setting is missing or blank.
func (model Model) deviceName() string {
	if value, ok := model.store.Setting(datastore.SettingDeviceName); ok {
		if name := value.StringOr(""); name != "" {
			return name
		}
	}
	return "WristComp"
}

func (model Model) autoSaveEnabled() bool {
	if value, ok := model.store.Setting(datastore.SettingAutoSave); ok {
		return value.BoolOr(true)
	}
	return true
}

func (model Model) compactMode() bool {
	if value, ok := model.store.Setting(datastore.SettingCompactMode); ok {
		return value.BoolOr(false)
	}
	return false
}

// View implements tea.Model. Renders the device frame for the screen
// on top of the stack, centered in the terminal, with the status bar
// on the last line. Modal screens render the screen beneath them and
// splice their panel over it.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	top := model.navigator.Current()
	base := top
	if top.ID == ScreenItemEditor || top.ID == ScreenDeleteConfirm {
		base = model.navigator.Beneath()
	}

	var frame string
	switch base.ID {
	case ScreenStats:
		frame = model.renderStats()
	case ScreenInventory:
		frame = model.renderInventory()
	case ScreenSettings:
		frame = model.renderSettings()
	case ScreenDetail:
		frame = model.renderDetail()
	default:
		frame = model.renderDashboard()
	}

	view := lipgloss.Place(model.width, model.height-1,
		lipgloss.Center, lipgloss.Center, frame)
	view += "\n" + model.renderStatusBar()

	switch top.ID {
	case ScreenItemEditor:
		lines, anchorX, anchorY := model.renderEditor()
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	case ScreenDeleteConfirm:
		lines, anchorX, anchorY := model.renderConfirm()
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}

	return view
}

// renderStatusBar renders the bottom line: the active notice when one
// is set, otherwise the current screen indicator.
func (model Model) renderStatusBar() string {
	if model.notice != "" {
		color := model.theme.SuccessText
		switch {
		case model.noticeLevel >= slog.LevelError:
			color = model.theme.DangerText
		case model.noticeLevel >= slog.LevelWarn:
			color = model.theme.WarningText
		}
		return lipgloss.NewStyle().Bold(true).Foreground(color).
			Render(" " + model.notice)
	}

	indicator := strings.ToUpper(model.navigator.Current().ID.String())
	return lipgloss.NewStyle().Foreground(model.theme.HelpText).
		Render(" [" + indicator + "]")
}
