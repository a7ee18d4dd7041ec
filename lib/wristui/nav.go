// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wristui

// ScreenID identifies one of the device's screens. The set is closed:
// four top-level screens reachable by switching, plus three layered
// screens reachable only by pushing.
type ScreenID int

const (
	// ScreenDashboard is the home screen: status monitor, inventory
	// preview, clock, and battery.
	ScreenDashboard ScreenID = iota
	// ScreenStats is the stat adjustment screen.
	ScreenStats
	// ScreenInventory is the item list screen.
	ScreenInventory
	// ScreenSettings is the device settings screen.
	ScreenSettings
	// ScreenDetail shows one item's full fields. Pushed from the
	// inventory screen.
	ScreenDetail
	// ScreenItemEditor is the add/edit item modal.
	ScreenItemEditor
	// ScreenDeleteConfirm is the delete confirmation modal.
	ScreenDeleteConfirm
)

// String returns the screen's name for logging and the status bar.
func (id ScreenID) String() string {
	switch id {
	case ScreenDashboard:
		return "dashboard"
	case ScreenStats:
		return "stats"
	case ScreenInventory:
		return "inventory"
	case ScreenSettings:
		return "settings"
	case ScreenDetail:
		return "detail"
	case ScreenItemEditor:
		return "item-editor"
	case ScreenDeleteConfirm:
		return "delete-confirm"
	default:
		return "unknown"
	}
}

// topLevel reports whether the screen is one of the four switch
// destinations.
func (id ScreenID) topLevel() bool {
	switch id {
	case ScreenDashboard, ScreenStats, ScreenInventory, ScreenSettings:
		return true
	}
	return false
}

// valid reports whether the id belongs to the closed screen set.
func (id ScreenID) valid() bool {
	return id >= ScreenDashboard && id <= ScreenDeleteConfirm
}

// ScreenState is one entry on the navigation stack: a screen plus the
// parameter it was opened with. ItemName is meaningful for the detail,
// editor, and confirm screens; for the editor an empty ItemName means
// create-new and a non-empty one means edit-existing.
type ScreenState struct {
	ID       ScreenID
	ItemName string
}

// ResumeFunc is called when its screen becomes the visible top of the
// stack: on switch, when pushed, and when revealed by a pop. The
// ScreenState carries the parameter so the screen can load its target;
// a missing target loads placeholder or empty content, never an error.
type ResumeFunc func(ScreenState)

// Navigator owns the ordered stack of screen states. The top of the
// stack is the visible screen. Switching resets the stack to a single
// top-level entry (discarding any layered screens), pushing layers a
// screen on top, and popping removes the top unless it is the root.
//
// Every operation that changes the visible screen fires that screen's
// resume hook exactly once, after the stack change. Screens with no
// registered hook are simply shown.
type Navigator struct {
	stack   []ScreenState
	resumes map[ScreenID]ResumeFunc
}

// NewNavigator creates a Navigator with the dashboard as its root.
func NewNavigator() *Navigator {
	return &Navigator{
		stack:   []ScreenState{{ID: ScreenDashboard}},
		resumes: make(map[ScreenID]ResumeFunc),
	}
}

// Register installs the resume hook for a screen, replacing any
// previous one.
func (navigator *Navigator) Register(id ScreenID, resume ResumeFunc) {
	navigator.resumes[id] = resume
}

// Switch makes the given top-level screen the sole stack entry.
// Returns false without any effect for modal or unknown ids.
func (navigator *Navigator) Switch(id ScreenID) bool {
	if !id.topLevel() {
		return false
	}
	state := ScreenState{ID: id}
	navigator.stack = navigator.stack[:0]
	navigator.stack = append(navigator.stack, state)
	navigator.notifyResume(state)
	return true
}

// Push layers a screen on top of the stack. Returns false without any
// effect for ids outside the closed screen set.
func (navigator *Navigator) Push(state ScreenState) bool {
	if !state.ID.valid() {
		return false
	}
	navigator.stack = append(navigator.stack, state)
	navigator.notifyResume(state)
	return true
}

// Pop removes the top of the stack and reveals the screen beneath it.
// The root entry cannot be popped; that returns false with no effect.
func (navigator *Navigator) Pop() bool {
	if len(navigator.stack) <= 1 {
		return false
	}
	navigator.stack = navigator.stack[:len(navigator.stack)-1]
	navigator.notifyResume(navigator.stack[len(navigator.stack)-1])
	return true
}

// Current returns the visible screen state (the top of the stack).
func (navigator *Navigator) Current() ScreenState {
	return navigator.stack[len(navigator.stack)-1]
}

// Beneath returns the screen state directly under the top, or the top
// itself when the stack has a single entry. The view layer uses this
// to render the screen a modal overlays.
func (navigator *Navigator) Beneath() ScreenState {
	if len(navigator.stack) < 2 {
		return navigator.stack[len(navigator.stack)-1]
	}
	return navigator.stack[len(navigator.stack)-2]
}

// Depth returns the number of entries on the stack.
func (navigator *Navigator) Depth() int {
	return len(navigator.stack)
}

// notifyResume fires the resume hook registered for the state's screen.
func (navigator *Navigator) notifyResume(state ScreenState) {
	if resume := navigator.resumes[state.ID]; resume != nil {
		resume(state)
	}
}
