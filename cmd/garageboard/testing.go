package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/garagekit/garagekit/garage"
	"github.com/garagekit/garagekit/pkg/facility"
)

// TestHelper provides utilities for testing TUI components
type TestHelper struct {
	model Model
}

// NewTestHelper creates a test helper with a model built from cfg.
// A construction failure lands in the model's error state, which the
// view renders as the error screen.
func NewTestHelper(cfg facility.Config) *TestHelper {
	m, err := NewModel(cfg)
	if err != nil {
		m.err = err
	}
	return &TestHelper{model: m}
}

// SendKey simulates a key press
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	msg := tea.KeyMsg{Type: keyType}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	msg := tea.WindowSizeMsg{Width: width, Height: height}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendFreeUpdate injects a free-capacity broadcast, as if the facility
// watcher had delivered it
func (h *TestHelper) SendFreeUpdate(free int) *TestHelper {
	updated, _ := h.model.Update(freeUpdateMsg{free: free})
	h.model = updated.(Model)
	return h
}

// SendAutoTick injects one auto-traffic tick
func (h *TestHelper) SendAutoTick() *TestHelper {
	updated, _ := h.model.Update(autoTickMsg(time.Now()))
	h.model = updated.(Model)
	return h
}

// SendClearStatus injects the status-clear timer firing
func (h *TestHelper) SendClearStatus() *TestHelper {
	updated, _ := h.model.Update(clearStatusMsg{})
	h.model = updated.(Model)
	return h
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}

// Garage returns the facility behind the board for direct assertions
func (h *TestHelper) Garage() *garage.Garage {
	return h.model.g
}

// FreeCapacity returns the free total the board is currently showing
func (h *TestHelper) FreeCapacity() int {
	return h.model.free
}

// EventCount returns the number of activity log entries
func (h *TestHelper) EventCount() int {
	return len(h.model.events)
}

// StatusMessage returns the transient status bar message
func (h *TestHelper) StatusMessage() string {
	return h.model.statusMessage
}
