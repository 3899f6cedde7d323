package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/garagekit/garagekit/cmd/garageboard/logger"
	"github.com/garagekit/garagekit/garage/vehicle"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case freeUpdateMsg:
		// The watcher already delivered the total, but reread the whole
		// snapshot so the level bars and counters stay consistent with it.
		m.free = msg.free
		m.refresh()
		return m, listenForUpdates(m.updates)

	case autoTickMsg:
		if !m.auto {
			return m, nil
		}
		if m.rng.Intn(10) < 6 {
			kind := vehicle.Car
			if m.rng.Intn(3) == 0 {
				kind = vehicle.Motorcycle
			}
			m.parkOne(kind)
		} else {
			m.exitOldest()
		}
		m.refresh()
		return m, autoTick()

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case errMsg:
		logger.Error("board error", "error", msg.err)
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay swallows everything except the keys that dismiss it.
	if m.showHelp {
		if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ParkCar):
		m.parkOne(vehicle.Car)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.ParkMotorcycle):
		m.parkOne(vehicle.Motorcycle)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.ExitVehicle):
		m.exitOldest()
		m.refresh()
		return m, clearStatusLater()

	case key.Matches(msg, m.keys.ToggleAuto):
		m.auto = !m.auto
		if m.auto {
			m.statusMessage = "auto traffic on"
			logger.Info("auto traffic enabled")
			return m, tea.Batch(autoTick(), clearStatusLater())
		}
		m.statusMessage = "auto traffic off"
		logger.Info("auto traffic disabled")
		return m, clearStatusLater()

	case key.Matches(msg, m.keys.CopySummary):
		summary := fmt.Sprintf("facility %s: %d/%d slots free, parks=%d exits=%d rejections=%d",
			m.g.ID(), m.free, m.g.Capacity(),
			m.stats.Parks, m.stats.Exits, m.stats.Rejections)
		if err := clipboard.WriteAll(summary); err != nil {
			m.statusMessage = "clipboard unavailable"
			logger.Warn("clipboard write failed", "error", err)
		} else {
			m.statusMessage = "summary copied to clipboard"
		}
		return m, clearStatusLater()
	}

	return m, nil
}
