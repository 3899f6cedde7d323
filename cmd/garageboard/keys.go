package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	// Traffic
	ParkCar        key.Binding
	ParkMotorcycle key.Binding
	ExitVehicle    key.Binding
	ToggleAuto     key.Binding

	// Actions
	CopySummary key.Binding
	Esc         key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Traffic
		ParkCar: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "park a car"),
		),
		ParkMotorcycle: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "park a motorcycle"),
		),
		ExitVehicle: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "exit oldest vehicle"),
		),
		ToggleAuto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle auto traffic"),
		),

		// Actions
		CopySummary: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy summary"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Help,
		k.Quit,
	}
}

// FullHelp returns all key bindings for the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ParkCar, k.ParkMotorcycle, k.ExitVehicle, k.ToggleAuto},
		{k.CopySummary, k.Help, k.Quit},
	}
}
