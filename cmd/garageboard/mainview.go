package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MainViewModel wraps the main board view for use as overlay background
type MainViewModel struct {
	model *Model
}

func NewMainViewModel(m *Model) *MainViewModel {
	return &MainViewModel{model: m}
}

func (m *MainViewModel) Init() tea.Cmd {
	return nil
}

func (m *MainViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Updates are handled in the parent Model's Update
	// This model just provides the View() for overlay
	return m, nil
}

func (m *MainViewModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.model.renderHeader(),
		m.model.renderBanner(),
		m.model.renderContent(),
		m.model.renderStatus(),
	)
}

// helpView is the overlay foreground listing all keyboard shortcuts
type helpView struct {
	keys KeyMap
}

func newHelpView(k KeyMap) helpView {
	return helpView{keys: k}
}

func (h helpView) Init() tea.Cmd {
	return nil
}

func (h helpView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return h, nil
}

func (h helpView) View() string {
	var b strings.Builder

	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	const keyWidth = 6
	groups := h.keys.FullHelp()
	for gi, group := range groups {
		for _, binding := range group {
			b.WriteString(helpKeyStyle.Width(keyWidth).Render(binding.Help().Key))
			b.WriteString("  ")
			b.WriteString(helpDescStyle.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
		if gi < len(groups)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render("Press Esc, ?, or q to close"))

	return helpBoxStyle.Width(40).Render(b.String())
}
