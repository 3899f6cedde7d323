package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/garagekit/garagekit/garage"
	"github.com/garagekit/garagekit/pkg/facility"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	// Render the help modal over the live board so the state stays visible
	// behind it.
	if m.showHelp {
		helpOverlay := overlay.New(
			newHelpView(m.keys),
			NewMainViewModel(&m),
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return helpOverlay.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderBanner(),
		m.renderContent(),
		m.renderStatus(),
	)
}

// renderHeader renders the title bar with facility identity and shape
func (m Model) renderHeader() string {
	title := headerStyle.Render("Garage Board")

	name := m.cfg.Strategy
	if name == "" {
		name = facility.DefaultConfig().Strategy
	}
	info := fmt.Sprintf("facility %s │ %s │ %d levels x %d slots",
		shortID(m.g.ID()), name, m.cfg.MaxLevels, m.cfg.LevelCapacity)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		headerInfoStyle.Render(info),
	)
}

// renderBanner renders the big free-capacity line. The free total counts
// built levels only, so a facility with room to grow shows "0 SLOTS FREE"
// rather than FULL: the full banner needs every slot of the ceiling taken.
func (m Model) renderBanner() string {
	switch {
	case m.g.Capacity() == 0:
		return bannerFullStyle.Render(" NO CAPACITY CONFIGURED ")
	case m.stats.Outstanding == m.g.Capacity():
		return bannerFullStyle.Render(" FACILITY FULL ")
	case m.free == 1:
		return bannerLowStyle.Render(" 1 SLOT FREE ")
	default:
		return bannerFreeStyle.Render(fmt.Sprintf(" %d SLOTS FREE ", m.free))
	}
}

// renderContent renders the level and activity panes side by side
func (m Model) renderContent() string {
	paneWidth := max(m.width/2-4, 34)

	levelsPane := paneStyle.Width(paneWidth).Render(m.renderLevels())
	eventsPane := paneStyle.Width(paneWidth).Render(m.renderEvents(paneWidth))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		levelsPane,
		eventsPane,
	)
}

// renderLevels renders one occupancy row per level, including levels the
// facility has not grown into yet
func (m Model) renderLevels() string {
	var b strings.Builder

	b.WriteString(paneTitleStyle.Render("Levels"))
	b.WriteString("\n\n")

	if m.cfg.MaxLevels == 0 {
		b.WriteString(notBuiltStyle.Render("no levels configured"))
		return b.String()
	}

	for _, lvl := range m.levels {
		occupied := lvl.Capacity - lvl.Free
		b.WriteString(fmt.Sprintf("L%-2d %s %d/%d\n",
			lvl.Index, levelBar(lvl), occupied, lvl.Capacity))
	}
	for i := len(m.levels); i < m.cfg.MaxLevels; i++ {
		b.WriteString(fmt.Sprintf("L%-2d %s\n", i, notBuiltStyle.Render("not built yet")))
	}

	return strings.TrimRight(b.String(), "\n")
}

// levelBar renders an occupancy bar for a level. Small levels get one cell
// per slot, which makes freed holes between occupied slots visible; large
// levels fall back to a scaled bar.
func levelBar(lvl garage.LevelSnapshot) string {
	const maxBarWidth = 20

	if lvl.Capacity <= 0 {
		return ""
	}

	if lvl.Capacity <= maxBarWidth {
		var b strings.Builder
		for _, s := range lvl.Slots {
			if s.Occupied {
				b.WriteString(barFilledStyle.Render("█"))
			} else {
				b.WriteString(barEmptyStyle.Render("░"))
			}
		}
		for i := len(lvl.Slots); i < lvl.Capacity; i++ {
			b.WriteString(barEmptyStyle.Render("░"))
		}
		return b.String()
	}

	occupied := lvl.Capacity - lvl.Free
	filled := occupied * maxBarWidth / lvl.Capacity
	if occupied > 0 && filled == 0 {
		filled = 1
	}
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", maxBarWidth-filled))
}

// renderEvents renders the recent activity log, newest last
func (m Model) renderEvents(paneWidth int) string {
	var b strings.Builder

	b.WriteString(paneTitleStyle.Render("Recent Activity"))
	b.WriteString("\n\n")

	if len(m.events) == 0 {
		b.WriteString(notBuiltStyle.Render("no traffic yet, press c to park a car"))
		return b.String()
	}

	visible := max(m.height-12, 6)
	events := m.events
	if len(events) > visible {
		events = events[len(events)-visible:]
	}

	for i, e := range events {
		b.WriteString(eventTimeStyle.Render(e.At.Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(truncate(e.Line, max(paneWidth-11, 20)))
		if i < len(events)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderStatus renders the bottom bar with hints and counters
func (m Model) renderStatus() string {
	// A transient status message takes the whole bar until it is cleared.
	if m.statusMessage != "" {
		return statusBarStyle.Width(m.width).Render(
			statusMsgStyle.Render(m.statusMessage),
		)
	}

	help := "c: Car │ m: Moto │ x: Exit │ a: Auto │ y: Copy │ ?: Help │ q: Quit"

	var stats strings.Builder
	if m.auto {
		stats.WriteString(autoOnStyle.Render("AUTO"))
		stats.WriteString(" │ ")
	}
	fmt.Fprintf(&stats, "parks %d │ exits %d │ rejections %d │ outstanding %d",
		m.stats.Parks, m.stats.Exits, m.stats.Rejections, m.stats.Outstanding)

	statusLine := lipgloss.JoinHorizontal(
		lipgloss.Top,
		help,
		lipgloss.NewStyle().Width(6).Render(""), // Spacer
		stats.String(),
	)

	return statusBarStyle.
		Width(m.width).
		Render(statusLine)
}

// shortID trims a facility UUID down to its leading segment for display
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
