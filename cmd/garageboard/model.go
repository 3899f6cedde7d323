package main

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/garagekit/garagekit/garage"
	"github.com/garagekit/garagekit/garage/vehicle"
	"github.com/garagekit/garagekit/pkg/facility"
)

// Layout constants
const (
	maxEvents        = 64 // Traffic log entries kept in memory
	statusClearAfter = 2 * time.Second
	autoTrafficEvery = 600 * time.Millisecond
)

// Event is one line in the traffic log.
type Event struct {
	At   time.Time
	Line string
}

// Model is the main application model
type Model struct {
	cfg facility.Config
	g   *garage.Garage

	// Mirrored facility state, refreshed after every operation and
	// broadcast.
	levels []garage.LevelSnapshot
	free   int
	stats  garage.Stats

	// Outstanding tickets in issue order; exits redeem the oldest first.
	tickets []garage.TicketID

	events  []Event
	updates chan int
	keys    KeyMap
	rng     *rand.Rand

	auto          bool
	showHelp      bool
	statusMessage string
	width         int
	height        int

	err error
}

// boardWatcher forwards broadcast totals into the TUI's message loop.
// Broadcasts run under the facility lock, so the send must never block;
// a dropped total is fine because the next refresh rereads the facility.
type boardWatcher struct {
	updates chan<- int
}

func (w boardWatcher) Update(free int) {
	select {
	case w.updates <- free:
	default:
	}
}

// NewModel creates a new TUI model around a freshly built facility.
func NewModel(cfg facility.Config) (Model, error) {
	g, err := facility.New(cfg)
	if err != nil {
		return Model{}, err
	}

	updates := make(chan int, 64)
	g.Watch(boardWatcher{updates: updates})

	m := Model{
		cfg:     cfg,
		g:       g,
		updates: updates,
		keys:    DefaultKeyMap(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	m.refresh()
	return m, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return listenForUpdates(m.updates)
}

// refresh rereads the facility state mirrored into the view.
func (m *Model) refresh() {
	m.levels = m.g.Snapshot()
	m.free = m.g.FreeCapacity()
	m.stats = m.g.Stats()
}

// pushEvent appends a traffic log line, trimming the oldest entries.
func (m *Model) pushEvent(line string) {
	m.events = append(m.events, Event{At: time.Now(), Line: line})
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
}

// parkOne parks a freshly tagged vehicle and logs the outcome.
func (m *Model) parkOne(kind vehicle.Kind) {
	tag := vehicle.NewTag(kind)
	id, err := m.g.Park(tag)
	if err != nil {
		m.pushEvent(fmt.Sprintf("rejected %s: facility is full", tag))
		return
	}
	m.tickets = append(m.tickets, id)
	m.pushEvent(fmt.Sprintf("parked %s -> ticket %d", tag, id))
}

// exitOldest redeems the oldest outstanding ticket.
func (m *Model) exitOldest() {
	if len(m.tickets) == 0 {
		m.statusMessage = "no outstanding tickets"
		return
	}
	id := m.tickets[0]
	m.tickets = m.tickets[1:]
	if err := m.g.Exit(id); err != nil {
		m.pushEvent(fmt.Sprintf("exit ticket %d failed: %v", id, err))
		return
	}
	m.pushEvent(fmt.Sprintf("exited ticket %d", id))
}

// Messages

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// freeUpdateMsg carries a broadcast free total from the facility watcher.
type freeUpdateMsg struct{ free int }

// autoTickMsg drives the automatic traffic generator.
type autoTickMsg time.Time

type clearStatusMsg struct{}

// listenForUpdates waits for the next watcher broadcast.
func listenForUpdates(ch <-chan int) tea.Cmd {
	return func() tea.Msg {
		return freeUpdateMsg{free: <-ch}
	}
}

// autoTick schedules the next automatic traffic operation.
func autoTick() tea.Cmd {
	return tea.Tick(autoTrafficEvery, func(t time.Time) tea.Msg {
		return autoTickMsg(t)
	})
}

// clearStatusLater clears the transient status message after a delay.
func clearStatusLater() tea.Cmd {
	return tea.Tick(statusClearAfter, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
