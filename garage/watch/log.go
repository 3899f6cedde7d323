package watch

import (
	"log/slog"

	"github.com/garagekit/garagekit/garage"
)

// Log emits a structured log line for every free-capacity update.
type Log struct {
	l *slog.Logger
}

var _ garage.Watcher = (*Log)(nil)

// NewLog returns a watcher that logs each broadcast total at Info level,
// tagged with the facility ID. A nil logger falls back to slog.Default().
func NewLog(l *slog.Logger, facilityID string) *Log {
	if l == nil {
		l = slog.Default()
	}
	return &Log{l: l.With("facility", facilityID)}
}

// Update logs the new free total.
func (w *Log) Update(free int) {
	w.l.Info("free capacity changed", "free", free)
}
