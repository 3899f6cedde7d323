package watch

import (
	"sync"

	"github.com/garagekit/garagekit/garage"
)

// Recorder captures every broadcast total in arrival order. It is safe for
// concurrent use, so a single Recorder can observe facilities under churn
// or be shared between several facilities at once.
type Recorder struct {
	mu     sync.Mutex
	totals []int
}

var _ garage.Watcher = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Update appends the broadcast total.
func (r *Recorder) Update(free int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totals = append(r.totals, free)
}

// Totals returns a copy of all recorded totals.
func (r *Recorder) Totals() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.totals))
	copy(out, r.totals)
	return out
}

// Last returns the most recent total, or -1 if nothing has been recorded.
func (r *Recorder) Last() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.totals) == 0 {
		return -1
	}
	return r.totals[len(r.totals)-1]
}

// Len returns the number of recorded totals.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.totals)
}

// Reset discards all recorded totals.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totals = nil
}
