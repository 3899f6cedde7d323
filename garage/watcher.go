package garage

// Watcher receives the facility-wide free slot count after every committed
// state change. Broadcast is synchronous, in registration order, under the
// facility lock: Update must return promptly and must not call back into
// the Garage.
//
// See garage/watch for ready-made implementations (slog, prometheus gauge,
// display board, test recorder).
type Watcher interface {
	Update(free int)
}

// WatcherFunc adapts a plain function to the Watcher interface.
type WatcherFunc func(free int)

// Update calls f(free).
func (f WatcherFunc) Update(free int) { f(free) }
