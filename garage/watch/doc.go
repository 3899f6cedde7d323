// Package watch provides ready-made implementations of garage.Watcher.
//
// # Overview
//
// A Garage broadcasts its facility-wide free capacity to registered
// watchers after every successful park and exit. This package supplies the
// common sinks for that stream so callers do not have to write adapters by
// hand:
//
//   - Log: structured logging via log/slog
//   - Gauge: a Prometheus gauge kept current with the free total
//   - Board: a human-readable display line written to an io.Writer
//   - Recorder: a thread-safe spy for tests and tooling
//
// # Usage
//
// Attaching a log watcher:
//
//	g, _ := garage.New(3, 5, nil)
//	g.Watch(watch.NewLog(slog.Default(), g.ID()))
//
// Exporting free capacity as a metric:
//
//	gauge, err := watch.NewGauge(prometheus.DefaultRegisterer, g.ID())
//	if err != nil {
//	    return err
//	}
//	g.Watch(gauge)
//
// Driving an entrance display:
//
//	g.Watch(watch.NewBoard(os.Stdout))
//
// # Delivery Semantics
//
// Updates arrive synchronously, in registration order, while the facility
// lock is held. Watchers must return quickly and must not call back into
// the Garage. A watcher attached to a single facility never sees
// concurrent Update calls; only Recorder is additionally safe to share
// across facilities.
//
// # Related Packages
//
//   - github.com/garagekit/garagekit/garage: the Watcher contract and broadcast rules
//   - github.com/garagekit/garagekit/garage/strategy: placement policies
package watch
