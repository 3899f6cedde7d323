package watch

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/garagekit/garagekit/garage"
)

// Gauge mirrors the free-capacity total into a Prometheus gauge.
type Gauge struct {
	g prometheus.Gauge
}

var _ garage.Watcher = (*Gauge)(nil)

// NewGauge registers a garagekit_free_slots gauge on reg, with the facility
// ID as a const label, and returns a watcher that keeps it current. The
// gauge reads zero until the first broadcast arrives; callers wanting an
// immediate value can seed it with Update(g.FreeCapacity()).
func NewGauge(reg prometheus.Registerer, facilityID string) (*Gauge, error) {
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   "garagekit",
		Name:        "free_slots",
		Help:        "Free parking slots across created levels of the facility.",
		ConstLabels: prometheus.Labels{"facility": facilityID},
	})
	if err := reg.Register(g); err != nil {
		return nil, fmt.Errorf("watch: register free_slots gauge: %w", err)
	}
	return &Gauge{g: g}, nil
}

// Update sets the gauge to the new free total.
func (w *Gauge) Update(free int) {
	w.g.Set(float64(free))
}
