package facility

import (
	"github.com/garagekit/garagekit/garage"
	"github.com/garagekit/garagekit/garage/strategy"
)

// New assembles a Garage from cfg: the strategy is resolved by name, a
// non-zero Seed pins random placement, and the dimensions come straight
// from the config.
//
// Example:
//
//	g, err := facility.New(facility.Config{
//	    MaxLevels:     2,
//	    LevelCapacity: 10,
//	    Strategy:      "bestfit",
//	})
func New(cfg Config) (*garage.Garage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	kind := strategy.KindFirstFit
	if cfg.Strategy != "" {
		var err error
		kind, err = strategy.Parse(cfg.Strategy)
		if err != nil {
			return nil, err
		}
	}

	var s garage.PlacementStrategy
	if kind == strategy.KindRandom && cfg.Seed != 0 {
		s = strategy.NewRandom(cfg.Seed)
	} else {
		var err error
		s, err = strategy.New(kind)
		if err != nil {
			return nil, err
		}
	}

	return garage.New(cfg.MaxLevels, cfg.LevelCapacity, s)
}
