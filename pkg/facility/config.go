package facility

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/garagekit/garagekit/garage/strategy"
)

// Config describes a facility. The zero value is not useful; start from
// DefaultConfig or LoadConfig.
type Config struct {
	// MaxLevels caps how many levels the facility may create.
	MaxLevels int `yaml:"max_levels"`

	// LevelCapacity is the number of slots on each level.
	LevelCapacity int `yaml:"level_capacity"`

	// Strategy names the placement policy (see garage/strategy.Parse).
	// Empty means first-fit.
	Strategy string `yaml:"strategy"`

	// Seed makes the random strategy reproducible. Zero seeds from the
	// clock. Ignored by the other strategies.
	Seed int64 `yaml:"seed,omitempty"`
}

// DefaultConfig returns the stock facility: 3 levels of 5 slots,
// first-fit placement.
func DefaultConfig() Config {
	return Config{
		MaxLevels:     3,
		LevelCapacity: 5,
		Strategy:      strategy.KindFirstFit.String(),
	}
}

// LoadConfig reads a YAML config file, overlaying it on DefaultConfig so
// partial documents work. A missing file yields the defaults without
// error; a malformed document or invalid settings yield an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("facility: read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("facility: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.MaxLevels < 0 {
		return fmt.Errorf("facility: max_levels must be >= 0, got %d", c.MaxLevels)
	}
	if c.LevelCapacity < 0 {
		return fmt.Errorf("facility: level_capacity must be >= 0, got %d", c.LevelCapacity)
	}
	if c.Strategy != "" {
		if _, err := strategy.Parse(c.Strategy); err != nil {
			return err
		}
	}
	return nil
}
