package engine

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the tunables of the questionnaire engine.
type Config struct {
	// MasteryThreshold is the fraction of a section's adaptive maximum
	// that must be reached at a trigger question for the remainder of
	// the section to be skipped.
	MasteryThreshold float64 `env:"PULSE_MASTERY_THRESHOLD" envDefault:"0.80"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{MasteryThreshold: 0.80}
}

// ConfigFromEnv reads the engine configuration from the environment,
// falling back to defaults for unset variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing engine config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MasteryThreshold <= 0 || c.MasteryThreshold > 1 {
		return fmt.Errorf("mastery threshold must be in (0, 1], got %g", c.MasteryThreshold)
	}
	return nil
}
