package validate

import (
	"fmt"

	"github.com/dmitrymomot/paramcheck/pkg/check"
	"github.com/dmitrymomot/paramcheck/pkg/config"
)

// Config holds the environment-driven defaults of a chain.
type Config struct {
	DateFormat     string `env:"PARAMCHECK_DATE_FORMAT" envDefault:"yyyy-MM-dd"`
	DateTimeFormat string `env:"PARAMCHECK_DATETIME_FORMAT" envDefault:"yyyy-MM-dd HH:mm:ss"`
}

// DefaultConfig returns the built-in date patterns.
func DefaultConfig() Config {
	return Config{
		DateFormat:     check.DefaultDateFormat,
		DateTimeFormat: check.DefaultDateTimeFormat,
	}
}

// Validate rejects date patterns the date checks cannot use.
func (c Config) Validate() error {
	if err := check.ValidatePattern(c.DateFormat); err != nil {
		return fmt.Errorf("date format: %w", err)
	}
	if err := check.ValidatePattern(c.DateTimeFormat); err != nil {
		return fmt.Errorf("date-time format: %w", err)
	}
	return nil
}

// LoadConfig reads Config from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("load validate config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load validate config: %w", err)
	}
	return cfg, nil
}
