package validate

import (
	"log/slog"
	"time"
)

// Option configures a chain during construction.
type Option func(*Chain)

// WithLogger sets the logger used for execution records. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Chain) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock sets the reference clock for Past, Future and Today.
// Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(c *Chain) {
		if now != nil {
			c.env.Now = now
		}
	}
}

// WithDateFormat sets the pattern Date falls back to when a request has no
// expression. Empty patterns are ignored.
func WithDateFormat(pattern string) Option {
	return func(c *Chain) {
		if pattern != "" {
			c.env.DateFormat = pattern
		}
	}
}

// WithDateTimeFormat sets the pattern DateTime, Past, Future and Today fall
// back to when a request has no expression. Empty patterns are ignored.
func WithDateTimeFormat(pattern string) Option {
	return func(c *Chain) {
		if pattern != "" {
			c.env.DateTimeFormat = pattern
		}
	}
}

// WithConfig applies the date patterns of a loaded Config.
func WithConfig(cfg Config) Option {
	return func(c *Chain) {
		WithDateFormat(cfg.DateFormat)(c)
		WithDateTimeFormat(cfg.DateTimeFormat)(c)
	}
}
