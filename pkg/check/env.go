package check

import "time"

// Default date patterns used when a check is registered without an expression.
const (
	DefaultDateFormat     = "yyyy-MM-dd"
	DefaultDateTimeFormat = "yyyy-MM-dd HH:mm:ss"
)

// Env carries the evaluation-time inputs that are not part of a check's
// value or expression.
type Env struct {
	// Now returns the reference moment for Past, Future and Today.
	Now func() time.Time
	// DateFormat is the pattern Date falls back to.
	DateFormat string
	// DateTimeFormat is the pattern DateTime, Past, Future and Today fall back to.
	DateTimeFormat string
}

// DefaultEnv reads the wall clock and uses the default date patterns.
func DefaultEnv() Env {
	return Env{
		Now:            time.Now,
		DateFormat:     DefaultDateFormat,
		DateTimeFormat: DefaultDateTimeFormat,
	}
}

func (e Env) withDefaults() Env {
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.DateFormat == "" {
		e.DateFormat = DefaultDateFormat
	}
	if e.DateTimeFormat == "" {
		e.DateTimeFormat = DefaultDateTimeFormat
	}
	return e
}
