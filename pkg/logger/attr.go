package logger

import (
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Check records the check name under the key "check".
func Check(name string) slog.Attr {
	return slog.String("check", name)
}

// Value records the rendered value under the key "value".
func Value(v string) slog.Attr {
	return slog.String("value", v)
}

// Expression records the check expression under the key "expression".
// An empty expression yields an empty Attr.
func Expression(expr string) slog.Attr {
	if expr == "" {
		return slog.Attr{}
	}
	return slog.String("expression", expr)
}

// Executed records how many checks ran under the key "executed".
func Executed(n int) slog.Attr {
	return slog.Int("executed", n)
}

// Failed records how many checks failed under the key "failed".
func Failed(n int) slog.Attr {
	return slog.Int("failed", n)
}

// Total records the number of registered checks under the key "total".
func Total(n int) slog.Attr {
	return slog.Int("total", n)
}
