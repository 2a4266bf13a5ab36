package check

import "errors"

var (
	// ErrUnknownKind is returned when a name does not match any check kind.
	ErrUnknownKind = errors.New("unknown check kind")

	// ErrUnsupportedPattern is returned when a date pattern contains a field
	// or literal that cannot be expressed as a Go time layout.
	ErrUnsupportedPattern = errors.New("unsupported date pattern")
)
