// Package logger provides a small factory around Go's slog package with
// functional options and helper attribute constructors for validation events.
//
// New returns a *slog.Logger backed by slog.NewJSONHandler or
// slog.NewTextHandler, depending on the configured Format. Nop returns a
// logger that drops everything; validation chains use it unless a logger is
// supplied.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithDebug(),
//	    logger.WithComponent("signup"),
//	)
//
//	log.Debug("check failed",
//	    logger.Check("Email"),
//	    logger.Value(input.Email),
//	)
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel / WithDebug set the minimum level.
//   - WithOutput sets the destination (stderr by default).
//   - WithAttr / WithComponent attach static attributes.
//
// Attribute helpers keep key names consistent: Check, Value, Expression,
// Executed, Failed, Total, Component, Error and Group. Error and
// Expression return an empty Attr for zero input, which slog omits.
package logger
