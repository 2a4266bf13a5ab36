// Package validate runs batches of named parameter checks and reports the
// result as a single error.
//
// A Chain is built, filled with checks, executed once and then queried:
//
//	err := validate.New().
//	    Add(check.NotEmpty, req.Name, validate.Msg("name is required")).
//	    Add(check.Email, req.Email).
//	    AddExpr(check.In, req.Age, "18,120").
//	    Execute().
//	    Err()
//	if perr := validate.ExtractParamsError(err); perr != nil {
//	    // perr.Failures lists every failed check in registration order
//	}
//
// Registration never runs a check. Execute evaluates every request that has
// no outcome yet and stores the result, so calling it twice is harmless and
// checks added after an Execute are picked up by the next one.
//
// # Lifecycle
//
// A chain moves between three states:
//
//	empty --Add--> pending --Execute--> resolved --Clear--> empty
//
// Adding to a resolved chain makes it pending again. Querying an empty chain
// with IsPassed, Err or ErrWith is a programming error and returns
// ErrInvalidChainState.
//
// # Unexecuted requests
//
// Queries only look at requests that have an outcome. A pending request is
// neither a success nor a failure: IsPassed on a chain that was never executed
// reports true, and both counts are zero.
//
// # Errors
//
// Err returns a *ParamsError that matches ErrInvalidParams with errors.Is.
// Its message contains the failure summary, formatted as
// "<message>:<value> <expression>" per failed check and joined with commas.
// ErrWith substitutes a caller-supplied error.
//
// # Configuration
//
// Date checks fall back to the patterns "yyyy-MM-dd" and
// "yyyy-MM-dd HH:mm:ss" when a request has no expression. LoadConfig reads
// replacements from PARAMCHECK_DATE_FORMAT and PARAMCHECK_DATETIME_FORMAT;
// WithConfig applies them. WithClock pins the reference time for Past,
// Future and Today, and WithLogger records failures at debug level.
package validate
