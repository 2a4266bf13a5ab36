// Package paramcheck is a declarative parameter validation toolkit.
//
// Checks are named by a closed set of kinds in package check. Package
// validate collects checks into a chain, executes them in one pass and
// reports every failure at once:
//
//	err := validate.New().
//		Add(check.NotEmpty, req.Name).
//		Add(check.Email, req.Email).
//		AddExpr(check.Length, req.Nickname, "3,20").
//		AddExpr(check.GTE, req.Age, "18").
//		Execute().
//		Err()
//	if errors.Is(err, validate.ErrInvalidParams) {
//		// report validate.ExtractParamsError(err).Failures to the caller
//	}
//
// Supporting packages:
//
//   - pkg/cache: bounded LRU memo for compiled patterns and date layouts.
//   - pkg/config: environment and .env loading for chain defaults.
//   - pkg/logger: slog factory and attribute helpers used by chains.
//
// Predicates never fail with an error. Malformed values or expressions make
// the check fail, and only misuse of a chain (querying an empty one) is
// reported as an error of its own.
package paramcheck
