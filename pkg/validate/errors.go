package validate

import (
	"errors"
	"slices"
	"strings"

	"github.com/dmitrymomot/paramcheck/pkg/check"
)

var (
	// ErrInvalidParams is matched by the error returned when checks fail.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrInvalidChainState is returned when a chain is queried before any
	// check was registered.
	ErrInvalidChainState = errors.New("invalid chain state")
)

// Failure describes one check that resolved to false.
type Failure struct {
	Kind       check.Kind
	Value      any
	Expression string
	Message    string
}

// String renders the failure as "<message>:<value> <expression>".
func (f Failure) String() string {
	return f.Message + ":" + check.FormatValue(f.Value) + " " + f.Expression
}

// ParamsError carries every failed check of a chain.
type ParamsError struct {
	Summary  string
	Failures []Failure
}

func (e *ParamsError) Error() string {
	if e.Summary == "" {
		return ErrInvalidParams.Error()
	}
	return ErrInvalidParams.Error() + ": " + e.Summary
}

func (e *ParamsError) Is(target error) bool {
	return target == ErrInvalidParams
}

// Has reports whether a check of the given kind failed.
func (e *ParamsError) Has(kind check.Kind) bool {
	return slices.ContainsFunc(e.Failures, func(f Failure) bool {
		return f.Kind == kind
	})
}

// Messages returns the failure messages in registration order.
func (e *ParamsError) Messages() []string {
	out := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		out = append(out, f.Message)
	}
	return out
}

// Kinds returns the distinct failed kinds in order of first failure.
func (e *ParamsError) Kinds() []check.Kind {
	var kinds []check.Kind
	for _, f := range e.Failures {
		if !slices.Contains(kinds, f.Kind) {
			kinds = append(kinds, f.Kind)
		}
	}
	return kinds
}

func summarize(failures []Failure) string {
	parts := make([]string, 0, len(failures))
	for _, f := range failures {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, ",")
}

// ExtractParamsError extracts a ParamsError from an error chain.
func ExtractParamsError(err error) *ParamsError {
	if err == nil {
		return nil
	}

	var paramsErr *ParamsError
	if errors.As(err, &paramsErr) {
		return paramsErr
	}

	return nil
}

func IsParamsError(err error) bool {
	return ExtractParamsError(err) != nil
}
