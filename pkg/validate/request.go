package validate

import (
	"github.com/dmitrymomot/paramcheck/pkg/check"
)

// Request is one registered check.
type Request struct {
	Kind       check.Kind
	Value      any
	Expression string
	Message    string

	outcome *bool
}

// Outcome returns the check result. resolved is false until the owning chain
// has executed the request.
func (r Request) Outcome() (passed, resolved bool) {
	if r.outcome == nil {
		return false, false
	}
	return *r.outcome, true
}

func (r Request) failed() bool {
	return r.outcome != nil && !*r.outcome
}

func (r Request) failure() Failure {
	return Failure{
		Kind:       r.Kind,
		Value:      r.Value,
		Expression: r.Expression,
		Message:    r.Message,
	}
}

// RuleOption configures a request at registration.
type RuleOption func(*Request)

// Expr sets the check expression: a range, a pattern, a list or an operand.
func Expr(expression string) RuleOption {
	return func(r *Request) {
		r.Expression = expression
	}
}

// Msg overrides the kind's default failure message. An empty message keeps
// the default.
func Msg(message string) RuleOption {
	return func(r *Request) {
		r.Message = message
	}
}
