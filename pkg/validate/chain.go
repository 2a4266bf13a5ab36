package validate

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/paramcheck/pkg/check"
	"github.com/dmitrymomot/paramcheck/pkg/logger"
)

// Chain collects checks, runs them in one pass and answers queries about the
// outcome. A chain is not safe for concurrent use.
type Chain struct {
	requests []Request
	env      check.Env
	log      *slog.Logger
	life     lifecycle
}

// New creates an empty chain.
func New(opts ...Option) *Chain {
	c := &Chain{
		env:  check.DefaultEnv(),
		log:  logger.Nop(),
		life: newLifecycle(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add registers a check without running it. The message defaults to the
// kind's message when none (or an empty one) is given.
func (c *Chain) Add(kind check.Kind, value any, opts ...RuleOption) *Chain {
	r := Request{Kind: kind, Value: value}
	for _, opt := range opts {
		opt(&r)
	}
	if r.Message == "" {
		r.Message = kind.Message()
	}

	c.requests = append(c.requests, r)
	c.life.fire(eventRegister)
	return c
}

// AddExpr is shorthand for Add(kind, value, Expr(expression)).
func (c *Chain) AddExpr(kind check.Kind, value any, expression string) *Chain {
	return c.Add(kind, value, Expr(expression))
}

// Execute runs every request that has no outcome yet. Resolved requests keep
// their outcome, so calling Execute again only picks up new registrations.
func (c *Chain) Execute() *Chain {
	debug := c.log.Enabled(context.Background(), slog.LevelDebug)

	executed, failed := 0, 0
	for i := range c.requests {
		r := &c.requests[i]
		if r.outcome != nil {
			continue
		}

		passed := r.Kind.CheckWith(c.env, r.Value, r.Expression)
		r.outcome = &passed
		executed++

		if !passed {
			failed++
			if debug {
				c.log.Debug("check failed",
					logger.Check(r.Kind.String()),
					logger.Value(check.FormatValue(r.Value)),
					logger.Expression(r.Expression),
				)
			}
		}
	}
	c.life.fire(eventExecute)

	if debug {
		c.log.Debug("checks executed",
			logger.Total(len(c.requests)),
			logger.Executed(executed),
			logger.Failed(failed),
		)
	}
	return c
}

// IsPassed reports whether no executed check failed. Requests that have not
// been executed are ignored. It returns ErrInvalidChainState when nothing has
// been registered.
func (c *Chain) IsPassed() (bool, error) {
	if c.life.current == StateEmpty {
		return false, ErrInvalidChainState
	}
	return c.FailureCount() == 0, nil
}

// FailureCount is the number of executed checks that failed.
func (c *Chain) FailureCount() int {
	n := 0
	for _, r := range c.requests {
		if r.failed() {
			n++
		}
	}
	return n
}

// SuccessCount is the number of executed checks that passed.
func (c *Chain) SuccessCount() int {
	n := 0
	for _, r := range c.requests {
		if passed, resolved := r.Outcome(); resolved && passed {
			n++
		}
	}
	return n
}

// FailureMessages joins "<message>:<value> <expression>" for every failed
// check in registration order, separated by commas. ok is false when no
// check failed.
func (c *Chain) FailureMessages() (messages string, ok bool) {
	failures := c.Failures()
	if len(failures) == 0 {
		return "", false
	}
	return summarize(failures), true
}

// Failures returns the failed checks in registration order.
func (c *Chain) Failures() []Failure {
	var out []Failure
	for _, r := range c.requests {
		if r.failed() {
			out = append(out, r.failure())
		}
	}
	return out
}

// Err returns nil when the chain passed and a *ParamsError describing every
// failure otherwise. Usage errors such as ErrInvalidChainState are returned
// as is.
func (c *Chain) Err() error {
	return c.ErrWith(nil)
}

// ErrWith works like Err but returns custom instead of a *ParamsError when a
// check failed. A nil custom error falls back to Err.
func (c *Chain) ErrWith(custom error) error {
	passed, err := c.IsPassed()
	if err != nil {
		return err
	}
	if passed {
		return nil
	}
	if custom != nil {
		return custom
	}

	failures := c.Failures()
	return &ParamsError{
		Summary:  summarize(failures),
		Failures: failures,
	}
}

// Clear drops every request and returns the chain to its empty state.
func (c *Chain) Clear() *Chain {
	c.requests = nil
	c.life.fire(eventClear)
	return c
}

// Len is the number of registered requests.
func (c *Chain) Len() int {
	return len(c.requests)
}

// State reports where the chain is in its lifecycle.
func (c *Chain) State() State {
	return c.life.current
}

// Requests returns a copy of the registered requests.
func (c *Chain) Requests() []Request {
	return slices.Clone(c.requests)
}
