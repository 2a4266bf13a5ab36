package check

import (
	"regexp"

	"github.com/dmitrymomot/paramcheck/pkg/cache"
)

// Compiled user patterns. Invalid ones are remembered as nil.
var patterns = cache.New[string, *regexp.Regexp](256)

// compilePattern anchors a well-formed expression on both ends. The
// expression is compiled on its own first so that unbalanced groups cannot
// escape the anchoring wrapper.
func compilePattern(expression string) *regexp.Regexp {
	if _, err := regexp.Compile(expression); err != nil {
		return nil
	}
	re, err := regexp.Compile(`^(?:` + expression + `)$`)
	if err != nil {
		return nil
	}
	return re
}

// matchesPattern requires the whole string value to match the expression.
// Only RE2 syntax is understood; backreferences and lookaround fail to
// compile and therefore fail the check.
func matchesPattern(_ Env, value any, expression string) bool {
	s, ok := asString(value)
	if !ok {
		return false
	}
	re := patterns.GetOrLoad(expression, compilePattern)
	return re != nil && re.MatchString(s)
}

// matchesFormat applies a fixed format to the string form of any present value.
func matchesFormat(re *regexp.Regexp, value any) bool {
	if isAbsent(value) {
		return false
	}
	return re.MatchString(stringify(value))
}
