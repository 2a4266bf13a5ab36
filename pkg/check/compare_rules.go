package check

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// bounds splits a "<low>,<high>" expression. Items after the second are ignored.
func bounds(expression string) (lo, hi string, ok bool) {
	parts := strings.Split(expression, ",")
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// inRange checks a closed numeric interval given as "<low>,<high>" with no
// whitespace. Both bounds are parsed in the value's own numeric type.
func inRange(_ Env, value any, expression string) bool {
	if isAbsent(value) || expression == "" {
		return false
	}
	n, ok := asNumber(value)
	if !ok {
		return false
	}
	loS, hiS, ok := bounds(expression)
	if !ok {
		return false
	}
	lo, okLo := parseOperand(n, loS)
	hi, okHi := parseOperand(n, hiS)
	if !okLo || !okHi {
		return false
	}
	c1, ok1 := compareNumbers(lo, n)
	c2, ok2 := compareNumbers(n, hi)
	return ok1 && ok2 && c1 <= 0 && c2 <= 0
}

// outRange is the plain negation of inRange, so a malformed or missing
// range passes.
func outRange(env Env, value any, expression string) bool {
	return !inRange(env, value, expression)
}

// inLength checks a string's character count. The expression is either
// "<high>" (low is 0) or "<low>,<high>".
func inLength(_ Env, value any, expression string) bool {
	if isAbsent(value) || expression == "" {
		return false
	}
	s, ok := asString(value)
	if !ok {
		return false
	}

	lo, hi := 0, 0
	var err error
	if loS, hiS, ranged := bounds(expression); ranged {
		if lo, err = strconv.Atoi(loS); err != nil {
			return false
		}
		if hi, err = strconv.Atoi(hiS); err != nil {
			return false
		}
	} else if hi, err = strconv.Atoi(expression); err != nil {
		return false
	}

	n := utf8.RuneCountInString(s)
	return lo <= n && n <= hi
}

// inEnum tests the value's string form against a comma-separated list.
// Trailing empty items are dropped.
func inEnum(_ Env, value any, expression string) bool {
	if isAbsent(value) || expression == "" {
		return false
	}
	items := strings.Split(expression, ",")
	for len(items) > 0 && items[len(items)-1] == "" {
		items = items[:len(items)-1]
	}
	return slices.Contains(items, stringify(value))
}

// measure compares the value with the expression: numbers numerically in
// their own type, strings by character count and collections by size.
func measure(value any, expression string) (int, bool) {
	if isAbsent(value) {
		return 0, false
	}
	if n, ok := asNumber(value); ok {
		operand, ok := parseOperand(n, expression)
		if !ok {
			return 0, false
		}
		return compareNumbers(n, operand)
	}

	var size int
	if s, ok := asString(value); ok {
		size = utf8.RuneCountInString(s)
	} else if n, ok := collectionSize(value); ok {
		size = n
	} else {
		return 0, false
	}

	limit, err := strconv.Atoi(expression)
	if err != nil {
		return 0, false
	}
	return cmp.Compare(size, limit), true
}

func isGreaterThan(_ Env, value any, expression string) bool {
	c, ok := measure(value, expression)
	return ok && c > 0
}

func isGreaterThanOrEqual(_ Env, value any, expression string) bool {
	c, ok := measure(value, expression)
	return ok && c >= 0
}

func isLessThan(_ Env, value any, expression string) bool {
	c, ok := measure(value, expression)
	return ok && c < 0
}

func isLessThanOrEqual(_ Env, value any, expression string) bool {
	c, ok := measure(value, expression)
	return ok && c <= 0
}

// isEqual compares strings by content, numbers by value and collections by
// size.
func isEqual(_ Env, value any, expression string) bool {
	if isAbsent(value) {
		return false
	}
	if n, ok := asNumber(value); ok {
		operand, ok := parseOperand(n, expression)
		return ok && equalNumbers(n, operand)
	}
	if s, ok := asString(value); ok {
		return s == expression
	}
	if size, ok := collectionSize(value); ok {
		limit, err := strconv.Atoi(expression)
		return err == nil && size == limit
	}
	return false
}

func isNotEqual(env Env, value any, expression string) bool {
	return !isEqual(env, value, expression)
}
