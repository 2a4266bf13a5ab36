package check

import (
	"time"
)

func patternOr(expression, fallback string) string {
	if expression == "" {
		return fallback
	}
	return expression
}

// parseTime parses s with a date pattern in loc. requireTime rejects patterns
// without an hour field.
func parseTime(s, pattern string, loc *time.Location, requireTime bool) (time.Time, bool) {
	l := layoutFor(pattern)
	if l.err != nil || (requireTime && !l.hasTime) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(l.value, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// moment resolves a native time or a string parsed with the expression
// (falling back to the date-time pattern) into an instant. The zero time is
// treated as "no date".
func moment(env Env, value any, expression string, loc *time.Location) (time.Time, bool) {
	if t, ok := value.(time.Time); ok {
		return t, !t.IsZero()
	}
	s, ok := asString(value)
	if !ok {
		return time.Time{}, false
	}
	return parseTime(s, patternOr(expression, env.DateTimeFormat), loc, false)
}

func isDate(env Env, value any, expression string) bool {
	if t, ok := value.(time.Time); ok {
		return !t.IsZero()
	}
	s, ok := asString(value)
	if !ok {
		return false
	}
	_, ok = parseTime(s, patternOr(expression, env.DateFormat), time.UTC, false)
	return ok
}

func isDateTime(env Env, value any, expression string) bool {
	if t, ok := value.(time.Time); ok {
		return !t.IsZero()
	}
	s, ok := asString(value)
	if !ok {
		return false
	}
	_, ok = parseTime(s, patternOr(expression, env.DateTimeFormat), time.UTC, true)
	return ok
}

func isPast(env Env, value any, expression string) bool {
	now := env.Now()
	t, ok := moment(env, value, expression, now.Location())
	return ok && now.After(t)
}

func isFuture(env Env, value any, expression string) bool {
	now := env.Now()
	t, ok := moment(env, value, expression, now.Location())
	return ok && now.Before(t)
}

// isToday compares calendar dates in the location of the reference clock.
func isToday(env Env, value any, expression string) bool {
	now := env.Now()
	t, ok := moment(env, value, expression, now.Location())
	if !ok {
		return false
	}
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
