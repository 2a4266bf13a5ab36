package check

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrymomot/paramcheck/pkg/cache"
)

// layout is a date pattern translated to a Go reference-time layout.
type layout struct {
	value   string
	hasTime bool
	err     error
}

var layouts = cache.New[string, layout](128)

// layoutFor translates a date pattern such as "yyyy-MM-dd HH:mm:ss" into a Go
// layout, memoizing the result.
func layoutFor(pattern string) layout {
	return layouts.GetOrLoad(pattern, translatePattern)
}

// ValidatePattern reports whether a date pattern can be used by the date
// checks. The error wraps ErrUnsupportedPattern.
func ValidatePattern(pattern string) error {
	return layoutFor(pattern).err
}

// Literal text that Go would read as part of a layout.
var reservedLiterals = []string{"Jan", "Mon", "MST", "PM", "pm", "_"}

func translatePattern(pattern string) layout {
	var (
		b       strings.Builder
		hasTime bool
		rs      = []rune(pattern)
	)

	for i := 0; i < len(rs); {
		c := rs[i]
		switch {
		case c == '\'':
			if i+1 < len(rs) && rs[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			lit, next, ok := quoted(rs, i+1)
			if !ok {
				return layout{err: fmt.Errorf("%w: unterminated quote in %q", ErrUnsupportedPattern, pattern)}
			}
			if !safeLiteral(lit) {
				return layout{err: fmt.Errorf("%w: literal %q in %q", ErrUnsupportedPattern, lit, pattern)}
			}
			b.WriteString(lit)
			i = next

		case c < unicode.MaxASCII && unicode.IsLetter(c):
			j := i
			for j < len(rs) && rs[j] == c {
				j++
			}
			tok, isTime, ok := fieldLayout(c, j-i)
			if !ok {
				return layout{err: fmt.Errorf("%w: field %q in %q", ErrUnsupportedPattern, string(rs[i:j]), pattern)}
			}
			// Go reads fractional seconds only right after a '.' or ','.
			if c == 'S' && !strings.HasSuffix(b.String(), ".") && !strings.HasSuffix(b.String(), ",") {
				return layout{err: fmt.Errorf("%w: fraction without separator in %q", ErrUnsupportedPattern, pattern)}
			}
			b.WriteString(tok)
			hasTime = hasTime || isTime
			i = j

		default:
			if !safeLiteral(string(c)) {
				return layout{err: fmt.Errorf("%w: literal %q in %q", ErrUnsupportedPattern, string(c), pattern)}
			}
			b.WriteRune(c)
			i++
		}
	}

	if b.Len() == 0 {
		return layout{err: fmt.Errorf("%w: empty pattern", ErrUnsupportedPattern)}
	}
	return layout{value: b.String(), hasTime: hasTime}
}

// quoted reads a quoted literal starting after the opening quote.
// A doubled quote inside stands for one quote.
func quoted(rs []rune, start int) (string, int, bool) {
	var lit strings.Builder
	for j := start; j < len(rs); j++ {
		if rs[j] != '\'' {
			lit.WriteRune(rs[j])
			continue
		}
		if j+1 < len(rs) && rs[j+1] == '\'' {
			lit.WriteRune('\'')
			j++
			continue
		}
		return lit.String(), j + 1, true
	}
	return "", 0, false
}

func safeLiteral(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return false
		}
	}
	for _, reserved := range reservedLiterals {
		if strings.Contains(s, reserved) {
			return false
		}
	}
	return true
}

// fieldLayout maps a run of n pattern letters c to its Go layout element.
// isTime is set for hour fields.
func fieldLayout(c rune, n int) (tok string, isTime bool, ok bool) {
	switch c {
	case 'y', 'u':
		if n == 2 {
			return "06", false, true
		}
		return "2006", false, true
	case 'M', 'L':
		switch n {
		case 1:
			return "1", false, true
		case 2:
			return "01", false, true
		case 3:
			return "Jan", false, true
		default:
			return "January", false, true
		}
	case 'd':
		switch n {
		case 1:
			return "2", false, true
		case 2:
			return "02", false, true
		}
	case 'D':
		if n == 3 {
			return "002", false, true
		}
	case 'E':
		if n <= 3 {
			return "Mon", false, true
		}
		return "Monday", false, true
	case 'a':
		if n == 1 {
			return "PM", false, true
		}
	case 'H':
		if n <= 2 {
			return "15", true, true
		}
	case 'h':
		switch n {
		case 1:
			return "3", true, true
		case 2:
			return "03", true, true
		}
	case 'm':
		switch n {
		case 1:
			return "4", false, true
		case 2:
			return "04", false, true
		}
	case 's':
		switch n {
		case 1:
			return "5", false, true
		case 2:
			return "05", false, true
		}
	case 'S':
		if n <= 9 {
			return strings.Repeat("0", n), false, true
		}
	case 'z':
		if n <= 3 {
			return "MST", false, true
		}
	case 'Z':
		if n <= 3 {
			return "-0700", false, true
		}
		if n == 5 {
			return "-07:00", false, true
		}
	case 'X':
		switch n {
		case 1:
			return "Z07", false, true
		case 2:
			return "Z0700", false, true
		case 3:
			return "Z07:00", false, true
		}
	case 'x':
		switch n {
		case 1:
			return "-07", false, true
		case 2:
			return "-0700", false, true
		case 3:
			return "-07:00", false, true
		}
	}
	return "", false, false
}
