package check

import (
	"regexp"
)

var (
	// Optional sign and currency symbol, thousands either fully grouped or
	// not at all, at most two decimal places.
	currencyRegex = regexp.MustCompile(`^[+-]?[¥$€£]?(?:0|[1-9]\d{0,2}(?:,\d{3})+|[1-9]\d*)(?:\.\d{1,2})?$`)

	// Unified social credit code: registration authority and entity type,
	// six digit region code, nine character organization code and a check
	// character. I, O, S, V and Z are never used.
	creditCodeRegex = regexp.MustCompile(`^[0-9A-HJ-NPQRTUWXY]{2}\d{6}[0-9A-HJ-NPQRTUWXY]{10}$`)
)

func isCurrency(_ Env, value any, _ string) bool {
	return matchesFormat(currencyRegex, value)
}

func isCreditCode(_ Env, value any, _ string) bool {
	return matchesFormat(creditCodeRegex, value)
}

// isBankCard accepts 16 or 19 digit card numbers with a valid Luhn checksum.
func isBankCard(_ Env, value any, _ string) bool {
	if isAbsent(value) {
		return false
	}
	s := stringify(value)
	if len(s) != 16 && len(s) != 19 {
		return false
	}
	return luhn(s)
}

// luhn reports whether s is all ASCII digits with a valid Luhn checksum.
func luhn(s string) bool {
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
