package check

import (
	"net/netip"
	"net/url"
	"regexp"
	"strings"
)

var (
	// Local part per RFC 5322 atoms, dotted domain with at least two labels.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

	ipv4Regex = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\.){3}(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)$`)

	// Colon or hyphen separated, one separator style per address.
	macRegex = regexp.MustCompile(`^(?:[0-9A-Fa-f]{2}(?::[0-9A-Fa-f]{2}){5}|[0-9A-Fa-f]{2}(?:-[0-9A-Fa-f]{2}){5})$`)

	numberRegex             = regexp.MustCompile(`^[+-]?\d+(?:\.\d+)?$`)
	chineseRegex            = regexp.MustCompile(`^\p{Han}+$`)
	generalRegex            = regexp.MustCompile(`^\w+$`)
	generalWithChineseRegex = regexp.MustCompile(`^[\p{Han}\w]+$`)
)

// URL schemes with a registered protocol handler.
var urlSchemes = map[string]bool{
	"http": true, "https": true, "ftp": true, "file": true, "jar": true, "mailto": true,
}

// Schemes that are meaningless without an authority.
var hostSchemes = map[string]bool{
	"http": true, "https": true, "ftp": true,
}

// isEmail only accepts string values.
func isEmail(_ Env, value any, _ string) bool {
	s, ok := asString(value)
	return ok && emailRegex.MatchString(s)
}

// isURL checks structure only; the address is never resolved.
func isURL(_ Env, value any, _ string) bool {
	if isAbsent(value) {
		return false
	}
	u, err := url.Parse(stringify(value))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if !urlSchemes[scheme] {
		return false
	}
	if hostSchemes[scheme] && u.Host == "" {
		return false
	}
	return true
}

func isIPv4(_ Env, value any, _ string) bool {
	return matchesFormat(ipv4Regex, value)
}

// isIPv6 accepts any textual IPv6 form, including zones and embedded IPv4.
func isIPv6(_ Env, value any, _ string) bool {
	if isAbsent(value) {
		return false
	}
	addr, err := netip.ParseAddr(stringify(value))
	return err == nil && addr.Is6()
}

func isMAC(_ Env, value any, _ string) bool {
	return matchesFormat(macRegex, value)
}

// isNumber accepts any native number or a decimal numeral string.
func isNumber(_ Env, value any, _ string) bool {
	if isAbsent(value) {
		return false
	}
	if _, ok := asNumber(value); ok {
		return true
	}
	return numberRegex.MatchString(stringify(value))
}

// isTimeMillis accepts numbers whose decimal form has exactly 13 characters.
func isTimeMillis(env Env, value any, expression string) bool {
	return isNumber(env, value, expression) && len(stringify(value)) == 13
}

func isChinese(_ Env, value any, _ string) bool {
	return matchesFormat(chineseRegex, value)
}

func isGeneral(_ Env, value any, _ string) bool {
	return matchesFormat(generalRegex, value)
}

func isGeneralWithChinese(_ Env, value any, _ string) bool {
	return matchesFormat(generalWithChineseRegex, value)
}
