package check

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
)

// Kind identifies one check in the closed set of validators.
// The zero value is not a valid kind.
type Kind int

const (
	Null Kind = iota + 1
	NotNull
	Empty
	NotEmpty

	True
	False

	Date
	DateTime
	TimeMillis
	Past
	Future
	Today

	Number
	Chinese
	General
	GeneralWithChinese

	In
	NotIn
	Length
	Enum

	GT
	LT
	GTE
	LTE
	NEQ
	EQ

	Pattern
	Currency
	CreditCode
	CitizenID
	Email
	Mobile
	URL
	ISBN
	BankCard
	PostCode
	PlateNumber
	UUID
	IPv4
	IPv6
	MAC

	lastKind
)

type predicate func(env Env, value any, expression string) bool

type definition struct {
	name    string
	message string
	fn      predicate
}

// registry is indexed by Kind and never modified after package init.
var registry = [lastKind]definition{
	Null:     {"Null", "must be null", isNull},
	NotNull:  {"NotNull", "must not be null", isNotNull},
	Empty:    {"Empty", "must be empty", isEmpty},
	NotEmpty: {"NotEmpty", "must not be empty", isNotEmpty},

	True:  {"True", "must be true", isTrue},
	False: {"False", "must be false", isFalse},

	Date:       {"Date", "must be a date (yyyy-MM-dd)", isDate},
	DateTime:   {"DateTime", "must be a date-time (yyyy-MM-dd HH:mm:ss)", isDateTime},
	TimeMillis: {"TimeMillis", "must be a timestamp in milliseconds", isTimeMillis},
	Past:       {"Past", "must be a date in the past", isPast},
	Future:     {"Future", "must be a date in the future", isFuture},
	Today:      {"Today", "must be today's date", isToday},

	Number:             {"Number", "must be a number", isNumber},
	Chinese:            {"Chinese", "must contain only Chinese characters", isChinese},
	General:            {"General", "must contain only letters, digits and underscores", isGeneral},
	GeneralWithChinese: {"GeneralWithChinese", "must contain only Chinese characters, letters, digits and underscores", isGeneralWithChinese},

	In:     {"In", "must be within the allowed range", inRange},
	NotIn:  {"NotIn", "must be outside the specified range", outRange},
	Length: {"Length", "length must be within the allowed range", inLength},
	Enum:   {"Enum", "must be one of the allowed values", inEnum},

	GT:  {"GT", "must be greater than the specified value", isGreaterThan},
	LT:  {"LT", "must be less than the specified value", isLessThan},
	GTE: {"GTE", "must be greater than or equal to the specified value", isGreaterThanOrEqual},
	LTE: {"LTE", "must be less than or equal to the specified value", isLessThanOrEqual},
	NEQ: {"NEQ", "must not equal the specified value", isNotEqual},
	EQ:  {"EQ", "must equal the specified value", isEqual},

	Pattern:     {"Pattern", "must match the specified pattern", matchesPattern},
	Currency:    {"Currency", "must be a currency amount", isCurrency},
	CreditCode:  {"CreditCode", "must be a unified social credit code", isCreditCode},
	CitizenID:   {"CitizenID", "must be a citizen ID number", isCitizenID},
	Email:       {"Email", "must be a valid email address", isEmail},
	Mobile:      {"Mobile", "must be a mobile phone number", isMobile},
	URL:         {"URL", "must be a complete URL", isURL},
	ISBN:        {"ISBN", "must be an ISBN", isISBN},
	BankCard:    {"BankCard", "must be a bank card number", isBankCard},
	PostCode:    {"PostCode", "must be a postal code", isPostCode},
	PlateNumber: {"PlateNumber", "must be a license plate number", isPlateNumber},
	UUID:        {"UUID", "must be a UUID", isUUID},
	IPv4:        {"IPv4", "must be an IPv4 address", isIPv4},
	IPv6:        {"IPv6", "must be an IPv6 address", isIPv6},
	MAC:         {"MAC", "must be a MAC address", isMAC},
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(registry))
	for k := Null; k < lastKind; k++ {
		m[foldName(registry[k].name)] = k
	}
	return m
}()

// foldName builds a fresh Caser per call; a Caser must not be shared between goroutines.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, lastKind-1)
	for k := Null; k < lastKind; k++ {
		out = append(out, k)
	}
	return out
}

// Parse resolves a kind by name, ignoring case.
func Parse(name string) (Kind, error) {
	if k, ok := byName[foldName(name)]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= Null && k < lastKind
}

func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return registry[k].name
}

// Message is the default failure message for the kind.
func (k Kind) Message() string {
	if !k.Valid() {
		return "unknown check"
	}
	return registry[k].message
}

// Check evaluates the kind against value using the wall clock and the
// default date patterns. An empty expression means "not supplied".
func (k Kind) Check(value any, expression string) bool {
	return k.CheckWith(DefaultEnv(), value, expression)
}

// CheckWith evaluates the kind with an explicit environment.
// Invalid kinds always fail, and a panic inside a predicate counts as a failure.
func (k Kind) CheckWith(env Env, value any, expression string) (passed bool) {
	if !k.Valid() {
		return false
	}
	defer func() {
		if recover() != nil {
			passed = false
		}
	}()
	return registry[k].fn(env.withDefaults(), indirect(value), expression)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(registry[k].name), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
