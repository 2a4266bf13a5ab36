// Package check is the registry of named parameter checks.
//
// Every check is identified by a Kind. A Kind carries a stable name, a
// default failure message and a predicate over a value and an optional
// expression string:
//
//	check.GT.Check(5, "3")                   // true
//	check.In.Check(5, "1,10")                // true
//	check.Date.Check("2024-02-30", "")       // false
//	check.Pattern.Check("ab12", `[a-z]+\d+`) // true
//
// Predicates never return errors and never panic. Malformed input simply fails
// the check; that includes an unparsable expression, a value of the wrong type,
// and an unknown Kind.
//
// # Values
//
// Non-nil pointers are followed to the value they hold, except pointers to
// math/big numbers. A nil pointer, map, slice, channel, func or interface is
// treated as an absent value. Numbers are compared in their own family:
// expression operands are parsed with the value's integer or float bit size,
// and decimal.Decimal, json.Number and math/big values compare exactly.
// Strings are measured in characters, not bytes.
//
// # Expressions
//
// An empty expression means "not supplied". Range checks take "<low>,<high>"
// with no whitespace, Enum takes a comma separated list, Pattern takes an RE2
// expression that must match the whole value, and date checks take a pattern
// such as "yyyy-MM-dd HH:mm:ss". Date patterns fall back to the formats in
// Env when the expression is empty.
//
// # Time
//
// Past, Future and Today read the reference time from Env.Now. Check uses the
// wall clock; CheckWith lets tests and callers pin it.
//
// Compiled patterns and translated date layouts are memoized in bounded LRU
// caches, so repeated checks with the same expression do not recompile.
package check
