package check

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Pointers to arbitrary-precision numbers are values in their own right and
// are never dereferenced.
var bigPointers = map[reflect.Type]bool{
	reflect.TypeOf((*big.Int)(nil)):   true,
	reflect.TypeOf((*big.Float)(nil)): true,
	reflect.TypeOf((*big.Rat)(nil)):   true,
}

// indirect follows non-nil pointers down to the value they hold.
// A nil pointer anywhere on the way yields nil.
func indirect(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		if bigPointers[rv.Type()] {
			break
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

// isAbsent reports whether an indirected value counts as "no value".
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.Pointer:
		return rv.IsNil()
	}
	return false
}

// asString returns the value of string-kinded types, including named ones.
// json.Number is a number, not a string.
func asString(v any) (string, bool) {
	if _, ok := v.(json.Number); ok {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// collectionSize returns the element count of slices, arrays and maps.
func collectionSize(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

// FormatValue renders a value the way checks and failure messages see it:
// pointers are followed, absent values render as "null". Numbers use plain
// decimal notation and decimals keep their scale.
func FormatValue(v any) string {
	return stringify(indirect(v))
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case decimal.Decimal:
		if exp := x.Exponent(); exp < 0 {
			return x.StringFixed(-exp)
		}
		return x.String()
	case *big.Float:
		return x.Text('f', -1)
	case *big.Rat:
		return x.RatString()
	case big.Float:
		return x.Text('f', -1)
	case big.Rat:
		return x.RatString()
	case big.Int:
		return x.String()
	}
	if isAbsent(v) {
		return "null"
	}
	return fmt.Sprint(v)
}
