package check

import (
	"cmp"
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"
)

type numClass int

const (
	signedInt numClass = iota + 1
	unsignedInt
	floating
	arbitrary
)

// number is a numeric value tagged with the family it was read from.
// Operands parsed for comparison always use the same family and bit size,
// so an int32 value only accepts operands that fit in an int32.
type number struct {
	class numClass
	bits  int
	i     int64
	u     uint64
	f     float64
	r     *big.Rat
}

func asNumber(v any) (number, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return number{class: arbitrary, r: x.Rat()}, true
	case json.Number:
		d, err := decimal.NewFromString(string(x))
		if err != nil {
			return number{}, false
		}
		return number{class: arbitrary, r: d.Rat()}, true
	case *big.Int:
		return number{class: arbitrary, r: new(big.Rat).SetInt(x)}, true
	case big.Int:
		return number{class: arbitrary, r: new(big.Rat).SetInt(&x)}, true
	case *big.Rat:
		return number{class: arbitrary, r: new(big.Rat).Set(x)}, true
	case big.Rat:
		return number{class: arbitrary, r: new(big.Rat).Set(&x)}, true
	case *big.Float:
		return ratFromFloat(x)
	case big.Float:
		return ratFromFloat(&x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{class: signedInt, bits: rv.Type().Bits(), i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return number{class: unsignedInt, bits: rv.Type().Bits(), u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{class: floating, bits: rv.Type().Bits(), f: rv.Float()}, true
	}
	return number{}, false
}

func ratFromFloat(f *big.Float) (number, bool) {
	if f.IsInf() {
		return number{}, false
	}
	r, _ := f.Rat(nil)
	return number{class: arbitrary, r: r}, true
}

// parseOperand reads s in the same numeric family as like. A negative
// operand for an unsigned value is read as a signed integer.
func parseOperand(like number, s string) (number, bool) {
	out := number{class: like.class, bits: like.bits}
	switch like.class {
	case signedInt:
		n, err := strconv.ParseInt(s, 10, like.bits)
		if err != nil {
			return number{}, false
		}
		out.i = n
	case unsignedInt:
		n, err := strconv.ParseUint(s, 10, like.bits)
		if err != nil {
			if i, ierr := strconv.ParseInt(s, 10, 64); ierr == nil && i < 0 {
				return number{class: signedInt, bits: 64, i: i}, true
			}
			return number{}, false
		}
		out.u = n
	case floating:
		f, err := strconv.ParseFloat(s, like.bits)
		if err != nil {
			return number{}, false
		}
		out.f = f
	case arbitrary:
		d, err := decimal.NewFromString(s)
		if err != nil {
			return number{}, false
		}
		out.r = d.Rat()
	default:
		return number{}, false
	}
	return out, true
}

// compareNumbers orders two numbers. Numbers of different families are
// compared exactly as rationals. NaN is unordered: ok is false.
func compareNumbers(a, b number) (c int, ok bool) {
	if a.class != b.class {
		ra, okA := a.rat()
		rb, okB := b.rat()
		if !okA || !okB {
			return 0, false
		}
		return ra.Cmp(rb), true
	}
	switch a.class {
	case signedInt:
		return cmp.Compare(a.i, b.i), true
	case unsignedInt:
		return cmp.Compare(a.u, b.u), true
	case floating:
		if math.IsNaN(a.f) || math.IsNaN(b.f) {
			return 0, false
		}
		return cmp.Compare(a.f, b.f), true
	case arbitrary:
		return a.r.Cmp(b.r), true
	}
	return 0, false
}

func (n number) rat() (*big.Rat, bool) {
	switch n.class {
	case signedInt:
		return new(big.Rat).SetInt64(n.i), true
	case unsignedInt:
		return new(big.Rat).SetUint64(n.u), true
	case floating:
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			return nil, false
		}
		return new(big.Rat).SetFloat64(n.f), true
	case arbitrary:
		return n.r, true
	}
	return nil, false
}

// equalNumbers follows boxed floating point equality: NaN equals NaN and
// positive zero differs from negative zero. Decimals compare by value, so
// 2.0 equals 2.
func equalNumbers(a, b number) bool {
	if a.class == floating && b.class == floating {
		if math.IsNaN(a.f) || math.IsNaN(b.f) {
			return math.IsNaN(a.f) && math.IsNaN(b.f)
		}
		return a.f == b.f && math.Signbit(a.f) == math.Signbit(b.f)
	}
	c, ok := compareNumbers(a, b)
	return ok && c == 0
}
