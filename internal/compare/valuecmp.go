package compare

import (
	"fmt"
	"math"
	"reflect"
)

// ValueComparator decides whether two Value-category operands are equal.
type ValueComparator func(lhs, rhs any) bool

// Names accepted by LookupComparator.
const (
	ComparatorNative      = "native"
	ComparatorStrict      = "strict"
	ComparatorStringified = "stringified"
	ComparatorTolerance   = "tolerance"
)

// Tolerance modes for ToleranceEquality.
const (
	ToleranceRelative = "relative"
	ToleranceAbsolute = "absolute"
	ToleranceULP      = "ulp"
)

// NativeEquality compares numbers by value across integer and float kinds and
// everything else with == (or reflect.DeepEqual for non-comparable values).
// Booleans never equal numbers.
func NativeEquality(lhs, rhs any) bool {
	if ln, ok := toNumber(lhs); ok {
		if rn, ok := toNumber(rhs); ok {
			return ln.equal(rn)
		}
		return false
	}
	if lhs == nil || rhs == nil {
		return lhs == nil && rhs == nil
	}
	// Comparability is checked on the values: a comparable struct type can
	// still hold a slice behind an interface field.
	if reflect.ValueOf(lhs).Comparable() && reflect.ValueOf(rhs).Comparable() {
		return lhs == rhs
	}
	return reflect.DeepEqual(lhs, rhs)
}

// StrictTypeEquality requires identical dynamic types before applying NativeEquality.
func StrictTypeEquality(lhs, rhs any) bool {
	if reflect.TypeOf(lhs) != reflect.TypeOf(rhs) {
		return false
	}
	return NativeEquality(lhs, rhs)
}

// StringifiedEquality compares the Stringify forms of both operands.
func StringifiedEquality(lhs, rhs any) bool {
	return Stringify(lhs) == Stringify(rhs)
}

// ToleranceEquality returns a comparator that treats numbers as equal within
// tolerance and falls back to NativeEquality for everything else.
// For "ulp" mode the tolerance is truncated to a whole number of ULPs.
func ToleranceEquality(mode string, tolerance float64, nanEqualsNaN bool) ValueComparator {
	return func(lhs, rhs any) bool {
		ln, lok := toNumber(lhs)
		rn, rok := toNumber(rhs)
		if !lok || !rok {
			return NativeEquality(lhs, rhs)
		}
		if !ln.isFloat && !rn.isFloat {
			return ln.equal(rn)
		}
		return floatsEqual(ln.float(), rn.float(), mode, tolerance, nanEqualsNaN)
	}
}

// LookupComparator resolves a comparator by name. The tolerance arguments are
// only used by the "tolerance" comparator.
func LookupComparator(name, mode string, tolerance float64, nanEqualsNaN bool) (ValueComparator, error) {
	switch name {
	case "", ComparatorNative:
		return NativeEquality, nil
	case ComparatorStrict:
		return StrictTypeEquality, nil
	case ComparatorStringified:
		return StringifiedEquality, nil
	case ComparatorTolerance:
		switch mode {
		case "", ToleranceRelative, ToleranceAbsolute, ToleranceULP:
		default:
			return nil, fmt.Errorf("invalid tolerance mode: %q (must be %q, %q, or %q)", mode, ToleranceRelative, ToleranceAbsolute, ToleranceULP)
		}
		return ToleranceEquality(mode, tolerance, nanEqualsNaN), nil
	default:
		return nil, fmt.Errorf("unknown value comparator: %q", name)
	}
}

func floatsEqual(expected, actual float64, mode string, tolerance float64, nanEqualsNaN bool) bool {
	if math.IsNaN(expected) && math.IsNaN(actual) {
		return nanEqualsNaN
	}
	if math.IsInf(expected, 1) && math.IsInf(actual, 1) {
		return true
	}
	if math.IsInf(expected, -1) && math.IsInf(actual, -1) {
		return true
	}
	if math.IsNaN(expected) || math.IsNaN(actual) ||
		math.IsInf(expected, 0) || math.IsInf(actual, 0) {
		return false
	}

	switch mode {
	case ToleranceAbsolute:
		return math.Abs(expected-actual) <= tolerance
	case ToleranceULP:
		return ulpDiff(expected, actual) <= int64(tolerance)
	default:
		if expected == 0 {
			return math.Abs(actual) <= tolerance
		}
		return math.Abs((expected-actual)/expected) <= tolerance
	}
}

func ulpDiff(a, b float64) int64 {
	ai := int64(math.Float64bits(a))
	bi := int64(math.Float64bits(b))
	if ai < 0 {
		ai = math.MinInt64 - ai
	}
	if bi < 0 {
		bi = math.MinInt64 - bi
	}
	diff := ai - bi
	if diff < 0 {
		return -diff
	}
	return diff
}

// number is a normalized numeric operand.
type number struct {
	isFloat bool
	neg     bool // i holds a negative value
	i       int64
	u       uint64
	f       float64
}

func (n number) float() float64 {
	switch {
	case n.isFloat:
		return n.f
	case n.neg:
		return float64(n.i)
	default:
		return float64(n.u)
	}
}

func (n number) equal(o number) bool {
	if n.isFloat || o.isFloat {
		return n.float() == o.float()
	}
	if n.neg != o.neg {
		return false
	}
	if n.neg {
		return n.i == o.i
	}
	return n.u == o.u
}

func toNumber(v any) (number, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i < 0 {
			return number{neg: true, i: i}, true
		}
		return number{u: uint64(i)}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{isFloat: true, f: rv.Float()}, true
	}
	return number{}, false
}
