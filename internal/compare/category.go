package compare

import (
	"fmt"
	"reflect"
)

// Category is the closed classification assigned to every compared value.
type Category int

const (
	CategoryAbsent Category = iota
	CategoryValue
	CategoryCallable
	CategoryPattern
	CategorySequence
	CategoryMapping
)

func (c Category) String() string {
	switch c {
	case CategoryAbsent:
		return "absent"
	case CategoryValue:
		return "value"
	case CategoryCallable:
		return "callable"
	case CategoryPattern:
		return "pattern"
	case CategorySequence:
		return "sequence"
	case CategoryMapping:
		return "mapping"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

type absentType struct{}

func (absentType) String() string { return "ABSENT" }

// Absent marks a value that does not exist at all. It is never equal to a present nil.
var Absent any = absentType{}

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absentType)
	return ok
}

// Pattern is a compiled text pattern. *regexp.Regexp satisfies it.
type Pattern interface {
	MatchString(s string) bool
	String() string
}

// Predicate is a named single-argument check. Fn may return an error or panic;
// both are reported as a failed comparison.
type Predicate struct {
	Name string
	Fn   func(v any) (bool, error)
}

// Pred wraps a boolean function as a Predicate.
func Pred(name string, fn func(v any) bool) *Predicate {
	return &Predicate{
		Name: name,
		Fn: func(v any) (bool, error) {
			return fn(v), nil
		},
	}
}

func (p *Predicate) String() string {
	if p == nil || p.Name == "" {
		return "<predicate>"
	}
	return p.Name
}

// Classify returns the category of v. Pattern is checked before Callable so a
// pattern type that also happens to be invocable is still treated as a pattern.
func Classify(v any) Category {
	if IsAbsent(v) {
		return CategoryAbsent
	}
	switch v.(type) {
	case nil, bool, string, []byte,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return CategoryValue
	case Pattern:
		return CategoryPattern
	case *Predicate, func(any) bool, func(any) (bool, error):
		return CategoryCallable
	case *Map:
		return CategoryMapping
	case []any:
		return CategorySequence
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Map:
		return CategoryMapping
	case reflect.Slice, reflect.Array:
		return CategorySequence
	case reflect.Func:
		if isUnaryPredicate(reflect.TypeOf(v)) {
			return CategoryCallable
		}
		return CategoryValue
	default:
		return CategoryValue
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// isUnaryPredicate reports whether t is func(T) R or func(T) (R, error).
func isUnaryPredicate(t reflect.Type) bool {
	if t.NumIn() != 1 || t.IsVariadic() {
		return false
	}
	switch t.NumOut() {
	case 1:
		return true
	case 2:
		return t.Out(1) == errorType
	}
	return false
}
