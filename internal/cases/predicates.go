package cases

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/AndreyAkinshin/dictmatch/internal/compare"
)

// predicateFactory builds a predicate from its "arg" operand.
type predicateFactory struct {
	needsArg bool
	build    func(arg any) (func(v any) (bool, error), error)
}

var builtins = map[string]predicateFactory{
	"eq": {needsArg: true, build: func(arg any) (func(any) (bool, error), error) {
		return func(v any) (bool, error) { return present(v) && same(arg, v), nil }, nil
	}},
	"ne": {needsArg: true, build: func(arg any) (func(any) (bool, error), error) {
		return func(v any) (bool, error) { return present(v) && !same(arg, v), nil }, nil
	}},
	"gt": ordering(func(c int) bool { return c > 0 }),
	"ge": ordering(func(c int) bool { return c >= 0 }),
	"lt": ordering(func(c int) bool { return c < 0 }),
	"le": ordering(func(c int) bool { return c <= 0 }),
	"in": {needsArg: true, build: func(arg any) (func(any) (bool, error), error) {
		options, ok := arg.([]any)
		if !ok {
			return nil, fmt.Errorf("arg must be a list, got %T", arg)
		}
		return func(v any) (bool, error) {
			for _, o := range options {
				if present(v) && same(o, v) {
					return true, nil
				}
			}
			return false, nil
		}, nil
	}},
	"contains": {needsArg: true, build: func(arg any) (func(any) (bool, error), error) {
		return func(v any) (bool, error) { return contains(v, arg) }, nil
	}},
	"type": {needsArg: true, build: func(arg any) (func(any) (bool, error), error) {
		name, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("arg must be a type name, got %T", arg)
		}
		switch name {
		case "string", "number", "bool", "null", "object", "array":
		default:
			return nil, fmt.Errorf("unknown type %q", name)
		}
		return func(v any) (bool, error) { return jsonType(v) == name, nil }, nil
	}},
	"any": {build: func(any) (func(any) (bool, error), error) {
		return func(v any) (bool, error) { return present(v), nil }, nil
	}},
}

// BuiltinNames lists the predicates available to "$pred" markers.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns the named built-in predicate bound to arg. hasArg reports
// whether the marker carried an "arg" member.
func Builtin(name string, arg any, hasArg bool) (*compare.Predicate, error) {
	f, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown predicate %q (available: %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	if f.needsArg && !hasArg {
		return nil, fmt.Errorf("predicate %q requires an \"arg\"", name)
	}
	fn, err := f.build(arg)
	if err != nil {
		return nil, fmt.Errorf("predicate %q: %w", name, err)
	}

	label := name
	if hasArg {
		label = fmt.Sprintf("%s(%s)", name, compare.Stringify(arg))
	}
	return &compare.Predicate{Name: label, Fn: fn}, nil
}

// same reports deep equality of decoded values: objects and lists compare
// member by member, scalars by native equality.
func same(a, b any) bool {
	return compare.Compare(a, b).Passed()
}

func present(v any) bool {
	return !compare.IsAbsent(v)
}

func ordering(accept func(c int) bool) predicateFactory {
	return predicateFactory{needsArg: true, build: func(arg any) (func(any) (bool, error), error) {
		if _, ok := toFloat(arg); !ok {
			if _, ok := arg.(string); !ok {
				return nil, fmt.Errorf("arg must be a number or a string, got %T", arg)
			}
		}
		return func(v any) (bool, error) {
			if !present(v) {
				return false, nil
			}
			c, err := order(v, arg)
			if err != nil {
				return false, err
			}
			return accept(c), nil
		}, nil
	}}
}

// order compares v with arg, numerically when both are numbers and
// lexicographically when both are strings.
func order(v, arg any) (int, error) {
	if a, ok := toFloat(v); ok {
		if b, ok := toFloat(arg); ok {
			switch {
			case a < b:
				return -1, nil
			case a > b:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	if a, ok := v.(string); ok {
		if b, ok := arg.(string); ok {
			return strings.Compare(a, b), nil
		}
	}
	return 0, fmt.Errorf("cannot order %T against %T", v, arg)
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func contains(v, arg any) (bool, error) {
	switch x := v.(type) {
	case string:
		s, ok := arg.(string)
		if !ok {
			return false, fmt.Errorf("cannot search a string for %T", arg)
		}
		return strings.Contains(x, s), nil
	case []any:
		for _, e := range x {
			if same(arg, e) {
				return true, nil
			}
		}
		return false, nil
	case *compare.Map:
		_, ok := x.Get(compare.Stringify(arg))
		return ok, nil
	default:
		return false, nil
	}
}

// jsonType names the JSON type of a decoded value.
func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case *compare.Map:
		return "object"
	case []any:
		return "array"
	}
	if _, ok := toFloat(v); ok {
		return "number"
	}
	return ""
}
