package cases

import (
	"fmt"
	"regexp"

	"github.com/AndreyAkinshin/dictmatch/internal/compare"
)

// Marker keys recognized in expected documents.
const (
	markerRegex  = "$regex"
	markerPred   = "$pred"
	markerArg    = "arg"
	markerAbsent = "$absent"
	markerFile   = "$file"
)

// resolveMarkers replaces marker objects in an expected document:
//
//	{"$regex": "^ord-"}        -> compiled pattern
//	{"$pred": "gt", "arg": 0}  -> built-in predicate
//	{"$absent": true}          -> compare.Absent
//
// Any other object or array is walked recursively.
func resolveMarkers(v any, path string) (any, error) {
	switch x := v.(type) {
	case *compare.Map:
		if m, ok, err := marker(x, path); ok || err != nil {
			return m, err
		}
		out := compare.NewMap()
		for _, k := range x.Keys() {
			e, _ := x.Get(k)
			r, err := resolveMarkers(e, fmt.Sprintf("%s.%v", path, k))
			if err != nil {
				return nil, err
			}
			out.Set(k, r)
		}
		return out, nil
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			r, err := resolveMarkers(e, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	default:
		return v, nil
	}
}

// marker converts m when it is a marker object. ok is false for ordinary objects.
func marker(m *compare.Map, path string) (v any, ok bool, err error) {
	if expr, found := m.Get(markerRegex); found {
		if m.Len() != 1 {
			return nil, true, fmt.Errorf("%s: %q must be the only member", path, markerRegex)
		}
		s, isString := expr.(string)
		if !isString {
			return nil, true, fmt.Errorf("%s: %q must be a string", path, markerRegex)
		}
		re, err := regexp.Compile(s)
		if err != nil {
			return nil, true, fmt.Errorf("%s: invalid %s: %w", path, markerRegex, err)
		}
		return re, true, nil
	}

	if name, found := m.Get(markerPred); found {
		arg, hasArg := m.Get(markerArg)
		if m.Len() > 2 || (m.Len() == 2 && !hasArg) {
			return nil, true, fmt.Errorf("%s: %q accepts only an %q member", path, markerPred, markerArg)
		}
		s, isString := name.(string)
		if !isString {
			return nil, true, fmt.Errorf("%s: %q must be a predicate name", path, markerPred)
		}
		p, err := Builtin(s, arg, hasArg)
		if err != nil {
			return nil, true, fmt.Errorf("%s: %w", path, err)
		}
		return p, true, nil
	}

	if flag, found := m.Get(markerAbsent); found {
		if m.Len() != 1 || flag != true {
			return nil, true, fmt.Errorf("%s: %q must be {%q: true}", path, markerAbsent, markerAbsent)
		}
		return compare.Absent, true, nil
	}

	return nil, false, nil
}
