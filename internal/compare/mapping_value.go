package compare

import (
	"fmt"
	"reflect"
	"sort"
)

// Map is an insertion-ordered mapping. Keys may be any comparable value,
// which lets integer-tagged protocol messages keep their tag order.
type Map struct {
	keys   []any
	values map[any]any
}

// Pair is a single key/value entry used to build a Map.
type Pair struct {
	Key   any
	Value any
}

// NewMap builds a Map from pairs in order. Later duplicates overwrite the
// value but keep the first position.
func NewMap(pairs ...Pair) *Map {
	m := &Map{values: make(map[any]any, len(pairs))}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set stores value under key and returns the map for chaining.
func (m *Map) Set(key, value any) *Map {
	if m.values == nil {
		m.values = make(map[any]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

// Get returns the value stored under key.
func (m *Map) Get(key any) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []any {
	if m == nil {
		return nil
	}
	out := make([]any, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *Map) String() string {
	if m == nil {
		return "{}"
	}
	s := "{"
	for i, k := range m.keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v: %v", k, m.values[k])
	}
	return s + "}"
}

// asMap views any mapping-category value as a *Map. Native Go maps have no
// order, so their keys are sorted by string form, then by type name.
func asMap(v any) *Map {
	if m, ok := v.(*Map); ok {
		if m == nil {
			return &Map{}
		}
		return m
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		panic(fmt.Sprintf("compare: %T is not a mapping", v))
	}
	keys := rv.MapKeys()
	sort.SliceStable(keys, func(i, j int) bool {
		ki, kj := keys[i].Interface(), keys[j].Interface()
		si, sj := fmt.Sprint(ki), fmt.Sprint(kj)
		if si != sj {
			return si < sj
		}
		return fmt.Sprintf("%T", ki) < fmt.Sprintf("%T", kj)
	})
	m := &Map{values: make(map[any]any, len(keys))}
	for _, k := range keys {
		m.Set(k.Interface(), rv.MapIndex(k).Interface())
	}
	return m
}

// asSlice views any sequence-category value as []any.
func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	panic(fmt.Sprintf("compare: %T is not a sequence", v))
}
