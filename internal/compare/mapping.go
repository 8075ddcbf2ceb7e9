package compare

// KeySet is a set of mapping keys.
type KeySet map[any]struct{}

// NewKeySet builds a KeySet from keys.
func NewKeySet(keys ...any) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether key is in the set.
func (s KeySet) Has(key any) bool {
	_, ok := s[key]
	return ok
}

// Filter selects which mapping keys are compared.
type Filter struct {
	// IgnoreKeys are never compared. They take precedence over OnlyKeys.
	IgnoreKeys KeySet
	// OnlyKeys, when non-empty, restricts comparison to these keys.
	OnlyKeys KeySet
	// ReportAll keeps ignored keys in the result tree as Ignored nodes.
	ReportAll bool
}

// Ignores reports whether key is excluded from the verdict.
func (f Filter) Ignores(key any) bool {
	if f.IgnoreKeys.Has(key) {
		return true
	}
	return len(f.OnlyKeys) > 0 && !f.OnlyKeys.Has(key)
}

// CompareMapping compares two mapping-category values key by key. Keys are
// visited in lhs order, followed by keys only present in rhs.
func CompareMapping(lhs, rhs any, filter Filter, values ValueComparator) (Match, []*Node) {
	return Comparer{Filter: filter, Values: values}.CompareMapping(lhs, rhs)
}

// CompareMapping is the method form of the package-level CompareMapping.
func (c Comparer) CompareMapping(lhs, rhs any) (Match, []*Node) {
	return c.compareMapping(asMap(lhs), asMap(rhs), 0)
}

func (c Comparer) compareMapping(lhs, rhs *Map, depth int) (Match, []*Node) {
	keys := lhs.Keys()
	for _, k := range rhs.Keys() {
		if _, ok := lhs.Get(k); !ok {
			keys = append(keys, k)
		}
	}

	match := Ignored
	children := make([]*Node, 0, len(keys))
	for _, k := range keys {
		lv, ok := lhs.Get(k)
		if !ok {
			lv = Absent
		}
		rv, ok := rhs.Get(k)
		if !ok {
			rv = Absent
		}

		if c.Filter.Ignores(k) {
			if c.Filter.ReportAll {
				children = append(children, &Node{Key: k, Match: Ignored, Lhs: scalarRender(lv), Rhs: scalarRender(rv)})
			}
			continue
		}

		child := c.compare(k, lv, rv, depth+1)
		match = Combine(match, child.Match)
		children = append(children, child)
	}
	return match, children
}
