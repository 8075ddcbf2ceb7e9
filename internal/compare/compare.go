// Package compare implements the recursive structural comparator.
//
// Values are classified into a closed set of categories (see Classify) and
// compared pairwise into a tree of Nodes that keeps both sides verbatim, so
// callers can report exactly which fields passed, failed, or were ignored.
// Expected values may embed Patterns and Predicates in place of concrete values.
package compare

import (
	"fmt"
	"reflect"
)

// Comparer holds the policy used by a comparison.
type Comparer struct {
	// Filter selects which mapping keys take part in the verdict.
	Filter Filter
	// Values compares Value-category operands. Nil means NativeEquality.
	Values ValueComparator
	// MaxDepth bounds recursion. Zero means unlimited.
	MaxDepth int
}

// Compare compares expected (lhs) against actual (rhs) with native equality
// and no key filtering.
func Compare(lhs, rhs any) *Node {
	return Comparer{}.Compare(nil, lhs, rhs)
}

// ComparePair compares lhs and rhs under key with the given filter and value comparator.
func ComparePair(key, lhs, rhs any, filter Filter, values ValueComparator) *Node {
	return Comparer{Filter: filter, Values: values}.Compare(key, lhs, rhs)
}

// Compare compares lhs against rhs and returns the result tree rooted at key.
// It never panics on predicate failures; an unknown category is a programming
// error and panics.
func (c Comparer) Compare(key, lhs, rhs any) *Node {
	return c.compare(key, lhs, rhs, 0)
}

func (c Comparer) valueCmp() ValueComparator {
	if c.Values == nil {
		return NativeEquality
	}
	return c.Values
}

func (c Comparer) compare(key, lhs, rhs any, depth int) *Node {
	if c.MaxDepth > 0 && depth > c.MaxDepth {
		err := fmt.Errorf("maximum depth %d exceeded", c.MaxDepth)
		return &Node{Key: key, Match: Fail, Lhs: errorRender(lhs, err), Rhs: errorRender(rhs, err)}
	}

	lc, rc := Classify(lhs), Classify(rhs)

	// Absent on either side settles the result unless a callable may accept it.
	if (lc == CategoryAbsent || rc == CategoryAbsent) && lc != CategoryCallable && rc != CategoryCallable {
		return &Node{Key: key, Match: FromBool(lc == rc), Lhs: scalarRender(lhs), Rhs: scalarRender(rhs)}
	}

	switch {
	case lc == CategoryCallable && rc == CategoryCallable:
		ln, rn := callableName(lhs), callableName(rhs)
		return &Node{Key: key, Match: FromBool(sameCallable(lhs, rhs)), Lhs: funcRender(ln), Rhs: funcRender(rn)}

	case lc == CategoryCallable:
		ok, err := invoke(lhs, rhs)
		n := &Node{Key: key, Match: FromBool(ok), Lhs: funcRender(callableName(lhs)), Rhs: scalarRender(rhs)}
		if err != nil {
			n.Match = Fail
			n.Rhs = errorRender(rhs, err)
		}
		return n

	case rc == CategoryCallable:
		ok, err := invoke(rhs, lhs)
		n := &Node{Key: key, Match: FromBool(ok), Lhs: scalarRender(lhs), Rhs: funcRender(callableName(rhs))}
		if err != nil {
			n.Match = Fail
			n.Lhs = errorRender(lhs, err)
		}
		return n

	case lc == CategoryPattern && rc == CategoryPattern:
		lp, rp := lhs.(Pattern), rhs.(Pattern)
		return &Node{Key: key, Match: FromBool(lp.String() == rp.String()), Lhs: patternRender(lp), Rhs: patternRender(rp)}

	case lc == CategoryPattern:
		lp := lhs.(Pattern)
		return &Node{Key: key, Match: FromBool(lp.MatchString(Stringify(rhs))), Lhs: patternRender(lp), Rhs: scalarRender(rhs)}

	case rc == CategoryPattern:
		rp := rhs.(Pattern)
		return &Node{Key: key, Match: FromBool(rp.MatchString(Stringify(lhs))), Lhs: scalarRender(lhs), Rhs: patternRender(rp)}

	case lc == CategoryValue && rc == CategoryValue:
		return &Node{Key: key, Match: FromBool(c.valueCmp()(lhs, rhs)), Lhs: scalarRender(lhs), Rhs: scalarRender(rhs)}

	case lc == CategorySequence && rc == CategorySequence:
		return c.compareSequence(key, asSlice(lhs), asSlice(rhs), depth)

	case lc == CategoryMapping && rc == CategoryMapping:
		match, children := c.compareMapping(asMap(lhs), asMap(rhs), depth)
		return &Node{
			Key:   key,
			Match: containerMatch(match),
			Lhs:   Render{Kind: RenderMapping, Children: children},
			Rhs:   Render{Kind: RenderMapping, Children: children},
		}
	}

	if !knownCategory(lc) || !knownCategory(rc) {
		panic(fmt.Sprintf("compare: unrecognized categories %v/%v", lc, rc))
	}
	return &Node{Key: key, Match: Fail, Lhs: scalarRender(lhs), Rhs: scalarRender(rhs)}
}

func (c Comparer) compareSequence(key any, lhs, rhs []any, depth int) *Node {
	n := len(lhs)
	if len(rhs) > n {
		n = len(rhs)
	}
	children := make([]*Node, 0, n)
	match := Ignored
	for i := 0; i < n; i++ {
		l, r := Absent, Absent
		if i < len(lhs) {
			l = lhs[i]
		}
		if i < len(rhs) {
			r = rhs[i]
		}
		child := c.compare(nil, l, r, depth+1)
		match = Combine(match, child.Match)
		children = append(children, child)
	}
	return &Node{
		Key:   key,
		Match: containerMatch(match),
		Lhs:   Render{Kind: RenderSequence, Children: children},
		Rhs:   Render{Kind: RenderSequence, Children: children},
	}
}

// containerMatch turns the fold of a container with nothing compared into Pass,
// so empty and fully ignored containers equal themselves.
func containerMatch(m Match) Match {
	if m == Ignored {
		return Pass
	}
	return m
}

func knownCategory(c Category) bool {
	return c >= CategoryAbsent && c <= CategoryMapping
}

func patternRender(p Pattern) Render {
	return Render{Kind: RenderScalar, TypeName: "Pattern", Text: p.String()}
}

func callableName(v any) string {
	switch f := v.(type) {
	case *Predicate:
		return f.String()
	}
	return fmt.Sprintf("<func %s>", reflect.TypeOf(v))
}

// sameCallable compares two callables by identity, never by invoking them.
func sameCallable(a, b any) bool {
	if pa, ok := a.(*Predicate); ok {
		pb, ok := b.(*Predicate)
		return ok && pa == pb
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	return ra.Type() == rb.Type() && ra.Pointer() == rb.Pointer()
}

// invoke calls the callable with v and converts panics into errors.
func invoke(fn, v any) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("%v", r)
		}
	}()

	switch f := fn.(type) {
	case *Predicate:
		return f.Fn(v)
	case func(any) bool:
		return f(v), nil
	case func(any) (bool, error):
		return f(v)
	}
	return invokeReflect(reflect.ValueOf(fn), v)
}

func invokeReflect(fn reflect.Value, v any) (bool, error) {
	in := fn.Type().In(0)
	var arg reflect.Value
	switch {
	case v == nil:
		arg = reflect.Zero(in)
	case reflect.TypeOf(v).AssignableTo(in):
		arg = reflect.ValueOf(v)
	case isNumericKind(reflect.TypeOf(v).Kind()) && isNumericKind(in.Kind()):
		arg = reflect.ValueOf(v).Convert(in)
	default:
		return false, fmt.Errorf("cannot pass %T as %s", v, in)
	}
	out := fn.Call([]reflect.Value{arg})
	if len(out) == 2 && !out[1].IsNil() {
		return false, out[1].Interface().(error)
	}
	return truthy(out[0]), nil
}

func isNumericKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

// truthy interprets a predicate's return value: booleans as-is, numbers as
// non-zero, and everything else as non-empty or non-nil.
func truthy(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() > 0
	case reflect.Interface:
		if v.IsNil() {
			return false
		}
		return truthy(v.Elem())
	case reflect.Ptr, reflect.Func, reflect.Chan:
		return !v.IsNil()
	}
	return true
}
