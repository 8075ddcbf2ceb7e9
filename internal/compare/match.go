package compare

import "fmt"

// Match is the three-valued outcome of a single comparison.
type Match int

const (
	// Ignored marks an entry excluded from the verdict. It is the identity of Combine.
	Ignored Match = iota
	// Pass marks an entry whose sides matched.
	Pass
	// Fail marks an entry whose sides did not match. It absorbs every other outcome.
	Fail
)

// Combine folds two outcomes. Ignored is the identity element and Fail is absorbing,
// so the fold order over a fixed set of outcomes never changes the result.
func Combine(a, b Match) Match {
	switch {
	case a == Fail || b == Fail:
		return Fail
	case a == Ignored:
		return b
	case b == Ignored:
		return a
	default:
		return Pass
	}
}

// CombineAll folds all outcomes starting from Ignored.
func CombineAll(matches ...Match) Match {
	acc := Ignored
	for _, m := range matches {
		acc = Combine(acc, m)
	}
	return acc
}

// FromBool converts a boolean verdict into Pass or Fail.
func FromBool(ok bool) Match {
	if ok {
		return Pass
	}
	return Fail
}

func (m Match) String() string {
	switch m {
	case Ignored:
		return "ignored"
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	default:
		return fmt.Sprintf("match(%d)", int(m))
	}
}

// MarshalText encodes the match as its lowercase name.
func (m Match) MarshalText() ([]byte, error) {
	switch m {
	case Ignored, Pass, Fail:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("invalid match value %d", int(m))
}

// UnmarshalText decodes a lowercase match name.
func (m *Match) UnmarshalText(text []byte) error {
	switch string(text) {
	case "ignored":
		*m = Ignored
	case "pass":
		*m = Pass
	case "fail":
		*m = Fail
	default:
		return fmt.Errorf("invalid match %q", string(text))
	}
	return nil
}
