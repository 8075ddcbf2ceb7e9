package compare

import (
	"fmt"
	"strconv"
)

// Stringify converts a concrete value to the text a Pattern is matched against
// and that StringifiedEquality compares:
//   - strings are used verbatim
//   - byte slices are interpreted as UTF-8 text
//   - floats use the shortest representation that round-trips ('g' format)
//   - fmt.Stringer values use their String method
//   - everything else uses fmt's %v verb
func Stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case fmt.Stringer:
		return x.String()
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%v", x)
	}
}

// typeName returns the display type of v for scalar renders.
func typeName(v any) string {
	switch {
	case IsAbsent(v):
		return "Absent"
	case v == nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", v)
	}
}
