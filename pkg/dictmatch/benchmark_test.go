package dictmatch

import (
	"fmt"
	"regexp"
	"testing"
)

// Run: go test -bench=. -benchmem ./pkg/dictmatch

func BenchmarkEqual_FlatMap(b *testing.B) {
	opts := DefaultOptions()
	expected := map[string]interface{}{"id": 1, "sym": "MSFT", "qty": 100, "px": 101.5}
	actual := map[string]interface{}{"id": 1, "sym": "MSFT", "qty": 100, "px": 101.5}

	b.ResetTimer()
	for b.Loop() {
		Equal(expected, actual, opts)
	}
}

func BenchmarkEqual_DeeplyNested(b *testing.B) {
	opts := DefaultOptions()
	nested := func() map[string]interface{} {
		return map[string]interface{}{
			"level1": map[string]interface{}{
				"level2": map[string]interface{}{
					"level3": map[string]interface{}{
						"level4": map[string]interface{}{"value": 42.0},
					},
				},
			},
		}
	}
	expected, actual := nested(), nested()

	b.ResetTimer()
	for b.Loop() {
		Equal(expected, actual, opts)
	}
}

func BenchmarkCompare_Wildcards(b *testing.B) {
	opts := DefaultOptions()
	expected := map[string]interface{}{
		"id":  regexp.MustCompile(`^ord-\d+$`),
		"qty": Pred("positive", func(v interface{}) bool { n, ok := v.(int); return ok && n > 0 }),
	}
	actual := map[string]interface{}{"id": "ord-42", "qty": 7}

	b.ResetTimer()
	for b.Loop() {
		_, _ = Compare(expected, actual, opts)
	}
}

func BenchmarkMatchAll(b *testing.B) {
	for _, n := range []int{4, 8, MaxItems} {
		values := make([]interface{}, n)
		expected := make([]Expected, n)
		for i := 0; i < n; i++ {
			values[i] = map[string]interface{}{"id": n - 1 - i, "name": fmt.Sprintf("item-%d", n-1-i)}
			expected[i] = Expected{Value: map[string]interface{}{"id": i, "name": fmt.Sprintf("item-%d", i)}}
		}
		opts := DefaultOptions()

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _, _ = MatchAll(values, expected, opts)
			}
		})
	}
}
