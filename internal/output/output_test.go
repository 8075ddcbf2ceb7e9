package output

import (
	"bytes"
	"strings"
	"testing"
)

// newTestWriter creates a Writer with captured output for testing.
func newTestWriter() (*Writer, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	w := &Writer{
		out:   stdout,
		err:   stderr,
		color: false, // Disable color for predictable test output
		quiet: false,
	}
	return w, stdout, stderr
}

func TestNew(t *testing.T) {
	w := New()
	if w == nil {
		t.Fatal("New() returned nil")
	}
	if w.out == nil {
		t.Error("out writer is nil")
	}
	if w.err == nil {
		t.Error("err writer is nil")
	}
}

func TestWriter_SetQuiet(t *testing.T) {
	w, _, _ := newTestWriter()

	w.SetQuiet(true)
	if !w.quiet {
		t.Error("SetQuiet(true) did not set quiet")
	}

	w.SetQuiet(false)
	if w.quiet {
		t.Error("SetQuiet(false) did not unset quiet")
	}
}

func TestWriter_Print(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Print("hello %s", "world")

	if got := stdout.String(); got != "hello world" {
		t.Errorf("Print() = %q, want %q", got, "hello world")
	}
}

func TestWriter_Println(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Println("hello %s", "world")

	if got := stdout.String(); got != "hello world\n" {
		t.Errorf("Println() = %q, want %q", got, "hello world\n")
	}
}

func TestWriter_Success(t *testing.T) {
	tests := []struct {
		name   string
		color  bool
		expect string
	}{
		{"without color", false, "done\n"},
		{"with color", true, "\033[32mdone\033[0m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, stdout, _ := newTestWriter()
			w.color = tt.color

			w.Success("done")

			if got := stdout.String(); got != tt.expect {
				t.Errorf("Success() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestWriter_Warning(t *testing.T) {
	tests := []struct {
		name   string
		color  bool
		expect string
	}{
		{"without color", false, "warning: caution\n"},
		{"with color", true, "\033[33mwarning: caution\033[0m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, stderr := newTestWriter()
			w.color = tt.color

			w.Warning("caution")

			if got := stderr.String(); got != tt.expect {
				t.Errorf("Warning() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestWriter_Section(t *testing.T) {
	tests := []struct {
		name   string
		quiet  bool
		color  bool
		expect string
	}{
		{"normal without color", false, false, "\n=== Cases ===\n"},
		{"normal with color", false, true, "\n\033[1m=== Cases ===\033[0m\n"},
		{"quiet mode", true, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, stdout, _ := newTestWriter()
			w.quiet = tt.quiet
			w.color = tt.color

			w.Section("Cases")

			if got := stdout.String(); got != tt.expect {
				t.Errorf("Section() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestWriter_List(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.List([]string{"item1", "item2", "item3"})

	expected := "  - item1\n  - item2\n  - item3\n"
	if got := stdout.String(); got != expected {
		t.Errorf("List() = %q, want %q", got, expected)
	}
}

func TestWriter_List_Empty(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.List([]string{})

	if got := stdout.String(); got != "" {
		t.Errorf("List() with empty slice = %q, want empty", got)
	}
}

func TestWriter_Table(t *testing.T) {
	w, stdout, _ := newTestWriter()

	headers := []string{"Name", "Type", "Status"}
	rows := [][]string{
		{"orders", "match", "ok"},
		{"fills", "match_all", "ok"},
	}

	w.Table(headers, rows)

	output := stdout.String()

	// Verify headers present
	if !strings.Contains(output, "Name") {
		t.Error("Table() missing header 'Name'")
	}
	if !strings.Contains(output, "Type") {
		t.Error("Table() missing header 'Type'")
	}
	if !strings.Contains(output, "Status") {
		t.Error("Table() missing header 'Status'")
	}

	// Verify rows present
	if !strings.Contains(output, "orders") {
		t.Error("Table() missing row 'orders'")
	}
	if !strings.Contains(output, "fills") {
		t.Error("Table() missing row 'fills'")
	}

	// Verify separator line exists
	if !strings.Contains(output, "---") {
		t.Error("Table() missing separator line")
	}
}

func TestWriter_Table_VaryingWidths(t *testing.T) {
	w, stdout, _ := newTestWriter()

	headers := []string{"A", "LongHeader"}
	rows := [][]string{
		{"short", "x"},
		{"verylongvalue", "y"},
	}

	w.Table(headers, rows)

	output := stdout.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")

	if len(lines) < 3 {
		t.Fatalf("Table() expected at least 3 lines, got %d", len(lines))
	}

	// Column width should accommodate longest value
	// "verylongvalue" is 13 chars, "LongHeader" is 10 chars
	headerLine := lines[0]
	if !strings.Contains(headerLine, "A") {
		t.Error("Table() header line missing 'A'")
	}
}

func TestWriter_Table_Empty(t *testing.T) {
	w, stdout, _ := newTestWriter()

	headers := []string{"Name", "Value"}
	rows := [][]string{}

	w.Table(headers, rows)

	output := stdout.String()

	// Should still print headers and separator
	if !strings.Contains(output, "Name") {
		t.Error("Table() with empty rows should still print headers")
	}
}

func TestWriter_Table_RowShorterThanHeaders(t *testing.T) {
	w, stdout, _ := newTestWriter()

	headers := []string{"A", "B", "C"}
	rows := [][]string{
		{"1", "2"}, // Missing third column
	}

	w.Table(headers, rows)

	// Should not panic and should handle gracefully
	output := stdout.String()
	if !strings.Contains(output, "1") {
		t.Error("Table() should handle short rows gracefully")
	}
}

func TestWriter_ErrorPrefix(t *testing.T) {
	tests := []struct {
		name   string
		color  bool
		expect string
	}{
		{"without color", false, "dictmatch: bad file\n"},
		{"with color", true, "\033[31mdictmatch:\033[0m bad file\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, stderr := newTestWriter()
			w.color = tt.color

			w.ErrorPrefix("bad %s", "file")

			if got := stderr.String(); got != tt.expect {
				t.Errorf("ErrorPrefix() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestWriter_Table_TrimsTrailingPadding(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Table([]string{"PATH", "ACTUAL"}, [][]string{{"$.px", ""}, {"$.quantity", "7"}})

	want := "PATH        ACTUAL\n----------  ------\n$.px\n$.quantity  7\n"
	if got := stdout.String(); got != want {
		t.Errorf("Table() = %q, want %q", got, want)
	}
}

func TestWriter_CaseLine(t *testing.T) {
	tests := []struct {
		name   string
		color  bool
		passed bool
		detail string
		expect string
	}{
		{"passed plain", false, true, "", "  + ack [match]\n"},
		{"failed plain", false, false, "score 5000", "  x ack [match]  score 5000\n"},
		{"passed color", true, true, "", "  \033[32m✓\033[0m ack [match]\n"},
		{"failed color", true, false, "score 5000", "  \033[31m✗\033[0m ack [match]  \033[2mscore 5000\033[0m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, stdout, _ := newTestWriter()
			w.color = tt.color

			w.CaseLine("ack", "match", tt.passed, tt.detail)

			if got := stdout.String(); got != tt.expect {
				t.Errorf("CaseLine() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestWriter_SummaryLines(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.stat("Cases", "3", "")
	w.stat("Failed", "1", red)
	w.verdict(red, "1 of 3 cases did not pass.")

	expected := "  Cases: 3\n  Failed: 1\n\n1 of 3 cases did not pass.\n"
	if got := stdout.String(); got != expected {
		t.Errorf("summary output = %q, want %q", got, expected)
	}

	w, stdout, _ = newTestWriter()
	w.color = true
	w.stat("Failed", "1", red)
	if got, want := stdout.String(), "  \033[2mFailed:\033[0m \033[31m1\033[0m\n"; got != want {
		t.Errorf("colored stat = %q, want %q", got, want)
	}
}
