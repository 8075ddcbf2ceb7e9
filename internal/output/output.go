// Package output renders case results and CLI messages for a terminal or a
// pipe. Colors are used only when stdout is a terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// Writer prints reports to stdout and diagnostics to stderr.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
	quiet bool
}

// New creates a Writer on the process's stdout and stderr.
func New() *Writer {
	return &Writer{out: os.Stdout, err: os.Stderr, color: isTerminal()}
}

// NewWithWriters creates a Writer on custom writers.
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{out: out, err: err, color: color}
}

// Out returns the report writer.
func (w *Writer) Out() io.Writer {
	return w.out
}

// Err returns the diagnostics writer.
func (w *Writer) Err() io.Writer {
	return w.err
}

// SetQuiet hides passing cases and section headers.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// paint wraps s in the given color codes when color is enabled.
func (w *Writer) paint(codes, s string) string {
	if !w.color || codes == "" {
		return s
	}
	return codes + s + reset
}

// Print writes to stdout.
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Success prints a confirmation line.
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println("%s", w.paint(green, fmt.Sprintf(format, args...)))
}

// Warning prints a warning to stderr.
func (w *Writer) Warning(format string, args ...interface{}) {
	fmt.Fprintln(w.err, w.paint(yellow, "warning: "+fmt.Sprintf(format, args...)))
}

// ErrorPrefix prints an error to stderr behind the program name.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	fmt.Fprintf(w.err, "%s %s\n", w.paint(red, "dictmatch:"), fmt.Sprintf(format, args...))
}

// Section prints a section header. Quiet mode skips it.
func (w *Writer) Section(title string) {
	if w.quiet {
		return
	}
	w.Println("")
	w.Println("%s", w.paint(bold, "=== "+title+" ==="))
}

// List prints one bulleted line per item.
func (w *Writer) List(items []string) {
	for _, item := range items {
		w.Println("  - %s", item)
	}
}

// Table prints left-aligned columns under a dashed separator. Cells beyond
// the header count are dropped.
func (w *Writer) Table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string) {
		parts := make([]string, 0, len(widths))
		for i, cell := range cells {
			if i < len(widths) {
				parts = append(parts, fmt.Sprintf("%-*s", widths[i], cell))
			}
		}
		w.Println("%s", strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	line(headers)
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	line(sep)
	for _, row := range rows {
		line(row)
	}
}

// stat prints one "label: value" line of the run summary, the value painted
// with codes.
func (w *Writer) stat(label, value, codes string) {
	w.Println("  %s %s", w.paint(dim, label+":"), w.paint(codes, value))
}

// verdict prints the closing line of a run.
func (w *Writer) verdict(codes, msg string) {
	w.Println("")
	w.Println("%s", w.paint(codes, msg))
}

func isTerminal() bool {
	if fi, _ := os.Stdout.Stat(); fi != nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}
