package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	textcases "golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/dictmatch/internal/cases"
	"github.com/AndreyAkinshin/dictmatch/internal/compare"
	"github.com/AndreyAkinshin/dictmatch/internal/unordered"
)

// CaseLine prints the status line of a case with an optional detail.
func (w *Writer) CaseLine(name string, kind cases.Kind, passed bool, detail string) {
	mark, codes := "x", red
	if passed {
		mark, codes = "+", green
	}
	if w.color {
		mark = "✗"
		if passed {
			mark = "✓"
		}
	}

	line := fmt.Sprintf("  %s %s [%s]", w.paint(codes, mark), name, kind)
	if detail != "" {
		line += "  " + w.paint(dim, detail)
	}
	w.Println("%s", line)
}

// CaseResult prints one case outcome. Failed cases show their differing
// rows; verbose output shows every row of every case.
func (w *Writer) CaseResult(r cases.Result, verbose bool) {
	c := r.Case
	switch {
	case r.Err != nil:
		w.CaseLine(c.Name, c.Kind, false, fmt.Sprintf("(%v)", r.Err))
		return
	case r.Passed:
		if w.quiet {
			return
		}
		w.CaseLine(c.Name, c.Kind, true, formatDuration(r.Duration))
	default:
		w.CaseLine(c.Name, c.Kind, false, fmt.Sprintf("score %d", r.Score))
	}

	if r.Passed && !verbose {
		return
	}

	if c.Kind == cases.KindMatchAll {
		w.records(r, verbose)
		return
	}
	w.Rows(r.Rows, !verbose)
}

func (w *Writer) records(r cases.Result, verbose bool) {
	for i, rec := range r.Records {
		level := unordered.LevelMatch
		if r.MatchAll != nil && i < len(r.MatchAll.Levels) {
			level = r.MatchAll.Levels[i].Level
		}
		if rec.Passed && !verbose {
			continue
		}
		w.Println("    %s: %s (cost %d)", titleCase(level.String()), rec.Description, rec.Cost)
		if rec.Comparison != nil {
			w.Rows(compare.Flatten(rec.Comparison), !verbose)
		}
	}
}

// Rows prints flattened comparison rows as a table keyed by path.
func (w *Writer) Rows(rows []compare.Row, failedOnly bool) {
	paths := RowPaths(rows)
	var table [][]string
	for i, row := range rows {
		if failedOnly && !isFailedLeaf(row) {
			continue
		}
		table = append(table, []string{
			"    " + paths[i],
			titleCase(row.Match.String()),
			CellText(row.Lhs),
			CellText(row.Rhs),
		})
	}
	if len(table) == 0 {
		return
	}
	w.Table([]string{"    PATH", "RESULT", "EXPECTED", "ACTUAL"}, table)
}

func isFailedLeaf(row compare.Row) bool {
	if row.Match != compare.Fail {
		return false
	}
	k := row.Lhs.Kind
	return k != compare.RenderMapping && k != compare.RenderSequence
}

// RowPaths returns a path for each row, e.g. "$.legs[1].px". Sequence
// elements carry no key and are numbered by position.
func RowPaths(rows []compare.Row) []string {
	paths := make([]string, len(rows))
	var stack []string
	var next []int

	for i, row := range rows {
		d := row.Depth
		if d > len(stack) {
			d = len(stack)
		}
		stack = stack[:d]
		for len(next) <= d {
			next = append(next, 0)
		}
		next = next[:d+1]

		var seg string
		switch {
		case d == 0 && row.Key == nil:
			seg = "$"
		case row.Key == nil:
			seg = fmt.Sprintf("[%d]", next[d])
		case d == 0:
			seg = "$." + compare.Stringify(row.Key)
		default:
			seg = "." + compare.Stringify(row.Key)
		}
		next[d]++

		stack = append(stack, seg)
		next = append(next, 0)
		paths[i] = strings.Join(stack, "")
	}
	return paths
}

// CellText renders one side of a row for display.
func CellText(c compare.Cell) string {
	switch c.Kind {
	case compare.RenderMapping:
		return "{...}"
	case compare.RenderSequence:
		return "[...]"
	case compare.RenderFunc:
		return c.Text + "()"
	}
	switch c.TypeName {
	case "", "nil", "Absent":
		return c.Text
	}
	return fmt.Sprintf("%s (%s)", c.Text, c.TypeName)
}

// RunSummary prints totals for a run.
func (w *Writer) RunSummary(s cases.Summary, elapsed time.Duration) {
	w.Println("")
	w.Println("%s", w.paint(bold+cyan, "=== Summary ==="))
	w.Println("")
	w.stat("Cases", fmt.Sprint(s.Total), "")
	w.stat("Passed", fmt.Sprint(s.Passed), green)
	if s.Failed > 0 {
		w.stat("Failed", fmt.Sprint(s.Failed), red)
	}
	if s.Errored > 0 {
		w.stat("Errors", fmt.Sprint(s.Errored), red)
	}
	w.stat("Duration", formatDuration(elapsed), "")

	if s.OK() {
		w.verdict(green, fmt.Sprintf("All %d cases passed.", s.Total))
	} else {
		w.verdict(red, fmt.Sprintf("%d of %d cases did not pass.", s.Failed+s.Errored, s.Total))
	}
}

// Report is the JSON form of a run.
type Report struct {
	Passed  bool          `json:"passed"`
	Summary cases.Summary `json:"summary"`
	Cases   []CaseReport  `json:"cases"`
}

// CaseReport is the JSON form of one case result.
type CaseReport struct {
	Name       string         `json:"name"`
	File       string         `json:"file,omitempty"`
	Kind       cases.Kind     `json:"kind"`
	Passed     bool           `json:"passed"`
	Score      int            `json:"score"`
	Error      string         `json:"error,omitempty"`
	DurationMs float64        `json:"duration_ms"`
	Rows       []compare.Row  `json:"rows,omitempty"`
	Records    []RecordReport `json:"records,omitempty"`
}

// RecordReport is the JSON form of one unordered pairing.
type RecordReport struct {
	Description   string               `json:"description"`
	Level         unordered.MatchLevel `json:"level"`
	Passed        bool                 `json:"passed"`
	ValueIndex    int                  `json:"value_index"`
	ExpectedIndex int                  `json:"expected_index"`
	Cost          int                  `json:"cost"`
	Rows          []compare.Row        `json:"rows"`
}

// NewReport builds the JSON report for results.
func NewReport(results []cases.Result) Report {
	summary := cases.Summarize(results)
	report := Report{Passed: summary.OK(), Summary: summary, Cases: make([]CaseReport, 0, len(results))}

	for _, r := range results {
		cr := CaseReport{
			Name:       r.Case.Name,
			File:       r.Case.File,
			Kind:       r.Case.Kind,
			Passed:     r.Passed && r.Err == nil,
			Score:      r.Score,
			DurationMs: float64(r.Duration.Microseconds()) / 1000,
			Rows:       r.Rows,
		}
		if r.Err != nil {
			cr.Error = r.Err.Error()
		}
		for i, rec := range r.Records {
			rr := RecordReport{
				Description:   rec.Description,
				Passed:        rec.Passed,
				ValueIndex:    rec.ValueIndex,
				ExpectedIndex: rec.ExpectedIndex,
				Cost:          rec.Cost,
			}
			if r.MatchAll != nil && i < len(r.MatchAll.Levels) {
				rr.Level = r.MatchAll.Levels[i].Level
			}
			if rec.Comparison != nil {
				rr.Rows = compare.Flatten(rec.Comparison)
			}
			cr.Records = append(cr.Records, rr)
		}
		report.Cases = append(report.Cases, cr)
	}
	return report
}

// JSON writes the JSON report for results to stdout.
func (w *Writer) JSON(results []cases.Result) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(NewReport(results))
}

func titleCase(s string) string {
	return textcases.Title(language.English).String(s)
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
