// Package report renders batch validation results for humans (per-file
// violation listings plus a summary table) and for tooling (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/barcart/barcart/internal/library"
	"github.com/barcart/barcart/internal/validate"
)

// Writer renders human-readable validation reports. Colors are used only
// when the destination is a terminal and NO_COLOR is unset.
type Writer struct {
	out    io.Writer
	colors bool
}

// NewWriter creates a report writer for out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out, colors: wantColors(out)}
}

func wantColors(out io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (w *Writer) paint(c text.Colors, s string) string {
	if !w.colors {
		return s
	}
	return c.Sprint(s)
}

// File writes the outcome for one file: a success marker, a fatal per-file
// failure, or the ordered list of violations.
func (w *Writer) File(fr library.FileResult) {
	switch {
	case fr.Failure != "":
		fmt.Fprintf(w.out, "%s %s: %s\n", w.paint(text.Colors{text.FgRed, text.Bold}, "FAIL"), fr.Path, fr.Failure)

	case len(fr.Result.Violations) == 0:
		fmt.Fprintf(w.out, "%s %s\n", w.paint(text.Colors{text.FgGreen}, "OK"), fr.Path)

	default:
		marker := w.paint(text.Colors{text.FgYellow, text.Bold}, "WARN")
		if !fr.Result.Valid() {
			marker = w.paint(text.Colors{text.FgRed, text.Bold}, "FAIL")
		}
		fmt.Fprintf(w.out, "%s %s\n", marker, fr.Path)
		for _, v := range fr.Result.Violations {
			w.violation(v)
		}
	}
}

func (w *Writer) violation(v validate.Violation) {
	sev := w.paint(text.Colors{text.FgRed}, string(v.Severity))
	if v.Severity == validate.SeverityWarning {
		sev = w.paint(text.Colors{text.FgYellow}, string(v.Severity))
	}
	target := v.Path
	if target == "" {
		target = "(document)"
	}
	loc := ""
	if v.Line > 0 {
		loc = fmt.Sprintf("%d:%d ", v.Line, v.Column)
	}
	fmt.Fprintf(w.out, "  %s%s %s: %s\n", loc, sev, target, v.Message)
}

// Summary writes an aggregate table for the whole batch.
func (w *Writer) Summary(results []library.FileResult) {
	var valid, failures, errors, warnings int
	for _, fr := range results {
		if fr.Valid() {
			valid++
		}
		if fr.Failure != "" {
			failures++
			continue
		}
		e, wn := fr.Result.Counts()
		errors += e
		warnings += wn
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w.out)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Files", "Valid", "Unreadable", "Errors", "Warnings"})
	tw.AppendRow(table.Row{len(results), valid, failures, errors, warnings})
	tw.Render()
}

// JSON writes the aggregate batch result as indented JSON.
func JSON(out io.Writer, results []library.FileResult) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
