package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	timeMinute = "2006-01-02 15:04"
	timeSecond = "2006-01-02 15:04:05"
)

func rule(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("─", width))
}

// banner prints title framed by rules.
func banner(w io.Writer, title string, width int) {
	rule(w, width)
	fmt.Fprintln(w, title)
	rule(w, width)
}

// fields prints "Label:" lines with values aligned at a fixed column.
type fields struct {
	w     io.Writer
	width int
}

func (f fields) add(label string, format string, args ...any) {
	fmt.Fprintf(f.w, "%-*s%s\n", f.width, label+":", fmt.Sprintf(format, args...))
}

type column struct {
	title string
	width int
	right bool
}

// table prints fixed-width columns separated by two spaces. The last
// left-aligned column is not padded.
type table struct {
	w    io.Writer
	cols []column
}

func (t table) header(ruleWidth int) {
	titles := make([]any, len(t.cols))
	for i, c := range t.cols {
		titles[i] = c.title
	}
	t.row(titles...)
	rule(t.w, ruleWidth)
}

func (t table) row(vals ...any) {
	cells := make([]string, len(vals))
	for i, v := range vals {
		s := fmt.Sprint(v)
		if i >= len(t.cols) {
			cells[i] = s
			continue
		}
		c := t.cols[i]
		switch {
		case c.right:
			cells[i] = fmt.Sprintf("%*s", c.width, s)
		case i == len(t.cols)-1:
			cells[i] = s
		default:
			cells[i] = fmt.Sprintf("%-*s", c.width, truncate(s, c.width))
		}
	}
	fmt.Fprintln(t.w, strings.TrimRight(strings.Join(cells, "  "), " "))
}

func localTime(t time.Time, layout string) string {
	return t.Local().Format(layout)
}

// orNotCaptured substitutes a placeholder for an empty body.
func orNotCaptured(s string) string {
	if s == "" {
		return "(not captured)"
	}
	return s
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
