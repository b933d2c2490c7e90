// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"weekplan/internal/planner"
)

// FormatTask formats a task line for the list command.
// Format: "{N:>4}  {TITLE}  {DATE}[  {TIME}]\n"
func FormatTask(w io.Writer, num int, task planner.Task) {
	fmt.Fprintf(w, "%4d  %s  %s", num, normalizeTitle(task.Title), oneLine(task.Date))
	if t := strings.TrimSpace(oneLine(task.Time)); t != "" {
		fmt.Fprintf(w, "  %s", t)
	}
	fmt.Fprintln(w)
}

// FormatTasks writes one numbered line per task, starting at 1.
func FormatTasks(w io.Writer, tasks []planner.Task) {
	for i, task := range tasks {
		FormatTask(w, i+1, task)
	}
}

// FormatDraft formats the pending draft the way the input form would be
// prefilled: one "field: value" line per field.
func FormatDraft(w io.Writer, d planner.Draft, layout planner.DateLayout) {
	date := "(none)"
	if !d.Date.IsZero() {
		date = planner.FormatDate(d.Date, layout)
	}
	fmt.Fprintf(w, "title: %s\n", normalizeTitle(d.Title))
	fmt.Fprintf(w, "date:  %s\n", date)
	fmt.Fprintf(w, "time:  %s\n", oneLine(d.Time))
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = oneLine(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
