package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"weekplan/internal/planner"
)

// ColumnWidth is the width of one day column in the week view.
const ColumnWidth = 18

// WeekView renders planner.DayPlan columns side by side.
type WeekView struct {
	header lipgloss.Style
	today  lipgloss.Style
	column lipgloss.Style
	muted  lipgloss.Style
	layout planner.DateLayout
}

// NewWeekView creates a view whose color profile follows w, so output
// piped to a file or buffer carries no escape sequences.
func NewWeekView(w io.Writer, layout planner.DateLayout) *WeekView {
	r := lipgloss.NewRenderer(w)
	return &WeekView{
		header: r.NewStyle().Bold(true),
		today:  r.NewStyle().Bold(true).Underline(true),
		column: r.NewStyle().Width(ColumnWidth).PaddingRight(1),
		muted:  r.NewStyle().Faint(true),
		layout: layout,
	}
}

// Render writes a title line followed by the seven day columns.
// today is highlighted when it falls inside the week.
func (v *WeekView) Render(w io.Writer, days []planner.DayPlan, today time.Time) {
	if len(days) == 0 {
		return
	}
	fmt.Fprintf(w, "Week of %s\n\n", planner.FormatDate(days[0].Date, v.layout))

	cols := make([]string, len(days))
	for i, d := range days {
		cols[i] = v.column.Render(v.renderDay(d, today))
	}
	fmt.Fprintln(w, strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cols...), " "))
}

func (v *WeekView) renderDay(d planner.DayPlan, today time.Time) string {
	label := d.Date.Format("Mon Jan 2")
	hdr := v.header
	if d.Date.Equal(planner.Day(today)) {
		hdr = v.today
	}

	lines := []string{hdr.Render(label)}
	if len(d.Tasks) == 0 {
		lines = append(lines, v.muted.Render("-"))
	}
	for _, t := range d.Tasks {
		line := normalizeTitle(t.Title)
		if tm := strings.TrimSpace(oneLine(t.Time)); tm != "" {
			line = tm + " " + line
		}
		lines = append(lines, "- "+line)
	}
	return strings.Join(lines, "\n")
}
