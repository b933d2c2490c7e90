// Package planner holds the task list of the weekly planner and keeps it
// in sync with a durable storage slot.
package planner

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Task is a single planned item. Date is stored already formatted for
// display; Time is free text.
type Task struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Title string `json:"title" yaml:"title"`
	Date  string `json:"date" yaml:"date"`
	Time  string `json:"time" yaml:"time"`
}

// Day parses the task's stored date. ok is false when the stored string
// is not a recognised date.
func (t Task) Day() (time.Time, bool) {
	d, err := ParseDate(t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Draft is the pending input captured by Edit, waiting to be resubmitted.
// A zero Date means no date is selected.
type Draft struct {
	Title string
	Date  time.Time
	Time  string
}

// IsZero reports whether the draft carries no input at all.
func (d Draft) IsZero() bool {
	return d.Title == "" && d.Date.IsZero() && d.Time == ""
}

// DateLayout selects how dates are written into stored tasks.
type DateLayout int

const (
	// LayoutLong writes "April 16th, 2025".
	LayoutLong DateLayout = iota
	// LayoutFull writes "Wednesday, April 16th, 2025".
	LayoutFull
)

// ParseLayout maps a config value to a DateLayout.
func ParseLayout(s string) (DateLayout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "long":
		return LayoutLong, nil
	case "full":
		return LayoutFull, nil
	default:
		return LayoutLong, fmt.Errorf("unknown date layout: %s", s)
	}
}

func (l DateLayout) String() string {
	if l == LayoutFull {
		return "full"
	}
	return "long"
}

// FormatDate renders a calendar date in the given layout.
func FormatDate(d time.Time, layout DateLayout) string {
	s := fmt.Sprintf("%s %s, %04d", d.Month(), humanize.Ordinal(d.Day()), d.Year())
	if layout == LayoutFull {
		return d.Weekday().String() + ", " + s
	}
	return s
}

var ordinalSuffix = regexp.MustCompile(`\b(\d{1,2})(st|nd|rd|th)\b`)

// parseLayouts are tried in order after ordinal suffixes are stripped.
var parseLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"Monday, January 2, 2006",
	"Jan 2, 2006",
	"Mon, Jan 2, 2006",
}

// ParseDate reads a calendar date written by FormatDate (either layout),
// an ISO date, or the short "Apr 16, 2025" form. The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	clean := ordinalSuffix.ReplaceAllString(s, "$1")
	for _, layout := range parseLayouts {
		if d, err := time.Parse(layout, clean); err == nil {
			return Day(d), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date: %s", s)
}

// Day truncates t to its calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
