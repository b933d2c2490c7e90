package planner

import "time"

// DayPlan is one column of the week view.
type DayPlan struct {
	Date  time.Time
	Tasks []Task
}

// On returns the tasks planned for the calendar date of day, in list order.
// Tasks whose stored date cannot be read never match.
func (s *Store) On(day time.Time) []Task {
	return TasksOn(s.Tasks(), day)
}

// Week returns the seven days of the week containing anchor, beginning on
// start, each with the tasks planned for it.
func (s *Store) Week(anchor time.Time, start time.Weekday) []DayPlan {
	return WeekOf(s.Tasks(), anchor, start)
}

// TasksOn filters tasks down to those planned for day.
func TasksOn(tasks []Task, day time.Time) []Task {
	day = Day(day)
	var out []Task
	for _, t := range tasks {
		if d, ok := t.Day(); ok && d.Equal(day) {
			out = append(out, t)
		}
	}
	return out
}

// WeekStart returns the first day of the week containing anchor.
func WeekStart(anchor time.Time, start time.Weekday) time.Time {
	anchor = Day(anchor)
	offset := (int(anchor.Weekday()) - int(start) + 7) % 7
	return anchor.AddDate(0, 0, -offset)
}

// WeekOf lays tasks out over the week containing anchor.
func WeekOf(tasks []Task, anchor time.Time, start time.Weekday) []DayPlan {
	first := WeekStart(anchor, start)
	days := make([]DayPlan, 7)
	for i := range days {
		days[i].Date = first.AddDate(0, 0, i)
	}
	for _, t := range tasks {
		d, ok := t.Day()
		if !ok {
			continue
		}
		i := int(d.Sub(first).Hours() / 24)
		if d.Before(first) || i > 6 {
			continue
		}
		days[i].Tasks = append(days[i].Tasks, t)
	}
	return days
}
