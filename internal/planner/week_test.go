package planner_test

import (
	"testing"
	"time"

	"weekplan/internal/planner"
	"weekplan/internal/testutil"
)

func TestWeekStart(t *testing.T) {
	wed := date(2025, 4, 16)

	if got := planner.WeekStart(wed, time.Monday); !got.Equal(date(2025, 4, 14)) {
		t.Errorf("monday start: got %v", got)
	}
	if got := planner.WeekStart(wed, time.Sunday); !got.Equal(date(2025, 4, 13)) {
		t.Errorf("sunday start: got %v", got)
	}
	// A Sunday belongs to the week that started the Monday before.
	if got := planner.WeekStart(date(2025, 4, 20), time.Monday); !got.Equal(date(2025, 4, 14)) {
		t.Errorf("sunday anchor: got %v", got)
	}
}

func TestStore_On(t *testing.T) {
	mem := testutil.NewMemoryStorage()
	mem.Seed(
		planner.Task{ID: "1", Title: "a", Date: "April 16th, 2025"},
		planner.Task{ID: "2", Title: "b", Date: "April 17th, 2025"},
		planner.Task{ID: "3", Title: "c", Date: "Wednesday, April 16th, 2025"},
		planner.Task{ID: "4", Title: "d", Date: "garbage"},
	)
	s := newStore(t, mem)

	got := s.On(date(2025, 4, 16))
	if len(got) != 2 || got[0].Title != "a" || got[1].Title != "c" {
		t.Errorf("unexpected tasks on April 16th: %+v", got)
	}
	if len(s.On(date(2025, 4, 18))) != 0 {
		t.Error("expected no tasks on April 18th")
	}
}

func TestStore_Week(t *testing.T) {
	mem := testutil.NewMemoryStorage()
	mem.Seed(
		planner.Task{ID: "1", Title: "mon", Date: "April 14th, 2025"},
		planner.Task{ID: "2", Title: "sun", Date: "April 20th, 2025"},
		planner.Task{ID: "3", Title: "next", Date: "April 21st, 2025"},
		planner.Task{ID: "4", Title: "prev", Date: "April 13th, 2025"},
		planner.Task{ID: "5", Title: "wed", Date: "April 16th, 2025"},
	)
	s := newStore(t, mem)

	week := s.Week(date(2025, 4, 16), time.Monday)
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	if !week[0].Date.Equal(date(2025, 4, 14)) || !week[6].Date.Equal(date(2025, 4, 20)) {
		t.Errorf("unexpected bounds %v .. %v", week[0].Date, week[6].Date)
	}

	counts := make([]int, 7)
	for i, d := range week {
		counts[i] = len(d.Tasks)
	}
	want := []int{1, 0, 1, 0, 0, 0, 1}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("day %d: expected %d tasks, got %d", i, want[i], counts[i])
		}
	}
	if week[6].Tasks[0].Title != "sun" {
		t.Errorf("expected sun on the last day, got %q", week[6].Tasks[0].Title)
	}
}
