package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"weekplan/internal/planner"
	"weekplan/internal/service"
	"weekplan/internal/testutil"
)

func day(d int) time.Time {
	return time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC)
}

func newPlanner(t *testing.T, seed ...planner.Task) (*service.Planner, *testutil.MemoryStorage, *testutil.MemoryDrafts) {
	t.Helper()
	mem := testutil.NewMemoryStorage()
	if len(seed) > 0 {
		mem.Seed(seed...)
	}
	store := planner.NewStore(mem, planner.WithIDFunc(testutil.SequentialIDs()))
	if err := store.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	drafts := testutil.NewMemoryDrafts()
	return service.NewPlanner(store, drafts, nil), mem, drafts
}

func TestPlanner_EditThenSubmitRestoresTask(t *testing.T) {
	p, _, _ := newPlanner(t)
	ctx := context.Background()
	p.Submit(ctx, "Dentist", day(18), "14:30")
	p.Submit(ctx, "Gym", day(19), "")

	d, ok, err := p.Edit(ctx, 0)
	if err != nil || !ok {
		t.Fatalf("Edit = ok %v, err %v", ok, err)
	}
	saved, ok, _ := p.Draft(ctx)
	if !ok || saved.Title != d.Title {
		t.Fatalf("expected draft to be saved, got %+v (ok %v)", saved, ok)
	}

	// Resubmitting with only a new time keeps the rest of the draft.
	task, err := p.Submit(ctx, "", time.Time{}, "15:00")
	if err != nil {
		t.Fatal(err)
	}
	if task.Title != "Dentist" || task.Date != "April 18th, 2025" || task.Time != "15:00" {
		t.Errorf("unexpected resubmitted task %+v", task)
	}

	tasks, _ := p.Tasks(ctx)
	if len(tasks) != 2 || tasks[0].Title != "Gym" || tasks[1].Title != "Dentist" {
		t.Errorf("edited task should move to the end, got %+v", tasks)
	}
	if _, ok, _ := p.Draft(ctx); ok {
		t.Error("expected draft to be cleared after a successful add")
	}
}

func TestPlanner_SubmitWithoutDraft(t *testing.T) {
	p, mem, _ := newPlanner(t)
	ctx := context.Background()

	_, err := p.Submit(ctx, "Buy milk", time.Time{}, "")
	if !errors.Is(err, planner.ErrDateRequired) {
		t.Fatalf("expected ErrDateRequired, got %v", err)
	}
	if mem.Saves != 0 {
		t.Errorf("expected no write, got %d", mem.Saves)
	}
}

func TestPlanner_ValidationKeepsDraft(t *testing.T) {
	p, _, drafts := newPlanner(t)
	ctx := context.Background()
	drafts.SaveDraft(ctx, planner.Draft{Title: "Odd", Time: "noon"})

	if _, err := p.Submit(ctx, "", time.Time{}, ""); !planner.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok, _ := p.Draft(ctx); !ok {
		t.Error("draft should survive a declined add")
	}
}

func TestPlanner_EditOutOfRangeKeepsDraft(t *testing.T) {
	p, _, drafts := newPlanner(t)
	ctx := context.Background()
	drafts.SaveDraft(ctx, planner.Draft{Title: "pending"})

	if _, ok, err := p.Edit(ctx, 3); ok || err != nil {
		t.Fatalf("Edit(3) = ok %v, err %v", ok, err)
	}
	d, ok, _ := p.Draft(ctx)
	if !ok || d.Title != "pending" {
		t.Errorf("expected existing draft untouched, got %+v", d)
	}
}

func TestPlanner_DraftSaveError(t *testing.T) {
	p, _, drafts := newPlanner(t, planner.Task{ID: "x", Title: "a", Date: "April 16th, 2025"})
	drafts.SaveErr = errors.New("disk full")

	_, ok, err := p.Edit(context.Background(), 0)
	if !ok || err == nil {
		t.Errorf("expected edit to apply and report the draft error, got ok %v err %v", ok, err)
	}
}

func TestPlanner_DeleteAndIndexOf(t *testing.T) {
	p, _, _ := newPlanner(t,
		planner.Task{ID: "aaaa", Title: "a", Date: "April 16th, 2025"},
		planner.Task{ID: "bbbb", Title: "b", Date: "April 16th, 2025"},
	)
	ctx := context.Background()

	if i, _ := p.IndexOf(ctx, "bbbb"); i != 1 {
		t.Fatalf("expected bbbb at 1, got %d", i)
	}
	if _, ok, _ := p.Delete(ctx, 0); !ok {
		t.Fatal("expected delete to apply")
	}
	if i, _ := p.IndexOf(ctx, "bbbb"); i != 0 {
		t.Errorf("expected bbbb at 0 after delete, got %d", i)
	}
}

func TestPlanner_DiscardDraft(t *testing.T) {
	p, _, drafts := newPlanner(t)
	ctx := context.Background()
	drafts.SaveDraft(ctx, planner.Draft{Title: "x"})

	if err := p.DiscardDraft(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := p.Draft(ctx); ok {
		t.Error("expected draft to be discarded")
	}
}

func TestPlanner_Week(t *testing.T) {
	p, _, _ := newPlanner(t,
		planner.Task{ID: "1", Title: "a", Date: "April 16th, 2025"},
		planner.Task{ID: "2", Title: "b", Date: "April 22nd, 2025"},
	)
	week, err := p.Week(context.Background(), day(16), time.Monday)
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, d := range week {
		total += len(d.Tasks)
	}
	if total != 1 || len(week[2].Tasks) != 1 {
		t.Errorf("expected only the Wednesday task, got %+v", week)
	}
}

func TestPlanner_ByID(t *testing.T) {
	p, _, _ := newPlanner(t,
		planner.Task{ID: "aaaa", Title: "a", Date: "April 16th, 2025"},
		planner.Task{ID: "bbbb", Title: "b", Date: "April 17th, 2025", Time: "09:00"},
	)
	ctx := context.Background()

	d, ok, err := p.EditByID(ctx, "bbbb")
	if err != nil || !ok || d.Title != "b" || d.Time != "09:00" {
		t.Fatalf("EditByID = %+v, ok %v, err %v", d, ok, err)
	}
	if saved, ok, _ := p.Draft(ctx); !ok || saved.Title != "b" {
		t.Errorf("expected edited task saved as draft, got %+v (ok %v)", saved, ok)
	}

	if _, ok, _ := p.DeleteByID(ctx, "missing"); ok {
		t.Error("unknown id should be a no-op")
	}
	if _, ok, _ := p.DeleteByID(ctx, "aaaa"); !ok {
		t.Error("expected aaaa to be removed")
	}
	if tasks, _ := p.Tasks(ctx); len(tasks) != 0 {
		t.Errorf("expected empty list, got %+v", tasks)
	}
}

func TestPlanner_On(t *testing.T) {
	p, _, _ := newPlanner(t,
		planner.Task{ID: "1", Title: "a", Date: "April 16th, 2025"},
		planner.Task{ID: "2", Title: "b", Date: "April 17th, 2025"},
		planner.Task{ID: "3", Title: "c", Date: "Wednesday, April 16th, 2025"},
	)
	tasks, err := p.On(context.Background(), day(16))
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 || tasks[0].ID != "1" || tasks[1].ID != "3" {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}
