package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"weekplan/internal/logging"
	"weekplan/internal/planner"
)

// Planner implements Service on top of a planner.Store and a draft slot.
type Planner struct {
	store  *planner.Store
	drafts planner.DraftStore
	logger *slog.Logger
}

// NewPlanner wraps an already loaded store.
func NewPlanner(store *planner.Store, drafts planner.DraftStore, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Planner{store: store, drafts: drafts, logger: logger}
}

// Tasks returns the task list in display order.
func (p *Planner) Tasks(ctx context.Context) ([]planner.Task, error) {
	return p.store.Tasks(), nil
}

// Add adds a task from exactly the given input and clears the draft.
func (p *Planner) Add(ctx context.Context, title string, date time.Time, tm string) (planner.Task, error) {
	task, err := p.store.Add(ctx, title, date, tm)
	if err != nil {
		return task, err
	}
	if err := p.drafts.ClearDraft(ctx); err != nil {
		return task, fmt.Errorf("clear draft: %w", err)
	}
	return task, nil
}

// Submit fills empty fields of the input from the pending draft, then Adds.
func (p *Planner) Submit(ctx context.Context, title string, date time.Time, tm string) (planner.Task, error) {
	d, ok, err := p.drafts.LoadDraft(ctx)
	if err != nil {
		return planner.Task{}, fmt.Errorf("load draft: %w", err)
	}
	if ok {
		if title == "" {
			title = d.Title
		}
		if date.IsZero() {
			date = d.Date
		}
		if tm == "" {
			tm = d.Time
		}
		p.logger.Debug("merged draft into input", "title", title)
	}
	return p.Add(ctx, title, date, tm)
}

// Delete removes the task at index. An out-of-range index reports ok == false.
func (p *Planner) Delete(ctx context.Context, index int) (planner.Task, bool, error) {
	return p.store.Delete(ctx, index)
}

// DeleteByID removes the task carrying id.
func (p *Planner) DeleteByID(ctx context.Context, id string) (planner.Task, bool, error) {
	return p.store.DeleteByID(ctx, id)
}

// Edit removes the task and saves its fields as the pending draft.
func (p *Planner) Edit(ctx context.Context, index int) (planner.Draft, bool, error) {
	d, ok, err := p.store.Edit(ctx, index)
	return p.keepDraft(ctx, d, ok, err)
}

// EditByID is Edit for the task carrying id.
func (p *Planner) EditByID(ctx context.Context, id string) (planner.Draft, bool, error) {
	d, ok, err := p.store.EditByID(ctx, id)
	return p.keepDraft(ctx, d, ok, err)
}

func (p *Planner) keepDraft(ctx context.Context, d planner.Draft, ok bool, err error) (planner.Draft, bool, error) {
	if err != nil || !ok {
		return d, ok, err
	}
	if err := p.drafts.SaveDraft(ctx, d); err != nil {
		return d, true, fmt.Errorf("save draft: %w", err)
	}
	return d, true, nil
}

// IndexOf returns the current position of the task carrying id, or -1.
func (p *Planner) IndexOf(ctx context.Context, id string) (int, error) {
	return p.store.IndexOf(id), nil
}

// On returns the tasks planned for day, in list order.
func (p *Planner) On(ctx context.Context, day time.Time) ([]planner.Task, error) {
	return p.store.On(day), nil
}

// Draft returns the pending draft. ok is false when none is stored.
func (p *Planner) Draft(ctx context.Context) (planner.Draft, bool, error) {
	return p.drafts.LoadDraft(ctx)
}

// DiscardDraft drops the pending draft.
func (p *Planner) DiscardDraft(ctx context.Context) error {
	return p.drafts.ClearDraft(ctx)
}

// Week returns the seven days of the week containing anchor.
func (p *Planner) Week(ctx context.Context, anchor time.Time, start time.Weekday) ([]planner.DayPlan, error) {
	return p.store.Week(anchor, start), nil
}
