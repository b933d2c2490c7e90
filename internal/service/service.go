// Package service defines the backend-agnostic interface for planner operations.
package service

import (
	"context"
	"time"

	"weekplan/internal/planner"
)

// Service defines the operations the CLI commands perform.
// Commands never touch storage directly.
type Service interface {
	// Tasks returns the task list in display order.
	Tasks(ctx context.Context) ([]planner.Task, error)

	// Submit merges the given input over the pending draft and adds the
	// resulting task. A validation failure returns a *planner.ValidationError
	// and changes nothing.
	Submit(ctx context.Context, title string, date time.Time, tm string) (planner.Task, error)

	// Delete removes the task at the 0-based index. ok is false when the
	// index is out of range.
	Delete(ctx context.Context, index int) (planner.Task, bool, error)

	// Edit removes the task at the 0-based index and keeps its fields as
	// the pending draft.
	Edit(ctx context.Context, index int) (planner.Draft, bool, error)

	// DeleteByID is Delete keyed by task id. ok is false when no task
	// carries the id.
	DeleteByID(ctx context.Context, id string) (planner.Task, bool, error)

	// EditByID is Edit keyed by task id.
	EditByID(ctx context.Context, id string) (planner.Draft, bool, error)

	// IndexOf returns the current position of a task id, or -1.
	IndexOf(ctx context.Context, id string) (int, error)

	// On returns the tasks planned for the calendar date of day.
	On(ctx context.Context, day time.Time) ([]planner.Task, error)

	// Draft returns the pending draft, if any.
	Draft(ctx context.Context) (planner.Draft, bool, error)

	// DiscardDraft drops the pending draft.
	DiscardDraft(ctx context.Context) error

	// Week returns the seven days of the week containing anchor.
	Week(ctx context.Context, anchor time.Time, start time.Weekday) ([]planner.DayPlan, error)
}
