package planner

import "context"

// Storage is the durable slot the task list is mirrored to.
//
// Load returns (nil, nil) when nothing has been persisted yet and an error
// wrapping ErrMalformed when the slot holds something that is not a task
// list. Save overwrites the whole slot.
type Storage interface {
	Load(ctx context.Context) ([]Task, error)
	Save(ctx context.Context, tasks []Task) error
}

// DraftStore keeps the pending input between an Edit and the resubmit.
type DraftStore interface {
	// LoadDraft returns ok == false when no draft is pending.
	LoadDraft(ctx context.Context) (Draft, bool, error)
	SaveDraft(ctx context.Context, d Draft) error
	ClearDraft(ctx context.Context) error
}
