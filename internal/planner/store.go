package planner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the authoritative in-memory task list. Every mutation is
// followed by a full-list write to its Storage.
//
// A Store is safe for use by multiple goroutines. Separate processes
// sharing the same slot are not coordinated: the last writer wins.
type Store struct {
	mu      sync.Mutex
	tasks   []Task
	storage Storage
	logger  *slog.Logger
	layout  DateLayout
	newID   func() string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLayout sets the layout new tasks' dates are written in.
func WithLayout(l DateLayout) Option {
	return func(s *Store) { s.layout = l }
}

// WithIDFunc replaces the id generator (for testing).
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewStore creates an empty Store backed by storage. Call Load to hydrate it.
func NewStore(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		layout:  LayoutLong,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory list with the persisted one. An absent slot
// yields an empty list. A malformed slot is discarded with a warning and
// also yields an empty list; only storage I/O failures are returned.
func (s *Store) Load(ctx context.Context) error {
	tasks, err := s.storage.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrMalformed) {
			return fmt.Errorf("load tasks: %w", err)
		}
		s.logger.Warn("discarding unreadable task list", "error", err)
		tasks = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == "" {
			t.ID = s.newID()
		}
		s.tasks = append(s.tasks, t)
	}
	s.logger.Debug("tasks loaded", "count", len(s.tasks))
	return nil
}

// Tasks returns a copy of the list in display order.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Add appends a task. An empty title or a zero date declines the add with
// a *ValidationError and leaves both the list and the slot untouched.
// tm may be empty.
func (s *Store) Add(ctx context.Context, title string, date time.Time, tm string) (Task, error) {
	if title == "" {
		s.logger.Debug("add skipped", "reason", ErrTitleRequired)
		return Task{}, &ValidationError{Field: "title", Err: ErrTitleRequired}
	}
	if date.IsZero() {
		s.logger.Debug("add skipped", "reason", ErrDateRequired)
		return Task{}, &ValidationError{Field: "date", Err: ErrDateRequired}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := Task{
		ID:    s.newID(),
		Title: title,
		Date:  FormatDate(Day(date), s.layout),
		Time:  tm,
	}
	s.tasks = append(s.tasks, task)
	s.logger.Debug("task added", "id", task.ID, "position", len(s.tasks)-1)
	return task, s.persistLocked(ctx)
}

// Delete removes the task at index. Later tasks shift one position
// earlier. An out-of-range index is a no-op and reports ok == false.
func (s *Store) Delete(ctx context.Context, index int) (Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteLocked(ctx, index)
}

// Edit captures the task at index as a Draft and then deletes it. The
// task stays out of the list until the draft is submitted through Add.
func (s *Store) Edit(ctx context.Context, index int) (Draft, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editLocked(ctx, index)
}

// IndexOf returns the current position of the task with the given id, or -1.
func (s *Store) IndexOf(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexLocked(id)
}

// DeleteByID is Delete keyed by task id.
func (s *Store) DeleteByID(ctx context.Context, id string) (Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteLocked(ctx, s.indexLocked(id))
}

// EditByID is Edit keyed by task id.
func (s *Store) EditByID(ctx context.Context, id string) (Draft, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editLocked(ctx, s.indexLocked(id))
}

// Persist writes the whole list to storage.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx)
}

func (s *Store) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) deleteLocked(ctx context.Context, index int) (Task, bool, error) {
	if index < 0 || index >= len(s.tasks) {
		s.logger.Debug("delete skipped", "index", index, "len", len(s.tasks))
		return Task{}, false, nil
	}
	removed := s.tasks[index]
	s.tasks = append(s.tasks[:index:index], s.tasks[index+1:]...)
	s.logger.Debug("task deleted", "id", removed.ID, "position", index)
	return removed, true, s.persistLocked(ctx)
}

func (s *Store) editLocked(ctx context.Context, index int) (Draft, bool, error) {
	if index < 0 || index >= len(s.tasks) {
		s.logger.Debug("edit skipped", "index", index, "len", len(s.tasks))
		return Draft{}, false, nil
	}
	t := s.tasks[index]
	d := Draft{Title: t.Title, Time: t.Time}
	if day, ok := t.Day(); ok {
		d.Date = day
	} else {
		s.logger.Warn("edited task has an unreadable date", "id", t.ID, "date", t.Date)
	}
	_, _, err := s.deleteLocked(ctx, index)
	return d, true, err
}

func (s *Store) persistLocked(ctx context.Context) error {
	snapshot := make([]Task, len(s.tasks))
	copy(snapshot, s.tasks)
	if err := s.storage.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}
