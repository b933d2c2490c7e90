// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"weekplan/internal/planner"
)

// MemoryStorage is an in-memory planner.Storage for testing.
type MemoryStorage struct {
	mu      sync.Mutex
	tasks   []planner.Task
	present bool

	// Malformed makes Load report an unreadable slot.
	Malformed bool

	// Error injection for testing
	LoadErr error
	SaveErr error

	// Saves counts successful Save calls.
	Saves int
}

// NewMemoryStorage creates an empty slot.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Seed stores tasks as if a previous session had persisted them.
func (m *MemoryStorage) Seed(tasks ...planner.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append([]planner.Task(nil), tasks...)
	m.present = true
}

// Snapshot returns what was last persisted and whether anything was.
func (m *MemoryStorage) Snapshot() ([]planner.Task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]planner.Task(nil), m.tasks...), m.present
}

// Load implements planner.Storage.
func (m *MemoryStorage) Load(ctx context.Context) ([]planner.Task, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Malformed {
		return nil, fmt.Errorf("%w: not an array", planner.ErrMalformed)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.present {
		return nil, nil
	}
	return append([]planner.Task(nil), m.tasks...), nil
}

// Save implements planner.Storage.
func (m *MemoryStorage) Save(ctx context.Context, tasks []planner.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append([]planner.Task(nil), tasks...)
	m.present = true
	m.Saves++
	return nil
}

// MemoryDrafts is an in-memory planner.DraftStore for testing.
type MemoryDrafts struct {
	mu    sync.Mutex
	draft planner.Draft
	ok    bool

	SaveErr error
}

// NewMemoryDrafts creates an empty draft store.
func NewMemoryDrafts() *MemoryDrafts {
	return &MemoryDrafts{}
}

// LoadDraft implements planner.DraftStore.
func (m *MemoryDrafts) LoadDraft(ctx context.Context) (planner.Draft, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft, m.ok, nil
}

// SaveDraft implements planner.DraftStore.
func (m *MemoryDrafts) SaveDraft(ctx context.Context, d planner.Draft) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft, m.ok = d, true
	return nil
}

// ClearDraft implements planner.DraftStore.
func (m *MemoryDrafts) ClearDraft(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft, m.ok = planner.Draft{}, false
	return nil
}

// SequentialIDs returns an id generator yielding id-1, id-2, ...
func SequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
