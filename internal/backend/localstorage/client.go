// Package localstorage implements a small key/value slot store on disk,
// one JSON file per key, and adapts it to the planner's storage interfaces.
package localstorage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"weekplan/internal/logging"
	"weekplan/internal/planner"
)

const (
	// DefaultTasksKey is the slot holding the task list.
	DefaultTasksKey = "tasks"

	// DraftKey is the slot holding the pending draft.
	DraftKey = "draft"

	fileExt  = ".json"
	dirPerm  = 0o700
	draftDay = "2006-01-02"
)

// ErrInvalidKey is returned for keys that cannot name a slot file.
var ErrInvalidKey = errors.New("invalid storage key")

// Client implements planner.Storage and planner.DraftStore on an afero.Fs.
type Client struct {
	fs       afero.Fs
	dir      string
	tasksKey string
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTasksKey overrides the slot the task list is stored under.
func WithTasksKey(key string) Option {
	return func(c *Client) {
		if key != "" {
			c.tasksKey = key
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a client storing slots under dir on fsys.
func New(fsys afero.Fs, dir string, opts ...Option) *Client {
	c := &Client{
		fs:       fsys,
		dir:      dir,
		tasksKey: DefaultTasksKey,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(c.dir, key+fileExt), nil
}

// GetItem returns the raw value stored under key. ok is false when the
// slot has never been written or was removed.
func (c *Client) GetItem(key string) (string, bool, error) {
	p, err := c.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := afero.ReadFile(c.fs, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

// SetItem replaces the value under key. The new value is written to a
// temporary file and renamed into place so a reader never sees a torn write.
func (c *Client) SetItem(key, value string) error {
	p, err := c.path(key)
	if err != nil {
		return err
	}
	if err := c.fs.MkdirAll(c.dir, dirPerm); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	tmp, err := afero.TempFile(c.fs, c.dir, key+fileExt+".tmp.*")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = c.fs.Remove(tmpName)
		}
	}()

	if _, err := tmp.WriteString(value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := c.fs.Rename(tmpName, p); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	committed = true
	return nil
}

// RemoveItem deletes the slot. Removing an absent slot is not an error.
func (c *Client) RemoveItem(key string) error {
	p, err := c.path(key)
	if err != nil {
		return err
	}
	if err := c.fs.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// storedTask is the persisted shape of a task. Pointers distinguish a
// missing field from an empty one.
type storedTask struct {
	ID    *string `json:"id,omitempty"`
	Title *string `json:"title"`
	Date  *string `json:"date"`
	Time  *string `json:"time"`
}

// Load implements planner.Storage. Content that is not an array of task
// objects is reported as planner.ErrMalformed.
func (c *Client) Load(ctx context.Context) ([]planner.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, ok, err := c.GetItem(c.tasksKey)
	if err != nil || !ok {
		return nil, err
	}
	return decodeTasks([]byte(raw))
}

func decodeTasks(data []byte) ([]planner.Task, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", planner.ErrMalformed, err)
	}
	tasks := make([]planner.Task, 0, len(items))
	for i, item := range items {
		var st storedTask
		if err := json.Unmarshal(item, &st); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", planner.ErrMalformed, i, err)
		}
		if st.Title == nil || st.Date == nil {
			return nil, fmt.Errorf("%w: entry %d: missing title or date", planner.ErrMalformed, i)
		}
		t := planner.Task{Title: *st.Title, Date: *st.Date}
		if st.ID != nil {
			t.ID = *st.ID
		}
		if st.Time != nil {
			t.Time = *st.Time
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save implements planner.Storage by rewriting the whole slot.
func (c *Client) Save(ctx context.Context, tasks []planner.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tasks == nil {
		tasks = []planner.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return c.SetItem(c.tasksKey, string(data))
}

type storedDraft struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// LoadDraft implements planner.DraftStore. An unreadable draft is treated
// as absent.
func (c *Client) LoadDraft(ctx context.Context) (planner.Draft, bool, error) {
	if err := ctx.Err(); err != nil {
		return planner.Draft{}, false, err
	}
	raw, ok, err := c.GetItem(DraftKey)
	if err != nil || !ok {
		return planner.Draft{}, false, err
	}

	var sd storedDraft
	if err := json.Unmarshal([]byte(raw), &sd); err != nil {
		c.logger.Debug("ignoring unreadable draft", "error", err)
		return planner.Draft{}, false, nil
	}
	d := planner.Draft{Title: sd.Title, Time: sd.Time}
	if sd.Date != "" {
		day, err := time.Parse(draftDay, sd.Date)
		if err != nil {
			c.logger.Debug("ignoring unreadable draft", "error", err)
			return planner.Draft{}, false, nil
		}
		d.Date = day
	}
	return d, true, nil
}

// SaveDraft implements planner.DraftStore.
func (c *Client) SaveDraft(ctx context.Context, d planner.Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sd := storedDraft{Title: d.Title, Time: d.Time}
	if !d.Date.IsZero() {
		sd.Date = d.Date.Format(draftDay)
	}
	data, err := json.Marshal(sd)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return c.SetItem(DraftKey, string(data))
}

// ClearDraft implements planner.DraftStore.
func (c *Client) ClearDraft(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.RemoveItem(DraftKey)
}
