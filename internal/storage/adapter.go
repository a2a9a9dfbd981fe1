package storage

import (
	"context"
	"fmt"
	"log/slog"

	"todo/internal/todo"
)

// Adapter loads and saves the whole task list under one slot key.
type Adapter struct {
	slot   Slot
	key    string
	logger *slog.Logger
}

// NewAdapter returns an adapter storing the list under key in slot.
// An empty key means DefaultKey; a nil logger discards output.
func NewAdapter(slot Slot, key string, logger *slog.Logger) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{slot: slot, key: key, logger: logger}
}

// Key returns the slot key.
func (a *Adapter) Key() string { return a.key }

// Load returns the stored list. A missing slot, a read failure, or content
// that does not decode as a task list all yield the empty list.
func (a *Adapter) Load(ctx context.Context) todo.List {
	data, ok, err := a.slot.Get(ctx, a.key)
	if err != nil {
		a.logger.Warn("read task list failed, starting empty", "key", a.key, "error", err)
		return nil
	}
	if !ok {
		a.logger.Debug("no stored task list", "key", a.key)
		return nil
	}
	l, err := Decode(data)
	if err != nil {
		a.logger.Warn("ignoring stored task list", "key", a.key, "error", err)
		return nil
	}
	a.logger.Debug("loaded task list", "key", a.key, "tasks", l.Len())
	return l
}

// Save overwrites the slot with a full snapshot of l.
func (a *Adapter) Save(ctx context.Context, l todo.List) error {
	data, err := Encode(l)
	if err != nil {
		return fmt.Errorf("encode task list: %w", err)
	}
	if err := a.slot.Put(ctx, a.key, data); err != nil {
		return fmt.Errorf("write task list: %w", err)
	}
	a.logger.Debug("saved task list", "key", a.key, "tasks", l.Len(), "bytes", len(data))
	return nil
}

// Reset removes the stored list.
func (a *Adapter) Reset(ctx context.Context) error {
	if err := a.slot.Delete(ctx, a.key); err != nil {
		return fmt.Errorf("delete task list: %w", err)
	}
	a.logger.Debug("reset task list", "key", a.key)
	return nil
}

// Close closes the underlying slot.
func (a *Adapter) Close() error {
	return a.slot.Close()
}
