package service

import (
	"context"
	"log/slog"

	"todo/internal/edit"
	"todo/internal/storage"
	"todo/internal/todo"
)

// Session implements Service over a storage.Adapter. It owns the current
// list value and saves every new version before returning.
//
// A Session is not safe for concurrent use.
type Session struct {
	adapter *storage.Adapter
	logger  *slog.Logger

	list    todo.List
	version uint64
	filter  todo.Filter
	edit    edit.Session
}

var _ Service = (*Session)(nil)

// Open loads the stored list and returns a session over it.
func Open(ctx context.Context, adapter *storage.Adapter, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		adapter: adapter,
		logger:  logger,
		list:    adapter.Load(ctx),
		filter:  todo.FilterAll,
	}
}

// List returns the current list value.
func (s *Session) List() todo.List { return s.list }

// Add implements Service.
func (s *Session) Add(ctx context.Context, text string) error {
	return s.commit(ctx, "add", s.list.Add(text))
}

// Toggle implements Service.
func (s *Session) Toggle(ctx context.Context, id int64) error {
	return s.commit(ctx, "toggle", s.list.Toggle(id))
}

// Delete implements Service.
func (s *Session) Delete(ctx context.Context, id int64) error {
	return s.commit(ctx, "delete", s.list.Delete(id))
}

// StartEdit implements Service.
func (s *Session) StartEdit(id int64) {
	t, ok := s.list.Find(id)
	if !ok {
		s.logger.Debug("start edit: no such task", "id", id)
		return
	}
	s.edit.Start(t.ID, t.Text)
}

// UpdateDraft implements Service.
func (s *Session) UpdateDraft(text string) {
	s.edit.UpdateDraft(text)
}

// CommitEdit implements Service.
func (s *Session) CommitEdit(ctx context.Context) error {
	if _, _, ok := s.edit.Active(); !ok {
		return nil
	}
	return s.commit(ctx, "edit", s.edit.Commit(s.list))
}

// CancelEdit implements Service.
func (s *Session) CancelEdit() {
	s.edit.Cancel()
}

// SetFilter implements Service.
func (s *Session) SetFilter(f todo.Filter) {
	s.filter = f
}

// Reset implements Service.
func (s *Session) Reset(ctx context.Context) error {
	s.edit.Cancel()
	s.list = nil
	s.version++
	return s.adapter.Reset(ctx)
}

// View implements Service.
func (s *Session) View() View {
	active, completed := s.list.Counts()
	v := View{
		Tasks:     todo.Visible(s.list, s.filter),
		Filter:    s.filter,
		Active:    active,
		Completed: completed,
		Version:   s.version,
	}
	if id, draft, ok := s.edit.Active(); ok {
		v.Edit = &EditState{TaskID: id, Draft: draft}
	}
	return v
}

// commit installs next as the current list and saves it.
func (s *Session) commit(ctx context.Context, op string, next todo.List) error {
	s.list = next
	s.version++
	s.logger.Debug("task list changed", "op", op, "version", s.version, "tasks", next.Len())
	return s.adapter.Save(ctx, next)
}

// Close closes the underlying storage.
func (s *Session) Close() error {
	return s.adapter.Close()
}
