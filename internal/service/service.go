// Package service defines the invocation surface shells drive the task list through.
package service

import (
	"context"

	"todo/internal/todo"
)

// Service is everything a shell may do to the task list.
// Shells never touch storage directly.
type Service interface {
	// Add creates a task from text. Blank text is ignored.
	Add(ctx context.Context, text string) error

	// Toggle flips completion of the task with id. Unknown ids are ignored.
	Toggle(ctx context.Context, id int64) error

	// Delete removes the task with id. Unknown ids are ignored.
	Delete(ctx context.Context, id int64) error

	// StartEdit begins renaming the task with id, seeding the draft with
	// its current text. Unknown ids are ignored.
	StartEdit(id int64)

	// UpdateDraft replaces the draft of the edit in progress.
	UpdateDraft(text string)

	// CommitEdit applies the draft. A blank draft deletes the task.
	CommitEdit(ctx context.Context) error

	// CancelEdit discards the draft.
	CancelEdit()

	// SetFilter changes which tasks View returns.
	SetFilter(f todo.Filter)

	// Reset deletes every task and the stored list.
	Reset(ctx context.Context) error

	// View returns what a shell renders.
	View() View
}
