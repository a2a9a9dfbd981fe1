// Package edit tracks the single in-progress rename of a task.
package edit

import "todo/internal/todo"

// Session is either idle or editing one task with a draft text.
// The zero value is idle.
type Session struct {
	editing bool
	taskID  int64
	draft   string
}

// Start begins editing taskID with currentText as the draft, replacing any
// edit already in progress.
func (s *Session) Start(taskID int64, currentText string) {
	s.editing = true
	s.taskID = taskID
	s.draft = currentText
}

// UpdateDraft replaces the draft text. It is ignored when idle.
func (s *Session) UpdateDraft(text string) {
	if !s.editing {
		return
	}
	s.draft = text
}

// Commit ends the edit and applies the draft to l. A blank draft deletes the
// task. When idle, l is returned unchanged.
func (s *Session) Commit(l todo.List) todo.List {
	if !s.editing {
		return l
	}
	id, draft := s.taskID, s.draft
	s.reset()
	return l.EditCommit(id, draft)
}

// Cancel ends the edit and discards the draft.
func (s *Session) Cancel() {
	s.reset()
}

// Active returns the task being edited and its draft.
func (s *Session) Active() (taskID int64, draft string, ok bool) {
	return s.taskID, s.draft, s.editing
}

func (s *Session) reset() {
	*s = Session{}
}
