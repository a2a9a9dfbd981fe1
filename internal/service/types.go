package service

import "todo/internal/todo"

// View is a read-only snapshot for rendering.
type View struct {
	Tasks     []todo.Task // visible under Filter, newest first
	Filter    todo.Filter
	Edit      *EditState // nil when no edit is in progress
	Active    int        // across the whole list, not just Tasks
	Completed int
	Version   uint64
}

// EditState is the edit in progress.
type EditState struct {
	TaskID int64
	Draft  string
}
