package todo

import "strings"

// Add prepends a task holding the trimmed text. Blank text leaves the list
// unchanged.
func (l List) Add(rawText string) List {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return l
	}
	out := make(List, 0, len(l)+1)
	out = append(out, Task{ID: l.NewID(), Text: text})
	return append(out, l...)
}

// Toggle flips the completion flag of the task with the given id.
func (l List) Toggle(id int64) List {
	i := l.index(id)
	if i < 0 {
		return l
	}
	out := l.Clone()
	out[i].Completed = !out[i].Completed
	return out
}

// Delete removes the task with the given id.
func (l List) Delete(id int64) List {
	i := l.index(id)
	if i < 0 {
		return l
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...)
}

// EditCommit renames the task with the given id to the trimmed text,
// keeping its completion flag. Committing blank text deletes the task.
func (l List) EditCommit(id int64, rawText string) List {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return l.Delete(id)
	}
	i := l.index(id)
	if i < 0 {
		return l
	}
	out := l.Clone()
	out[i].Text = text
	return out
}
