// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/todo"
)

// Checkbox markers.
const (
	MarkOpen = "[ ]"
	MarkDone = "[x]"
)

// FormatTask formats a task row.
// Format: "{N:>4}  {MARK}  {TEXT}\n" (4-wide right-aligned number, two spaces, checkbox, two spaces, text)
func FormatTask(w io.Writer, num int, task todo.Task) {
	fmt.Fprintf(w, "%4d  %s  %s\n", num, mark(task), normalizeText(task.Text))
}

// FormatTaskWithID formats a task row followed by its @id reference.
func FormatTaskWithID(w io.Writer, num int, task todo.Task) {
	fmt.Fprintf(w, "%4d  %s  %s  @%d\n", num, mark(task), normalizeText(task.Text), task.ID)
}

// FormatSummary formats the count line printed under a listing.
func FormatSummary(w io.Writer, filter todo.Filter, active, completed int) {
	fmt.Fprintf(w, "%s left, %d completed (%s)\n", plural(active, "item"), completed, filter)
}

func mark(task todo.Task) string {
	if task.Completed {
		return MarkDone
	}
	return MarkOpen
}

// normalizeText keeps each task on one line.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
