package commands

import (
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/todo"
)

func registerFilterFlag(fs *flag.FlagSet, p *string) {
	fs.StringVar(p, "filter", "", "")
	fs.StringVar(p, "f", "", "")
}

// applyFilter parses name and sets it on svc.
func applyFilter(svc service.Service, name string, errOut io.Writer) int {
	f, err := todo.ParseFilter(name)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	svc.SetFilter(f)
	return exitcode.Success
}

// resolveRefArgs turns a task reference into a task id. Row numbers count
// rows of the listing under filter, so `todo list -f active` and
// `todo done -f active 2` agree. An @id is passed through unchecked.
func resolveRefArgs(svc service.Service, filter string, args []string, errOut io.Writer) (int64, int) {
	ref, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return 0, exitcode.UserError
	}
	if ref.ByID {
		return ref.ID, exitcode.Success
	}

	if code := applyFilter(svc, filter, errOut); code != exitcode.Success {
		return 0, code
	}
	task, err := findTaskByNumber(svc.View(), ref.Num)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return 0, exitcode.UserError
	}
	return task.ID, exitcode.Success
}

// findTaskByNumber finds a task by its 1-based row number in view.
func findTaskByNumber(view service.View, num int) (todo.Task, error) {
	if num < 1 || num > len(view.Tasks) {
		return todo.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return view.Tasks[num-1], nil
}
