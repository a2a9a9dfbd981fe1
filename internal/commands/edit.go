package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command: start an edit, replace the draft,
// commit. An explicitly empty text ("") deletes the task.
type EditCmd struct {
	filter string
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"rename"} }
func (c *EditCmd) Synopsis() string  { return "Rename a task" }
func (c *EditCmd) Usage() string     { return "todo edit [--filter <f>] <ref> <text...>" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	registerFilterFlag(fs, &c.filter)
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		if len(args) == 0 {
			fmt.Fprintln(errOut, "error: task reference required")
		} else {
			fmt.Fprintln(errOut, "error: text required")
		}
		return exitcode.UserError
	}

	id, code := resolveRefArgs(svc, c.filter, args[:1], errOut)
	if code != exitcode.Success {
		return code
	}

	svc.StartEdit(id)
	svc.UpdateDraft(strings.Join(args[1:], " "))
	if err := svc.CommitEdit(ctx); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
