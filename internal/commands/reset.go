package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&ResetCmd{})
}

// ResetCmd implements the reset command.
type ResetCmd struct {
	force bool
}

// SetForce sets the force flag (for testing).
func (c *ResetCmd) SetForce(force bool) {
	c.force = force
}

func (c *ResetCmd) Name() string      { return "reset" }
func (c *ResetCmd) Aliases() []string { return nil }
func (c *ResetCmd) Synopsis() string  { return "Delete every task" }
func (c *ResetCmd) Usage() string     { return "todo reset [common flags] --force" }
func (c *ResetCmd) NeedsStore() bool  { return true }

func (c *ResetCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *ResetCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	view := svc.View()
	n := view.Active + view.Completed
	if n > 0 && !c.force {
		fmt.Fprintf(errOut, "error: list has %d tasks (use --force)\n", n)
		return exitcode.UserError
	}

	if err := svc.Reset(ctx); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
