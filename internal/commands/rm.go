package commands

import (
	"context"
	"io"

	"github.com/spf13/pflag"

	"weekplan/internal/config"
	"weekplan/internal/exitcode"
	"weekplan/internal/planner"
	"weekplan/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "weekplan rm <ref>" }
func (c *RmCmd) NeedsService() bool { return true }

func (c *RmCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	target, code, done := resolveArgs(ctx, cfg, svc, args, errOut)
	if done {
		return code
	}

	var (
		removed planner.Task
		applied bool
		err     error
	)
	if target.ID != "" {
		removed, applied, err = svc.DeleteByID(ctx, target.ID)
	} else {
		removed, applied, err = svc.Delete(ctx, target.Index)
	}
	if err != nil {
		return storageFailure(errOut, err)
	}
	if !applied {
		cfg.Log().Debug("rm matched no task", "ref", args[0])
		return exitcode.Success
	}
	cfg.Log().Debug("task deleted", "id", removed.ID)
	return ok(cfg, out)
}
