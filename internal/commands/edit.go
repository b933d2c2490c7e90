package commands

import (
	"context"
	"io"

	"github.com/spf13/pflag"

	"weekplan/internal/config"
	"weekplan/internal/exitcode"
	"weekplan/internal/output"
	"weekplan/internal/planner"
	"weekplan/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command: the task leaves the list and its
// fields become the pending draft until the next add.
type EditCmd struct{}

func (c *EditCmd) Name() string       { return "edit" }
func (c *EditCmd) Aliases() []string  { return nil }
func (c *EditCmd) Synopsis() string   { return "Take a task back into the draft for changes" }
func (c *EditCmd) Usage() string      { return "weekplan edit <ref>" }
func (c *EditCmd) NeedsService() bool { return true }

func (c *EditCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	target, code, done := resolveArgs(ctx, cfg, svc, args, errOut)
	if done {
		return code
	}

	var (
		d       planner.Draft
		applied bool
		err     error
	)
	if target.ID != "" {
		d, applied, err = svc.EditByID(ctx, target.ID)
	} else {
		d, applied, err = svc.Edit(ctx, target.Index)
	}
	if err != nil {
		return storageFailure(errOut, err)
	}
	if !applied {
		cfg.Log().Debug("edit matched no task", "ref", args[0])
		return exitcode.Success
	}
	output.FormatDraft(out, d, cfg.DateLayout)
	return exitcode.Success
}
