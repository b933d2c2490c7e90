package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"weekplan/internal/config"
	"weekplan/internal/exitcode"
	"weekplan/internal/output"
	"weekplan/internal/service"
)

func init() {
	Register(&DraftCmd{})
}

// DraftCmd implements the draft command.
type DraftCmd struct {
	discard bool
}

// SetDiscard sets the --discard flag (for testing).
func (c *DraftCmd) SetDiscard(discard bool) { c.discard = discard }

func (c *DraftCmd) Name() string       { return "draft" }
func (c *DraftCmd) Aliases() []string  { return nil }
func (c *DraftCmd) Synopsis() string   { return "Show or discard the pending draft" }
func (c *DraftCmd) Usage() string      { return "weekplan draft [--discard]" }
func (c *DraftCmd) NeedsService() bool { return true }

func (c *DraftCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.discard, "discard", false, "")
}

func (c *DraftCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageFailure(errOut, "unexpected argument: %s", args[0])
	}

	if c.discard {
		if err := svc.DiscardDraft(ctx); err != nil {
			return storageFailure(errOut, err)
		}
		return ok(cfg, out)
	}

	d, present, err := svc.Draft(ctx)
	if err != nil {
		return storageFailure(errOut, err)
	}
	if !present || d.IsZero() {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no draft")
		}
		return exitcode.Success
	}
	output.FormatDraft(out, d, cfg.DateLayout)
	return exitcode.Success
}
