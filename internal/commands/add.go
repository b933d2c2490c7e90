package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"weekplan/internal/config"
	"weekplan/internal/exitcode"
	"weekplan/internal/planner"
	"weekplan/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command. Fields left empty are taken from the
// pending draft, so "add" alone resubmits a task opened with "edit".
type AddCmd struct {
	date string
	time string
}

// SetDate sets the --date value (for testing).
func (c *AddCmd) SetDate(date string) { c.date = date }

// SetTime sets the --time value (for testing).
func (c *AddCmd) SetTime(tm string) { c.time = tm }

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Plan a task" }
func (c *AddCmd) Usage() string      { return "weekplan add [--date <date>] [--time <time>] <title...>" }
func (c *AddCmd) NeedsService() bool { return true }

func (c *AddCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.date, "date", "d", "", "")
	fs.StringVarP(&c.time, "time", "t", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	title := strings.TrimSpace(strings.Join(args, " "))

	date, err := parseDateArg(cfg, c.date)
	if err != nil {
		return usageFailure(errOut, "%v", err)
	}

	task, err := svc.Submit(ctx, title, date, c.time)
	if err != nil {
		if planner.IsValidation(err) {
			cfg.Log().Debug("add declined", "reason", err)
			return exitcode.Success
		}
		return storageFailure(errOut, err)
	}

	cfg.Log().Debug("task planned", "id", task.ID, "date", task.Date)
	return ok(cfg, out)
}
