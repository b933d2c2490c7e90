package commands

import (
	"context"
	"io"

	"github.com/spf13/pflag"

	"weekplan/internal/config"
	"weekplan/internal/exitcode"
	"weekplan/internal/output"
	"weekplan/internal/service"
)

func init() {
	Register(&WeekCmd{})
}

// WeekCmd implements the week command.
type WeekCmd struct {
	date string
}

// SetDate sets the --date value (for testing).
func (c *WeekCmd) SetDate(date string) { c.date = date }

func (c *WeekCmd) Name() string       { return "week" }
func (c *WeekCmd) Aliases() []string  { return nil }
func (c *WeekCmd) Synopsis() string   { return "Show the tasks of one week, day by day" }
func (c *WeekCmd) Usage() string      { return "weekplan week [--date <date>]" }
func (c *WeekCmd) NeedsService() bool { return true }

func (c *WeekCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.date, "date", "d", "", "")
}

func (c *WeekCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageFailure(errOut, "unexpected argument: %s", args[0])
	}

	anchor, err := parseDateArg(cfg, c.date)
	if err != nil {
		return usageFailure(errOut, "%v", err)
	}
	if anchor.IsZero() {
		anchor = cfg.Today()
	}

	days, err := svc.Week(ctx, anchor, cfg.WeekStart)
	if err != nil {
		return storageFailure(errOut, err)
	}
	output.NewWeekView(out, cfg.DateLayout).Render(out, days, cfg.Today())
	return exitcode.Success
}
