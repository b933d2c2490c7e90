package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"

	"weekplan/internal/config"
	"weekplan/internal/exitcode"
	"weekplan/internal/output"
	"weekplan/internal/planner"
	"weekplan/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command, the default when no command is given.
type ListCmd struct {
	date string
}

// SetDate sets the --date value (for testing).
func (c *ListCmd) SetDate(date string) { c.date = date }

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List planned tasks" }
func (c *ListCmd) Usage() string      { return "weekplan list [--date <date>]" }
func (c *ListCmd) NeedsService() bool { return true }

func (c *ListCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.date, "date", "d", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageFailure(errOut, "unexpected argument: %s", args[0])
	}

	day, err := parseDateArg(cfg, c.date)
	if err != nil {
		return usageFailure(errOut, "%v", err)
	}
	if !day.IsZero() {
		return c.listDay(ctx, cfg, svc, day, out, errOut)
	}

	tasks, err := svc.Tasks(ctx)
	if err != nil {
		return storageFailure(errOut, err)
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks planned")
		}
		return exitcode.Success
	}
	output.FormatTasks(out, tasks)
	return exitcode.Success
}

// listDay prints the tasks planned for day, numbered by their position in
// the full list so the numbers stay valid refs.
func (c *ListCmd) listDay(ctx context.Context, cfg *config.Config, svc service.Service, day time.Time, out, errOut io.Writer) int {
	tasks, err := svc.On(ctx, day)
	if err != nil {
		return storageFailure(errOut, err)
	}
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintf(out, "nothing planned for %s\n", planner.FormatDate(day, cfg.DateLayout))
		}
		return exitcode.Success
	}
	for _, t := range tasks {
		i, err := svc.IndexOf(ctx, t.ID)
		if err != nil {
			return storageFailure(errOut, err)
		}
		output.FormatTask(out, i+1, t)
	}
	return exitcode.Success
}
