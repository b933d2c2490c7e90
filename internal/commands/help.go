package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"weekplan/internal/config"
	"weekplan/internal/exitcode"
	"weekplan/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "weekplan help [command]" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		cmd, found := DefaultRegistry.Find(args[0])
		if !found {
			return usageFailure(errOut, "unknown command: %s", args[0])
		}
		fmt.Fprintf(out, "Usage: %s\n\n%s\n", cmd.Usage(), cmd.Synopsis())
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			fmt.Fprintf(out, "Aliases: %v\n", aliases)
		}
		return exitcode.Success
	}
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  weekplan                                           List planned tasks
  weekplan list [common flags] [--date <date>]       (alias: ls)
  weekplan add [common flags] [--date <date>] [--time <time>] <title...>
                                                     (alias: create)
  weekplan rm [common flags] <ref>                   (alias: delete)
  weekplan edit [common flags] <ref>
  weekplan draft [common flags] [--discard]
  weekplan week [common flags] [--date <date>]
  weekplan export [common flags] [--format json|csv|yaml|pdf] [--out <path>]
  weekplan help [command]
  weekplan version

A <ref> is a task number as shown by list, or at least 4 leading
characters of a task id.

A <date> is today, tomorrow, yesterday, 2025-04-16, or April 16th, 2025.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
