package commands

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"weekplan/internal/config"
	"weekplan/internal/exitcode"
	"weekplan/internal/export"
	"weekplan/internal/service"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format string
	out    string
}

// SetFormat sets the --format value (for testing).
func (c *ExportCmd) SetFormat(format string) { c.format = format }

// SetOut sets the --out value (for testing).
func (c *ExportCmd) SetOut(path string) { c.out = path }

func (c *ExportCmd) Name() string       { return "export" }
func (c *ExportCmd) Aliases() []string  { return nil }
func (c *ExportCmd) Synopsis() string   { return "Export the task list as json, csv, yaml or pdf" }
func (c *ExportCmd) Usage() string      { return "weekplan export [--format <fmt>] [--out <path>]" }
func (c *ExportCmd) NeedsService() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.format, "format", "f", "json", "")
	fs.StringVarP(&c.out, "out", "o", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageFailure(errOut, "unexpected argument: %s", args[0])
	}

	format := strings.ToLower(strings.TrimSpace(c.format))
	if format == "" {
		format = "json"
	}
	if format == "pdf" && (c.out == "" || c.out == "-") {
		return usageFailure(errOut, "pdf export needs --out <path>")
	}

	data, err := export.NewExporter(svc).Export(ctx, format)
	if err != nil {
		if errors.Is(err, export.ErrUnknownFormat) {
			return usageFailure(errOut, "unknown format: %s (want one of %s)", format, strings.Join(export.Formats, ", "))
		}
		return storageFailure(errOut, err)
	}

	if c.out == "" || c.out == "-" {
		if _, err := out.Write(data); err != nil {
			return storageFailure(errOut, err)
		}
		return exitcode.Success
	}

	fsys := cfg.Filesystem()
	if err := fsys.MkdirAll(filepath.Dir(c.out), 0o755); err != nil {
		return storageFailure(errOut, err)
	}
	if err := afero.WriteFile(fsys, c.out, data, 0o644); err != nil {
		return storageFailure(errOut, err)
	}
	cfg.Log().Debug("tasks exported", "format", format, "path", c.out, "bytes", len(data))
	return ok(cfg, out)
}
