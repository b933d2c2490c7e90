package commands

import (
	"fmt"
	"io"
	"time"

	"weekplan/internal/config"
	"weekplan/internal/exitcode"
	"weekplan/internal/planner"
)

// storageFailure reports an error reading or writing the task slot.
func storageFailure(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: storage error: %v\n", err)
	return exitcode.StorageError
}

// usageFailure reports a bad argument or flag value.
func usageFailure(errOut io.Writer, format string, args ...any) int {
	fmt.Fprintf(errOut, "error: "+format+"\n", args...)
	return exitcode.UserError
}

// ok prints the success acknowledgement unless --quiet is set.
func ok(cfg *config.Config, out io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// parseDateArg reads a --date value. An empty value means no date.
func parseDateArg(cfg *config.Config, s string) (time.Time, error) {
	switch s {
	case "":
		return time.Time{}, nil
	case "today":
		return cfg.Today(), nil
	case "tomorrow":
		return cfg.Today().AddDate(0, 0, 1), nil
	case "yesterday":
		return cfg.Today().AddDate(0, 0, -1), nil
	}
	d, err := planner.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %s", s)
	}
	return d, nil
}
