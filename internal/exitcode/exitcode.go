// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including silent no-ops.
	Success = 0

	// UserError indicates bad arguments, flags, or a malformed task reference.
	UserError = 1

	// ConfigError indicates an unreadable or invalid configuration.
	ConfigError = 2

	// StorageError indicates the task slot could not be read or written.
	StorageError = 3
)
