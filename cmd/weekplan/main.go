// Package main is the entry point for the weekplan CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"weekplan/internal/cli"
	"weekplan/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, cli.PlannerFactory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
