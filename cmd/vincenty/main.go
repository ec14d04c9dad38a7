package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/geodesy-tools/vincenty/internal/cli"
	"github.com/geodesy-tools/vincenty/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		logging.NewLogger(stderr, "error", "text").WithError(err).Error("Command failed")
		return 1
	}
	return 0
}
