package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"medical-panel/errors"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes to provide meaningful status to the calling shell or scheduler.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
	exitInput   = 3
	exitOutput  = 4
)

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Panel terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run executes the command line and maps the outcome to an exit code.
// Deferred cleanups run before main exits.
func run(args []string, out io.Writer) (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return exitCode(err), err
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case stderrors.Is(err, errors.ErrConfig):
		return exitConfig
	case stderrors.Is(err, errors.ErrInput):
		return exitInput
	case stderrors.Is(err, errors.ErrOutput):
		return exitOutput
	default:
		return exitRuntime
	}
}
