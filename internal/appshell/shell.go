package appshell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main wraps a tool entry point with signal-aware context handling so a
// long discovery or comparison run can be interrupted cleanly.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	code = normalize(ctx, os.Stderr, code)

	stop()
	os.Exit(code)
}

// normalize settles the final process exit code. An interrupted run that
// happened to finish clean still exits 130, so a batch driver can tell a
// cancelled comparison apart from a completed one.
func normalize(ctx context.Context, stderr io.Writer, code int) int {
	if ctx.Err() != nil && code == 0 {
		_, _ = fmt.Fprintln(stderr, "run interrupted before all outputs were written")
		return 130
	}
	return code
}
