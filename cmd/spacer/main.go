// Package main provides the entry point for the spacer CLI.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/mrz1836/spacer/internal/cli"
	"github.com/mrz1836/spacer/internal/errors"
)

// Set at build time via ldflags.
//
//nolint:gochecknoglobals // ldflags targets
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	ctx := context.Background()
	err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})
	if err == nil {
		return
	}

	var interrupted *cli.InterruptedError
	if !stderrors.As(err, &interrupted) {
		message, action := errors.Actionable(err)
		_, _ = fmt.Fprintln(os.Stderr, "Error: "+message)
		if action != "" {
			_, _ = fmt.Fprintln(os.Stderr, "  "+action)
		}
		if message != err.Error() {
			_, _ = fmt.Fprintln(os.Stderr, "  ("+err.Error()+")")
		}
	}

	os.Exit(cli.ExitCodeForError(err))
}
