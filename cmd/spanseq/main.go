// Package main is the entry point for the spanseq command line tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK     = 0
	exitError  = 1
	exitAbsent = 2
)

// errAbsent reports that a search produced no result.
var errAbsent = errors.New("no match")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		in:     stdin,
		out:    stdout,
		errOut: stderr,
		logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if errors.Is(err, errAbsent) {
			a.logger.Debug("no result", "err", err)
			return exitAbsent
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}
