// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
)

// ErrReported marks a failure that was already written to the workflow.
var ErrReported = errors.New("failure reported")

// Streams are the output streams of a command.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// OSStreams returns the process streams.
func OSStreams() Streams {
	return Streams{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run parses args into cmd, executes it and returns the process exit status.
// Help goes to stdout with status 0. Parse and execution errors go to stderr
// with status 1, except errors wrapping ErrReported, which are not printed.
func Run(cmd flags.Commander, streams Streams, args []string) int {
	parser := flags.NewParser(cmd, flags.HelpFlag|flags.PassDoubleDash)

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(streams.Stdout, ferr.Message)
			return 0
		}
		fmt.Fprintln(streams.Stderr, err)
		return 1
	}

	if err := cmd.Execute(rest); err != nil {
		if !errors.Is(err, ErrReported) {
			fmt.Fprintln(streams.Stderr, err)
		}
		return 1
	}
	return 0
}
