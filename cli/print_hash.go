// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/pypa/gh-action-pypi-publish/digest"
)

// PrintHashCommand prints the digests of every file in a directory.
type PrintHashCommand struct {
	Format string `long:"format" choice:"text" choice:"yaml" default:"text" description:"Report layout."`

	Args struct {
		Dir string `positional-arg-name:"dir" required:"yes" description:"Directory holding the distributions."`
	} `positional-args:"yes"`

	streams Streams
}

// NewPrintHashCommand returns a PrintHashCommand writing to streams.
func NewPrintHashCommand(streams Streams) *PrintHashCommand {
	return &PrintHashCommand{streams: streams, Format: string(digest.FormatText)}
}

// Execute implements flags.Commander.
func (c *PrintHashCommand) Execute([]string) error {
	return digest.Report(c.streams.Stdout, c.Args.Dir, digest.Format(c.Format))
}
