// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

// Command print-hash shows the digests of the distributions about to be uploaded.
package main

import (
	"os"

	"github.com/pypa/gh-action-pypi-publish/cli"
)

func main() {
	streams := cli.OSStreams()
	os.Exit(cli.Run(cli.NewPrintHashCommand(streams), streams, os.Args[1:]))
}
