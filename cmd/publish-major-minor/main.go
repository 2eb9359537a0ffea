// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

// Command publish-major-minor sets the floating major and minor tag outputs of a release.
package main

import (
	"os"

	"github.com/pypa/gh-action-pypi-publish/cli"
	"github.com/pypa/gh-action-pypi-publish/env"
	"github.com/pypa/gh-action-pypi-publish/logger"
)

func main() {
	logger.Initialize()

	streams := cli.OSStreams()
	code := cli.Run(cli.NewTagCommand(streams, &env.OSReader{}), streams, os.Args[1:])

	logger.Sync()
	os.Exit(code)
}
