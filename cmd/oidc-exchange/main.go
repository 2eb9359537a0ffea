// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

// Command oidc-exchange prints a PyPI upload token minted through trusted publishing.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pypa/gh-action-pypi-publish/cli"
	"github.com/pypa/gh-action-pypi-publish/env"
	"github.com/pypa/gh-action-pypi-publish/logger"
)

func main() {
	logger.Initialize()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	streams := cli.OSStreams()
	code := cli.Run(cli.NewExchangeCommand(ctx, streams, &env.OSReader{}), streams, os.Args[1:])

	stop()
	logger.Sync()
	os.Exit(code)
}
