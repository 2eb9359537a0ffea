// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package cli holds the commands behind the action's helper binaries.

Each command is a go-flags options struct with an Execute method. Flags are
declared with struct tags, and the process environment, output streams and
network clients are injected through constructors so the commands can be
exercised without a runner.

# Commands

  - ExchangeCommand trades the job's OIDC identity for an upload token.
  - PrintHashCommand lists the digests of the distributions to be uploaded.
  - TagCommand derives the floating major and minor tags of a release.

# Exit Status

Run parses the arguments, executes a command and maps the outcome to an exit
status: 0 on success or help, 1 otherwise. A command that has already reported
its failure to the workflow returns an error wrapping ErrReported, which Run
does not print again.

	os.Exit(cli.Run(cli.NewPrintHashCommand(streams), streams, os.Args[1:]))
*/
package cli
