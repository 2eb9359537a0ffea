// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package oidc obtains OpenID Connect identity tokens from the CI environment
and decodes their claims for diagnostics.

# Providers

A Provider issues an identity token for an audience:

	provider, err := oidc.Detect(&env.OSReader{})
	if err != nil {
		// not running on a supported CI platform
	}
	token, err := provider.Issue(ctx, "pypi")

GitHubProvider implements Provider on GitHub Actions runners, using the
ACTIONS_ID_TOKEN_REQUEST_URL and ACTIONS_ID_TOKEN_REQUEST_TOKEN variables the
runner exports to jobs with the id-token: write permission. A generated mock
is available in the mocks sub-package.

# Claims

DecodeClaims reads the claim set of a token without verifying its signature.
Tokens are relayed to a package index that performs verification; decoded
claims are only ever rendered to help a user debug a refused exchange.
*/
package oidc
