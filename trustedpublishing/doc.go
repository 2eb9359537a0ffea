// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package trustedpublishing exchanges a CI identity token for a short-lived
package index upload token.

# Exchange

The exchange is a linear pipeline against the index host taken from the
repository URL:

 1. GET /_/oidc/audience discovers the audience the index expects.
 2. The identity provider issues a token for that audience.
 3. POST /_/oidc/github/mint-token trades it for an upload token.

	ex, err := trustedpublishing.New("https://upload.pypi.org/legacy/", provider)
	if err != nil {
		return err
	}
	token, err := ex.Exchange(ctx)

No stage is retried. Every failure is an *ExchangeError whose message is
ready to show to a user and whose kind matches one of the Err* sentinels:

	if errors.Is(err, trustedpublishing.ErrDiscoveryDisabled) {
		// the index has trusted publishing turned off
	}

# Reporting

Reporter is the terminal boundary used by the oidc-exchange command. Fail
appends the message to the step summary and emits an error annotation;
Succeed masks the token on the diagnostic stream and prints it on stdout.
*/
package trustedpublishing
