// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package http provides validation for the values this module puts on the wire.

# Header Validation

Validate HTTP header values per RFC 7230 before sending them, e.g. bearer
credentials read from the environment:

	if err := http.ValidateHeaderValue("bearer " + token); err != nil {
		// Handle invalid header value
	}

The validator rejects CRLF injection attempts, control characters and values
longer than 16384 bytes.

# Repository URL Validation

	u, err := http.ParseRepositoryURL("https://upload.pypi.org/legacy/")
	// u.Host == "upload.pypi.org"

Repository URLs must use http or https and include a host.
*/
package http
