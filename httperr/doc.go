// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr provides error types that carry the HTTP status of a failed
call to a remote index.

# Basic Usage

Turn a response into an error when it is not a success:

	if err := httperr.FromResponse(resp); err != nil {
		return fmt.Errorf("audience retrieval failed: %w", err)
	}

Wrap an existing error with a status code:

	err := httperr.WithCode(err, http.StatusForbidden)

# Extracting Status Codes

	code := httperr.Code(err)
	// Returns the code if err contains a CodedError, 0 otherwise

	var coded *httperr.CodedError
	if errors.As(err, &coded) {
		fmt.Printf("%d: %s", coded.HTTPCode(), coded.Reason())
	}
*/
package httperr
