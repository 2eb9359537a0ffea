// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

// Package http provides validation functions for repository URLs and HTTP header values.
package http

import (
	"fmt"
	"net/url"

	"golang.org/x/net/http/httpguts"
)

// maxHeaderValueLength bounds header values; identity tokens stay well below it.
const maxHeaderValueLength = 16384

// ValidateHeaderValue validates that a string is a valid HTTP header value per RFC 7230.
// It checks for CRLF injection and control characters.
func ValidateHeaderValue(value string) error {
	if value == "" {
		return fmt.Errorf("header value cannot be empty")
	}

	if len(value) > maxHeaderValueLength {
		return fmt.Errorf("header value exceeds maximum length of %d bytes", maxHeaderValueLength)
	}

	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("invalid HTTP header value: contains control characters")
	}

	return nil
}

// ParseRepositoryURL parses the package index repository URL given to the
// action. Only the host of the result is meaningful to callers; the path
// (typically /legacy/) names the upload endpoint and is ignored.
//
// A valid repository URL must:
//   - Use the http or https scheme
//   - Include a host
func ParseRepositoryURL(repositoryURL string) (*url.URL, error) {
	if repositoryURL == "" {
		return nil, fmt.Errorf("repository URL cannot be empty")
	}

	parsed, err := url.Parse(repositoryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid repository URL: %w", err)
	}

	switch parsed.Scheme {
	case "https", "http":
	case "":
		return nil, fmt.Errorf("repository URL must include a scheme (e.g., https://): %s", repositoryURL)
	default:
		return nil, fmt.Errorf("repository URL must use http or https, got %q: %s", parsed.Scheme, repositoryURL)
	}

	if parsed.Host == "" {
		return nil, fmt.Errorf("repository URL must include a host: %s", repositoryURL)
	}

	return parsed, nil
}
