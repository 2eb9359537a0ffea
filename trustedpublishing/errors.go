// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package trustedpublishing

import "errors"

// Failure kinds. Every error returned by an Exchanger matches exactly one.
var (
	// ErrDiscoveryDisabled indicates the index supports trusted publishing but refuses it (403).
	ErrDiscoveryDisabled = errors.New("trusted publishing disabled")

	// ErrDiscoveryUnsupported indicates the index has no audience endpoint (404).
	ErrDiscoveryUnsupported = errors.New("trusted publishing unsupported")

	// ErrDiscoveryUnexpected indicates any other non-success audience response.
	ErrDiscoveryUnexpected = errors.New("unexpected audience response")

	// ErrDiscoveryMalformed indicates a successful audience response without a usable audience.
	ErrDiscoveryMalformed = errors.New("malformed audience response")

	// ErrIndexUnreachable indicates the index could not be contacted at all.
	ErrIndexUnreachable = errors.New("index unreachable")

	// ErrIdentityProviderFailure indicates the CI platform did not issue an identity token.
	ErrIdentityProviderFailure = errors.New("identity token retrieval failed")

	// ErrServerMalformedResponse indicates the mint response was not JSON, or lacked a token.
	ErrServerMalformedResponse = errors.New("malformed token response")

	// ErrTokenExchangeRefused indicates the index rejected the identity token.
	ErrTokenExchangeRefused = errors.New("token exchange refused")
)

// ExchangeError is a terminal exchange failure.
type ExchangeError struct {
	kind    error
	message string
	cause   error
}

func newExchangeError(kind error, message string, cause error) *ExchangeError {
	return &ExchangeError{kind: kind, message: message, cause: cause}
}

// Error returns the rendered, user-facing message.
func (e *ExchangeError) Error() string {
	return e.message
}

// Kind returns the failure kind sentinel.
func (e *ExchangeError) Kind() error {
	return e.kind
}

// Unwrap exposes both the kind and the underlying cause to errors.Is and errors.As.
func (e *ExchangeError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}
