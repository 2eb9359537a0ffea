// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

// Package httperr provides error types that carry the HTTP status of a failed call.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// CodedError wraps an error with the HTTP status code of the response that caused it.
// This lets callers branch on, or render, the status without re-reading the response.
type CodedError struct {
	err  error
	code int
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *CodedError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *CodedError) HTTPCode() int {
	return e.code
}

// Reason returns the reason phrase for the status code.
func (e *CodedError) Reason() string {
	return Reason(e.code)
}

// WithCode wraps an error with an HTTP status code.
// If err is nil, WithCode returns nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// Code extracts the HTTP status code from an error chain.
// It returns 0 if err is nil or the chain carries no CodedError.
func Code(err error) int {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return 0
}

// New creates a new error with the given message and HTTP status code.
func New(message string, code int) error {
	return &CodedError{err: errors.New(message), code: code}
}

// IsSuccess reports whether code is a 2xx status.
func IsSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// Reason returns the standard reason phrase for code, or "Unknown Status"
// for codes without one.
func Reason(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return "Unknown Status"
}

// FromResponse returns nil for a 2xx response and a CodedError describing
// the status otherwise. The body is not consumed.
func FromResponse(resp *http.Response) error {
	if IsSuccess(resp.StatusCode) {
		return nil
	}
	return New(fmt.Sprintf("unexpected %d: %s", resp.StatusCode, Reason(resp.StatusCode)), resp.StatusCode)
}
