// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("MY_VAR")

# Testing

The Reader interface allows injecting a mock in tests to avoid relying on
real environment variables. A generated mock is available in the mocks
sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("MY_VAR").Return("test-value")

	result := myFunc(mock)

# Action Inputs

GitHub Actions exports each action input as INPUT_<NAME>. Input resolves a
name against both the hyphenated and the underscored spelling:

	url := env.Input(reader, "repository-url")
	// INPUT_REPOSITORY-URL, then INPUT_REPOSITORY_URL

# Design

Production code accepts an env.Reader, while tests substitute the generated
mock or a MapReader literal.
*/
package env
