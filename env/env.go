// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import (
	"os"
	"strings"
)

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// MapReader implements Reader over a fixed set of variables.
type MapReader map[string]string

// Getenv returns the value stored under key, or "" when absent.
func (m MapReader) Getenv(key string) string {
	return m[key]
}

// InputKey returns the environment variable name the runner uses for the
// action input called name, e.g. "repository-url" -> "INPUT_REPOSITORY-URL".
func InputKey(name string) string {
	return "INPUT_" + strings.ToUpper(name)
}

// Input looks up an action input. The runner exports inputs with the name
// upper-cased and hyphens kept, but composite actions commonly re-export them
// with underscores, so both spellings are accepted, hyphenated first.
func Input(r Reader, name string) string {
	key := InputKey(name)
	if v := r.Getenv(key); v != "" {
		return v
	}
	return r.Getenv(strings.ReplaceAll(key, "-", "_"))
}
