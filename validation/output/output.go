// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

// Package output provides validation functions for step output names.
package output

import (
	"fmt"
	"regexp"
	"strings"
)

var validNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_\-]*$`)

// ValidateName validates that a step output name can be referenced from a
// workflow expression: it starts with a letter or underscore and continues
// with alphanumerics, underscores and dashes.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("output name cannot be empty or consist only of whitespace")
	}

	// Check for null bytes explicitly
	if strings.Contains(name, "\x00") {
		return fmt.Errorf("output name cannot contain null bytes")
	}

	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("output name must start with a letter or underscore and contain only alphanumeric characters, underscores and dashes: %q", name)
	}

	return nil
}
