// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package output provides validation functions for step output names.

Outputs are written to the runner's output file as name=value lines and read
back as steps.<id>.outputs.<name>. A name that does not survive that round trip
silently produces an empty output, so names are checked before they are written.

# Name Validation

	if err := output.ValidateName("major_version"); err != nil {
		// Handle invalid output name
	}

# Examples

Valid names:

	"major_version"
	"minor-version"
	"_internal"

Invalid names:

	""                  // empty
	"1st"               // leading digit
	"major version"     // space
	"tag=name"          // separator
*/
package output
