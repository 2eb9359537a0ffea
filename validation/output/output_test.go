// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "snake case", input: "major_version"},
		{name: "dashes", input: "minor-version"},
		{name: "leading underscore", input: "_internal"},
		{name: "mixed case", input: "OriginalTag"},
		{name: "empty", input: "", wantErr: "cannot be empty"},
		{name: "whitespace", input: "   ", wantErr: "cannot be empty"},
		{name: "null byte", input: "tag\x00name", wantErr: "null bytes"},
		{name: "leading digit", input: "1st", wantErr: "must start with"},
		{name: "space", input: "major version", wantErr: "must start with"},
		{name: "separator", input: "tag=name", wantErr: "must start with"},
		{name: "heredoc marker", input: "tag<<EOF", wantErr: "must start with"},
		{name: "newline", input: "tag\nname", wantErr: "must start with"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateName(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
