// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package actions

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"newline", "a\nb", "a%0Ab"},
		{"carriage return", "a\r\nb", "a%0D%0Ab"},
		{"percent first", "100%\n", "100%25%0A"},
		{"colons kept", "a: b", "a: b"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, EscapeData(tt.input))
		})
	}
}

func TestEscapeProperty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a%3Ab%2Cc%0A", EscapeProperty("a:b,c\n"))
}

func TestCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(c *Commands) error
		want string
	}{
		{"add-mask", func(c *Commands) error { return c.AddMask("s3cr3t") }, "::add-mask::s3cr3t\n"},
		{"debug", func(c *Commands) error { return c.Debug("hello") }, "::debug::hello\n"},
		{"notice", func(c *Commands) error { return c.Notice("fyi") }, "::notice::fyi\n"},
		{"warning", func(c *Commands) error { return c.Warning("careful") }, "::warning::careful\n"},
		{"multi-line error", func(c *Commands) error { return c.Error("one\ntwo") }, "::error::one%0Atwo\n"},
		{"set-output", func(c *Commands) error { return c.SetOutput("major_version", "v1") }, "::set-output name=major_version::v1\n"},
		{"print", func(c *Commands) error { return c.Print("plain line") }, "plain line\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, tt.call(NewCommands(&buf)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestCommands_IssuePropertyOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cmds := NewCommands(&buf)
	require.NoError(t, cmds.Issue(CommandWarning, map[string]string{"line": "3", "file": "a.py"}, "msg"))
	assert.Equal(t, "::warning file=a.py,line=3::msg\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestCommands_WriteError(t *testing.T) {
	t.Parallel()

	err := NewCommands(failingWriter{}).Debug("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debug command")
}
