// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pypa/gh-action-pypi-publish/actions"
	"github.com/pypa/gh-action-pypi-publish/env"
)

func runTag(t *testing.T, r env.Reader, ref string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	cmd := NewTagCommand(Streams{Stdout: &stdout}, r)
	args, err := flags.NewParser(cmd, flags.None).ParseArgs([]string{ref})
	require.NoError(t, err)
	err = cmd.Execute(args)
	return stdout.String(), err
}

func TestTagCommand_LegacyOutputs(t *testing.T) {
	t.Parallel()

	out, err := runTag(t, env.MapReader{}, "refs/tags/v1.12.4")
	require.NoError(t, err)
	assert.Equal(t, "tag_name: v1.12.4\n"+
		"version: 1.12.4\n"+
		"Creating new major and minor tags!\n"+
		"::set-output name=original_tag_name::v1.12.4\n"+
		"::set-output name=major_version::v1\n"+
		"::set-output name=minor_version::v1.12\n", out)
}

func TestTagCommand_OutputFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "output")
	out, err := runTag(t, env.MapReader{actions.EnvOutput: path}, "refs/tags/v2.0.1")
	require.NoError(t, err)
	assert.NotContains(t, out, "::set-output")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original_tag_name=v2.0.1\nmajor_version=v2\nminor_version=v2.0\n", string(data))
}

func TestTagCommand_Prerelease(t *testing.T) {
	t.Parallel()

	for _, ref := range []string{"refs/tags/v1.13.0rc1", "refs/tags/v1.13.0.dev0", "refs/tags/v2.0.0-beta.1"} {
		out, err := runTag(t, env.MapReader{}, ref)
		require.NoError(t, err, ref)
		assert.Contains(t, out, "No tags created (dev or pre version)!\n", ref)
		assert.NotContains(t, out, "::set-output", ref)
	}
}

func TestTagCommand_InvalidVersion(t *testing.T) {
	t.Parallel()

	out, err := runTag(t, env.MapReader{}, "refs/tags/nightly")
	require.Error(t, err)
	assert.Equal(t, "tag_name: nightly\n", out)
}
