// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall_NoPanic(t *testing.T) {
	t.Parallel()

	got, err := Call(func() (string, error) {
		return "success", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "success", got)
}

func TestCall_PassesErrorsThrough(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	got, err := Call(func() (int, error) {
		return 7, want
	})

	require.ErrorIs(t, err, want)
	assert.NotErrorIs(t, err, ErrPanic)
	assert.Equal(t, 7, got)
}

func TestCall_RecoverFromPanic(t *testing.T) {
	t.Parallel()

	got, err := Call(func() (string, error) {
		panic("test panic")
	})

	require.ErrorIs(t, err, ErrPanic)
	assert.Contains(t, err.Error(), "test panic")
	assert.Empty(t, got)
}

func TestCall_RecoverFromNilDereference(t *testing.T) {
	t.Parallel()

	_, err := Call(func() (int, error) {
		var m map[string]*int
		return *m["missing"], nil
	})

	require.ErrorIs(t, err, ErrPanic)
	assert.Contains(t, err.Error(), "nil pointer dereference")
}
