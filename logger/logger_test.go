// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pypa/gh-action-pypi-publish/env"
	"github.com/pypa/gh-action-pypi-publish/env/mocks"
)

// mockDebugProvider implements DebugProvider for testing
type mockDebugProvider struct {
	debug bool
}

func (m *mockDebugProvider) IsDebug() bool {
	return m.debug
}

func TestUnstructuredLogsCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		envValue string
		expected bool
	}{
		{"Default Case", "", true},
		{"Explicitly True", "true", true},
		{"Explicitly False", "false", false},
		{"Invalid Value", "not-a-bool", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockEnv := mocks.NewMockReader(ctrl)
			mockEnv.EXPECT().Getenv("UNSTRUCTURED_LOGS").Return(tt.envValue)

			if got := unstructuredLogsWithEnv(mockEnv); got != tt.expected {
				t.Errorf("unstructuredLogsWithEnv() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEnvDebugProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"enabled", "1", true},
		{"unset", "", false},
		{"zero", "0", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := &EnvDebugProvider{Reader: env.MapReader{"RUNNER_DEBUG": tt.value}}
			assert.Equal(t, tt.want, p.IsDebug())
		})
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("inside actions uses workflow commands", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := build(env.MapReader{"GITHUB_ACTIONS": "true"}, &mockDebugProvider{}, zapcore.AddSync(&buf))

		l.Debug("selected endpoint")
		l.Warn("careful")

		assert.Equal(t, "::debug::Selected Endpoint\n::warning::careful\n", buf.String())
	})

	t.Run("structured JSON", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := build(env.MapReader{"UNSTRUCTURED_LOGS": "false"}, &mockDebugProvider{}, zapcore.AddSync(&buf))

		l.Info("test message")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "test message", entry["msg"])
	})

	t.Run("unstructured console", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := build(env.MapReader{}, &mockDebugProvider{}, zapcore.AddSync(&buf))

		l.Info("test message")

		output := buf.String()
		assert.Contains(t, output, "test message")
		assert.Contains(t, output, "INFO")
	})

	t.Run("debug level follows provider", func(t *testing.T) {
		t.Parallel()
		var quiet, verbose bytes.Buffer
		build(env.MapReader{}, &mockDebugProvider{debug: false}, zapcore.AddSync(&quiet)).Debug("hidden")
		build(env.MapReader{}, &mockDebugProvider{debug: true}, zapcore.AddSync(&verbose)).Debug("shown")

		assert.Empty(t, quiet.String())
		assert.Contains(t, verbose.String(), "shown")
	})
}

func TestPackageLevelHelpers(t *testing.T) { //nolint:paralleltest // Uses global logger state
	core, observedLogs := observer.New(zapcore.DebugLevel)
	zap.ReplaceGlobals(zap.New(core))

	Debug("d")
	Debugf("d %s", "f")
	Debugw("d", "k", "v")
	Info("i")
	Infof("i %d", 1)
	Warn("w")
	Warnf("w %s", "f")
	Warnw("w", "k", "v")
	Error("e")
	Errorf("e %s", "f")
	Sync()

	entries := observedLogs.All()
	require.Len(t, entries, 10)
	assert.Equal(t, "d f", entries[1].Message)
	assert.Equal(t, "v", entries[2].ContextMap()["k"])
	assert.Equal(t, zapcore.InfoLevel, entries[4].Level)
	assert.Equal(t, "i 1", entries[4].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[9].Level)
}

func TestInitializeWithOptions(t *testing.T) { //nolint:paralleltest // Uses global logger state
	ctrl := gomock.NewController(t)

	mockEnv := mocks.NewMockReader(ctrl)
	mockEnv.EXPECT().Getenv("GITHUB_ACTIONS").Return("")
	mockEnv.EXPECT().Getenv("UNSTRUCTURED_LOGS").Return("false")

	InitializeWithOptions(mockEnv, &mockDebugProvider{debug: true})

	assert.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))
}
