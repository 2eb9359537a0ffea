// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

// Package logger provides the process logger for the publishing helpers.
// Everything is written to stderr: stdout carries command results that
// callers capture. Inside a GitHub Actions job entries become workflow
// commands, elsewhere they use zap's console or JSON encoding.
package logger

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pypa/gh-action-pypi-publish/actions"
	"github.com/pypa/gh-action-pypi-publish/env"
)

// Debug logs a message at debug level using the singleton logger.
func Debug(msg string) {
	zap.S().Debug(msg)
}

// Debugf logs a message at debug level using the singleton logger.
func Debugf(msg string, args ...any) {
	zap.S().Debugf(msg, args...)
}

// Debugw logs a message at debug level using the singleton logger with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Info logs a message at info level using the singleton logger.
func Info(msg string) {
	zap.S().Info(msg)
}

// Infof logs a message at info level using the singleton logger.
func Infof(msg string, args ...any) {
	zap.S().Infof(msg, args...)
}

// Warn logs a message at warning level using the singleton logger.
func Warn(msg string) {
	zap.S().Warn(msg)
}

// Warnf logs a message at warning level using the singleton logger.
func Warnf(msg string, args ...any) {
	zap.S().Warnf(msg, args...)
}

// Warnw logs a message at warning level using the singleton logger with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Error logs a message at error level using the singleton logger.
func Error(msg string) {
	zap.S().Error(msg)
}

// Errorf logs a message at error level using the singleton logger.
func Errorf(msg string, args ...any) {
	zap.S().Errorf(msg, args...)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = zap.L().Sync()
}

// DebugProvider is an interface for checking if debug mode is enabled.
type DebugProvider interface {
	IsDebug() bool
}

// EnvDebugProvider enables debug logging when the runner has debug logging
// turned on (RUNNER_DEBUG=1).
type EnvDebugProvider struct {
	Reader env.Reader
}

// IsDebug implements DebugProvider.
func (p *EnvDebugProvider) IsDebug() bool {
	return p.Reader.Getenv(actions.EnvRunnerDebug) == "1"
}

// Initialize creates and configures the logger from the process environment.
func Initialize() {
	reader := &env.OSReader{}
	InitializeWithOptions(reader, &EnvDebugProvider{Reader: reader})
}

// InitializeWithOptions creates and configures the logger with custom environment reader and debug provider.
// This provides full control over logger configuration for both testing and production use.
func InitializeWithOptions(envReader env.Reader, debugProvider DebugProvider) {
	zap.ReplaceGlobals(build(envReader, debugProvider, zapcore.Lock(os.Stderr)))
}

func build(envReader env.Reader, debugProvider DebugProvider, out zapcore.WriteSyncer) *zap.Logger {
	if actions.IsActions(envReader) {
		// The runner only displays ::debug:: lines when step debugging is on,
		// so the command core always emits them.
		return zap.New(NewCommandCore(out, zapcore.DebugLevel))
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debugProvider.IsDebug() {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	var encoder zapcore.Encoder
	if unstructuredLogsWithEnv(envReader) {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		encoder = zapcore.NewConsoleEncoder(cfg)
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	return zap.New(zapcore.NewCore(encoder, out, level))
}

func unstructuredLogsWithEnv(envReader env.Reader) bool {
	unstructuredLogs, err := strconv.ParseBool(envReader.Getenv("UNSTRUCTURED_LOGS"))
	if err != nil {
		// unset or unparsable: default to human-readable output
		return true
	}
	return unstructuredLogs
}
