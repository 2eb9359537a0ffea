// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package actions

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/pypa/gh-action-pypi-publish/env"
	"github.com/pypa/gh-action-pypi-publish/validation/output"
)

// Environment variables exported by the runner.
const (
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvStepSummary   = "GITHUB_STEP_SUMMARY"
	EnvOutput        = "GITHUB_OUTPUT"
	EnvRunnerDebug   = "RUNNER_DEBUG"
)

// ErrStepSummaryUnavailable is returned when the runner did not provide a step summary file.
var ErrStepSummaryUnavailable = errors.New("step summary file is not available")

// IsActions reports whether the process runs inside a GitHub Actions job.
func IsActions(r env.Reader) bool {
	return r.Getenv(EnvGitHubActions) == "true"
}

// StepSummary appends Markdown to the job's step summary.
type StepSummary struct {
	path string
}

// NewStepSummary returns the step summary named by GITHUB_STEP_SUMMARY.
func NewStepSummary(r env.Reader) (*StepSummary, error) {
	path := r.Getenv(EnvStepSummary)
	if path == "" {
		return nil, fmt.Errorf("%w: %s is unset", ErrStepSummaryUnavailable, EnvStepSummary)
	}
	return &StepSummary{path: path}, nil
}

// Path returns the summary file path.
func (s *StepSummary) Path() string {
	return s.path
}

// Append writes markdown followed by a newline to the end of the summary.
func (s *StepSummary) Append(markdown string) error {
	return appendFile(s.path, markdown+"\n")
}

// Outputs records step outputs.
type Outputs struct {
	path string
	cmds *Commands
}

// NewOutputs returns Outputs backed by GITHUB_OUTPUT when set, and by the
// legacy set-output command on cmds otherwise.
func NewOutputs(r env.Reader, cmds *Commands) *Outputs {
	return &Outputs{path: r.Getenv(EnvOutput), cmds: cmds}
}

// Set records an output value.
func (o *Outputs) Set(name, value string) error {
	if err := output.ValidateName(name); err != nil {
		return err
	}
	if o.path == "" {
		return o.cmds.SetOutput(name, value)
	}

	if !strings.ContainsAny(value, "\r\n") {
		return appendFile(o.path, fmt.Sprintf("%s=%s\n", name, value))
	}

	delimiter := "ghadelimiter_" + uuid.NewString()
	if strings.Contains(value, delimiter) {
		return fmt.Errorf("output %q collides with its delimiter", name)
	}
	return appendFile(o.path, fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter))
}

func appendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
