// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package trustedpublishing

import (
	"fmt"
	"io"

	"github.com/pypa/gh-action-pypi-publish/actions"
	"github.com/pypa/gh-action-pypi-publish/logger"
)

// Reporter writes the outcome of an exchange where the workflow can see it.
type Reporter struct {
	stdout  io.Writer
	cmds    *actions.Commands
	summary *actions.StepSummary
}

// NewReporter returns a Reporter printing results to stdout and workflow
// commands to stderr. summary may be nil when the runner provides none.
func NewReporter(stdout, stderr io.Writer, summary *actions.StepSummary) *Reporter {
	return &Reporter{
		stdout:  stdout,
		cmds:    actions.NewCommands(stderr),
		summary: summary,
	}
}

// Fail records err in the step summary and as an error annotation.
func (r *Reporter) Fail(err error) error {
	message := err.Error()

	if r.summary == nil {
		logger.Warn("step summary is unavailable, failure details are only in the job log")
	} else if serr := r.summary.Append(renderSummary(message)); serr != nil {
		logger.Warnf("failed to write step summary: %v", serr)
	}

	return r.cmds.Error(annotationPrefix + message)
}

// Succeed masks token on the diagnostic stream, then prints it as the only stdout line.
func (r *Reporter) Succeed(token string) error {
	if err := r.cmds.AddMask(token); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.stdout, token); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}
