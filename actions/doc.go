// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package actions speaks the GitHub Actions runner protocol: workflow commands
written to a stream, and the per-step files the runner exposes through
environment variables.

# Workflow Commands

	cmds := actions.NewCommands(os.Stderr)
	_ = cmds.AddMask(secret)          // ::add-mask::<secret>
	_ = cmds.Debug("resolved index")  // ::debug::resolved index
	_ = cmds.Error("line1\nline2")    // ::error::line1%0Aline2

Messages are escaped the way the runner expects, so multi-line messages
survive as a single annotation.

# Step Files

StepSummary appends Markdown to the file named by GITHUB_STEP_SUMMARY.
Outputs records step outputs in the file named by GITHUB_OUTPUT, falling back
to the deprecated set-output command on runners that do not provide it.
*/
package actions
