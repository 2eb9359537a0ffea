// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package actions

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Workflow command names understood by the runner.
const (
	CommandAddMask   = "add-mask"
	CommandDebug     = "debug"
	CommandNotice    = "notice"
	CommandWarning   = "warning"
	CommandError     = "error"
	CommandSetOutput = "set-output"
)

var (
	dataEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
	)
	propertyEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
		":", "%3A",
		",", "%2C",
	)
)

// EscapeData escapes a command message so that it stays on one line.
func EscapeData(s string) string {
	return dataEscaper.Replace(s)
}

// EscapeProperty escapes a command property value.
func EscapeProperty(s string) string {
	return propertyEscaper.Replace(s)
}

// Commands writes workflow commands to a stream, usually stderr.
type Commands struct {
	w io.Writer
}

// NewCommands returns a Commands writing to w.
func NewCommands(w io.Writer) *Commands {
	return &Commands{w: w}
}

// Issue writes a single workflow command. Properties are emitted in key order.
func (c *Commands) Issue(command string, properties map[string]string, message string) error {
	var b strings.Builder
	b.WriteString("::")
	b.WriteString(command)
	if len(properties) > 0 {
		keys := make([]string, 0, len(properties))
		for k := range properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte(' ')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(EscapeProperty(properties[k]))
		}
	}
	b.WriteString("::")
	b.WriteString(EscapeData(message))
	b.WriteByte('\n')

	if _, err := io.WriteString(c.w, b.String()); err != nil {
		return fmt.Errorf("failed to write %s command: %w", command, err)
	}
	return nil
}

// AddMask registers value as a secret so the runner redacts it from logs.
func (c *Commands) AddMask(value string) error {
	return c.Issue(CommandAddMask, nil, value)
}

// Debug writes a debug message, shown only when step debugging is enabled.
func (c *Commands) Debug(msg string) error {
	return c.Issue(CommandDebug, nil, msg)
}

// Notice writes a notice annotation.
func (c *Commands) Notice(msg string) error {
	return c.Issue(CommandNotice, nil, msg)
}

// Warning writes a warning annotation.
func (c *Commands) Warning(msg string) error {
	return c.Issue(CommandWarning, nil, msg)
}

// Error writes an error annotation.
func (c *Commands) Error(msg string) error {
	return c.Issue(CommandError, nil, msg)
}

// SetOutput writes the deprecated set-output command.
// Prefer Outputs, which only uses this when GITHUB_OUTPUT is unavailable.
func (c *Commands) SetOutput(name, value string) error {
	return c.Issue(CommandSetOutput, map[string]string{"name": name}, value)
}

// Print writes a plain log line that is not a command.
func (c *Commands) Print(msg string) error {
	if _, err := fmt.Fprintln(c.w, msg); err != nil {
		return fmt.Errorf("failed to write log line: %w", err)
	}
	return nil
}
