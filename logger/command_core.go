// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pypa/gh-action-pypi-publish/actions"
)

// commandCore is a zapcore.Core that renders entries as GitHub Actions
// workflow commands.
//
//	debug  -> ::debug::<Title Cased Message>
//	info   -> plain line
//	warn   -> ::warning::<message>
//	error+ -> ::error::<message>
//
// Fields are appended to the message as sorted key=value pairs.
type commandCore struct {
	zapcore.LevelEnabler
	cmds   *actions.Commands
	fields []zapcore.Field
}

// NewCommandCore returns a core writing workflow commands to w.
func NewCommandCore(w io.Writer, enab zapcore.LevelEnabler) zapcore.Core {
	return &commandCore{
		LevelEnabler: enab,
		cmds:         actions.NewCommands(w),
	}
}

func (c *commandCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

func (c *commandCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *commandCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	switch ent.Level {
	case zapcore.DebugLevel:
		// Caser holds state, so one per call.
		title := cases.Title(language.Und).String(ent.Message)
		return c.cmds.Debug(c.render(title, fields))
	case zapcore.InfoLevel:
		return c.cmds.Print(c.render(ent.Message, fields))
	case zapcore.WarnLevel:
		return c.cmds.Warning(c.render(ent.Message, fields))
	default:
		return c.cmds.Error(c.render(ent.Message, fields))
	}
}

func (*commandCore) Sync() error {
	return nil
}

func (c *commandCore) render(msg string, fields []zapcore.Field) string {
	if len(c.fields) == 0 && len(fields) == 0 {
		return msg
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(msg)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, enc.Fields[k])
	}
	return b.String()
}
