// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/pypa/gh-action-pypi-publish/actions"
	"github.com/pypa/gh-action-pypi-publish/env"
	"github.com/pypa/gh-action-pypi-publish/tagver"
)

// Step outputs set for a final release.
const (
	OutputOriginalTagName = "original_tag_name"
	OutputMajorVersion    = "major_version"
	OutputMinorVersion    = "minor_version"
)

// TagCommand sets the floating tag outputs for a release tag ref.
type TagCommand struct {
	Args struct {
		Ref string `positional-arg-name:"tag-ref" required:"yes" description:"Ref of the pushed tag, e.g. refs/tags/v1.2.3."`
	} `positional-args:"yes"`

	streams Streams
	env     env.Reader
}

// NewTagCommand returns a TagCommand writing outputs where r points.
func NewTagCommand(streams Streams, r env.Reader) *TagCommand {
	return &TagCommand{streams: streams, env: r}
}

// Execute implements flags.Commander.
func (c *TagCommand) Execute([]string) error {
	out := c.streams.Stdout

	name := tagver.TagName(c.Args.Ref)
	fmt.Fprintf(out, "tag_name: %s\n", name)

	v, err := tagver.Parse(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "version: %s\n", v)

	if v.IsPrerelease() {
		fmt.Fprintln(out, "No tags created (dev or pre version)!")
		return nil
	}
	fmt.Fprintln(out, "Creating new major and minor tags!")

	tags := v.Tags(name)
	outputs := actions.NewOutputs(c.env, actions.NewCommands(out))
	for _, o := range []struct{ name, value string }{
		{OutputOriginalTagName, tags.OriginalTagName},
		{OutputMajorVersion, tags.MajorVersion},
		{OutputMinorVersion, tags.MinorVersion},
	} {
		if err := outputs.Set(o.name, o.value); err != nil {
			return fmt.Errorf("failed to set %s: %w", o.name, err)
		}
	}
	return nil
}
