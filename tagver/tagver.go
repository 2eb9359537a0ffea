// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

// Package tagver derives floating major and minor tags (v1, v1.2) from a
// release tag. Tags follow PEP 440, so versions such as 1.2.0rc1 or
// 1.2.0.post1 are understood; they are normalized onto semantic versions
// for comparison and field access.
package tagver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrPrerelease is returned by Derive for pre and dev releases, which never move floating tags.
var ErrPrerelease = errors.New("pre and dev releases do not move major or minor tags")

var pep440 = regexp.MustCompile(`(?i)^v?` +
	`(?:(?P<epoch>[0-9]+)!)?` +
	`(?P<release>[0-9]+(?:\.[0-9]+)*)` +
	`(?:[-_.]?(?P<pre_l>alpha|a|beta|b|preview|pre|c|rc)[-_.]?(?P<pre_n>[0-9]+)?)?` +
	`(?:-(?P<post_n1>[0-9]+)|[-_.]?(?P<post_l>post|rev|r)[-_.]?(?P<post_n2>[0-9]+)?)?` +
	`(?:[-_.]?(?P<dev_l>dev)[-_.]?(?P<dev_n>[0-9]+)?)?` +
	`(?:\+(?P<local>[a-z0-9]+(?:[-_.][a-z0-9]+)*))?$`)

var preLabels = map[string]string{
	"a":       "a",
	"alpha":   "a",
	"b":       "b",
	"beta":    "b",
	"c":       "rc",
	"rc":      "rc",
	"pre":     "rc",
	"preview": "rc",
}

// Version is a parsed release version.
type Version struct {
	canonical string
	sv        *semver.Version
}

// Tags are the step outputs for a final release.
type Tags struct {
	OriginalTagName string
	MajorVersion    string
	MinorVersion    string
}

// TagName returns the last path segment of a tag ref, e.g. refs/tags/v1.2.3 -> v1.2.3.
func TagName(ref string) string {
	return ref[strings.LastIndex(ref, "/")+1:]
}

// Parse parses a PEP 440 public or local version, with an optional leading v.
func Parse(s string) (*Version, error) {
	m := pep440.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, fmt.Errorf("invalid version: %q", s)
	}
	group := func(name string) string {
		return strings.ToLower(m[pep440.SubexpIndex(name)])
	}

	var release []int
	for _, part := range strings.Split(group("release"), ".") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid version: %q: %w", s, err)
		}
		release = append(release, n)
	}
	for len(release) < 3 {
		release = append(release, 0)
	}

	var canonical strings.Builder
	var pre, meta []string

	if epoch := group("epoch"); epoch != "" {
		n, _ := strconv.Atoi(epoch)
		if n != 0 {
			fmt.Fprintf(&canonical, "%d!", n)
			meta = append(meta, "epoch", strconv.Itoa(n))
		}
	}

	canonical.WriteString(joinInts(release[:significant(group("release"))]))
	if len(release) > 3 {
		meta = append(meta, "release", joinInts(release[3:]))
	}

	if label := group("pre_l"); label != "" {
		id := preLabels[label] + strconv.Itoa(number(group("pre_n")))
		canonical.WriteString(id)
		pre = append(pre, id)
	}

	if group("post_n1") != "" || group("post_l") != "" {
		n := number(group("post_n1"))
		if group("post_l") != "" {
			n = number(group("post_n2"))
		}
		id := "post" + strconv.Itoa(n)
		canonical.WriteString("." + id)
		meta = append(meta, id)
	}

	if group("dev_l") != "" {
		id := "dev" + strconv.Itoa(number(group("dev_n")))
		canonical.WriteString("." + id)
		pre = append(pre, id)
	}

	if local := group("local"); local != "" {
		local = strings.NewReplacer("-", ".", "_", ".").Replace(local)
		canonical.WriteString("+" + local)
		meta = append(meta, "local", local)
	}

	normalized := fmt.Sprintf("%d.%d.%d", release[0], release[1], release[2])
	if len(pre) > 0 {
		normalized += "-" + strings.Join(pre, ".")
	}
	if len(meta) > 0 {
		normalized += "+" + strings.Join(meta, ".")
	}

	sv, err := semver.StrictNewVersion(normalized)
	if err != nil {
		return nil, fmt.Errorf("invalid version: %q: %w", s, err)
	}
	return &Version{canonical: canonical.String(), sv: sv}, nil
}

// String returns the normalized PEP 440 form, e.g. "1.2.0rc1".
func (v *Version) String() string {
	return v.canonical
}

// Semver returns the semantic version the release was normalized onto.
func (v *Version) Semver() *semver.Version {
	return v.sv
}

// Major returns the first release segment.
func (v *Version) Major() uint64 {
	return v.sv.Major()
}

// Minor returns the second release segment, 0 when absent.
func (v *Version) Minor() uint64 {
	return v.sv.Minor()
}

// IsPrerelease reports whether v is a pre or dev release.
func (v *Version) IsPrerelease() bool {
	return v.sv.Prerelease() != ""
}

// Tags returns the floating tags for v, released under tagName.
func (v *Version) Tags(tagName string) Tags {
	return Tags{
		OriginalTagName: tagName,
		MajorVersion:    fmt.Sprintf("v%d", v.Major()),
		MinorVersion:    fmt.Sprintf("v%d.%d", v.Major(), v.Minor()),
	}
}

// Derive parses the tag named by ref and returns its floating tags.
// Pre and dev releases yield ErrPrerelease.
func Derive(ref string) (Tags, error) {
	name := TagName(ref)
	v, err := Parse(name)
	if err != nil {
		return Tags{}, err
	}
	if v.IsPrerelease() {
		return Tags{}, fmt.Errorf("%s: %w", name, ErrPrerelease)
	}
	return v.Tags(name), nil
}

// significant returns the number of segments written in the release string.
func significant(release string) int {
	return strings.Count(release, ".") + 1
}

func number(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}
