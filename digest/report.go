// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Format selects the report layout.
type Format string

const (
	// FormatText is the human-readable layout shown in the job log.
	FormatText Format = "text"

	// FormatYAML is a machine-readable list of files and digests.
	FormatYAML Format = "yaml"
)

// FileHashes pairs a file with its digests.
type FileHashes struct {
	Path   string `yaml:"path"`
	Hashes `yaml:",inline"`
}

// Scan hashes every regular file directly inside dir, in name order.
func Scan(dir string) ([]FileHashes, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", abs, err)
	}

	files := make([]FileHashes, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(abs, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		h, err := ComputeFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, FileHashes{Path: path, Hashes: h})
	}
	return files, nil
}

// Report scans dir and writes the digests to w in the given format.
func Report(w io.Writer, dir string, format Format) error {
	files, err := Scan(dir)
	if err != nil {
		return err
	}

	switch format {
	case FormatText:
		return writeText(w, files)
	case FormatYAML:
		return writeYAML(w, files)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

func writeText(w io.Writer, files []FileHashes) error {
	if _, err := fmt.Fprintln(w, "Showing hash values of files to be uploaded:"); err != nil {
		return err
	}
	for _, f := range files {
		if _, err := fmt.Fprintf(w, "%s\n\nSHA256: %s\nMD5: %s\nBLAKE2-256: %s\n\n",
			f.Path, f.SHA256, f.MD5, f.BLAKE2256); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, files []FileHashes) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(struct {
		Files []FileHashes `yaml:"files"`
	}{Files: files}); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
