// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"crypto/md5"      //nolint:gosec // MD5 is published by package indexes for legacy clients, not used for security.
	_ "crypto/sha256" // registers SHA256 for go-digest
	"encoding/hex"
	"fmt"
	"io"
	"os"

	godigest "github.com/opencontainers/go-digest"
	"golang.org/x/crypto/blake2b"
)

// Hashes holds the hex-encoded digests of one file.
type Hashes struct {
	SHA256    string `yaml:"sha256"`
	MD5       string `yaml:"md5"`
	BLAKE2256 string `yaml:"blake2_256"`
}

// Compute reads r to the end and returns its digests.
func Compute(r io.Reader) (Hashes, error) {
	sha := godigest.SHA256.Digester()
	md := md5.New() //nolint:gosec // see import
	blake, err := blake2b.New256(nil)
	if err != nil {
		return Hashes{}, fmt.Errorf("failed to create BLAKE2b-256 hash: %w", err)
	}

	if _, err := io.Copy(io.MultiWriter(sha.Hash(), md, blake), r); err != nil {
		return Hashes{}, fmt.Errorf("failed to read content: %w", err)
	}

	return Hashes{
		SHA256:    sha.Digest().Encoded(),
		MD5:       hex.EncodeToString(md.Sum(nil)),
		BLAKE2256: hex.EncodeToString(blake.Sum(nil)),
	}, nil
}

// ComputeFile returns the digests of the file at path.
func ComputeFile(path string) (Hashes, error) {
	f, err := os.Open(path)
	if err != nil {
		return Hashes{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	h, err := Compute(f)
	if err != nil {
		return Hashes{}, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}
