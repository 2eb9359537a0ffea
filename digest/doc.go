// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package digest prints the digests of distribution files before they are
uploaded, so that the values the index reports can be checked against the
build log.

	err := digest.Report(os.Stdout, "dist", digest.FormatText)

Each file directly inside the directory is hashed once, with SHA256, MD5 and
BLAKE2b-256, the digests package indexes publish. Subdirectories are skipped.
*/
package digest
