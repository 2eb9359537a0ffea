// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

// Package recovery converts panics into errors.
//
// A failing step must still leave a readable failure in the workflow. Code
// that reports its own failures wraps risky work in Call so a panic takes the
// same reporting path as any other error instead of crashing the process.
//
// # Basic Usage
//
//	token, err := recovery.Call(func() (string, error) {
//		return exchanger.Exchange(ctx)
//	})
//	if errors.Is(err, recovery.ErrPanic) {
//		// the exchange panicked
//	}
//
// # Stability
//
// This package is Beta stability. The API may have minor changes before
// reaching stable status in v1.0.0.
package recovery
