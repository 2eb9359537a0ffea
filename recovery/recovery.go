// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/pypa/gh-action-pypi-publish/logger"
)

// ErrPanic wraps the value of a recovered panic.
var ErrPanic = errors.New("recovered from panic")

// Call runs fn and turns a panic into an error wrapping ErrPanic.
// The stack of the panic is logged at debug level.
func Call[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf("panic stack:\n%s", debug.Stack())
			var zero T
			result, err = zero, fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return fn()
}
