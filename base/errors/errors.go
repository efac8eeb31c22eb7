// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
// The Log functions report errors through [log/slog], so that
// recoverable problems are visible without interrupting the caller.
package errors

import (
	"errors"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
)

// New is [errors.New], for convenience.
func New(text string) error { return errors.New(text) }

// Is is [errors.Is], for convenience.
func Is(err, target error) bool { return errors.Is(err, target) }

// As is [errors.As], for convenience.
func As(err error, target any) bool { return errors.As(err, target) }

// Join is [errors.Join], for convenience.
func Join(errs ...error) error { return errors.Join(errs...) }

// Log takes the given error and logs it with [slog.Error] if it is
// non-nil, along with the calling location. It returns the error
// unchanged, so it can be used inline:
//
//	return errors.Log(err)
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
// Only use it where an error is a programmer mistake.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	name := "?"
	if fn != nil {
		name = fn.Name()
	}
	return name + " " + filepath.Base(file) + ":" + strconv.Itoa(line)
}
