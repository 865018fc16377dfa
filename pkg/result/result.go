// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package result provides a two-variant success/failure container used for
// expected failure modes, where returning a value is preferable to
// returning early.
package result

import "errors"

// Result holds either a value or an error, never both.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok returns a successful Result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err returns a failed Result. A nil err is replaced with a generic error
// so that a failed Result always carries a message.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown error")
	}
	return Result[T]{err: err}
}

// Errorf is shorthand for Err(errors.New(msg)).
func Errorf[T any](msg string) Result[T] {
	return Err[T](errors.New(msg))
}

func (r Result[T]) IsOk() bool  { return r.ok }
func (r Result[T]) IsErr() bool { return !r.ok }

// Value returns the success value and whether the Result is Ok.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// Error returns the error, or nil if the Result is Ok.
func (r Result[T]) Error() error {
	return r.err
}

// Message returns the human-readable failure message, or "" if the
// Result is Ok.
func (r Result[T]) Message() string {
	if r.ok {
		return ""
	}
	return r.err.Error()
}

// Get returns the value and error in the usual Go shape.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the success value or def.
func (r Result[T]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// Map transforms the success value of r with f.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.ok {
		return Ok(f(r.value))
	}
	return Err[U](r.err)
}

// MapErr transforms the error of a failed r with f.
func MapErr[T any](r Result[T], f func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](f(r.err))
}

// Any erases the value type of r.
func Any[T any](r Result[T]) Result[any] {
	if r.ok {
		return Ok[any](r.value)
	}
	return Err[any](r.err)
}
