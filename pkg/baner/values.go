// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baner

import "fmt"

// Get returns the value of the flag stored under name as a T.
//
// Go cannot derive a tuple type from a List's shape, so values are stored
// untyped and checked here: a value of another type yields an error
// matching ErrTypeMismatch. A flag that is missing or failed returns its
// own error; an undeclared name returns an error matching ErrNotFound.
func Get[T any](p *Program, name string) (T, error) {
	var zero T
	o, ok := p.Flags[name]
	if !ok {
		return zero, argErr(NotFound, fmt.Sprintf("flag %q is not declared", name))
	}
	v, err := o.Result.Get()
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, argErr(TypeMismatch, fmt.Sprintf("flag %s holds %T, not %T", o.Spec.Spelling(), v, zero))
	}
	return t, nil
}

// Index returns element i of a List value as a T.
func Index[T any](tuple []any, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(tuple) {
		return zero, argErr(NotFound, fmt.Sprintf("index %d out of range for tuple of %d", i, len(tuple)))
	}
	t, ok := tuple[i].(T)
	if !ok {
		return zero, argErr(TypeMismatch, fmt.Sprintf("tuple element %d holds %T, not %T", i, tuple[i], zero))
	}
	return t, nil
}
