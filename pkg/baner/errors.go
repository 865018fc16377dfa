// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baner

import "errors"

// ErrorKind classifies why a flag failed to produce a value.
type ErrorKind int

const (
	// NotFound means the flag's spelling is absent from the tokens.
	NotFound ErrorKind = iota + 1
	// InsufficientArguments means the flag ran out of tokens, or hit
	// another flag, before a required value could be read.
	InsufficientArguments
	// TypeMismatch means a token was present but could not be coerced.
	TypeMismatch
	// PositionalFailure means a List element had a token at its position
	// but the token was of the wrong shape.
	PositionalFailure
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case InsufficientArguments:
		return "insufficient arguments"
	case TypeMismatch:
		return "type mismatch"
	case PositionalFailure:
		return "positional failure"
	}
	return "unknown"
}

// Sentinel errors matched by errors.Is against an *ArgError of the
// corresponding kind.
var (
	ErrNotFound              = errors.New("flag not found")
	ErrInsufficientArguments = errors.New("insufficient arguments")
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrPositionalFailure     = errors.New("positional failure")
)

var kindSentinels = map[ErrorKind]error{
	NotFound:              ErrNotFound,
	InsufficientArguments: ErrInsufficientArguments,
	TypeMismatch:          ErrTypeMismatch,
	PositionalFailure:     ErrPositionalFailure,
}

// ArgError is the error carried by a failed flag result.
// Msg is the complete user-facing message; Err is the inner error it was
// built from, if any.
type ArgError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *ArgError) Error() string {
	return e.Msg
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *ArgError) Is(target error) bool {
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

func argErr(kind ErrorKind, msg string) *ArgError {
	return &ArgError{Kind: kind, Msg: msg}
}

// kindOf returns the ErrorKind of err, or 0 if err is not an *ArgError.
func kindOf(err error) ErrorKind {
	var ae *ArgError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}
