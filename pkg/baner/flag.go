// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baner

import "fmt"

// Form is how a flag is spelled on the command line.
type Form int

const (
	FormShort Form = iota + 1 // -x
	FormLong                  // --xxx
	FormBoth                  // -x or --xxx
)

func (f Form) String() string {
	switch f {
	case FormShort:
		return "Short"
	case FormLong:
		return "Long"
	case FormBoth:
		return "Mixed"
	}
	return fmt.Sprintf("Form(%d)", int(f))
}

// FlagSpec declares one flag. ShortName is used by FormShort and FormBoth,
// LongName by FormLong and FormBoth.
type FlagSpec struct {
	Form      Form
	ShortName string
	LongName  string
	Help      string
	Kind      Kind
}

// Name returns the canonical name under which the flag's outcome is stored.
func (s FlagSpec) Name() string {
	if s.Form == FormShort {
		return s.ShortName
	}
	return s.LongName
}

// Spelling returns the flag as it appears in messages: "-a", "--all" or
// "-a/--all".
func (s FlagSpec) Spelling() string {
	switch s.Form {
	case FormShort:
		return "-" + s.ShortName
	case FormLong:
		return "--" + s.LongName
	}
	return "-" + s.ShortName + "/--" + s.LongName
}

// matches reports whether tok is one of the flag's spellings.
func (s FlagSpec) matches(tok string) bool {
	switch s.Form {
	case FormShort:
		return tok == "-"+s.ShortName
	case FormLong:
		return tok == "--"+s.LongName
	case FormBoth:
		return tok == "-"+s.ShortName || tok == "--"+s.LongName
	}
	return false
}

// Spec returns s, so a FlagSpec can be passed wherever a Declarer is.
func (s FlagSpec) Spec() FlagSpec { return s }

// Declarer is anything that declares a flag: a FlagSpec or a Flag[T].
type Declarer interface {
	Spec() FlagSpec
}

// Flag is a FlagSpec that remembers the type of value its kind produces.
type Flag[T any] struct {
	FlagSpec
}

// Short declares a flag spelled -name.
func Short[T any](name, help string, arg Arg[T]) Flag[T] {
	return Flag[T]{FlagSpec{Form: FormShort, ShortName: name, Help: help, Kind: arg.Kind}}
}

// Long declares a flag spelled --name.
func Long[T any](name, help string, arg Arg[T]) Flag[T] {
	return Flag[T]{FlagSpec{Form: FormLong, LongName: name, Help: help, Kind: arg.Kind}}
}

// Both declares a flag spelled -short or --long, stored under long.
func Both[T any](short, long, help string, arg Arg[T]) Flag[T] {
	return Flag[T]{FlagSpec{Form: FormBoth, ShortName: short, LongName: long, Help: help, Kind: arg.Kind}}
}

// Outcome returns the outcome recorded for f in p.
func (f Flag[T]) Outcome(p *Program) (FlagOutcome, bool) {
	return p.Flag(f.Name())
}

// Value returns f's coerced value from p. The error is the flag's own
// failure (matching ErrNotFound when absent), or an error matching
// ErrTypeMismatch if p was produced by a parser that declared the name
// with a different kind.
func (f Flag[T]) Value(p *Program) (T, error) {
	return Get[T](p, f.Name())
}
