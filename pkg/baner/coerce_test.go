// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baner

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		tokens  []string
		want    any
		wantErr string
		errKind ErrorKind
	}{
		{name: "empty", kind: Empty().Kind, tokens: nil, want: true},
		{name: "empty ignores tokens", kind: Empty().Kind, tokens: []string{"x"}, want: true},

		{name: "string", kind: String().Kind, tokens: []string{"hi", "there"}, want: "hi"},
		{name: "string none", kind: String().Kind, wantErr: "Not enough arguments. Expected a string.", errKind: InsufficientArguments},
		{name: "string boundary", kind: String().Kind, tokens: []string{"-x"}, wantErr: "Not enough arguments. Expected a string.", errKind: InsufficientArguments},
		{name: "string negative number", kind: String().Kind, tokens: []string{"-3"}, want: "-3"},

		{name: "number", kind: Number().Kind, tokens: []string{"-5.5"}, want: -5.5},
		{name: "number exponent", kind: Number().Kind, tokens: []string{"1e3"}, want: 1000.0},
		{name: "number none", kind: Number().Kind, wantErr: "Not enough arguments. Expected a number.", errKind: InsufficientArguments},
		{name: "number text", kind: Number().Kind, tokens: []string{"five"}, wantErr: "Not a number argument", errKind: TypeMismatch},
		{name: "number trailing junk", kind: Number().Kind, tokens: []string{"5abc"}, wantErr: "Not a number argument", errKind: TypeMismatch},
		{name: "number inf", kind: Number().Kind, tokens: []string{"inf"}, wantErr: "Not a number argument", errKind: TypeMismatch},
		{name: "number leading dot", kind: Number().Kind, tokens: []string{".5"}, want: 0.5},
		{name: "number trailing dot", kind: Number().Kind, tokens: []string{"5."}, want: 5.0},
		{name: "number underscores", kind: Number().Kind, tokens: []string{"1_000"}, wantErr: "Not a number argument", errKind: TypeMismatch},
		{name: "number hex float", kind: Number().Kind, tokens: []string{"0x1p3"}, wantErr: "Not a number argument", errKind: TypeMismatch},
		{name: "number negative hex float", kind: Number().Kind, tokens: []string{"-0x1p3"}, wantErr: "Not enough arguments. Expected a number.", errKind: InsufficientArguments},
		{name: "number overflow", kind: Number().Kind, tokens: []string{"1e400"}, wantErr: "Not a number argument", errKind: TypeMismatch},

		{name: "boolean true", kind: Boolean().Kind, tokens: []string{"true"}, want: true},
		{name: "boolean false", kind: Boolean().Kind, tokens: []string{"false"}, want: false},
		{name: "boolean none", kind: Boolean().Kind, wantErr: "Not enough arguments. Expected a boolean.", errKind: InsufficientArguments},
		{name: "boolean boundary", kind: Boolean().Kind, tokens: []string{"--no"}, wantErr: "Not enough arguments. Expected a boolean.", errKind: InsufficientArguments},
		{name: "boolean other", kind: Boolean().Kind, tokens: []string{"yes"}, wantErr: "Not a boolean argument", errKind: TypeMismatch},

		{name: "oneof", kind: OneOf("ban", "can").Kind, tokens: []string{"ban"}, want: "ban"},
		{name: "oneof none", kind: OneOf("ban", "can").Kind, wantErr: "Not enough arguments. Expected one of: ban | can.", errKind: InsufficientArguments},
		{name: "oneof boundary", kind: OneOf("ban", "can").Kind, tokens: []string{"-c"}, wantErr: "Not enough arguments. Expected one of: ban | can.", errKind: InsufficientArguments},
		{name: "oneof miss", kind: OneOf("ban", "can").Kind, tokens: []string{"dog"}, wantErr: "Didn't match any of: ban | can", errKind: TypeMismatch},
		{name: "oneof duplicates", kind: OneOf("a", "a").Kind, tokens: []string{"a"}, want: "a"},

		{name: "list", kind: List(Boolean(), String()).Kind, tokens: []string{"true", "hello"}, want: []any{true, "hello"}},
		{name: "list short", kind: List(Boolean(), String()).Kind, tokens: []string{"true"}, wantErr: "Not enough arguments. Expected a string. at index 1", errKind: InsufficientArguments},
		{name: "list boundary", kind: List(Number(), Number()).Kind, tokens: []string{"1", "-x", "2"}, wantErr: "Not enough arguments. Expected a number. at index 1", errKind: InsufficientArguments},
		{name: "list content", kind: List(Number(), Number()).Kind, tokens: []string{"1", "x"}, wantErr: "Not a number argument", errKind: PositionalFailure},
		{name: "list extra tokens", kind: List(String()).Kind, tokens: []string{"a", "b"}, want: []any{"a"}},
		{name: "list with empty", kind: List(Empty(), String()).Kind, tokens: []string{"a", "b"}, want: []any{true, "b"}},
		{name: "list of variable", kind: List(VariableList(String()), String()).Kind, tokens: []string{"a", "b"}, want: []any{[]string{"a", "b"}, "b"}},

		{name: "variable strings", kind: VariableList(String()).Kind, tokens: []string{"true", "hello"}, want: []string{"true", "hello"}},
		{name: "variable empty", kind: VariableList(String()).Kind, want: []string{}},
		{name: "variable starts at boundary", kind: VariableList(Number()).Kind, tokens: []string{"-a", "1"}, want: []float64{}},
		{name: "variable booleans", kind: VariableList(Boolean()).Kind, tokens: []string{"true", "false", "--x"}, want: []bool{true, false}},
		{name: "variable bad element", kind: VariableList(Boolean()).Kind, tokens: []string{"true", "nope"}, wantErr: "Not a boolean argument", errKind: TypeMismatch},
		{name: "variable oneof", kind: VariableList(OneOf("fish", "frog")).Kind, tokens: []string{"frog", "fish"}, want: []string{"frog", "fish"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := coerce(tt.kind, tt.tokens)
			v, err := r.Get()
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("coerce() = %#v, want error %q", v, tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Fatalf("coerce() error = %q, want %q", err.Error(), tt.wantErr)
				}
				if got := kindOf(err); got != tt.errKind {
					t.Fatalf("error kind = %v, want %v", got, tt.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("coerce() error = %v", err)
			}
			if !reflect.DeepEqual(v, tt.want) {
				t.Fatalf("coerce() = %#v, want %#v", v, tt.want)
			}
		})
	}
}

func TestCoerceNumberMatchesParseFloat(t *testing.T) {
	for _, s := range []string{"0", "5", "-5", "5.5", "-5.5", ".5", "-0.25", "1e-3", "123456789"} {
		want, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatal(err)
		}
		got, err := coerce(Number().Kind, []string{s}).Get()
		if err != nil {
			t.Fatalf("coerce(Number, %q) error = %v", s, err)
		}
		if got != want {
			t.Errorf("coerce(Number, %q) = %v, want %v", s, got, want)
		}
	}
}

func TestListErrorUnwraps(t *testing.T) {
	_, err := coerce(List(Number(), Number()).Kind, []string{"1", "x"}).Get()
	if !errors.Is(err, ErrPositionalFailure) {
		t.Fatalf("errors.Is(%v, ErrPositionalFailure) = false", err)
	}
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("inner TypeMismatch not reachable through %v", err)
	}
}

func TestZeroKind(t *testing.T) {
	_, err := coerce(Kind{}, []string{"x"}).Get()
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("coerce(Kind{}) error = %v, want type mismatch", err)
	}
}
