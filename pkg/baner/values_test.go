// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baner

import (
	"errors"
	"reflect"
	"testing"
)

func TestFlagValue(t *testing.T) {
	name := Long("name", "", String())
	age := Long("age", "", Number())
	pets := Long("pets", "", VariableList(String()))
	kind := Long("type", "", OneOf("human", "alien"))
	point := Short("p", "", List(Number(), String()))
	p := New(name, age, pets, kind, point)

	prog := p.Parse([]string{"--name", "Noah", "--age=31", "--pets", "rex,tom", "-p", "3", "up"})

	if v, err := name.Value(prog); err != nil || v != "Noah" {
		t.Fatalf("name = %q, %v", v, err)
	}
	if v, err := age.Value(prog); err != nil || v != 31 {
		t.Fatalf("age = %v, %v", v, err)
	}
	if v, err := pets.Value(prog); err != nil || !reflect.DeepEqual(v, []string{"rex", "tom"}) {
		t.Fatalf("pets = %#v, %v", v, err)
	}
	if _, err := kind.Value(prog); !errors.Is(err, ErrNotFound) {
		t.Fatalf("type error = %v, want ErrNotFound", err)
	}
	tuple, err := point.Value(prog)
	if err != nil {
		t.Fatalf("p error = %v", err)
	}
	x, err := Index[float64](tuple, 0)
	if err != nil || x != 3 {
		t.Fatalf("p[0] = %v, %v", x, err)
	}
	dir, err := Index[string](tuple, 1)
	if err != nil || dir != "up" {
		t.Fatalf("p[1] = %q, %v", dir, err)
	}
	if _, err := Index[string](tuple, 0); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Index[string](0) error = %v, want ErrTypeMismatch", err)
	}
	if _, err := Index[string](tuple, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Index(2) error = %v, want ErrNotFound", err)
	}
	if o, ok := age.Outcome(prog); !ok || !o.Present {
		t.Fatalf("age.Outcome() = %+v, %v", o, ok)
	}
}

func TestGetErrors(t *testing.T) {
	p := New(Short("n", "", Number()))
	prog := p.Parse([]string{"-n", "x"})

	_, err := Get[float64](prog, "n")
	if err == nil || err.Error() != "Error parsing -n due to: Not a number argument" {
		t.Fatalf("Get(n) error = %v", err)
	}
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Get(n) error %v does not match ErrTypeMismatch", err)
	}

	prog = p.Parse([]string{"-n", "4"})
	if _, err := Get[string](prog, "n"); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Get[string](n) error = %v, want ErrTypeMismatch", err)
	}
	if _, err := Get[string](prog, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
	}
}
