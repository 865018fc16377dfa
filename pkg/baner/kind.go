// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baner

import (
	"fmt"
	"slices"
)

// Tag identifies the variant of a Kind. The set is closed.
type Tag int

const (
	TagString Tag = iota + 1
	TagNumber
	TagBoolean
	TagEmpty
	TagOneOf
	TagList
	TagVariableList
)

func (t Tag) String() string {
	switch t {
	case TagString:
		return "string"
	case TagNumber:
		return "number"
	case TagBoolean:
		return "boolean"
	case TagEmpty:
		return "empty"
	case TagOneOf:
		return "oneof"
	case TagList:
		return "list"
	case TagVariableList:
		return "variable"
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

// Kind describes how the tokens trailing a flag are coerced into a value.
// Kinds are immutable once built and safe to share.
type Kind struct {
	tag   Tag
	items []string // TagOneOf
	elems []Kind   // TagList
	elem  *Kind    // TagVariableList
}

// Tag returns the variant of k.
func (k Kind) Tag() Tag { return k.tag }

// Items returns the allowed values of a OneOf kind.
func (k Kind) Items() []string { return slices.Clone(k.items) }

// Elems returns the element kinds of a List kind.
func (k Kind) Elems() []Kind { return slices.Clone(k.elems) }

// Elem returns the element kind of a VariableList kind.
func (k Kind) Elem() (Kind, bool) {
	if k.elem == nil {
		return Kind{}, false
	}
	return *k.elem, true
}

func (k Kind) argKind() Kind { return k }

// Arger is satisfied by Kind and by every Arg[T].
type Arger interface {
	argKind() Kind
}

// Arg is a Kind annotated with the Go type of the value it produces.
type Arg[T any] struct {
	Kind
}

// Scalar constrains the element types a VariableList may hold.
type Scalar interface {
	string | float64 | bool
}

// String coerces one token into a string.
func String() Arg[string] {
	return Arg[string]{Kind{tag: TagString}}
}

// Number coerces one token into a float64.
func Number() Arg[float64] {
	return Arg[float64]{Kind{tag: TagNumber}}
}

// Boolean coerces one token, exactly "true" or "false", into a bool.
func Boolean() Arg[bool] {
	return Arg[bool]{Kind{tag: TagBoolean}}
}

// Empty consumes nothing and always yields true, marking presence.
func Empty() Arg[bool] {
	return Arg[bool]{Kind{tag: TagEmpty}}
}

// OneOf coerces one token that must equal one of items.
// Duplicates are allowed and the first match wins.
func OneOf(items ...string) Arg[string] {
	return Arg[string]{Kind{tag: TagOneOf, items: slices.Clone(items)}}
}

// List coerces a fixed-length heterogeneous sequence, one token per item.
// It panics if items is empty.
func List(items ...Arger) Arg[[]any] {
	if len(items) == 0 {
		panic("baner: List requires at least one item")
	}
	elems := make([]Kind, len(items))
	for i, it := range items {
		elems[i] = it.argKind()
	}
	return Arg[[]any]{Kind{tag: TagList, elems: elems}}
}

// VariableList coerces every token up to the next flag boundary with item.
// item must be String, Number, Boolean or OneOf; VariableList panics on
// Empty.
func VariableList[T Scalar](item Arg[T]) Arg[[]T] {
	switch item.tag {
	case TagString, TagNumber, TagBoolean, TagOneOf:
	default:
		panic(fmt.Sprintf("baner: VariableList cannot hold %v", item.tag))
	}
	elem := item.Kind
	return Arg[[]T]{Kind{tag: TagVariableList, elem: &elem}}
}

// ListOf is the untyped form of List for kinds assembled at runtime.
func ListOf(items []Kind) (Kind, error) {
	if len(items) == 0 {
		return Kind{}, fmt.Errorf("list requires at least one item")
	}
	for i, it := range items {
		if it.tag == 0 {
			return Kind{}, fmt.Errorf("list item %d has no kind", i)
		}
	}
	return Kind{tag: TagList, elems: slices.Clone(items)}, nil
}

// VariableListOf is the untyped form of VariableList for kinds assembled
// at runtime.
func VariableListOf(item Kind) (Kind, error) {
	switch item.tag {
	case TagString, TagNumber, TagBoolean, TagOneOf:
	default:
		return Kind{}, fmt.Errorf("variable list cannot hold %v", item.tag)
	}
	return Kind{tag: TagVariableList, elem: &item}, nil
}
