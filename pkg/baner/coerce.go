// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baner

import (
	"fmt"
	"strings"

	"github.com/yeetrun/baner/pkg/result"
)

// coerce converts a prefix of tokens according to k. tokens is the window
// that starts right after the value's position; callers re-slice for each
// nested item.
func coerce(k Kind, tokens []string) result.Result[any] {
	switch k.tag {
	case TagEmpty:
		return result.Ok[any](true)
	case TagString:
		return result.Any(coerceString(tokens))
	case TagNumber:
		return result.Any(coerceNumber(tokens))
	case TagBoolean:
		return result.Any(coerceBoolean(tokens))
	case TagOneOf:
		return result.Any(coerceOneOf(k.items, tokens))
	case TagList:
		return result.Any(coerceList(k.elems, tokens))
	case TagVariableList:
		return coerceVariableList(*k.elem, tokens)
	}
	return result.Err[any](argErr(TypeMismatch, fmt.Sprintf("Unknown argument kind %v", k.tag)))
}

func notEnough(expected string) *ArgError {
	return argErr(InsufficientArguments, "Not enough arguments. Expected "+expected+".")
}

func coerceString(tokens []string) result.Result[string] {
	if exhausted(tokens) {
		return result.Err[string](notEnough("a string"))
	}
	return result.Ok(tokens[0])
}

func coerceNumber(tokens []string) result.Result[float64] {
	if exhausted(tokens) {
		return result.Err[float64](notEnough("a number"))
	}
	f, ok := parseNumber(tokens[0])
	if !ok {
		return result.Err[float64](argErr(TypeMismatch, "Not a number argument"))
	}
	return result.Ok(f)
}

func coerceBoolean(tokens []string) result.Result[bool] {
	if exhausted(tokens) {
		return result.Err[bool](notEnough("a boolean"))
	}
	switch tokens[0] {
	case "true":
		return result.Ok(true)
	case "false":
		return result.Ok(false)
	}
	return result.Err[bool](argErr(TypeMismatch, "Not a boolean argument"))
}

func coerceOneOf(items, tokens []string) result.Result[string] {
	choices := strings.Join(items, " | ")
	if exhausted(tokens) {
		return result.Err[string](notEnough("one of: " + choices))
	}
	for _, it := range items {
		if it == tokens[0] {
			return result.Ok(it)
		}
	}
	return result.Err[string](argErr(TypeMismatch, "Didn't match any of: "+choices))
}

// coerceList coerces elem i from tokens[i:]. Offsets are absolute within
// the window: element i always reads position i, whatever earlier
// elements consumed.
func coerceList(elems []Kind, tokens []string) result.Result[[]any] {
	values := make([]any, 0, len(elems))
	for i, elem := range elems {
		var window []string
		if i < len(tokens) {
			window = tokens[i:]
		}
		r := coerce(elem, window)
		v, ok := r.Value()
		if ok {
			values = append(values, v)
			continue
		}
		inner := r.Error()
		if i >= len(tokens) || IsFlagToken(tokens[i]) {
			kind := kindOf(inner)
			if kind == 0 {
				kind = InsufficientArguments
			}
			return result.Err[[]any](&ArgError{
				Kind: kind,
				Msg:  fmt.Sprintf("%s at index %d", inner.Error(), i),
				Err:  inner,
			})
		}
		return result.Err[[]any](&ArgError{Kind: PositionalFailure, Msg: inner.Error(), Err: inner})
	}
	return result.Ok(values)
}

// coerceVariableList coerces one elem per token until the end of tokens
// or the first flag boundary. The produced slice is typed by elem.
func coerceVariableList(elem Kind, tokens []string) result.Result[any] {
	switch elem.tag {
	case TagNumber:
		return result.Any(collect[float64](elem, tokens))
	case TagBoolean:
		return result.Any(collect[bool](elem, tokens))
	}
	return result.Any(collect[string](elem, tokens))
}

func collect[T Scalar](elem Kind, tokens []string) result.Result[[]T] {
	out := make([]T, 0, len(tokens))
	for i, tok := range tokens {
		if IsFlagToken(tok) {
			break
		}
		r := coerce(elem, tokens[i:])
		v, ok := r.Value()
		if !ok {
			return result.Err[[]T](r.Error())
		}
		out = append(out, v.(T))
	}
	return result.Ok(out)
}
