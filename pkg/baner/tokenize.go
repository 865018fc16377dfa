// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baner

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// decimalNumber is the accepted number syntax: optional sign, decimal
// digits with an optional fraction, optional exponent. Underscores, hex
// and the inf/nan words are not numbers.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Tokenize splits raw arguments into tokens. An argument containing "="
// is split once on the first "="; the left part becomes a token and the
// right part is split on ",". Other arguments are split on ",".
// Empty pieces are kept and nothing is trimmed.
//
//	["--pets=a,b", "x,y"] -> ["--pets", "a", "b", "x", "y"]
func Tokenize(args []string) []string {
	tokens := make([]string, 0, len(args))
	for _, arg := range args {
		if name, value, ok := strings.Cut(arg, "="); ok {
			tokens = append(tokens, name)
			arg = value
		}
		tokens = append(tokens, strings.Split(arg, ",")...)
	}
	return tokens
}

// IsFlagToken reports whether tok starts a new flag: it begins with "-"
// and is not a finite number. "-5" and "-0.5" are values, "-", "-a" and
// "--yes" are flags.
func IsFlagToken(tok string) bool {
	if _, ok := parseNumber(tok); ok {
		return false
	}
	return strings.HasPrefix(tok, "-")
}

// parseNumber parses tok as a finite decimal float64.
func parseNumber(tok string) (float64, bool) {
	if !decimalNumber.MatchString(tok) {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// exhausted reports whether tokens has no value left to read for the
// current item.
func exhausted(tokens []string) bool {
	return len(tokens) == 0 || IsFlagToken(tokens[0])
}
