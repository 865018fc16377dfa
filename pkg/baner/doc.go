// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package baner parses command-line flags from a declarative description.
//
// A Parser is built from flag declarations. Each declaration has a
// spelling (short -x, long --xxx, or both) and a Kind saying how the
// tokens that follow it are coerced:
//
//	name := baner.Long("name", "The name to say hi to", baner.String())
//	age := baner.Long("age", "The age of the person", baner.Number())
//	pets := baner.Long("pets", "Names of your pets", baner.VariableList(baner.String()))
//	help := baner.Both("h", "help", "This help text", baner.Empty())
//	p := baner.New(name, age, pets, help)
//
//	prog := p.Parse(os.Args[1:])
//	if errs := baner.AllErrors(prog); len(errs) > 0 {
//	    ...
//	}
//	n, err := name.Value(prog)
//
// Parsing never stops at the first problem. Every declared flag gets a
// FlagOutcome saying whether it was present and either its value or a
// descriptive error; AllErrors, AllMissing and AllValues summarise them.
//
// # Tokens
//
// Arguments are split into tokens first: "--name=a,b" becomes "--name",
// "a", "b". A token starting with "-" that is not a number ends the
// current flag's arguments, so "-5" is a value and "-x" is a flag.
//
// # Kinds
//
//   - String, Number (float64), Boolean ("true" or "false"): one token.
//   - Empty: no tokens, always true.
//   - OneOf: one token from a fixed set.
//   - List: a fixed sequence of kinds, one token each, yielding []any.
//   - VariableList: every token up to the next flag, yielding []string,
//     []float64 or []bool.
package baner
