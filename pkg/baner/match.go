// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baner

import (
	"fmt"

	"github.com/yeetrun/baner/pkg/result"
)

// FlagOutcome is what parsing found for one declared flag. Present only
// says the flag token was seen; Result may still be a failure.
type FlagOutcome struct {
	Present bool
	Result  result.Result[any]
	Spec    FlagSpec
}

// match finds the first token equal to one of spec's spellings and
// coerces the tokens after it.
func match(spec FlagSpec, tokens []string) FlagOutcome {
	for i, tok := range tokens {
		if !spec.matches(tok) {
			continue
		}
		r := coerce(spec.Kind, tokens[i+1:])
		r = result.MapErr(r, func(inner error) error {
			kind := kindOf(inner)
			if kind == 0 {
				kind = TypeMismatch
			}
			return &ArgError{
				Kind: kind,
				Msg:  fmt.Sprintf("Error parsing %s due to: %s", spec.Spelling(), inner.Error()),
				Err:  inner,
			}
		})
		return FlagOutcome{Present: true, Result: r, Spec: spec}
	}
	return FlagOutcome{
		Result: result.Err[any](argErr(NotFound, fmt.Sprintf("%v flag %s not found", spec.Form, spec.Spelling()))),
		Spec:   spec,
	}
}
