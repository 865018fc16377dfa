// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baner

import "slices"

// Program is the outcome of one Parse call.
type Program struct {
	// Args is the tokenized argument stream.
	Args []string
	// Flags maps canonical names to outcomes.
	Flags map[string]FlagOutcome
	// Order lists the canonical names in declaration order.
	Order []string
}

// Flag returns the outcome for the flag stored under name.
func (p *Program) Flag(name string) (FlagOutcome, bool) {
	o, ok := p.Flags[name]
	return o, ok
}

// Present reports whether the flag stored under name was seen.
func (p *Program) Present(name string) bool {
	return p.Flags[name].Present
}

// AllErrors returns the messages of flags that are present but failed, in
// declaration order. Missing flags are not errors.
func AllErrors(p *Program) []string {
	var errs []string
	for _, name := range p.Order {
		o := p.Flags[name]
		if o.Present && o.Result.IsErr() {
			errs = append(errs, o.Result.Message())
		}
	}
	return errs
}

// AllMissing returns the canonical names of flags that were not seen, in
// declaration order, skipping any name in ignore.
func AllMissing(p *Program, ignore ...string) []string {
	var missing []string
	for _, name := range p.Order {
		if slices.Contains(ignore, name) {
			continue
		}
		if !p.Flags[name].Present {
			missing = append(missing, name)
		}
	}
	return missing
}

// AllValues returns every declared name mapped to its coerced value.
// Flags that are absent or failed map to nil rather than being left out.
func AllValues(p *Program) map[string]any {
	values := make(map[string]any, len(p.Order))
	for _, name := range p.Order {
		o := p.Flags[name]
		values[name] = nil
		if !o.Present {
			continue
		}
		if v, ok := o.Result.Value(); ok {
			values[name] = v
		}
	}
	return values
}
