// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baner

import (
	"fmt"

	"tailscale.com/util/mak"
)

// Parser is an ordered set of flag declarations keyed by canonical name.
// A Parser is immutable after construction and may be used by many
// goroutines at once.
type Parser struct {
	order []string
	specs map[string]FlagSpec
}

// New builds a Parser from flags. A later flag with the same canonical
// name replaces an earlier one but keeps the earlier one's position.
// Use NewStrict to reject duplicates instead.
func New(flags ...Declarer) *Parser {
	p := &Parser{}
	for _, f := range flags {
		p.add(f.Spec())
	}
	return p
}

// NewStrict is like New but returns an error if two flags share a
// canonical name.
func NewStrict(flags ...Declarer) (*Parser, error) {
	p := &Parser{}
	for i, f := range flags {
		spec := f.Spec()
		if prev, ok := p.specs[spec.Name()]; ok {
			return nil, fmt.Errorf("flag %d (%s) duplicates %s", i, spec.Spelling(), prev.Spelling())
		}
		p.add(spec)
	}
	return p, nil
}

func (p *Parser) add(spec FlagSpec) {
	name := spec.Name()
	if _, ok := p.specs[name]; !ok {
		p.order = append(p.order, name)
	}
	mak.Set(&p.specs, name, spec)
}

// Flags returns the declarations in declaration order.
func (p *Parser) Flags() []FlagSpec {
	out := make([]FlagSpec, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.specs[name])
	}
	return out
}

// Lookup returns the declaration stored under name.
func (p *Parser) Lookup(name string) (FlagSpec, bool) {
	s, ok := p.specs[name]
	return s, ok
}

// Len returns the number of declared flags.
func (p *Parser) Len() int { return len(p.order) }

// Parse tokenizes args and matches every declared flag against the full
// token stream. Flags never consume tokens from one another, so the
// outcome does not depend on declaration order. args should not include
// the program name.
func (p *Parser) Parse(args []string) *Program {
	tokens := Tokenize(args)
	prog := &Program{
		Args:  tokens,
		Flags: make(map[string]FlagOutcome, len(p.order)),
		Order: make([]string, 0, len(p.order)),
	}
	for _, name := range p.order {
		prog.Flags[name] = match(p.specs[name], tokens)
		prog.Order = append(prog.Order, name)
	}
	return prog
}
