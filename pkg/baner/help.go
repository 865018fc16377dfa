// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baner

import "strings"

// HelpLine is one flag's entry in the help text.
type HelpLine struct {
	Spelling   string // "-a", "--all" or "-a, --all"
	Annotation string // type annotation, "" for Empty
	Help       string
}

func (l HelpLine) String() string {
	s := "  " + l.Spelling
	if l.Annotation != "" {
		s += " " + l.Annotation
	}
	return s + ":\t\t" + l.Help
}

// HelpLines returns one HelpLine per flag in declaration order.
func (p *Parser) HelpLines() []HelpLine {
	lines := make([]HelpLine, 0, len(p.order))
	for _, spec := range p.Flags() {
		var spelling string
		switch spec.Form {
		case FormShort:
			spelling = "-" + spec.ShortName
		case FormLong:
			spelling = "--" + spec.LongName
		case FormBoth:
			spelling = "-" + spec.ShortName + ", --" + spec.LongName
		}
		lines = append(lines, HelpLine{
			Spelling:   spelling,
			Annotation: Annotate(spec.Kind),
			Help:       spec.Help,
		})
	}
	return lines
}

// Help renders the parser's flags, one per line.
func (p *Parser) Help() string {
	lines := p.HelpLines()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return strings.Join(out, "\n")
}

// Annotate describes the shape of k: "number", "[string number]",
// "[string...]", "ban | can".
func Annotate(k Kind) string {
	switch k.tag {
	case TagString, TagNumber, TagBoolean:
		return k.tag.String()
	case TagOneOf:
		return strings.Join(k.items, " | ")
	case TagList:
		parts := make([]string, len(k.elems))
		for i, e := range k.elems {
			parts[i] = Annotate(e)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case TagVariableList:
		return "[" + Annotate(*k.elem) + "...]"
	}
	return ""
}
