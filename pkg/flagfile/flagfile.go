// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flagfile reads flag declarations from TOML, YAML or JSON files
// and builds a baner.Parser from them.
//
// A TOML file looks like:
//
//	[[flag]]
//	long = "name"
//	help = "The name to say hi to"
//	kind = { type = "string" }
//
//	[[flag]]
//	short = "p"
//	help = "A point"
//	[flag.kind]
//	type = "list"
//	elems = [{ type = "number" }, { type = "number" }]
//
// Kind types are string, number, boolean, empty, oneof (with items), list
// (with elems) and variable (with elem). A flag without a kind is empty.
package flagfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/baner/pkg/baner"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a flag file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// File is a decoded flag file.
type File struct {
	// Requires is an optional semantic version constraint on the baner
	// release reading the file, such as ">= 0.3".
	Requires string `toml:"requires,omitempty" yaml:"requires,omitempty" json:"requires,omitempty"`
	Flags    []Flag `toml:"flag" yaml:"flag" json:"flag"`
}

// Flag declares one flag. At least one of Short and Long must be set; with
// both the flag is stored under Long.
type Flag struct {
	Short string `toml:"short,omitempty" yaml:"short,omitempty" json:"short,omitempty"`
	Long  string `toml:"long,omitempty" yaml:"long,omitempty" json:"long,omitempty"`
	Help  string `toml:"help,omitempty" yaml:"help,omitempty" json:"help,omitempty"`
	Kind  Kind   `toml:"kind,omitempty" yaml:"kind,omitempty" json:"kind,omitempty"`
}

// Kind declares an argument kind.
type Kind struct {
	Type  string   `toml:"type,omitempty" yaml:"type,omitempty" json:"type,omitempty"`
	Items []string `toml:"items,omitempty" yaml:"items,omitempty" json:"items,omitempty"`
	Elems []Kind   `toml:"elems,omitempty" yaml:"elems,omitempty" json:"elems,omitempty"`
	Elem  *Kind    `toml:"elem,omitempty" yaml:"elem,omitempty" json:"elem,omitempty"`
}

// FormatFor picks a Format from path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown flag file extension %q (want .toml, .yaml, .yml or .json)", filepath.Ext(path))
}

// Load reads and decodes the flag file at path.
func Load(path string) (*File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open flag file: %w", err)
	}
	defer f.Close()
	file, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode decodes a flag file from r. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*File, error) {
	var file File
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return &file, nil
}

// CheckVersion returns an error if version does not satisfy the file's
// Requires constraint. A version that is not a semantic version, such as
// "dev", is not checked.
func (f *File) CheckVersion(version string) error {
	if f.Requires == "" {
		return nil
	}
	c, err := semver.NewConstraint(f.Requires)
	if err != nil {
		return fmt.Errorf("invalid requires %q: %w", f.Requires, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil
	}
	if !c.Check(v) {
		return fmt.Errorf("flag file requires baner %s, have %s", f.Requires, v)
	}
	return nil
}

// Parser builds a parser from the file. With strict set, duplicate
// canonical names are an error; otherwise the later flag wins.
func (f *File) Parser(strict bool) (*baner.Parser, error) {
	specs, err := f.Specs()
	if err != nil {
		return nil, err
	}
	decls := make([]baner.Declarer, len(specs))
	for i, s := range specs {
		decls[i] = s
	}
	if strict {
		return baner.NewStrict(decls...)
	}
	return baner.New(decls...), nil
}

// Specs converts the file's flags to baner declarations in file order.
func (f *File) Specs() ([]baner.FlagSpec, error) {
	specs := make([]baner.FlagSpec, 0, len(f.Flags))
	for i, fl := range f.Flags {
		spec, err := fl.spec()
		if err != nil {
			return nil, fmt.Errorf("flag %d: %w", i, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (fl Flag) spec() (baner.FlagSpec, error) {
	for _, n := range []string{fl.Short, fl.Long} {
		if strings.HasPrefix(n, "-") {
			return baner.FlagSpec{}, fmt.Errorf("name %q must not start with '-'", n)
		}
	}
	spec := baner.FlagSpec{ShortName: fl.Short, LongName: fl.Long, Help: fl.Help}
	switch {
	case fl.Short != "" && fl.Long != "":
		spec.Form = baner.FormBoth
	case fl.Short != "":
		spec.Form = baner.FormShort
	case fl.Long != "":
		spec.Form = baner.FormLong
	default:
		return baner.FlagSpec{}, errors.New("needs a short or long name")
	}
	k, err := fl.Kind.build()
	if err != nil {
		return baner.FlagSpec{}, fmt.Errorf("%s: kind: %w", spec.Spelling(), err)
	}
	spec.Kind = k
	return spec, nil
}

func (k Kind) build() (baner.Kind, error) {
	switch strings.ToLower(k.Type) {
	case "string":
		return baner.String().Kind, nil
	case "number":
		return baner.Number().Kind, nil
	case "boolean", "bool":
		return baner.Boolean().Kind, nil
	case "empty", "":
		return baner.Empty().Kind, nil
	case "oneof":
		if len(k.Items) == 0 {
			return baner.Kind{}, errors.New("oneof needs items")
		}
		return baner.OneOf(k.Items...).Kind, nil
	case "list":
		elems := make([]baner.Kind, len(k.Elems))
		for i, e := range k.Elems {
			b, err := e.build()
			if err != nil {
				return baner.Kind{}, fmt.Errorf("elem %d: %w", i, err)
			}
			elems[i] = b
		}
		return baner.ListOf(elems)
	case "variable", "variablelist":
		if k.Elem == nil {
			return baner.Kind{}, errors.New("variable needs elem")
		}
		e, err := k.Elem.build()
		if err != nil {
			return baner.Kind{}, fmt.Errorf("elem: %w", err)
		}
		return baner.VariableListOf(e)
	}
	return baner.Kind{}, fmt.Errorf("unknown type %q", k.Type)
}
