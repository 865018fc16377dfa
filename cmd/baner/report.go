// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yeetrun/baner/pkg/baner"
	"github.com/yeetrun/baner/pkg/tui"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(s)); f {
	case "", formatText:
		return formatText, nil
	case formatJSON, formatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
}

// report is the summary of one parse.
type report struct {
	Input   []string       `json:"input" yaml:"input"`
	Tokens  []string       `json:"tokens" yaml:"tokens"`
	Errors  []string       `json:"errors" yaml:"errors"`
	Missing []string       `json:"missing" yaml:"missing"`
	Values  map[string]any `json:"values" yaml:"values"`

	order []string
}

func newReport(p *baner.Parser, input []string, ignore []string) report {
	prog := p.Parse(input)
	r := report{
		Input:   input,
		Tokens:  prog.Args,
		Errors:  baner.AllErrors(prog),
		Missing: baner.AllMissing(prog, ignore...),
		Values:  baner.AllValues(prog),
		order:   prog.Order,
	}
	if r.Input == nil {
		r.Input = []string{}
	}
	if r.Tokens == nil {
		r.Tokens = []string{}
	}
	if r.Errors == nil {
		r.Errors = []string{}
	}
	if r.Missing == nil {
		r.Missing = []string{}
	}
	return r
}

func (r report) failed() bool {
	return len(r.Errors) > 0 || len(r.Missing) > 0
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeReport(w io.Writer, c tui.Colorizer, format outputFormat, r report) error {
	switch format {
	case formatJSON:
		return writeJSON(w, r)
	case formatYAML:
		return writeYAML(w, r)
	}
	return writeText(w, c, r)
}

func writeText(w io.Writer, c tui.Colorizer, r report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", c.Wrap(tui.ColorBold, "tokens:"), strings.Join(r.Tokens, " "))
	if len(r.Errors) > 0 {
		fmt.Fprintln(&b, c.Wrap(tui.ColorBold, "errors:"))
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "  %s\n", c.Wrap(tui.ColorRed, e))
		}
	}
	if len(r.Missing) > 0 {
		fmt.Fprintln(&b, c.Wrap(tui.ColorBold, "missing:"))
		for _, m := range r.Missing {
			fmt.Fprintf(&b, "  %s\n", c.Wrap(tui.ColorYellow, m))
		}
	}
	fmt.Fprintln(&b, c.Wrap(tui.ColorBold, "values:"))
	for _, name := range r.order {
		v := r.Values[name]
		if v == nil {
			fmt.Fprintf(&b, "  %s: %s\n", name, c.Wrap(tui.ColorDim, "-"))
			continue
		}
		fmt.Fprintf(&b, "  %s: %s\n", name, c.Wrap(tui.ColorGreen, formatValue(v)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// formatValue renders coerced values the way they would be typed:
// strings quoted, tuples and lists bracketed.
func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case float64:
		return fmt.Sprint(v)
	case bool:
		return fmt.Sprint(v)
	case []any:
		return formatSlice(v)
	case []string:
		return formatSlice(v)
	case []float64:
		return formatSlice(v)
	case []bool:
		return formatSlice(v)
	}
	return fmt.Sprint(v)
}

func formatSlice[T any](vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatValue(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
