// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/yeetrun/baner/pkg/baner"
	"github.com/yeetrun/baner/pkg/tui"
	"golang.org/x/sync/errgroup"
)

// batchCase is one argument list read from a cases file.
type batchCase struct {
	Line int      `json:"line" yaml:"line"`
	Args []string `json:"-" yaml:"-"`
}

type batchResult struct {
	batchCase `yaml:",inline"`
	Report    report `json:"report" yaml:"report"`
}

// maxCaseLine is the longest case line readCases accepts.
const maxCaseLine = 16 << 20

// readCases splits r into argument lists, one per line. Blank lines and
// lines starting with # are skipped.
func readCases(r io.Reader) ([]batchCase, error) {
	var cases []batchCase
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxCaseLine)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cases = append(cases, batchCase{Line: line, Args: strings.Fields(text)})
	}
	return cases, sc.Err()
}

// runBatch parses every case with p using up to jobs goroutines. Results
// are in the same order as cases.
func runBatch(ctx context.Context, p *baner.Parser, cases []batchCase, jobs int, ignore []string) ([]batchResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]batchResult, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, c := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = batchResult{batchCase: c, Report: newReport(p, c.Args, ignore)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeBatch(w io.Writer, c tui.Colorizer, format outputFormat, results []batchResult) error {
	switch format {
	case formatJSON:
		return writeJSON(w, results)
	case formatYAML:
		return writeYAML(w, results)
	}
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		status := c.Wrap(tui.ColorGreen, "ok")
		if r.Report.failed() {
			status = c.Wrap(tui.ColorRed, "FAIL")
		}
		if _, err := fmt.Fprintf(w, "%s line %d: %s\n", status, r.Line, strings.Join(r.Args, " ")); err != nil {
			return err
		}
		if err := writeText(w, c, r.Report); err != nil {
			return err
		}
	}
	return nil
}
