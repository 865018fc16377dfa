// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shayne/yargs"
	"github.com/yeetrun/baner/pkg/baner"
	"github.com/yeetrun/baner/pkg/flagfile"
	"github.com/yeetrun/baner/pkg/tui"
)

type specFlagsParsed struct {
	Spec   string `flag:"spec" short:"s" help:"Flag declaration file (BANER_SPEC)"`
	Strict bool   `flag:"strict" help:"Reject duplicate flag names"`
}

type parseFlagsParsed struct {
	Spec   string   `flag:"spec" short:"s" help:"Flag declaration file (BANER_SPEC)"`
	Strict bool     `flag:"strict" help:"Reject duplicate flag names"`
	Format string   `flag:"format" short:"f" help:"Output format: text, json or yaml (BANER_FORMAT)"`
	Ignore []string `flag:"ignore" help:"Flag names not reported as missing"`
}

type batchFlagsParsed struct {
	Spec   string   `flag:"spec" short:"s" help:"Flag declaration file (BANER_SPEC)"`
	Strict bool     `flag:"strict" help:"Reject duplicate flag names"`
	Format string   `flag:"format" short:"f" help:"Output format: text, json or yaml (BANER_FORMAT)"`
	Ignore []string `flag:"ignore" help:"Flag names not reported as missing"`
	Jobs   int      `flag:"jobs" short:"j" help:"Cases parsed concurrently"`
}

// parseParseFlags reads parse's flags, filling unset values from the
// environment.
func parseParseFlags(args []string) (parseFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[parseFlagsParsed](args, yargs.KnownFlagsOptions{SplitCommaSlices: true})
	if err != nil {
		return parseFlagsParsed{}, nil, err
	}
	flags := result.Flags
	flags.Spec = envDefault(flags.Spec, "BANER_SPEC")
	flags.Format = envDefault(flags.Format, "BANER_FORMAT")
	return flags, positional(result.RemainingArgs), nil
}

// parseBatchFlags reads batch's flags, filling unset values from the
// environment.
func parseBatchFlags(args []string) (batchFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[batchFlagsParsed](args, yargs.KnownFlagsOptions{SplitCommaSlices: true})
	if err != nil {
		return batchFlagsParsed{}, nil, err
	}
	flags := result.Flags
	flags.Spec = envDefault(flags.Spec, "BANER_SPEC")
	flags.Format = envDefault(flags.Format, "BANER_FORMAT")
	return flags, positional(result.RemainingArgs), nil
}

func envDefault(v, key string) string {
	if v == "" {
		return os.Getenv(key)
	}
	return v
}

// positional drops the command name yargs leaves at the front of args.
func positional(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	return args[1:]
}

func loadParser(path string, strict bool) (*baner.Parser, error) {
	if path == "" {
		return nil, errors.New("no flag file given; use --spec or BANER_SPEC")
	}
	f, err := flagfile.Load(path)
	if err != nil {
		return nil, err
	}
	if err := f.CheckVersion(version); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p, err := f.Parser(strict)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	debugf("loaded %d flags from %s", p.Len(), path)
	return p, nil
}

func handleParse(ctx context.Context, args []string) error {
	flags, rest, err := parseParseFlags(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("unexpected arguments %q; put the arguments to parse after --", rest)
	}
	format, err := parseOutputFormat(flags.Format)
	if err != nil {
		return err
	}
	p, err := loadParser(flags.Spec, flags.Strict)
	if err != nil {
		return err
	}
	debugf("parsing %q", targetArgs)
	r := newReport(p, targetArgs, flags.Ignore)
	if err := writeReport(os.Stdout, tui.ForFile(os.Stdout), format, r); err != nil {
		return err
	}
	if r.failed() {
		return errFailed
	}
	return nil
}

func handleUsage(ctx context.Context, args []string) error {
	result, err := yargs.ParseKnownFlags[specFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return err
	}
	flags := result.Flags
	p, err := loadParser(envDefault(flags.Spec, "BANER_SPEC"), flags.Strict)
	if err != nil {
		return err
	}
	return writeUsage(os.Stdout, tui.ForFile(os.Stdout), p)
}

// writeUsage prints the parser's help lines. With colour disabled the
// output is exactly (*baner.Parser).Help plus a trailing newline.
func writeUsage(w io.Writer, c tui.Colorizer, p *baner.Parser) error {
	for _, l := range p.HelpLines() {
		l.Spelling = c.Wrap(tui.ColorCyan, l.Spelling)
		l.Annotation = c.Wrap(tui.ColorDim, l.Annotation)
		if _, err := fmt.Fprintln(w, l.String()); err != nil {
			return err
		}
	}
	return nil
}

func handleBatch(ctx context.Context, args []string) error {
	flags, rest, err := parseBatchFlags(args)
	if err != nil {
		return err
	}
	if len(targetArgs) > 0 {
		return errors.New("batch reads argument lists from CASES, not after --")
	}
	if len(rest) != 1 {
		return errors.New("batch takes exactly one CASES file (use - for stdin)")
	}
	format, err := parseOutputFormat(flags.Format)
	if err != nil {
		return err
	}
	p, err := loadParser(flags.Spec, flags.Strict)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if rest[0] != "-" {
		f, err := os.Open(rest[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	cases, err := readCases(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", rest[0], err)
	}
	debugf("running %d cases with %d jobs", len(cases), flags.Jobs)
	results, err := runBatch(ctx, p, cases, flags.Jobs, flags.Ignore)
	if err != nil {
		return err
	}
	if err := writeBatch(os.Stdout, tui.ForFile(os.Stdout), format, results); err != nil {
		return err
	}
	for _, r := range results {
		if r.Report.failed() {
			return errFailed
		}
	}
	return nil
}
