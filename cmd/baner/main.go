// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command baner parses argument lists against flag declaration files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/shayne/yargs"
	"github.com/yeetrun/baner/pkg/tui"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "dev"

var (
	verbose bool
	// targetArgs are the arguments after the first "--" on the command line.
	targetArgs []string
)

// errFailed signals that a command already reported its failure and the
// process should exit non-zero without printing anything else.
var errFailed = errors.New("parse failed")

type globalFlagsParsed struct {
	Verbose bool `flag:"verbose" short:"v" help:"Log diagnostics to stderr"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

// splitAtDashDash returns the arguments before and after the first "--".
// The separator itself belongs to neither.
func splitAtDashDash(args []string) (cli, target []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func debugf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

func main() {
	log.SetFlags(0)
	if !tui.IsTerminal(os.Stdout) {
		color.NoColor = true
	}

	args, target := splitAtDashDash(os.Args[1:])
	targetArgs = target
	globalFlags, remaining, err := parseGlobalFlags(args)
	if err != nil {
		printCLIError(os.Stderr, err)
		os.Exit(2)
	}
	verbose = globalFlags.Verbose

	handlers := map[string]yargs.SubcommandHandler{
		"parse":   handleParse,
		"usage":   handleUsage,
		"batch":   handleBatch,
		"version": handleVersion,
	}
	if err := yargs.RunSubcommands(context.Background(), remaining, buildHelpConfig(), globalFlagsParsed{}, handlers); err != nil {
		if !errors.Is(err, errFailed) {
			printCLIError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, color.RedString("Error: %v", err))
}

func handleVersion(ctx context.Context, args []string) error {
	fmt.Println(version)
	return nil
}

func buildHelpConfig() yargs.HelpConfig {
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "baner",
			Description: "Parse argument lists against declarative flag files",
			Examples: []string{
				"baner parse --spec hello.toml -- --name Ada --age 36",
				"baner usage --spec hello.toml",
				"baner batch --spec hello.toml --jobs 4 cases.txt",
			},
		},
		SubCommands: map[string]yargs.SubCommandInfo{
			"parse": {
				Name:        "parse",
				Description: "Parse the arguments after -- and report errors, missing flags and values",
				Usage:       "--spec FILE [--format text|json|yaml] [--ignore a,b] -- ARGS...",
				Examples: []string{
					"baner parse --spec hello.toml -- --name Ada",
					"baner parse --spec hello.toml --format json --ignore help -- -t dog",
				},
			},
			"usage": {
				Name:        "usage",
				Description: "Print the help text for a flag file",
				Usage:       "--spec FILE",
			},
			"batch": {
				Name:        "batch",
				Description: "Parse every line of CASES as an argument list",
				Usage:       "--spec FILE [--jobs N] [--format text|json|yaml] CASES",
				Examples:    []string{"baner batch --spec hello.toml cases.txt", "cat cases.txt | baner batch --spec hello.toml -"},
			},
			"version": {
				Name:        "version",
				Description: "Print the baner version",
			},
		},
	}
}
