// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/baner/pkg/tui"
)

func TestReadCases(t *testing.T) {
	in := strings.NewReader("# comment\n--name Ada\n\n   \n-a 3 --pets rex tom\n  # indented comment\n")
	got, err := readCases(in)
	if err != nil {
		t.Fatalf("readCases: %v", err)
	}
	want := []batchCase{
		{Line: 2, Args: []string{"--name", "Ada"}},
		{Line: 5, Args: []string{"-a", "3", "--pets", "rex", "tom"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cases mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCasesLongLine(t *testing.T) {
	long := strings.Repeat("x,", 100_000) + "x"
	got, err := readCases(strings.NewReader("--pets " + long + "\n--name Ada\n"))
	if err != nil {
		t.Fatalf("readCases: %v", err)
	}
	if len(got) != 2 || got[0].Args[1] != long || got[1].Line != 2 {
		t.Fatalf("readCases returned %d cases, want the long line intact followed by line 2", len(got))
	}
}

func TestRunBatchKeepsOrder(t *testing.T) {
	var cases []batchCase
	for i := range 64 {
		cases = append(cases, batchCase{Line: i + 1, Args: []string{"--name", fmt.Sprint(i)}})
	}
	results, err := runBatch(context.Background(), helloParser(), cases, 8, nil)
	if err != nil {
		t.Fatalf("runBatch: %v", err)
	}
	if len(results) != len(cases) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(cases))
	}
	for i, r := range results {
		if r.Line != i+1 {
			t.Fatalf("results[%d].Line = %d, want %d", i, r.Line, i+1)
		}
		if got, want := r.Report.Values["name"], fmt.Sprint(i); got != want {
			t.Fatalf("results[%d] name = %#v, want %#v", i, got, want)
		}
	}
}

func TestRunBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cases := []batchCase{{Line: 1, Args: []string{"--name", "x"}}}
	if _, err := runBatch(ctx, helloParser(), cases, 1, nil); err == nil {
		t.Fatalf("runBatch with canceled context succeeded, want error")
	}
}

func TestWriteBatchText(t *testing.T) {
	cases := []batchCase{
		{Line: 1, Args: []string{"--name", "Ada", "-a", "1", "--pets", "rex", "-h"}},
		{Line: 3, Args: []string{"-a"}},
	}
	results, err := runBatch(context.Background(), helloParser(), cases, 2, nil)
	if err != nil {
		t.Fatalf("runBatch: %v", err)
	}
	var buf bytes.Buffer
	if err := writeBatch(&buf, tui.Colorizer{}, formatText, results); err != nil {
		t.Fatalf("writeBatch: %v", err)
	}
	out := buf.String()
	first := strings.Index(out, "ok line 1: --name Ada -a 1 --pets rex -h")
	second := strings.Index(out, "FAIL line 3: -a")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("unexpected batch output:\n%s", out)
	}
}

func TestWriteBatchJSON(t *testing.T) {
	cases := []batchCase{{Line: 7, Args: []string{"--name", "Ada"}}}
	results, err := runBatch(context.Background(), helloParser(), cases, 1, nil)
	if err != nil {
		t.Fatalf("runBatch: %v", err)
	}
	var buf bytes.Buffer
	if err := writeBatch(&buf, tui.Colorizer{}, formatJSON, results); err != nil {
		t.Fatalf("writeBatch: %v", err)
	}
	var got []struct {
		Line   int `json:"line"`
		Report struct {
			Input []string `json:"input"`
		} `json:"report"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if len(got) != 1 || got[0].Line != 7 {
		t.Fatalf("got %#v, want one result for line 7", got)
	}
	if diff := cmp.Diff([]string{"--name", "Ada"}, got[0].Report.Input); diff != "" {
		t.Fatalf("input mismatch (-want +got):\n%s", diff)
	}
}
