//  Copyright (c) 2023 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package driver implements the runestonefmt command's cobra root
// command and the concurrent per-file formatting pipeline it runs.
package driver

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/runestone-lang/runestone/cst"
	"github.com/runestone-lang/runestone/engine"
	"github.com/runestone-lang/runestone/parse"
	"github.com/runestone-lang/runestone/rules"
)

// options are the flags shared by every invocation.
type options struct {
	check    bool
	diff     bool
	write    bool
	verbose  bool
	debug    bool
	extended bool
}

// NewRootCommand builds the runestonefmt cobra command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "runestonefmt [files...]",
		Short: "Format source files in place, or report/diff what would change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.check, "check", false, "exit nonzero if any file is not already formatted, without writing")
	flags.BoolVar(&opts.diff, "diff", false, "print a unified diff of what would change, without writing")
	flags.BoolVar(&opts.write, "write", true, "write formatted output back to each file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log each file as it is processed")
	flags.BoolVar(&opts.debug, "debug", false, "enable engine assertions and a CST dump on failure")
	flags.BoolVar(&opts.extended, "extended", false, "also run the domain-extension rules (sql/proto/thrift/yaml/starlark/build)")

	return cmd
}

// fileResult is what one worker reports back for one input file.
type fileResult struct {
	path     string
	err      error
	changed  bool
	diffText string
}

// run formats every path in paths concurrently, one engine.Context per
// file (per SPEC_FULL.md §5/§D.5: a Context is single-use and wholly
// independent, so the only shared state across files is the worker
// pool itself), and aggregates per-file errors with multierr so one bad
// file never hides failures in the rest of the batch.
func run(paths []string, opts *options) error {
	pipeline := rules.DefaultPipeline()
	if opts.extended {
		pipeline = rules.ExtendedPipeline(rules.AllDomainRules()...)
	}

	workers := runtime.NumCPU()
	if workers > len(paths) {
		workers = len(paths)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan string)
	results := make(chan fileResult)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- formatOne(path, pipeline, opts)
			}
		}()
	}
	go func() {
		for _, p := range paths {
			jobs <- p
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	var errs error
	anyChanged := false
	for res := range results {
		if opts.verbose && res.err == nil {
			fmt.Fprintf(os.Stderr, "runestonefmt: %s\n", res.path)
		}
		if res.err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", res.path, res.err))
			continue
		}
		if res.changed {
			anyChanged = true
			if opts.diff {
				fmt.Print(res.diffText)
			}
		}
	}

	if errs != nil {
		return errs
	}
	if opts.check && anyChanged {
		return fmt.Errorf("runestonefmt: one or more files are not formatted")
	}
	return nil
}

func formatOne(path string, pipeline engine.Pipeline, opts *options) fileResult {
	srcBytes, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: err}
	}
	src := string(srcBytes)

	tree, err := parse.Parse(src)
	if err != nil {
		return fileResult{path: path, err: err}
	}

	ctx := engine.NewContext(src, tree, pipeline, engine.Flags{
		Verbose: opts.verbose,
		Debug:   opts.debug,
		Assert:  opts.debug,
		Check:   opts.check,
		Diff:    opts.diff,
	})

	if err := engine.FormatTree(ctx); err != nil {
		if opts.debug {
			fmt.Fprintln(os.Stderr, cst.Dump(ctx.SrcTree))
		}
		return fileResult{path: path, err: err}
	}

	out := string(ctx.Out.Bytes())
	if out == src {
		return fileResult{path: path, changed: false}
	}

	res := fileResult{path: path, changed: true}
	if opts.diff {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(src),
			B:        difflib.SplitLines(out),
			FromFile: path,
			ToFile:   path + " (formatted)",
			Context:  3,
		}
		text, derr := difflib.GetUnifiedDiffString(diff)
		if derr != nil {
			return fileResult{path: path, err: derr}
		}
		res.diffText = text
	}
	if opts.write && !opts.check && !opts.diff {
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return fileResult{path: path, err: err}
		}
	}
	return res
}
