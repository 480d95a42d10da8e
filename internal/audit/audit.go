// © 2026 The samecheck authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package audit ties the rule table, diff engine and notice editor into the
// two samecheck workflows: duplication auditing and notice insertion.
package audit

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"

	"samecheck/internal/cli"
	"samecheck/internal/diffview"
	"samecheck/internal/logger"
	"samecheck/internal/rules"
)

// Config carries the values parsed from the command line.
type Config struct {
	Count         bool
	InsertNotices bool
	Notices       string
	Top           string
	RulesFile     string
	Verbose       bool
	Yes           bool
	Originals     []string
}

// App is the samecheck application.
type App struct {
	cfg Config

	table  *rules.Table
	stdin  *bufio.Reader
	stdout io.Writer
}

// Flags registers the command-line flags.
func (a *App) Flags(fs *pflag.FlagSet) {
	fs.BoolVarP(&a.cfg.Count, "count", "c", false,
		"Count the number of files that require notice insertion but don't edit any.")
	fs.BoolVarP(&a.cfg.InsertNotices, "insert-notices", "i", false,
		"Insert notices into files that are in Git but don't have the notices.")
	fs.StringVarP(&a.cfg.Notices, "notices", "n", "copyrightnotices.txt",
		"Path to the notices file.")
	fs.StringVar(&a.cfg.Top, "top", ".",
		"Top of the source directory tree.")
	fs.StringVar(&a.cfg.RulesFile, "rules", "",
		"Path to a YAML rules file overriding the built-in table.")
	fs.BoolVarP(&a.cfg.Verbose, "verbose", "v", false,
		"Verbose output.")
	fs.BoolVar(&a.cfg.Yes, "yes", false,
		"Overwrite without prompting. Overridden by --count.")
}

// Run executes the workflow the flags select.
func (a *App) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	a.cfg.Originals = env.Args
	a.stdin = bufio.NewReader(env.Stdin)
	a.stdout = env.Stdout

	ctx = logger.Put(ctx, newLogger(env, a.cfg.Verbose))

	var err error
	if a.cfg.RulesFile != "" {
		a.table, err = rules.Load(a.cfg.RulesFile)
		if err != nil {
			return err
		}
	} else {
		a.table = rules.Default()
	}
	logger.Debug(ctx, "rule table ready", slog.Int("rules", a.table.Len()))

	if a.cfg.InsertNotices {
		return a.runNotices(ctx)
	}
	return a.runAudit(ctx)
}

// newLogger builds the diagnostic logger: colored tint output on stderr,
// debug level when verbose. The user-facing report goes to stdout and is
// not part of this.
func newLogger(env *cli.Env, verbose bool) *logger.Logger {
	level := new(slog.LevelVar)
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelWarn)
	}

	noColor := true
	if f, ok := env.Stderr.(*os.File); ok {
		noColor = !cli.IsTerminal(int(f.Fd()))
	}

	l := logger.New(level)
	l.Attach(tint.NewHandler(env.Stderr, &tint.Options{
		Level:   level,
		NoColor: noColor,
	}))
	return l
}

// runAudit checks the explicitly given files, or every rule in the table
// when none are given.
func (a *App) runAudit(ctx context.Context) error {
	if len(a.cfg.Originals) > 0 {
		for _, original := range a.cfg.Originals {
			if err := a.processOriginal(ctx, original); err != nil {
				return err
			}
		}
		return nil
	}
	return a.diffAll(ctx)
}

// processOriginal looks up the rule governing one user-specified file and
// diffs the rule's whole group against it, offering to overwrite divergent
// copies with the original's content.
func (a *App) processOriginal(ctx context.Context, original string) error {
	rule, ok, err := a.table.MatchedBy(a.cfg.Top, original)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(a.stdout, "%s\nNo matches.\n", original)
		return nil
	}
	fmt.Fprintf(a.stdout, "%s\nMatches %s:\n", original, rule.Description)

	paths, err := rules.Expand(a.cfg.Top, rule.Patterns)
	if err != nil {
		return err
	}
	results, err := diffview.Each(paths, original)
	if err != nil {
		return err
	}
	for _, res := range results {
		if _, err := a.askOverwrite(res.Left, res.Right, res.Diff); err != nil {
			return err
		}
	}
	return nil
}

// diffAll audits every rule in table order. A pattern matching fewer than
// two files fails that rule's report line without stopping the audit.
func (a *App) diffAll(ctx context.Context) error {
	for _, rule := range a.table.All() {
		paths, err := rules.Expand(a.cfg.Top, rule.Patterns)
		if err != nil {
			var perr *rules.PatternError
			if !errors.As(err, &perr) {
				return err
			}
			fmt.Fprintln(a.stdout, perr.Error())
			continue
		}

		results, err := diffview.Each(paths, "")
		if err != nil {
			return err
		}
		var differing, diffs []string
		for _, res := range results {
			if res.Diff != "" {
				differing = append(differing, res.Right)
				diffs = append(diffs, res.Diff)
			}
		}

		if len(differing) == 0 {
			fmt.Fprintf(a.stdout, "OK %2d matches for %s.\n", len(paths), rule.Description)
			continue
		}
		fmt.Fprintf(a.stdout, "Differences %s %q\n", rule.Description, paths[0])
		if a.cfg.Verbose {
			for _, diff := range diffs {
				a.writeIndented(diff)
			}
		} else {
			for _, path := range differing {
				fmt.Fprintf(a.stdout, "    %q\n", path)
			}
		}
	}
	return nil
}

func (a *App) writeIndented(text string) {
	for line := range strings.Lines(text) {
		io.WriteString(a.stdout, "    "+line)
	}
}
