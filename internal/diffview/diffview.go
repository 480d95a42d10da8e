// © 2026 The samecheck authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package diffview compares files line by line and renders context diffs
// for human review.
package diffview

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/pmezard/go-difflib/difflib"
)

// Result is the comparison of one candidate file against a baseline.
// An empty Diff means the files are line-identical.
type Result struct {
	Left  string
	Right string
	Diff  string
}

// Files renders a context diff between the contents of two files. The
// labels appear in the diff header and need not be the file paths.
func Files(leftPath, rightPath, fromLabel, toLabel string) (string, error) {
	left, err := readLines(leftPath)
	if err != nil {
		return "", err
	}
	right, err := readLines(rightPath)
	if err != nil {
		return "", err
	}
	return render(left, right, fromLabel, toLabel)
}

// Each compares every path against a baseline and returns one Result per
// non-baseline path, preserving input order. The baseline is the reference
// path if non-empty, otherwise the first path. A path equal to the baseline
// is skipped. Lines are compared as read, with no normalization of line
// endings or whitespace.
func Each(paths []string, reference string) ([]Result, error) {
	var refLines []string
	if reference != "" {
		var err error
		refLines, err = readLines(reference)
		if err != nil {
			return nil, err
		}
	}

	var results []Result
	for _, path := range paths {
		lines, err := readLines(path)
		if err != nil {
			return results, err
		}

		if reference == "" {
			reference = path
			refLines = lines
			continue
		}
		if filepath.Clean(path) == filepath.Clean(reference) {
			continue
		}

		var diff string
		if !slices.Equal(refLines, lines) {
			diff, err = render(refLines, lines, reference, path)
			if err != nil {
				return results, err
			}
		}
		results = append(results, Result{Left: reference, Right: path, Diff: diff})
	}
	return results, nil
}

func render(left, right []string, fromLabel, toLabel string) (string, error) {
	return difflib.GetContextDiffString(difflib.ContextDiff{
		A:        left,
		B:        right,
		FromFile: fromLabel,
		ToFile:   toLabel,
		Context:  3,
	})
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return difflib.SplitLines(string(data)), nil
}
