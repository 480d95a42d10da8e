// © 2026 The samecheck authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// PatternError reports a glob pattern that matched too few files to be
// useful for duplication checking. A pattern meant to find copies across
// two or more locations that only ever finds one indicates the rule itself
// needs updating, for example after a brand was removed.
type PatternError struct {
	Pattern string
	// Sole is the single matched path when the pattern matched exactly one
	// file, empty when it matched none.
	Sole string
}

func (e *PatternError) Error() string {
	if e.Sole != "" {
		return fmt.Sprintf("Failed, only one match for %q: %s.", e.Pattern, e.Sole)
	}
	return fmt.Sprintf("Failed, no match for %q.", e.Pattern)
}

// Expand resolves each pattern against root in turn and returns the matched
// paths, joined to root, in pattern order (sorted within a pattern). A
// pattern matching zero or exactly one file stops expansion with a
// [PatternError]; the matches accumulated so far are still returned.
func Expand(root string, patterns []string) ([]string, error) {
	fsys := os.DirFS(root)

	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return paths, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			paths = append(paths, filepath.Join(root, filepath.FromSlash(m)))
		}

		switch len(matches) {
		case 0:
			return paths, &PatternError{Pattern: pattern}
		case 1:
			return paths, &PatternError{Pattern: pattern, Sole: paths[len(paths)-1]}
		}
	}
	return paths, nil
}
