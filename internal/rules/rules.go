// © 2026 The samecheck authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package rules defines which files of a multi-brand source tree are
// expected to be byte-identical, and resolves those expectations against
// the filesystem.
package rules

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"samecheck/internal/syncx"
	"samecheck/internal/unwrap"
)

// Rule groups one or more glob patterns under a human-readable description.
// Every pattern of a rule is expected to match at least two files.
type Rule struct {
	Description string   `yaml:"description"`
	Patterns    []string `yaml:"patterns"`
}

// Table is an ordered sequence of rules.
type Table struct {
	rules []Rule
}

// tableFile is the on-disk shape of a rule table. Simple patterns become
// single-pattern rules described by their own quoted pattern text.
type tableFile struct {
	Simple []string `yaml:"simple"`
	Named  []Rule   `yaml:"named"`
}

//go:embed rules.yaml
var defaultYAML []byte

var defaultTable syncx.Lazy[*Table]

// Default returns the built-in rule table.
func Default() *Table {
	return defaultTable.Get(func() *Table {
		// The embedded table is part of the program; failing to parse it is
		// a programmer error.
		return unwrap.Value(Parse(defaultYAML))
	})
}

// Parse parses a YAML rule table.
func Parse(data []byte) (*Table, error) {
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}

	t := new(Table)
	for _, pattern := range tf.Simple {
		t.rules = append(t.rules, Rule{
			Description: fmt.Sprintf("%q", pattern),
			Patterns:    []string{pattern},
		})
	}
	for _, r := range tf.Named {
		if r.Description == "" {
			return nil, fmt.Errorf("parsing rules: named rule with patterns %v has no description", r.Patterns)
		}
		if len(r.Patterns) == 0 {
			return nil, fmt.Errorf("parsing rules: rule %q has no patterns", r.Description)
		}
		t.rules = append(t.rules, r)
	}
	return t, nil
}

// Load reads a rule table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// All returns the rules in table order.
func (t *Table) All() []Rule { return t.rules }

// Len returns the number of rules in the table.
func (t *Table) Len() int { return len(t.rules) }

// MatchedBy returns the first rule, in table order, one of whose patterns
// matches the given path. The path may be absolute or relative to the
// current directory; it is matched relative to root. Plain pattern matching
// is used here: the minimum-match enforcement of [Expand] doesn't apply.
func (t *Table) MatchedBy(root, path string) (Rule, bool, error) {
	rel, ok, err := relToRoot(root, path)
	if err != nil || !ok {
		return Rule{}, false, err
	}

	for _, rule := range t.rules {
		for _, pattern := range rule.Patterns {
			matched, err := doublestar.Match(pattern, rel)
			if err != nil {
				return Rule{}, false, fmt.Errorf("bad pattern %q: %w", pattern, err)
			}
			if matched {
				return rule, true, nil
			}
		}
	}
	return Rule{}, false, nil
}

// relToRoot rewrites path relative to root in slash form, reporting whether
// path lies under root at all.
func relToRoot(root, path string) (string, bool, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false, err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", false, err
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false, nil
	}
	return filepath.ToSlash(rel), true, nil
}
