// © 2026 The samecheck authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package notices checks files for a canonical copyright notice block and
// produces edited copies with the block inserted.
package notices

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"samecheck/internal/diffview"
)

// Strategy selects how the notice block is written into a file.
type Strategy int

const (
	// StrategyLeader prefixes every notice line with a comment leader.
	StrategyLeader Strategy = iota
	// StrategyXML wraps the notice block in an XML comment, placed after
	// the XML declaration if the file starts with one.
	StrategyXML
)

// ErrUnknownSuffix reports a file suffix with no known insertion strategy.
// Such a file must fail loudly rather than get a guessed comment leader.
var ErrUnknownSuffix = errors.New("no comment leader or custom editor")

// leaders maps a file suffix to the comment leader used by the plain
// insertion strategy.
var leaders = map[string]string{
	".gitignore":  "#",
	".pro":        "#",
	".properties": "#",
	".py":         "#",

	".gradle": "//",
	".java":   "//",
	".kt":     "//",
}

// custom maps a file suffix to a format-specific insertion strategy.
var custom = map[string]Strategy{
	".xml": StrategyXML,
}

// exempt lists suffixes that never carry a notice block.
var exempt = map[string]bool{
	".png": true,
}

// Editor holds the canonical notice block loaded from the notices file.
// It is read-only after construction.
type Editor struct {
	path  string
	lines []string
	xml   string
}

// Load reads the notices file. Lines are whitespace-trimmed; the derived
// XML rendering wraps them in a block comment.
func Load(path string) (*Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	e := &Editor{path: path}
	for line := range strings.Lines(string(data)) {
		e.lines = append(e.lines, strings.TrimSpace(line))
	}
	if len(e.lines) == 0 {
		return nil, fmt.Errorf("notices file %q is empty", path)
	}

	var b strings.Builder
	b.WriteString("<!--\n")
	for _, line := range e.lines {
		b.WriteString("    " + line + "\n")
	}
	b.WriteString("-->\n")
	e.xml = b.String()

	return e, nil
}

// Lines returns the number of lines in the notice block.
func (e *Editor) Lines() int { return len(e.lines) }

// Check is the result of scanning one file for the notice block.
type Check struct {
	// OK reports that the file either contains the full notice block or is
	// exempt from carrying one.
	OK bool
	// Lines is the number of notice lines found, in order. It is
	// meaningless for exempt files.
	Lines int
	// Exempt reports that the file's suffix never carries notices.
	Exempt bool
}

// Check scans a file for the notice lines. Each notice line must occur, in
// order, as a substring of some file line: the match tolerates a file's own
// comment leader or indentation around each line, but not reordering.
func (e *Editor) Check(path string) (Check, error) {
	if exempt[effectiveSuffix(path)] {
		return Check{OK: true, Exempt: true}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Check{}, err
	}
	defer f.Close()

	var found int
	s := bufio.NewScanner(f)
	for s.Scan() {
		if strings.Contains(s.Text(), e.lines[found]) {
			found++
			if found == len(e.lines) {
				return Check{OK: true, Lines: found}, nil
			}
		}
	}
	if err := s.Err(); err != nil {
		return Check{}, fmt.Errorf("scanning %s: %w", path, err)
	}
	return Check{Lines: found}, nil
}

// Insert writes a copy of the file with the notice block inserted, using
// the strategy the file's suffix selects, to a fresh temporary file. It
// returns the temporary path and a context diff from the original to the
// edited copy for user review; the original is not modified.
func (e *Editor) Insert(path string) (edited, diff string, err error) {
	suffix := effectiveSuffix(path)
	strategy, ok := custom[suffix]
	leader := leaders[suffix]
	if !ok {
		if leader == "" {
			return "", "", fmt.Errorf("%w for suffix %q: %s", ErrUnknownSuffix, suffix, path)
		}
		strategy = StrategyLeader
	}

	orig, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer orig.Close()

	stem := strings.TrimSuffix(filepath.Base(path), suffix)
	tmp, err := os.CreateTemp("", stem+"_*"+suffix)
	if err != nil {
		return "", "", err
	}
	edited = tmp.Name()

	w := bufio.NewWriter(tmp)
	r := bufio.NewReader(orig)
	switch strategy {
	case StrategyXML:
		err = e.insertXML(r, w)
	default:
		err = e.insertLeader(leader, r, w)
	}
	if err == nil {
		err = w.Flush()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(edited)
		return "", "", fmt.Errorf("editing %s: %w", path, err)
	}

	diff, err = diffview.Files(path, edited, path, "Edited")
	if err != nil {
		os.Remove(edited)
		return "", "", err
	}
	return edited, diff, nil
}

// insertLeader writes each notice line prefixed by the leader and a space,
// then a blank line if the original didn't start with one, then the
// original verbatim.
func (e *Editor) insertLeader(leader string, r *bufio.Reader, w *bufio.Writer) error {
	for _, line := range e.lines {
		fmt.Fprintf(w, "%s %s\n", leader, line)
	}

	first := true
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			if first {
				first = false
				if strings.TrimSpace(line) != "" {
					w.WriteString("\n")
				}
			}
			w.WriteString(line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// insertXML puts the notice comment after the XML declaration if the file
// starts with one, before everything otherwise, then copies the rest of the
// file unchanged.
func (e *Editor) insertXML(r *bufio.Reader, w *bufio.Writer) error {
	first, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	if strings.HasPrefix(first, "<?xml") {
		w.WriteString(first)
		w.WriteString(e.xml)
	} else {
		w.WriteString(e.xml)
		w.WriteString(first)
	}
	if _, err := io.Copy(w, r); err != nil {
		return err
	}
	return nil
}

// effectiveSuffix classifies a file by extension. A dotfile like
// ".gitignore" classifies as its full name; filepath.Ext already behaves
// that way since the name's only dot is its first byte.
func effectiveSuffix(path string) string {
	return filepath.Ext(filepath.Base(path))
}
