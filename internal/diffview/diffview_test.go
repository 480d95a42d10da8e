// © 2026 The samecheck authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package diffview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"samecheck/internal/testutil"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEach(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.xml", "<resources>\n    <style/>\n</resources>\n")
	b := write(t, dir, "b.xml", "<resources>\n    <style/>\n</resources>\n")
	c := write(t, dir, "c.xml", "<resources>\n    <style name=\"x\"/>\n</resources>\n")

	t.Run("all identical", func(t *testing.T) {
		results, err := Each([]string{a, b}, "")
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, len(results), 1)
		testutil.AssertEqual(t, results[0], Result{Left: a, Right: b, Diff: ""})
	})

	t.Run("one differs", func(t *testing.T) {
		results, err := Each([]string{a, b, c}, "")
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, len(results), 2)
		testutil.AssertEqual(t, results[0].Diff, "")
		testutil.AssertEqual(t, results[1].Left, a)
		testutil.AssertEqual(t, results[1].Right, c)
		if results[1].Diff == "" {
			t.Fatal("want a non-empty diff for the differing file")
		}
		if !strings.Contains(results[1].Diff, a) || !strings.Contains(results[1].Diff, c) {
			t.Errorf("diff header doesn't name both files:\n%s", results[1].Diff)
		}
	})

	t.Run("explicit reference", func(t *testing.T) {
		results, err := Each([]string{a, b}, c)
		testutil.AssertEqual(t, err, nil)
		// Both a and b are compared against c, neither is consumed as the
		// baseline.
		testutil.AssertEqual(t, len(results), 2)
		for _, res := range results {
			testutil.AssertEqual(t, res.Left, c)
			if res.Diff == "" {
				t.Errorf("want a diff between %s and %s", res.Left, res.Right)
			}
		}
	})

	t.Run("reference skips itself", func(t *testing.T) {
		results, err := Each([]string{a, b}, a)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, len(results), 1)
		testutil.AssertEqual(t, results[0].Right, b)
	})

	t.Run("input order preserved", func(t *testing.T) {
		results, err := Each([]string{c, a, b}, "")
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, results[0].Right, a)
		testutil.AssertEqual(t, results[1].Right, b)
		for _, res := range results {
			testutil.AssertEqual(t, res.Left, c)
		}
	})

	t.Run("unreadable file", func(t *testing.T) {
		if _, err := Each([]string{a, filepath.Join(dir, "missing.xml")}, ""); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "orig.gradle", "plugins {}\n")
	b := write(t, dir, "edited.gradle", "// notice\n\nplugins {}\n")

	diff, err := Files(a, b, a, "Edited")
	testutil.AssertEqual(t, err, nil)
	if !strings.Contains(diff, "Edited") {
		t.Errorf("diff doesn't carry the custom label:\n%s", diff)
	}
	if !strings.Contains(diff, "// notice") {
		t.Errorf("diff doesn't show the inserted line:\n%s", diff)
	}
}
