// © 2026 The samecheck authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gitfiles

import (
	"bufio"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"samecheck/internal/testutil"
)

func TestSplitNull(t *testing.T) {
	cases := map[string]struct {
		in   string
		want []string
	}{
		"empty":           {"", nil},
		"single":          {"a.txt\x00", []string{"a.txt"}},
		"several":         {"a.txt\x00b/c.xml\x00", []string{"a.txt", "b/c.xml"}},
		"no trailer":      {"a.txt\x00b.txt", []string{"a.txt", "b.txt"}},
		"newline in name": {"a\nb.txt\x00c.txt\x00", []string{"a\nb.txt", "c.txt"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := bufio.NewScanner(strings.NewReader(tc.in))
			s.Split(splitNull)
			var got []string
			for s.Scan() {
				got = append(got, s.Text())
			}
			testutil.AssertEqual(t, s.Err(), nil)
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestTracked(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	ctx := context.Background()
	top := t.TempDir()

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = top
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}
	run("init", "-q")

	for _, name := range []string{"build.gradle", "app/styles.xml"} {
		path := filepath.Join(top, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	run("add", ".")

	paths, err := Tracked(ctx, top)
	testutil.AssertEqual(t, err, nil)
	slices.Sort(paths)
	testutil.AssertEqual(t, paths, []string{
		filepath.Join(top, "app", "styles.xml"),
		filepath.Join(top, "build.gradle"),
	})
}

func TestTrackedOutsideRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	// Guard against the temp dir being nested inside some repository.
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = dir
	if err := cmd.Run(); err == nil {
		t.Skip("temp dir is inside a repository")
	}

	if _, err := Tracked(context.Background(), dir); err == nil {
		t.Fatal("expected error outside a repository")
	}
}
