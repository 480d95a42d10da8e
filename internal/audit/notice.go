// © 2026 The samecheck authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package audit

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"samecheck/internal/gitfiles"
	"samecheck/internal/logger"
	"samecheck/internal/notices"
)

// runNotices checks the candidate files for the notice block and, unless
// counting, inserts it where missing. Candidates are the explicitly given
// files, or every Git-tracked file under top when none are given.
func (a *App) runNotices(ctx context.Context) error {
	editor, err := notices.Load(a.cfg.Notices)
	if err != nil {
		return err
	}

	candidates := a.cfg.Originals
	if len(candidates) == 0 {
		candidates, err = gitfiles.Tracked(ctx, a.cfg.Top)
		if err != nil {
			return err
		}
	}

	var checked, edited int
	for _, path := range candidates {
		checked++
		did, err := a.noticeFile(ctx, editor, path)
		if err != nil {
			return err
		}
		if did {
			edited++
		}
	}

	fmt.Fprintf(a.stdout, "Checked:%d. Edited:%d.\n", checked, edited)
	return nil
}

// noticeFile handles one candidate. It reports whether the file was edited,
// or in counting mode whether it would need an edit.
func (a *App) noticeFile(ctx context.Context, editor *notices.Editor, path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if fi.IsDir() {
		return false, nil
	}

	check, err := editor.Check(path)
	if err != nil {
		return false, err
	}
	if check.OK {
		if check.Exempt {
			logger.Debug(ctx, "suffix exempt from notice insertion, skipping", slog.String("file", path))
		} else {
			logger.Debug(ctx, "notices present", slog.Int("lines", check.Lines), slog.String("file", path))
		}
		return false, nil
	}

	if a.cfg.Verbose || !a.cfg.Count {
		fmt.Fprintf(a.stdout, "No copyright notices in file %q\n", path)
	}
	if a.cfg.Count {
		return true, nil
	}

	editedPath, diff, err := editor.Insert(path)
	if err != nil {
		return false, err
	}
	defer os.Remove(editedPath)

	overwritten, err := a.askOverwrite(editedPath, path, diff)
	if err != nil {
		return false, err
	}
	if overwritten {
		// If the freshly overwritten file still fails the check, the
		// inserter itself is broken.
		recheck, err := editor.Check(path)
		if err != nil {
			return false, err
		}
		if !recheck.OK {
			return false, fmt.Errorf("overwritten file %q doesn't have notices", path)
		}
		logger.Debug(ctx, "overwritten file OK", slog.String("file", path))
	}
	return overwritten, nil
}
