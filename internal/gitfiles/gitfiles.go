// © 2026 The samecheck authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package gitfiles lists files tracked by Git.
package gitfiles

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"

	"samecheck/internal/logger"
)

// Tracked runs "git ls-files -z" in top and returns the listed paths joined
// to top. The -z switch makes Git separate names with NUL bytes and emit
// them verbatim, so names containing newlines survive intact.
func Tracked(ctx context.Context, top string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "ls-files", "-z")
	cmd.Dir = top
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("git ls-files: %w", err)
	}

	var paths []string
	s := bufio.NewScanner(stdout)
	s.Split(splitNull)
	for s.Scan() {
		if s.Text() == "" {
			continue
		}
		paths = append(paths, filepath.Join(top, filepath.FromSlash(s.Text())))
	}
	scanErr := s.Err()

	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("git ls-files: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}
	if scanErr != nil {
		return nil, fmt.Errorf("git ls-files: %w", scanErr)
	}

	logger.Debug(ctx, "listed tracked files", slog.Int("count", len(paths)), slog.String("top", top))
	return paths, nil
}

// splitNull is a [bufio.SplitFunc] that splits on NUL bytes.
func splitNull(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
