// © 2026 The samecheck authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package audit

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// askOverwrite reports the comparison of dst against src and, when they
// differ, asks whether to copy src over dst. An empty diff means identical
// content and asks nothing. The --yes flag accepts without prompting.
func (a *App) askOverwrite(src, dst, diff string) (bool, error) {
	if diff == "" {
		fmt.Fprintf(a.stdout, "    Same %q\n", dst)
		return false, nil
	}

	fmt.Fprintf(a.stdout, "    Different %q\n", dst)
	if a.cfg.Verbose {
		io.WriteString(a.stdout, diff)
	}

	for {
		resp := "yes"
		if !a.cfg.Yes {
			fmt.Fprint(a.stdout, "    Overwrite? (Y/n/?)")
			var err error
			resp, err = a.readResponse(dst)
			if err != nil {
				return false, err
			}
		}

		switch {
		case resp == "" || strings.HasPrefix(resp, "y"):
			fmt.Fprintln(a.stdout, "Overwriting.")
			if err := copyFile(src, dst); err != nil {
				return false, err
			}
			return true, nil
		case strings.HasPrefix(resp, "n"):
			fmt.Fprintln(a.stdout, "Keeping")
			return false, nil
		case resp == "?":
			io.WriteString(a.stdout, diff)
		default:
			fmt.Fprintf(a.stdout, "Unrecognised %q. Ctrl-C to quit.\n", resp)
		}
	}
}

func (a *App) readResponse(dst string) (string, error) {
	line, err := a.stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	resp := strings.ToLower(strings.TrimSpace(line))
	if err == io.EOF && resp == "" {
		// An empty response normally defaults to yes; exhausted input must
		// not silently accept every remaining overwrite.
		return "", fmt.Errorf("input closed while awaiting confirmation for %q", dst)
	}
	return resp, nil
}

// copyFile replaces dst's content with src's, keeping dst's permissions.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	perm := os.FileMode(0o644)
	if fi, err := os.Stat(dst); err == nil {
		perm = fi.Mode().Perm()
	}
	return os.WriteFile(dst, data, perm)
}
