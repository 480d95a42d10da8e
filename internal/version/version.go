// © 2026 The samecheck authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports the command name and build information.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"samecheck/internal/syncx"
)

// CmdName returns the base name of the running command.
func CmdName() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Base(os.Args[0])
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}

var info syncx.Lazy[string]

// Version returns a human-readable version string derived from the build
// information stamped into the binary.
func Version() string {
	return info.Get(func() string {
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return CmdName() + " (unknown version)\n"
		}
		var revision, modified string
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value
			}
		}
		ver := bi.Main.Version
		if revision != "" {
			if len(revision) > 12 {
				revision = revision[:12]
			}
			ver += " (" + revision
			if modified == "true" {
				ver += ", modified"
			}
			ver += ")"
		}
		return fmt.Sprintf("%s %s %s\n", CmdName(), ver, bi.GoVersion)
	})
}
