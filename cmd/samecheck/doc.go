// © 2026 The samecheck authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Samecheck audits a multi-brand source tree for unintended divergence among
files that are supposed to be byte-identical across brand variants, and
optionally inserts a standard copyright notice block into Git-tracked files
that lack one.

Usage:

	samecheck [flags] [original...]

In the default audit mode every rule of the built-in table is resolved
against the tree and the matched files are diffed against each other. Give
one or more file paths to audit only the rules governing those files; you
are then offered to overwrite divergent copies with the given file's
content. With --insert-notices the tool instead checks files for the notice
block read from the notices file and offers to insert it where missing.
*/
package main
