// SPDX-License-Identifier: MIT

// Package graphio reads and writes graphs in the plain edge-list format
//
//	# optional comment lines, anywhere
//	<V> <E>
//	<src> <dest> <weight>    (E times)
//
// and imports GraphML-style XML exports (<node id=.../> and
// <edge source=... target=... weight=.../>).
//
// Parsing is strict: every non-comment, non-blank line after the header must
// be an edge with endpoints in [0, V), and exactly E of them must follow.
// Errors carry the line number and wrap one of the package sentinels.
package graphio
