// Copyright (c) 2026 chenxinye
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package ukkonen builds an online suffix tree over a byte string using
// Ukkonen's linear-time construction and answers exact substring
// membership queries against it.
//
// Construction is single-threaded: New must not be called concurrently
// with itself or with Search on the same Tree, and a Tree must not be
// mutated after New returns — there is no API to do so. Once New
// returns, a Tree is immutable and Search may be called from any number
// of goroutines concurrently; every dispatcher variant is read-only
// after construction.
//
// The package reports substring presence only. It does not report
// occurrence positions, does not support multiple strings in one tree,
// and does not persist a tree across process boundaries.
package ukkonen
