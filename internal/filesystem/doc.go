/*
Package filesystem provides the read-only filesystem lookups used to browse the
media root, each one timed and reported to a metrics Observer.

# Purpose

Browsing a directory or matching subtitles for a file boils down to a handful of
primitive calls: canonicalize a path, stat it, read a directory. This package wraps
exactly those calls so that every lookup issued on behalf of a request shows up in
the Prometheus metrics, labelled by operation and outcome.

# Usage

	import "media-browser/internal/filesystem"

	info, err := filesystem.Stat("/media/show/ep1.eng.vtt")
	if filesystem.IsNotExist(err) {
	    // candidate absent
	}

	entries, err := filesystem.ReadDir("/media/show")

# Failure Semantics

Lookups are never retried: a failed call is a definitive answer for the request
that issued it. Callers decide what a failure means; for instance the subtitle
matcher treats any error as "no match for this candidate".

# Observer

The Observer interface is implemented by the metrics package and installed once at
startup with SetObserver. With no observer installed (as in unit tests), lookups
run without recording anything.
*/
package filesystem
