// Package mediatypes provides the static extension tables shared across the
// media-browser application.
//
// This package exists as a dependency-free foundation that can be imported by other
// packages without creating import cycles. It contains the extension sets and MIME
// mappings and nothing else.
//
// # Extension Sets
//
// Extensions are stored without the leading dot and matched as a plain, case-sensitive
// suffix on the file name, so "movie.mp4" is media while "movie.MP4" is not:
//
//	set := mediatypes.DefaultMediaExtensions()
//	set.Matches("movie.mp4")  // true
//	set.Matches("notes.txt")  // false
//
// # Subtitle Preference
//
// DefaultSubtitleExtensions returns the ordered subtitle preference. Order matters:
// when several formats exist for one language, the earliest one wins.
//
// # MIME Types
//
// Use GetMimeType to get the appropriate MIME type for HTTP responses:
//
//	mimeType := mediatypes.GetMimeType("episode.webm") // "video/webm"
package mediatypes
