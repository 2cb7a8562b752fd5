// Package library resolves client paths inside the media root and computes what
// a browse request shows: a sorted directory listing, or the subtitle tracks and
// poster of a media file.
//
// # Pipeline
//
//	Resolve -> Classify -> List  (directory)
//	                    -> Match (file) + FindPoster
//
// Resolve joins the untrusted relative path onto the root, rejects lexical
// escapes without probing, canonicalizes symlinks and rejects anything whose
// canonical form lies outside the root. The "escaped" and "absent" cases are
// distinct errors internally but both surface to clients as the same 404.
//
// # Subtitle Matching
//
// For "show/ep1.mp4" and the default table, the candidates are checked in this
// order, stopping at the first hit per language:
//
//	show/ep1.vtt      show/ep1.srt       (Default)
//	show/ep1.eng.vtt  show/ep1.eng.srt   (English)
//	show/ep1.fre.vtt  show/ep1.fre.srt   (French)
//	show/ep1.jpn.vtt  show/ep1.jpn.srt   (Japanese)
//
// # Concurrency
//
// A Library is immutable after New and every operation is a pure function of the
// root, the request path and the filesystem state, so it can be shared by all
// request goroutines without locking.
package library
