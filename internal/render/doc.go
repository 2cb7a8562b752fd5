// Package render produces the HTML pages of the media browser: a directory
// listing and a player page with one <track> per matched subtitle.
//
// Templates are embedded at build time. URLs for directories and files point
// at the /browse/ route; the player's media, poster and track sources point at
// the /media/ byte server. Each path segment is escaped separately.
//
// Subtitle tracks are declared as metadata tracks and displayed by the embedded
// subtitles.js overlay, served from [StaticFS] below [StaticPrefix], because
// browsers only render WebVTT natively and .srt files are served unchanged.
package render
