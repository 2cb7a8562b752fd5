package mediatypes

import (
	"path/filepath"
	"strings"
)

// ExtensionSet is an ordered, duplicate-free list of file extensions without the
// leading dot.
type ExtensionSet []string

// NewExtensionSet normalizes the given extensions (leading dot and surrounding
// whitespace removed, empties and duplicates dropped) preserving first occurrence order.
// Case is preserved: matching is case-sensitive.
func NewExtensionSet(exts ...string) ExtensionSet {
	set := make(ExtensionSet, 0, len(exts))
	seen := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		set = append(set, ext)
	}
	return set
}

// ParseExtensionSet parses a comma separated list such as "vtt,srt".
func ParseExtensionSet(list string) ExtensionSet {
	return NewExtensionSet(strings.Split(list, ",")...)
}

// Matches reports whether name ends with "." followed by one of the extensions.
func (s ExtensionSet) Matches(name string) bool {
	for _, ext := range s {
		if strings.HasSuffix(name, "."+ext) {
			return true
		}
	}
	return false
}

// Contains reports whether ext (with or without a leading dot) is in the set.
func (s ExtensionSet) Contains(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, e := range s {
		if e == ext {
			return true
		}
	}
	return false
}

// String returns the comma separated form accepted by ParseExtensionSet.
func (s ExtensionSet) String() string {
	return strings.Join(s, ",")
}

// DefaultMediaExtensions returns the playable media formats listed in directories.
func DefaultMediaExtensions() ExtensionSet {
	return ExtensionSet{"mp4", "webm"}
}

// DefaultSubtitleExtensions returns the subtitle formats in preference order.
func DefaultSubtitleExtensions() ExtensionSet {
	return ExtensionSet{"vtt", "srt"}
}

// DefaultPosterExtensions returns the poster image formats in preference order.
func DefaultPosterExtensions() ExtensionSet {
	return ExtensionSet{"jpg", "png"}
}

// MimeTypes maps file extensions (lowercase, with leading dot) to their MIME types.
var MimeTypes = map[string]string{
	// Videos
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".m4v":  "video/x-m4v",
	".mkv":  "video/x-matroska",

	// Subtitles
	".vtt": "text/vtt; charset=utf-8",
	".srt": "application/x-subrip",
	".ass": "text/x-ssa",
	".ssa": "text/x-ssa",

	// Posters
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// GetMimeType returns the MIME type for a file name or a bare extension (".png").
// Returns "application/octet-stream" if the extension is not recognized.
func GetMimeType(name string) string {
	if mime, ok := MimeTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return mime
	}
	return "application/octet-stream"
}
