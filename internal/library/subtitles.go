package library

import (
	"path/filepath"
	"strings"

	"media-browser/internal/filesystem"
	"media-browser/internal/logging"
	"media-browser/internal/mediatypes"
)

// SubtitleMatch is the subtitle chosen for one language. Path is relative to
// the library root.
type SubtitleMatch struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// IsDefault reports whether the match is for the default (no code) language.
func (m SubtitleMatch) IsDefault() bool {
	return m.Code == DefaultCode
}

// Match finds, for every language in table order, the first sibling subtitle of
// file in extension preference order. Languages without any candidate are left
// out. A lookup failure other than "does not exist" counts as no match for that
// candidate and the search moves on. The result is never nil.
func Match(file, root string, langs LanguageTable, exts mediatypes.ExtensionSet) []SubtitleMatch {
	dir := filepath.Dir(file)
	stem := Stem(filepath.Base(file))

	matches := []SubtitleMatch{}
	for _, lang := range langs {
		for _, ext := range exts {
			candidate := filepath.Join(dir, lang.Filename(stem, ext))
			found, err := filesystem.Exists(candidate)
			if err != nil {
				logging.Debug("subtitle lookup failed for %s: %v", candidate, err)
				continue
			}
			if !found {
				continue
			}
			matches = append(matches, SubtitleMatch{
				Code:  lang.Code,
				Label: lang.Label,
				Path:  relativeTo(root, candidate),
			})
			break
		}
	}
	return matches
}

// FindPoster returns the root-relative path of the first existing sibling image
// "stem.ext" of file, in extension order, or "" when there is none.
func FindPoster(file, root string, exts mediatypes.ExtensionSet) string {
	dir := filepath.Dir(file)
	stem := Stem(filepath.Base(file))
	for _, ext := range exts {
		candidate := filepath.Join(dir, stem+"."+ext)
		if found, err := filesystem.Exists(candidate); err == nil && found {
			return relativeTo(root, candidate)
		}
	}
	return ""
}

// Stem returns name without its final extension. Names whose only dot is the
// leading one (".hidden") or that end in a bare dot ("clip.") are returned
// unchanged.
func Stem(name string) string {
	ext := filepath.Ext(name)
	if ext == name || ext == "." {
		return name
	}
	return strings.TrimSuffix(name, ext)
}
