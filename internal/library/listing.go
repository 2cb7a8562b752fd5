package library

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"media-browser/internal/filesystem"
	"media-browser/internal/mediatypes"
)

// HiddenPrefix marks names that are never listed.
const HiddenPrefix = "."

// Listing is the content of one directory. Paths are slash separated and
// relative to the library root; both slices are sorted ascending and never nil.
type Listing struct {
	Path        string   `json:"path"`
	Parent      string   `json:"parent"`
	HasParent   bool     `json:"hasParent"`
	Directories []string `json:"directories"`
	Files       []string `json:"files"`
}

// List enumerates the immediate children of dir. Hidden entries are skipped,
// directories are kept, and files are kept only when their name ends with one of
// the media extensions (case-sensitive).
func List(dir, root string, media mediatypes.ExtensionSet) (*Listing, error) {
	entries, err := filesystem.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableDirectory, err)
	}

	listing := &Listing{
		Path:        relativeTo(root, dir),
		Directories: []string{},
		Files:       []string{},
	}
	if listing.Path != "" {
		listing.HasParent = true
		if parent := path.Dir(listing.Path); parent != "." {
			listing.Parent = parent
		}
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, HiddenPrefix) {
			continue
		}

		rel := path.Join(listing.Path, name)
		if isDirEntry(dir, entry) {
			listing.Directories = append(listing.Directories, rel)
			continue
		}
		if media.Matches(name) {
			listing.Files = append(listing.Files, rel)
		}
	}

	sort.Strings(listing.Directories)
	sort.Strings(listing.Files)
	return listing, nil
}

// isDirEntry classifies a child by its target, so a symlink to a directory is a
// directory and a dangling symlink is not.
func isDirEntry(dir string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := filesystem.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}
