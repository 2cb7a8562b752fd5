package library

import (
	"fmt"

	"media-browser/internal/filesystem"
)

// Kind is the classification of a resolved path.
type Kind int

const (
	// KindFile is a regular file or anything else that is not a directory.
	KindFile Kind = iota
	// KindDirectory is a directory.
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Classify reports whether path is a directory or a file, following symlinks.
// A path that disappeared since it was resolved yields ErrNotFound.
func Classify(path string) (Kind, error) {
	info, err := filesystem.Stat(path)
	if err != nil {
		return KindFile, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if info.IsDir() {
		return KindDirectory, nil
	}
	return KindFile, nil
}
