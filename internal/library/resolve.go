package library

import (
	"fmt"
	"path/filepath"
	"strings"

	"media-browser/internal/filesystem"
)

// Resolve maps a client supplied, slash separated relative path onto root and
// returns the canonical absolute path. root must already be canonical (absolute,
// symlinks resolved).
//
// The joined path is checked lexically before anything is looked up, so nothing
// outside root is ever touched, then canonicalized with symlinks resolved and
// checked again. An empty rel denotes root itself.
func Resolve(root, rel string) (string, error) {
	joined := filepath.Join(root, filepath.FromSlash(rel))
	if !Within(root, joined) {
		return "", fmt.Errorf("%w: %q", ErrPathEscape, rel)
	}

	resolved, err := filesystem.EvalSymlinks(joined)
	if err != nil {
		if filesystem.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrNotFound, rel)
		}
		return "", fmt.Errorf("%w: %q: %w", ErrNotFound, rel, err)
	}

	if !Within(root, resolved) {
		return "", fmt.Errorf("%w: %q resolves outside root", ErrPathEscape, rel)
	}
	return resolved, nil
}

// Within reports whether path is root or a descendant of root. Both must be
// clean absolute paths. Comparison is by path components, not string prefix, so
// "/lib2" is not within "/lib".
func Within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// relativeTo returns path relative to root in slash form, "" for root itself.
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}
