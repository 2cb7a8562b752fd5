package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"
)

// Outcome labels reported to the Observer.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// IsNotExist reports whether err means the path is absent. ENOTDIR counts as
// absent: "a/b" where "a" is a regular file does not exist either.
func IsNotExist(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// Outcome classifies err into one of the Outcome* labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case IsNotExist(err):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}

func record(operation string, start time.Time, err error) {
	if o := observe(); o != nil {
		o.ObserveOperation(operation, Outcome(err), time.Since(start).Seconds())
	}
}

// Stat performs os.Stat (following symlinks) and records the lookup.
func Stat(path string) (os.FileInfo, error) {
	start := time.Now()
	info, err := os.Stat(path)
	record(OpStat, start, err)
	return info, err
}

// Exists reports whether path can be stat'ed. The error is nil for a clean
// "does not exist" answer and non-nil for any other lookup failure.
func Exists(path string) (bool, error) {
	_, err := Stat(path)
	switch {
	case err == nil:
		return true, nil
	case IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

// ReadDir performs os.ReadDir and records the lookup. Entries are sorted by name.
func ReadDir(path string) ([]os.DirEntry, error) {
	start := time.Now()
	entries, err := os.ReadDir(path)
	record(OpReadDir, start, err)
	return entries, err
}

// EvalSymlinks performs filepath.EvalSymlinks and records the lookup.
func EvalSymlinks(path string) (string, error) {
	start := time.Now()
	resolved, err := filepath.EvalSymlinks(path)
	record(OpEvalSymlinks, start, err)
	return resolved, err
}

// Open performs os.Open and records the lookup.
func Open(path string) (*os.File, error) {
	start := time.Now()
	f, err := os.Open(path)
	record(OpOpen, start, err)
	return f, err
}
