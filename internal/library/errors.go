package library

import "errors"

// Sentinel errors returned by the library. All of them are reported to HTTP
// clients as the same not-found response; only logs tell them apart.
var (
	// ErrPathEscape indicates the requested path resolves outside the root.
	ErrPathEscape = errors.New("path escapes library root")

	// ErrNotFound indicates the requested path does not exist, or vanished or
	// became inaccessible between resolution and use.
	ErrNotFound = errors.New("path not found")

	// ErrUnreadableDirectory indicates a directory could not be enumerated.
	ErrUnreadableDirectory = errors.New("directory unreadable")
)

// IsNotFound reports whether err should be presented to clients as "not found".
// Every library error qualifies.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPathEscape) ||
		errors.Is(err, ErrUnreadableDirectory)
}
