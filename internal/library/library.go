package library

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"media-browser/internal/filesystem"
	"media-browser/internal/mediatypes"
)

// Browse outcomes reported to the Observer.
const (
	OutcomeDirectory  = "directory"
	OutcomeFile       = "file"
	OutcomeNotFound   = "not_found"
	OutcomeEscape     = "escape"
	OutcomeUnreadable = "unreadable"
	OutcomeCanceled   = "canceled"
)

// Observer receives per-request browse statistics. The metrics package provides
// the Prometheus implementation.
type Observer interface {
	ObserveBrowse(outcome string)
	ObserveSubtitles(langs LanguageTable, matches []SubtitleMatch)
}

// Options configures a Library. Zero-valued tables fall back to the defaults.
type Options struct {
	Root               string
	Languages          LanguageTable
	SubtitleExtensions mediatypes.ExtensionSet
	MediaExtensions    mediatypes.ExtensionSet
	PosterExtensions   mediatypes.ExtensionSet
	Observer           Observer
}

// Library is the read-only view of one media root. It holds no mutable state
// and is safe for concurrent use.
type Library struct {
	root      string
	languages LanguageTable
	subtitles mediatypes.ExtensionSet
	media     mediatypes.ExtensionSet
	posters   mediatypes.ExtensionSet
	observer  Observer
}

// Entry is the outcome of browsing one relative path.
type Entry struct {
	Kind    Kind
	Path    string
	AbsPath string

	// Set for directories.
	Listing *Listing

	// Set for files.
	Subtitles []SubtitleMatch
	Poster    string
}

// New canonicalizes the root and validates the tables.
func New(opts Options) (*Library, error) {
	if opts.Root == "" {
		return nil, fmt.Errorf("library root is empty")
	}
	abs, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve library root: %w", err)
	}
	root, err := filesystem.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve library root: %w", err)
	}
	kind, err := Classify(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat library root: %w", err)
	}
	if kind != KindDirectory {
		return nil, fmt.Errorf("library root %s is not a directory", root)
	}

	lib := &Library{
		root:      root,
		languages: opts.Languages,
		subtitles: opts.SubtitleExtensions,
		media:     opts.MediaExtensions,
		posters:   opts.PosterExtensions,
		observer:  opts.Observer,
	}
	if len(lib.languages) == 0 {
		lib.languages = DefaultLanguages()
	}
	if len(lib.subtitles) == 0 {
		lib.subtitles = mediatypes.DefaultSubtitleExtensions()
	}
	if len(lib.media) == 0 {
		lib.media = mediatypes.DefaultMediaExtensions()
	}
	if lib.posters == nil {
		lib.posters = mediatypes.DefaultPosterExtensions()
	}
	if err := lib.languages.Validate(); err != nil {
		return nil, err
	}

	// Own the tables.
	lib.languages = append(LanguageTable(nil), lib.languages...)
	lib.subtitles = append(mediatypes.ExtensionSet(nil), lib.subtitles...)
	lib.media = append(mediatypes.ExtensionSet(nil), lib.media...)
	lib.posters = append(mediatypes.ExtensionSet(nil), lib.posters...)
	return lib, nil
}

// Root returns the canonical root directory.
func (l *Library) Root() string {
	return l.root
}

// Languages returns a copy of the language table.
func (l *Library) Languages() LanguageTable {
	return append(LanguageTable(nil), l.languages...)
}

// SubtitleExtensions returns a copy of the subtitle extension preference.
func (l *Library) SubtitleExtensions() mediatypes.ExtensionSet {
	return append(mediatypes.ExtensionSet(nil), l.subtitles...)
}

// MediaExtensions returns a copy of the media extension set.
func (l *Library) MediaExtensions() mediatypes.ExtensionSet {
	return append(mediatypes.ExtensionSet(nil), l.media...)
}

// Resolve confines rel to the root. See the package level Resolve.
func (l *Library) Resolve(rel string) (string, error) {
	return Resolve(l.root, rel)
}

// ResolveFile resolves rel and requires it to be a file. It backs the byte
// server; directories are reported as ErrNotFound.
func (l *Library) ResolveFile(rel string) (string, error) {
	abs, err := l.Resolve(rel)
	if err != nil {
		return "", err
	}
	kind, err := Classify(abs)
	if err != nil {
		return "", err
	}
	if kind != KindFile {
		return "", fmt.Errorf("%w: %q is a directory", ErrNotFound, rel)
	}
	return abs, nil
}

// Ready reports whether the root is still a readable directory.
func (l *Library) Ready() error {
	_, err := filesystem.ReadDir(l.root)
	return err
}

// Browse resolves rel and produces either a directory listing or the subtitle
// matches and poster of a file. The context is checked between stages.
func (l *Library) Browse(ctx context.Context, rel string) (*Entry, error) {
	entry, err := l.browse(ctx, rel)
	l.observeBrowse(entry, err)
	return entry, err
}

func (l *Library) browse(ctx context.Context, rel string) (*Entry, error) {
	abs, err := l.Resolve(rel)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind, err := Classify(abs)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry := &Entry{
		Kind:    kind,
		Path:    relativeTo(l.root, abs),
		AbsPath: abs,
	}

	if kind == KindDirectory {
		listing, err := List(abs, l.root, l.media)
		if err != nil {
			return nil, err
		}
		entry.Listing = listing
		return entry, nil
	}

	entry.Subtitles = Match(abs, l.root, l.languages, l.subtitles)
	entry.Poster = FindPoster(abs, l.root, l.posters)
	return entry, nil
}

func (l *Library) observeBrowse(entry *Entry, err error) {
	if l.observer == nil {
		return
	}
	l.observer.ObserveBrowse(browseOutcome(entry, err))
	if err == nil && entry.Kind == KindFile {
		l.observer.ObserveSubtitles(l.languages, entry.Subtitles)
	}
}

func browseOutcome(entry *Entry, err error) string {
	switch {
	case err == nil && entry.Kind == KindDirectory:
		return OutcomeDirectory
	case err == nil:
		return OutcomeFile
	case errors.Is(err, ErrPathEscape):
		return OutcomeEscape
	case errors.Is(err, ErrUnreadableDirectory):
		return OutcomeUnreadable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeNotFound
	}
}
