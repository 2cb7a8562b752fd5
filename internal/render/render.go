package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"media-browser/internal/library"
	"media-browser/internal/mediatypes"
)

// Route prefixes the pages link to.
const (
	BrowsePrefix = "/browse/"
	MediaPrefix  = "/media/"
	StaticPrefix = "/static/"
)

// SubtitleScript is the client-side overlay that displays SRT and WebVTT
// tracks. Browsers only render WebVTT in native tracks.
const SubtitleScript = "subtitles.js"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*.js
var staticFS embed.FS

// StaticFS returns the embedded assets served below StaticPrefix.
func StaticFS() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}

// Renderer turns a browse result into a page.
type Renderer interface {
	Listing(w io.Writer, page ListingPage) error
	Player(w io.Writer, page PlayerPage) error
}

// Link is one navigable entry in a listing.
type Link struct {
	Name string
	URL  string
}

// ListingPage is the view model for a directory.
type ListingPage struct {
	Title       string
	Path        string
	HasParent   bool
	ParentURL   string
	Directories []Link
	Files       []Link
}

// Track is one <track> element. SrcLang is empty for the default language,
// which is also the track marked default.
type Track struct {
	URL     string
	Label   string
	SrcLang string
	Default bool
}

// PlayerPage is the view model for a media file.
type PlayerPage struct {
	Title     string
	Path      string
	Name      string
	ParentURL string
	MediaURL  string
	MimeType  string
	PosterURL string
	ScriptURL string
	Tracks    []Track
}

// NewListingPage builds the view model for a directory listing.
func NewListingPage(l *library.Listing) ListingPage {
	page := ListingPage{
		Title:       "Listing " + displayPath(l.Path),
		Path:        l.Path,
		HasParent:   l.HasParent,
		Directories: make([]Link, 0, len(l.Directories)),
		Files:       make([]Link, 0, len(l.Files)),
	}
	if l.HasParent {
		page.ParentURL = BrowseURL(l.Parent)
	}
	for _, d := range l.Directories {
		page.Directories = append(page.Directories, Link{Name: path.Base(d), URL: BrowseURL(d)})
	}
	for _, f := range l.Files {
		page.Files = append(page.Files, Link{Name: path.Base(f), URL: BrowseURL(f)})
	}
	return page
}

// NewPlayerPage builds the view model for a file entry.
func NewPlayerPage(e *library.Entry) PlayerPage {
	title := "Watching " + displayPath(e.Path)
	if len(e.Subtitles) > 0 {
		title += " (with subtitles)"
	}

	page := PlayerPage{
		Title:     title,
		Path:      e.Path,
		Name:      path.Base(e.Path),
		ParentURL: BrowseURL(parentOf(e.Path)),
		MediaURL:  MediaURL(e.Path),
		MimeType:  mediatypes.GetMimeType(e.Path),
		ScriptURL: StaticPrefix + SubtitleScript,
		Tracks:    make([]Track, 0, len(e.Subtitles)),
	}
	if e.Poster != "" {
		page.PosterURL = MediaURL(e.Poster)
	}
	for _, m := range e.Subtitles {
		page.Tracks = append(page.Tracks, Track{
			URL:     MediaURL(m.Path),
			Label:   m.Label,
			SrcLang: m.Code,
			Default: m.IsDefault(),
		})
	}
	return page
}

// BrowseURL returns the page URL for a root-relative path.
func BrowseURL(rel string) string {
	return BrowsePrefix + escapePath(rel)
}

// MediaURL returns the byte-server URL for a root-relative path.
func MediaURL(rel string) string {
	return MediaPrefix + escapePath(rel)
}

// escapePath escapes each segment, keeping the separators.
func escapePath(rel string) string {
	if rel == "" {
		return ""
	}
	segments := strings.Split(rel, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func parentOf(rel string) string {
	parent := path.Dir(rel)
	if parent == "." || parent == "/" {
		return ""
	}
	return parent
}

func displayPath(rel string) string {
	return "/" + rel
}

// HTML renders pages from the embedded templates.
type HTML struct {
	listing *template.Template
	player  *template.Template
}

// NewHTML parses the embedded templates.
func NewHTML() (*HTML, error) {
	listing, err := template.ParseFS(templateFS, "templates/layout.html", "templates/listing.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing template: %w", err)
	}
	player, err := template.ParseFS(templateFS, "templates/layout.html", "templates/player.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse player template: %w", err)
	}
	return &HTML{listing: listing, player: player}, nil
}

// Listing renders a directory page.
func (h *HTML) Listing(w io.Writer, page ListingPage) error {
	return h.listing.ExecuteTemplate(w, "listing.html", page)
}

// Player renders a media page.
func (h *HTML) Player(w io.Writer, page PlayerPage) error {
	return h.player.ExecuteTemplate(w, "player.html", page)
}
