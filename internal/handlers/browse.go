package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"media-browser/internal/library"
	"media-browser/internal/logging"
	"media-browser/internal/mediatypes"
	"media-browser/internal/render"
)

// DirectoryResponse is the JSON form of a directory listing.
type DirectoryResponse struct {
	Type string `json:"type"`
	*library.Listing
}

// FileResponse is the JSON form of a media file and its sidecar files.
type FileResponse struct {
	Type      string          `json:"type"`
	Path      string          `json:"path"`
	MediaURL  string          `json:"mediaUrl"`
	MimeType  string          `json:"mimeType"`
	PosterURL string          `json:"posterUrl,omitempty"`
	Subtitles []SubtitleTrack `json:"subtitles"`
}

// SubtitleTrack is a subtitle match with the URL that serves it.
type SubtitleTrack struct {
	library.SubtitleMatch
	URL string `json:"url"`
}

// Index sends the browser to the root listing.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, render.BrowsePrefix, http.StatusFound)
}

// Browse renders a directory listing or the player page for a media file.
func (h *Handlers) Browse(w http.ResponseWriter, r *http.Request) {
	rel := mux.Vars(r)["path"]

	entry, ok := h.browse(r, rel)
	if !ok {
		writeNotFound(w)
		return
	}

	var buf bytes.Buffer
	var err error
	if entry.Kind == library.KindDirectory {
		err = h.renderer.Listing(&buf, render.NewListingPage(entry.Listing))
	} else {
		err = h.renderer.Player(&buf, render.NewPlayerPage(entry))
	}
	if err != nil {
		logging.Error("failed to render %s page for %q: %v", entry.Kind, rel, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if r.Method == http.MethodHead {
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		logging.Debug("failed to write page for %q: %v", rel, err)
	}
}

// APIBrowse answers the same resolution as Browse in JSON.
func (h *Handlers) APIBrowse(w http.ResponseWriter, r *http.Request) {
	rel := mux.Vars(r)["path"]

	entry, ok := h.browse(r, rel)
	if !ok {
		writeJSONError(w, "not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	writeJSON(w, newBrowseResponse(entry))
}

// browse runs the library lookup. It reports false when the client should get
// a not-found answer; the cause has been logged by then.
func (h *Handlers) browse(r *http.Request, rel string) (*library.Entry, bool) {
	entry, err := h.library.Browse(r.Context(), rel)
	if err == nil {
		return entry, true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logging.Debug("browse of %q abandoned: %v", rel, err)
		return nil, false
	}
	if !library.IsNotFound(err) {
		logging.Error("unexpected browse error for %q: %v", rel, err)
		return nil, false
	}
	logBrowseError(r, rel, err)
	return nil, false
}

func newBrowseResponse(entry *library.Entry) interface{} {
	if entry.Kind == library.KindDirectory {
		return DirectoryResponse{Type: entry.Kind.String(), Listing: entry.Listing}
	}

	resp := FileResponse{
		Type:      entry.Kind.String(),
		Path:      entry.Path,
		MediaURL:  render.MediaURL(entry.Path),
		MimeType:  mediatypes.GetMimeType(entry.Path),
		Subtitles: make([]SubtitleTrack, 0, len(entry.Subtitles)),
	}
	if entry.Poster != "" {
		resp.PosterURL = render.MediaURL(entry.Poster)
	}
	for _, m := range entry.Subtitles {
		resp.Subtitles = append(resp.Subtitles, SubtitleTrack{SubtitleMatch: m, URL: render.MediaURL(m.Path)})
	}
	return resp
}
