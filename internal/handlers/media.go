package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"media-browser/internal/filesystem"
	"media-browser/internal/logging"
	"media-browser/internal/mediatypes"
)

// ServeMedia streams a media, subtitle or poster file from the library. Range
// and conditional requests are handled by http.ServeContent.
func (h *Handlers) ServeMedia(w http.ResponseWriter, r *http.Request) {
	rel := mux.Vars(r)["path"]

	abs, err := h.library.ResolveFile(rel)
	if err != nil {
		logBrowseError(r, rel, err)
		writeNotFound(w)
		return
	}

	f, err := filesystem.Open(abs)
	if err != nil {
		logging.Debug("failed to open %q: %v", rel, err)
		writeNotFound(w)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		logging.Debug("failed to stat %q: %v", rel, err)
		writeNotFound(w)
		return
	}

	// The requested name decides the type; a symlink target may not carry an
	// extension.
	w.Header().Set("Content-Type", mediatypes.GetMimeType(rel))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
