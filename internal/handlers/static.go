package handlers

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
)

// ServeStatic serves the embedded page assets such as the subtitle overlay.
func (h *Handlers) ServeStatic(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["file"]
	if h.assets == nil || !fs.ValidPath(name) {
		writeNotFound(w)
		return
	}
	if _, err := fs.Stat(h.assets, name); err != nil {
		writeNotFound(w)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	http.ServeFileFS(w, r, h.assets, name)
}
