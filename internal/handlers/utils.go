package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"media-browser/internal/library"
	"media-browser/internal/logging"
)

const notFoundBody = "404 page not found"

// writeJSON encodes v as JSON and writes it to the response writer.
// Any encoding or write errors are logged since we typically cannot
// recover from them in an HTTP handler context.
func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes an error response as JSON with the given status code.
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	writeJSON(w, map[string]string{"error": message})
}

// writeJSONStatus writes a simple status response as JSON.
func writeJSONStatus(w http.ResponseWriter, status string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	writeJSON(w, map[string]string{"status": status})
}

// writeNotFound answers with the fixed not-found body. The body never carries
// the requested path or the cause.
func writeNotFound(w http.ResponseWriter) {
	http.Error(w, notFoundBody, http.StatusNotFound)
}

// logBrowseError records why a request was answered with 404.
func logBrowseError(r *http.Request, rel string, err error) {
	switch {
	case errors.Is(err, library.ErrPathEscape):
		logging.Warn("rejected path outside library root: %q from %s: %v", rel, r.RemoteAddr, err)
	case errors.Is(err, library.ErrUnreadableDirectory):
		logging.Warn("unreadable directory %q: %v", rel, err)
	default:
		logging.Debug("not found %q: %v", rel, err)
	}
}
