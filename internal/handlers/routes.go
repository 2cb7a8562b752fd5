package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"media-browser/internal/render"
)

// RegisterRoutes adds every application route to r.
func (h *Handlers) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods("GET")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	r.HandleFunc("/", h.Index).Methods("GET", "HEAD")
	r.HandleFunc("/browse", h.Index).Methods("GET", "HEAD")
	r.HandleFunc(render.BrowsePrefix+"{path:.*}", h.Browse).Methods("GET", "HEAD")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/browse", h.APIBrowse).Methods("GET")
	api.HandleFunc("/browse/{path:.*}", h.APIBrowse).Methods("GET")

	r.HandleFunc(render.MediaPrefix+"{path:.*}", h.ServeMedia).Methods("GET", "HEAD")
	r.HandleFunc(render.StaticPrefix+"{file}", h.ServeStatic).Methods("GET", "HEAD")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeNotFound(w)
	})
}
