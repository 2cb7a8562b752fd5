package handlers

import (
	"io/fs"
	"time"

	"media-browser/internal/library"
	"media-browser/internal/logging"
	"media-browser/internal/render"
)

// Handlers serves the browse, media and operational endpoints of one library.
type Handlers struct {
	library  *library.Library
	renderer render.Renderer
	assets   fs.FS
	started  time.Time
}

func New(lib *library.Library, renderer render.Renderer) *Handlers {
	assets, err := render.StaticFS()
	if err != nil {
		logging.Error("embedded assets unavailable: %v", err)
	}
	return &Handlers{
		library:  lib,
		renderer: renderer,
		assets:   assets,
		started:  time.Now(),
	}
}
