// Package main provides the entry point for the Media Browser application.
//
// Media Browser serves a directory of video files over HTTP. Directories are
// shown as listings; a video opens in an HTML5 player with every subtitle track
// found next to it, one per configured language.
//
// # Application Lifecycle
//
//  1. Memory Configuration: Sets the Go memory limit from GOMEMLIMIT or MEMORY_LIMIT
//  2. Configuration Loading: Reads .env and environment variables, validates MEDIA_DIR
//  3. Library Initialization: Canonicalizes the root and the language table
//  4. Metrics: Registers Prometheus collectors and filesystem observers
//  5. HTTP Server Setup: Configures routes and middleware, starts the servers
//  6. Graceful Shutdown: Handles SIGINT/SIGTERM and stops the servers cleanly
//
// # HTTP Server
//
// The application runs two HTTP servers:
//
//  1. Main Server (default port 8080):
//     - /browse/{path}: directory listing or player page
//     - /api/browse/{path}: the same result as JSON
//     - /media/{path}: media, subtitle and poster bytes with Range support
//     - /health, /healthz, /livez, /readyz, /version
//
//  2. Metrics Server (default port 9090, optional):
//     - Prometheus metrics endpoint (/metrics)
//     - Liveness endpoint (/health)
//
// Any path that leaves the media root, including through symlinks, is answered
// exactly like a missing one.
//
// # Environment Variables
//
// See package [media-browser/internal/startup] for the full list. The most
// common ones are:
//
//   - MEDIA_DIR: Root directory containing media files (default: /media)
//   - PORT: Main HTTP server port (default: 8080)
//   - METRICS_PORT: Metrics server port (default: 9090)
//   - SUBTITLE_LANGUAGES: Ordered language codes, e.g. "eng,fre,jpn"
//   - LOG_LEVEL: Logging level (debug/info/warn/error)
//
// # Related Packages
//
//   - [media-browser/internal/library]: Root resolver, classifier, lister and subtitle matcher
//   - [media-browser/internal/handlers]: HTTP request handlers
//   - [media-browser/internal/render]: HTML templates for listings and the player
//   - [media-browser/internal/middleware]: HTTP middleware (logging, metrics, compression)
//   - [media-browser/internal/startup]: Configuration and initialization
package main
