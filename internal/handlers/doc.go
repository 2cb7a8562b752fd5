// Package handlers provides the HTTP handlers of the media browser.
//
// It includes handlers for:
//   - Browsing: HTML directory listings and the player page ([Handlers.Browse])
//   - The same resolution as JSON ([Handlers.APIBrowse])
//   - Media, subtitle and poster bytes with Range support ([Handlers.ServeMedia])
//   - Health, liveness, readiness and version endpoints
//
// Every path a client supplies goes through the library's root resolver. Paths
// that escape the root, do not exist or cannot be read all produce the same
// 404 response; the cause is only logged.
package handlers
