// Package middleware provides HTTP middleware for the media browser.
//
// It includes:
//   - Request logging in W3C Extended Log Format
//   - Prometheus request metrics labelled by route template
//   - gzip response compression for pages and JSON
//   - Panic recovery
//
// Byte-serving routes under /media/ are excluded from compression and, unless
// LOG_STATIC_FILES is set, from the access log.
package middleware
