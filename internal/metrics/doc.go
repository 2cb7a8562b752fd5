// Package metrics provides Prometheus instrumentation for the media-browser application.
//
// All metrics are prefixed with "media_browser_" to avoid naming collisions with
// other applications.
//
// # Metric Categories
//
// ## HTTP Metrics
//
// Track HTTP request performance and error rates:
//   - HTTPRequestsTotal: Counter of total requests by method, path, and status
//   - HTTPRequestDuration: Histogram of request duration by method and path
//   - HTTPRequestsInFlight: Gauge of currently processing requests
//
// ## Filesystem Metrics
//
// Recorded through the filesystem.Observer returned by NewFilesystemObserver:
//   - FilesystemOperationDuration: Histogram of lookup latency by operation
//   - FilesystemOperationsTotal: Counter of lookups by operation and outcome
//
// ## Library Metrics
//
// Recorded through the library.Observer returned by NewLibraryObserver:
//   - BrowseRequestsTotal: Counter of browse resolutions by outcome
//   - SubtitleMatchesTotal: Counter of matched tracks by language code
//   - SubtitleTracksPerFile: Histogram of tracks found per played file
//
// RootCollector checks the media root at scrape time and exports
// media_browser_library_root_up.
//
// # Usage
//
// Metrics are automatically registered with the default Prometheus registry
// via promauto. Call InitializeMetrics once at startup so every label
// combination is present from the first scrape, then expose the registry with
// promhttp.Handler() on the metrics port.
package metrics
