package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_browser_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_browser_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_browser_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Filesystem metrics
var (
	FilesystemOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "media_browser_filesystem_operation_duration_seconds",
			Help:    "Duration of filesystem lookups against the media root",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"operation"},
	)

	FilesystemOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_browser_filesystem_operations_total",
			Help: "Total filesystem lookups by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
)

// Library metrics
var (
	BrowseRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_browser_browse_total",
			Help: "Total browse resolutions by outcome",
		},
		[]string{"outcome"},
	)

	SubtitleMatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_browser_subtitle_matches_total",
			Help: "Subtitle tracks found, by language code",
		},
		[]string{"language"},
	)

	SubtitleTracksPerFile = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "media_browser_subtitle_tracks_per_file",
			Help:    "Number of subtitle tracks matched per played file",
			Buckets: []float64{0, 1, 2, 3, 4, 6, 8},
		},
	)
)

// Application info
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "media_browser_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}

// languageLabel maps the default sentinel to a non-empty label value.
func languageLabel(code string) string {
	if code == "" {
		return "default"
	}
	return code
}
