package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ReadinessChecker reports whether the media root is reachable.
type ReadinessChecker interface {
	Ready() error
}

// RootCollector checks the media root on every scrape. It reports whether the
// root can be listed and how long the check took.
type RootCollector struct {
	checker  ReadinessChecker
	root     string
	up       *prometheus.Desc
	duration *prometheus.Desc
}

// NewRootCollector creates a collector for the given root. Register it with
// prometheus.MustRegister.
func NewRootCollector(checker ReadinessChecker, root string) *RootCollector {
	return &RootCollector{
		checker: checker,
		root:    root,
		up: prometheus.NewDesc(
			"media_browser_library_root_up",
			"Whether the media root could be listed at scrape time (1 = yes)",
			[]string{"root"}, nil,
		),
		duration: prometheus.NewDesc(
			"media_browser_library_root_check_seconds",
			"Time taken to list the media root at scrape time",
			[]string{"root"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *RootCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.up
	ch <- c.duration
}

// Collect implements prometheus.Collector.
func (c *RootCollector) Collect(ch chan<- prometheus.Metric) {
	start := time.Now()
	err := c.checker.Ready()
	elapsed := time.Since(start).Seconds()

	up := 1.0
	if err != nil {
		up = 0
	}
	ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, up, c.root)
	ch <- prometheus.MustNewConstMetric(c.duration, prometheus.GaugeValue, elapsed, c.root)
}
