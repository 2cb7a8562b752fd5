package metrics

import (
	"media-browser/internal/filesystem"
	"media-browser/internal/library"
)

// filesystemObserver implements filesystem.Observer using the Prometheus
// metrics declared in this package.
type filesystemObserver struct{}

// NewFilesystemObserver creates an observer that records filesystem metrics
// into the Prometheus counters and histograms declared in metrics.go.
func NewFilesystemObserver() filesystem.Observer {
	return &filesystemObserver{}
}

func (o *filesystemObserver) ObserveOperation(operation, outcome string, durationSeconds float64) {
	FilesystemOperationDuration.WithLabelValues(operation).Observe(durationSeconds)
	FilesystemOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// libraryObserver implements library.Observer.
type libraryObserver struct{}

// NewLibraryObserver creates an observer that records browse outcomes and
// subtitle matches.
func NewLibraryObserver() library.Observer {
	return &libraryObserver{}
}

func (o *libraryObserver) ObserveBrowse(outcome string) {
	BrowseRequestsTotal.WithLabelValues(outcome).Inc()
}

func (o *libraryObserver) ObserveSubtitles(_ library.LanguageTable, matches []library.SubtitleMatch) {
	SubtitleTracksPerFile.Observe(float64(len(matches)))
	for _, m := range matches {
		SubtitleMatchesTotal.WithLabelValues(languageLabel(m.Code)).Inc()
	}
}
