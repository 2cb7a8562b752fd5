package metrics

import (
	"media-browser/internal/filesystem"
	"media-browser/internal/library"
)

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics(langs library.LanguageTable) {
	// --- Filesystem lookups (per operation × outcome) ---
	fsOps := []string{filesystem.OpStat, filesystem.OpReadDir, filesystem.OpEvalSymlinks, filesystem.OpOpen}
	outcomes := []string{filesystem.OutcomeOK, filesystem.OutcomeNotFound, filesystem.OutcomeError}

	for _, op := range fsOps {
		FilesystemOperationDuration.WithLabelValues(op)
		for _, outcome := range outcomes {
			FilesystemOperationsTotal.WithLabelValues(op, outcome)
		}
	}

	// --- Browse outcomes ---
	for _, outcome := range []string{
		library.OutcomeDirectory, library.OutcomeFile, library.OutcomeNotFound,
		library.OutcomeEscape, library.OutcomeUnreadable, library.OutcomeCanceled,
	} {
		BrowseRequestsTotal.WithLabelValues(outcome)
	}

	// --- Subtitle matches per configured language ---
	for _, lang := range langs {
		SubtitleMatchesTotal.WithLabelValues(languageLabel(lang.Code))
	}
}
