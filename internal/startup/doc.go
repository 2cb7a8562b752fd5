// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig].
// Before reading them, LoadConfig seeds unset variables from a .env file
// (ENV_FILE, default ".env"); values already in the environment win.
//
//   - MEDIA_DIR: Path to the media root (default: /media, must exist)
//   - PORT: HTTP server port (default: 8080)
//   - METRICS_PORT: Prometheus metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable or disable metrics server (default: true)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_STATIC_FILES: Log /media/ byte requests (default: false)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//   - LOG_FILE: Also write logs to this rotating file (default: off)
//   - LOG_FILE_MAX_SIZE_MB, LOG_FILE_MAX_BACKUPS, LOG_FILE_MAX_AGE_DAYS, LOG_FILE_COMPRESS
//   - SUBTITLE_LANGUAGES: Ordered "code" or "code=Label" list (default: eng,fre,jpn)
//   - SUBTITLE_EXTENSIONS: Subtitle formats in preference order (default: vtt,srt)
//   - MEDIA_EXTENSIONS: Formats shown in listings (default: mp4,webm)
//   - POSTER_EXTENSIONS: Poster image formats in preference order (default: jpg,png; empty disables)
//
// The default language (no code in the file name) is always first in the
// subtitle language table.
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//   - Version: Application version
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
//
// # Lifecycle Logging
//
//   - [LogMemoryConfig]: Go memory limit in effect
//   - [LogLibraryInit]: Canonical root and matching tables
//   - [LogHTTPRoutes]: Registered HTTP routes (debug level)
//   - [LogServerStarted]: Server endpoints and startup duration
//   - [LogShutdownInitiated], [LogShutdownStep], [LogShutdownComplete]: Graceful shutdown
//
// # Example Usage
//
//	config, err := startup.LoadConfig()
//	if err != nil {
//	    startup.LogFatal("Configuration error: %v", err)
//	}
//
//	lib, err := library.New(config.LibraryOptions())
//	...
//	startup.LogServerStarted(startup.ServerConfig{
//	    Port:            config.Port,
//	    MetricsPort:     config.MetricsPort,
//	    MetricsEnabled:  config.MetricsEnabled,
//	    StartupDuration: time.Since(startTime),
//	})
package startup
