package startup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"media-browser/internal/library"
	"media-browser/internal/logging"
	"media-browser/internal/mediatypes"
)

const defaultEnvFile = ".env"

// Config holds all application configuration
type Config struct {
	MediaDir        string
	Port            string
	MetricsPort     string
	LogStaticFiles  bool
	LogHealthChecks bool
	MetricsEnabled  bool

	Languages          library.LanguageTable
	SubtitleExtensions mediatypes.ExtensionSet
	MediaExtensions    mediatypes.ExtensionSet
	PosterExtensions   mediatypes.ExtensionSet

	// LogFile.Path is empty when file logging is off.
	LogFile logging.FileConfig

	// EnvFile is the .env file that seeded the environment, empty if none.
	EnvFile string
}

// LibraryOptions returns the library settings carried by the config.
func (c *Config) LibraryOptions() library.Options {
	return library.Options{
		Root:               c.MediaDir,
		Languages:          c.Languages,
		SubtitleExtensions: c.SubtitleExtensions,
		MediaExtensions:    c.MediaExtensions,
		PosterExtensions:   c.PosterExtensions,
	}
}

// LoadConfig loads and validates configuration from environment variables,
// after seeding the environment from ENV_FILE (default .env).
func LoadConfig() (*Config, error) {
	envFile, envErr := loadEnvFile()

	printBanner()
	logSystemInfo()

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	if envErr != nil {
		return nil, envErr
	}

	config, err := configFromEnv()
	if err != nil {
		return nil, err
	}
	config.EnvFile = envFile

	logConfig(config)

	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("DIRECTORY SETUP")
	logging.Info("------------------------------------------------------------")

	config.MediaDir, err = filepath.Abs(config.MediaDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve media directory path: %w", err)
	}
	logging.Info("  Media directory (absolute): %s", config.MediaDir)

	if err := checkMediaDirectory(config.MediaDir); err != nil {
		return nil, fmt.Errorf("media directory error: %w", err)
	}

	logging.Info("")
	logging.Info("  Feature availability:")
	logging.Info("    Posters:     %s", enabledString(len(config.PosterExtensions) > 0))
	logging.Info("    Log file:    %s", enabledString(config.LogFile.Path != ""))
	logging.Info("    Metrics:     %s", enabledString(config.MetricsEnabled))

	return config, nil
}

// loadEnvFile seeds unset variables from ENV_FILE. Variables already present in
// the environment win. A missing default file is not an error; a missing file
// named explicitly is.
func loadEnvFile() (string, error) {
	path := os.Getenv("ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return path, nil
}

// configFromEnv reads every setting without side effects.
func configFromEnv() (*Config, error) {
	config := &Config{
		MediaDir:        getEnv("MEDIA_DIR", "/media"),
		Port:            getEnv("PORT", "8080"),
		MetricsPort:     getEnv("METRICS_PORT", "9090"),
		LogStaticFiles:  getEnvBool("LOG_STATIC_FILES", false),
		LogHealthChecks: getEnvBool("LOG_HEALTH_CHECKS", true),
		MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),
	}

	config.Languages = library.DefaultLanguages()
	if list := os.Getenv("SUBTITLE_LANGUAGES"); list != "" {
		langs, err := library.ParseLanguages(list)
		if err != nil {
			return nil, fmt.Errorf("invalid SUBTITLE_LANGUAGES: %w", err)
		}
		config.Languages = langs
	}

	config.SubtitleExtensions = getEnvExtensions("SUBTITLE_EXTENSIONS", mediatypes.DefaultSubtitleExtensions())
	config.MediaExtensions = getEnvExtensions("MEDIA_EXTENSIONS", mediatypes.DefaultMediaExtensions())
	if shared := sharedExtensions(config.MediaExtensions, config.SubtitleExtensions); len(shared) > 0 {
		logging.Warn("Extensions %v are both media and subtitle formats; such files are listed and matched as subtitles", shared)
	}

	// An explicitly empty POSTER_EXTENSIONS disables posters.
	config.PosterExtensions = mediatypes.DefaultPosterExtensions()
	if list, ok := os.LookupEnv("POSTER_EXTENSIONS"); ok {
		config.PosterExtensions = mediatypes.ParseExtensionSet(list)
	}

	if path := os.Getenv("LOG_FILE"); path != "" {
		fc := logging.DefaultFileConfig(path)
		fc.MaxSizeMB = getEnvInt("LOG_FILE_MAX_SIZE_MB", fc.MaxSizeMB)
		fc.MaxBackups = getEnvInt("LOG_FILE_MAX_BACKUPS", fc.MaxBackups)
		fc.MaxAgeDays = getEnvInt("LOG_FILE_MAX_AGE_DAYS", fc.MaxAgeDays)
		fc.Compress = getEnvBool("LOG_FILE_COMPRESS", fc.Compress)
		config.LogFile = fc
	}

	return config, nil
}

func logConfig(config *Config) {
	envFile := config.EnvFile
	if envFile == "" {
		envFile = "(none)"
	}
	logging.Info("  ENV_FILE:            %s", envFile)
	logging.Info("  MEDIA_DIR:           %s", config.MediaDir)
	logging.Info("  PORT:                %s", config.Port)
	logging.Info("  METRICS_PORT:        %s", config.MetricsPort)
	logging.Info("  METRICS_ENABLED:     %v", config.MetricsEnabled)
	logging.Info("  LOG_STATIC_FILES:    %v", config.LogStaticFiles)
	logging.Info("  LOG_HEALTH_CHECKS:   %v", config.LogHealthChecks)
	logging.Info("  LOG_LEVEL:           %s", logging.GetLevel())
	if config.LogFile.Path != "" {
		logging.Info("  LOG_FILE:            %s (%d MB x %d, %d days)",
			config.LogFile.Path, config.LogFile.MaxSizeMB, config.LogFile.MaxBackups, config.LogFile.MaxAgeDays)
	}
	logging.Info("  MEDIA_EXTENSIONS:    %s", config.MediaExtensions)
	logging.Info("  SUBTITLE_EXTENSIONS: %s", config.SubtitleExtensions)
	logging.Info("  POSTER_EXTENSIONS:   %s", config.PosterExtensions)
	logging.Info("  SUBTITLE_LANGUAGES:")
	for _, lang := range config.Languages {
		code := lang.Code
		if lang.IsDefault() {
			code = "(none)"
		}
		logging.Info("    %-8s %s", code, lang.Label)
	}
}

func checkMediaDirectory(path string) error {
	logging.Debug("  Checking media directory: %s", path)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path exists but is not a directory")
	}

	logging.Debug("    [OK] Directory exists")

	if logging.IsDebugEnabled() {
		entries, err := os.ReadDir(path)
		if err == nil {
			fileCount := 0
			dirCount := 0
			for _, e := range entries {
				if e.IsDir() {
					dirCount++
				} else {
					fileCount++
				}
			}
			logging.Debug("    Contents: %d files, %d directories (top level)", fileCount, dirCount)
		}
	}

	return nil
}

// sharedExtensions returns the extensions of a that b also contains, in a's order.
func sharedExtensions(a, b mediatypes.ExtensionSet) []string {
	var shared []string
	for _, ext := range a {
		if b.Contains(ext) {
			shared = append(shared, ext)
		}
	}
	return shared
}

func enabledString(enabled bool) string {
	if enabled {
		return "ENABLED"
	}
	return "DISABLED"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		logging.Warn("Invalid integer value for %s: %q, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvExtensions(key string, defaultValue mediatypes.ExtensionSet) mediatypes.ExtensionSet {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	set := mediatypes.ParseExtensionSet(value)
	if len(set) == 0 {
		logging.Warn("Empty extension list for %s: %q, using default: %s", key, value, defaultValue)
		return defaultValue
	}
	return set
}
