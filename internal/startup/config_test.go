package startup

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"media-browser/internal/library"
	"media-browser/internal/mediatypes"
)

var configKeys = []string{
	"ENV_FILE", "MEDIA_DIR", "PORT", "METRICS_PORT", "METRICS_ENABLED",
	"LOG_STATIC_FILES", "LOG_HEALTH_CHECKS", "SUBTITLE_LANGUAGES",
	"SUBTITLE_EXTENSIONS", "MEDIA_EXTENSIONS", "POSTER_EXTENSIONS",
	"LOG_FILE", "LOG_FILE_MAX_SIZE_MB", "LOG_FILE_MAX_BACKUPS",
	"LOG_FILE_MAX_AGE_DAYS", "LOG_FILE_COMPRESS",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		unsetEnv(t, key)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	clearConfigEnv(t)

	config, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv() error = %v", err)
	}

	if config.MediaDir != "/media" || config.Port != "8080" || config.MetricsPort != "9090" {
		t.Errorf("unexpected defaults: %+v", config)
	}
	if !config.MetricsEnabled || config.LogStaticFiles || !config.LogHealthChecks {
		t.Errorf("unexpected flag defaults: %+v", config)
	}
	if !reflect.DeepEqual(config.Languages, library.DefaultLanguages()) {
		t.Errorf("Languages = %+v", config.Languages)
	}
	if !reflect.DeepEqual(config.SubtitleExtensions, mediatypes.DefaultSubtitleExtensions()) {
		t.Errorf("SubtitleExtensions = %v", config.SubtitleExtensions)
	}
	if !reflect.DeepEqual(config.MediaExtensions, mediatypes.DefaultMediaExtensions()) {
		t.Errorf("MediaExtensions = %v", config.MediaExtensions)
	}
	if !reflect.DeepEqual(config.PosterExtensions, mediatypes.DefaultPosterExtensions()) {
		t.Errorf("PosterExtensions = %v", config.PosterExtensions)
	}
	if config.LogFile.Path != "" {
		t.Errorf("LogFile enabled by default: %+v", config.LogFile)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("MEDIA_DIR", "/srv/video")
	t.Setenv("PORT", "3000")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SUBTITLE_LANGUAGES", "jpn=Japanese,eng=English")
	t.Setenv("SUBTITLE_EXTENSIONS", "srt, vtt")
	t.Setenv("MEDIA_EXTENSIONS", ".mkv,mp4")
	t.Setenv("POSTER_EXTENSIONS", "")
	t.Setenv("LOG_FILE", "/var/log/media-browser.log")
	t.Setenv("LOG_FILE_MAX_BACKUPS", "9")

	config, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv() error = %v", err)
	}

	if config.MediaDir != "/srv/video" || config.Port != "3000" || config.MetricsEnabled {
		t.Errorf("unexpected config: %+v", config)
	}
	if want := []string{"", "jpn", "eng"}; !reflect.DeepEqual(config.Languages.Codes(), want) {
		t.Errorf("language codes = %v, want %v", config.Languages.Codes(), want)
	}
	if want := (mediatypes.ExtensionSet{"srt", "vtt"}); !reflect.DeepEqual(config.SubtitleExtensions, want) {
		t.Errorf("SubtitleExtensions = %v, want %v", config.SubtitleExtensions, want)
	}
	if want := (mediatypes.ExtensionSet{"mkv", "mp4"}); !reflect.DeepEqual(config.MediaExtensions, want) {
		t.Errorf("MediaExtensions = %v, want %v", config.MediaExtensions, want)
	}
	if len(config.PosterExtensions) != 0 {
		t.Errorf("PosterExtensions = %v, want disabled", config.PosterExtensions)
	}
	if config.LogFile.Path != "/var/log/media-browser.log" || config.LogFile.MaxBackups != 9 || config.LogFile.MaxSizeMB != 50 {
		t.Errorf("LogFile = %+v", config.LogFile)
	}

	opts := config.LibraryOptions()
	if opts.Root != "/srv/video" || !reflect.DeepEqual(opts.Languages, config.Languages) {
		t.Errorf("LibraryOptions() = %+v", opts)
	}
}

func TestConfigFromEnvInvalidLanguages(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SUBTITLE_LANGUAGES", "eng,eng")

	if _, err := configFromEnv(); err == nil {
		t.Error("expected error for duplicate language codes")
	}
}

func TestConfigFromEnvEmptyExtensionList(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SUBTITLE_EXTENSIONS", " , ")

	config, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv() error = %v", err)
	}
	if !reflect.DeepEqual(config.SubtitleExtensions, mediatypes.DefaultSubtitleExtensions()) {
		t.Errorf("SubtitleExtensions = %v, want default", config.SubtitleExtensions)
	}
}

func TestSharedExtensions(t *testing.T) {
	tests := []struct {
		name string
		a, b mediatypes.ExtensionSet
		want []string
	}{
		{"defaults are disjoint", mediatypes.DefaultMediaExtensions(), mediatypes.DefaultSubtitleExtensions(), nil},
		{"one shared", mediatypes.NewExtensionSet("mp4", "vtt"), mediatypes.NewExtensionSet("srt", "vtt"), []string{"vtt"}},
		{"order of first set", mediatypes.NewExtensionSet("srt", "mp4", "vtt"), mediatypes.NewExtensionSet("vtt", "srt"), []string{"srt", "vtt"}},
		{"empty", nil, mediatypes.DefaultSubtitleExtensions(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sharedExtensions(tt.a, tt.b); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sharedExtensions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing default file is ignored", func(t *testing.T) {
		clearConfigEnv(t)
		path, err := loadEnvFile()
		if err != nil || path != "" {
			t.Errorf("loadEnvFile() = %q, %v", path, err)
		}
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
		if _, err := loadEnvFile(); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("environment wins over file", func(t *testing.T) {
		clearConfigEnv(t)
		envFile := filepath.Join(t.TempDir(), "browser.env")
		content := "PORT=1234\nMEDIA_DIR=/from/file\n"
		if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("ENV_FILE", envFile)
		t.Setenv("PORT", "9999")

		path, err := loadEnvFile()
		if err != nil {
			t.Fatalf("loadEnvFile() error = %v", err)
		}
		if path != envFile {
			t.Errorf("path = %q, want %q", path, envFile)
		}
		if got := os.Getenv("PORT"); got != "9999" {
			t.Errorf("PORT = %q, want environment value", got)
		}
		if got := os.Getenv("MEDIA_DIR"); got != "/from/file" {
			t.Errorf("MEDIA_DIR = %q, want file value", got)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid media directory", func(t *testing.T) {
		clearConfigEnv(t)
		dir := t.TempDir()
		t.Setenv("MEDIA_DIR", dir)

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !filepath.IsAbs(config.MediaDir) {
			t.Errorf("MediaDir not absolute: %q", config.MediaDir)
		}
	})

	t.Run("missing media directory", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("MEDIA_DIR", filepath.Join(t.TempDir(), "missing"))
		if _, err := LoadConfig(); err == nil {
			t.Error("expected error for missing media directory")
		}
	})

	t.Run("media path is a file", func(t *testing.T) {
		clearConfigEnv(t)
		file := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(file, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("MEDIA_DIR", file)
		if _, err := LoadConfig(); err == nil {
			t.Error("expected error for file media path")
		}
	})
}
