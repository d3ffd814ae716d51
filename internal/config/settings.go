// Package config loads, merges and saves the yt-azure settings document.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/ytazure/yt-azure/internal/platform"
)

// Fixed file locations, relative to the executable directory
const (
	DefaultConfigFileName = "yt-azure.json"
	DefaultFileMode       = 0644
)

// Default values
const (
	DefaultOutputPath = "./downloads"
	DefaultFormat     = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"
)

// Environment bindings so credentials can live outside the config file
const (
	EnvConnectionString = "YT_AZURE_CONNECTION_STRING"
	EnvContainerName    = "YT_AZURE_CONTAINER"
)

// Mask shown in place of the connection string in user-visible output
const secretMask = "********************"

// StorageSettings holds the blob-store credentials and destination.
type StorageSettings struct {
	ConnectionString  string `json:"connection_string" mapstructure:"connection_string"`
	ContainerName     string `json:"container_name" mapstructure:"container_name"`
	DestinationFolder string `json:"destination_folder" mapstructure:"destination_folder"`
}

// DownloadSettings holds the local download parameters.
type DownloadSettings struct {
	OutputPath string `json:"output_path" mapstructure:"output_path"`
	Format     string `json:"format" mapstructure:"format"`
}

// Settings is the full settings document. Loading always yields every key
// populated; persisted values win over defaults, unknown keys are dropped.
type Settings struct {
	Storage  StorageSettings  `json:"storage" mapstructure:"storage"`
	Download DownloadSettings `json:"download" mapstructure:"download"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Storage: StorageSettings{
			ConnectionString:  "",
			ContainerName:     "",
			DestinationFolder: "",
		},
		Download: DownloadSettings{
			OutputPath: DefaultOutputPath,
			Format:     DefaultFormat,
		},
	}
}

// Path resolves the settings file location: the explicit path when given,
// else the fixed default beside the executable.
func Path(custom string) string {
	if custom != "" {
		return custom
	}
	return platform.Resolve(DefaultConfigFileName)
}

// Load reads the settings file at path and merges it over the defaults,
// section by section. A missing file yields the defaults untouched; an
// unparsable file logs a warning and falls back to the defaults. The
// connection string and container name can also come from the environment.
func Load(path string, logger zerolog.Logger) Settings {
	defaults := DefaultSettings()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("storage.connection_string", defaults.Storage.ConnectionString)
	v.SetDefault("storage.container_name", defaults.Storage.ContainerName)
	v.SetDefault("storage.destination_folder", defaults.Storage.DestinationFolder)
	v.SetDefault("download.output_path", defaults.Download.OutputPath)
	v.SetDefault("download.format", defaults.Download.Format)

	v.BindEnv("storage.connection_string", EnvConnectionString)
	v.BindEnv("storage.container_name", EnvContainerName)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Err(err).Str("path", path).Msg("Could not load config, using defaults")
	}

	settings := defaults
	if err := v.Unmarshal(&settings); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Could not decode config, using defaults")
		return defaults
	}
	return settings
}

// Save writes the full settings document to path, creating parent
// directories as needed. The write goes through a temp file and a rename so
// a crash never leaves a truncated document behind.
func Save(settings Settings, path string) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return platform.WriteFileAtomic(path, data, DefaultFileMode)
}

// Masked returns a copy safe for display: a configured connection string is
// replaced by a fixed mask.
func (s Settings) Masked() Settings {
	masked := s
	if masked.Storage.ConnectionString != "" {
		masked.Storage.ConnectionString = secretMask
	}
	return masked
}
