package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexisbeaulieu97/linkforce/internal/assist"
	"github.com/alexisbeaulieu97/linkforce/internal/store"
)

// Config represents the full linkforce configuration document.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Assist AssistConfig `yaml:"assist"`
	Export ExportConfig `yaml:"export"`
	Serve  ServeConfig  `yaml:"serve"`
	Log    LogConfig    `yaml:"log"`
}

// StoreConfig selects where the profile slot lives.
type StoreConfig struct {
	Backend string      `yaml:"backend" validate:"required,oneof=file redis"`
	Dir     string      `yaml:"dir,omitempty"`
	Key     string      `yaml:"key" validate:"required,slot_key"`
	Redis   RedisConfig `yaml:"redis,omitempty"`
}

// RedisConfig holds the connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr,omitempty" validate:"omitempty,hostname_port"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty" validate:"min=0,max=15"`
}

// AssistConfig configures the bio rewrite model.
type AssistConfig struct {
	Model     string        `yaml:"model" validate:"required"`
	APIKeyEnv string        `yaml:"api_key_env" validate:"required,env_name"`
	Timeout   time.Duration `yaml:"timeout" validate:"gt=0"`
}

// ExportConfig configures card rasterization.
type ExportConfig struct {
	Engine     string        `yaml:"engine" validate:"required,oneof=chromedp rod"`
	PixelRatio float64       `yaml:"pixel_ratio" validate:"gt=0,lte=4"`
	Width      int           `yaml:"width" validate:"gt=0,lte=4096"`
	Height     int           `yaml:"height" validate:"gt=0,lte=4096"`
	OutputDir  string        `yaml:"output_dir,omitempty"`
	Timeout    time.Duration `yaml:"timeout" validate:"gt=0"`
	BrowserBin string        `yaml:"browser_bin,omitempty"`
}

// ServeConfig configures the local preview server.
type ServeConfig struct {
	Addr string `yaml:"addr" validate:"required,hostname_port"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level         string `yaml:"level" validate:"required,oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Backend: "file",
			Key:     store.DefaultKey,
			Redis:   RedisConfig{Addr: "127.0.0.1:6379"},
		},
		Assist: AssistConfig{
			Model:     assist.DefaultModel,
			APIKeyEnv: "API_KEY",
			Timeout:   30 * time.Second,
		},
		Export: ExportConfig{
			Engine:     "chromedp",
			PixelRatio: 3,
			Width:      340,
			Height:     604,
			Timeout:    60 * time.Second,
		},
		Serve: ServeConfig{Addr: "127.0.0.1:7331"},
		Log:   LogConfig{Level: "info", HumanReadable: true},
	}
}

// DataDir returns the directory holding the profile slot and editor log.
func (s StoreConfig) DataDir() (string, error) {
	if s.Dir != "" {
		return s.Dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, "linkforce"), nil
}

// APIKey reads the assist credential from the configured variable.
func (a AssistConfig) APIKey() string {
	return os.Getenv(a.APIKeyEnv)
}

// ResolvedOutputDir returns where exported cards are written.
func (e ExportConfig) ResolvedOutputDir() string {
	if e.OutputDir != "" {
		return e.OutputDir
	}
	return "."
}
