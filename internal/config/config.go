// Package config loads rtt settings from an optional YAML file, the
// environment (including a .env file) and defaults, in that order of
// increasing precedence for the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ironsheep/rtt/internal/language"
	"github.com/ironsheep/rtt/internal/logger"
	yaml "go.yaml.in/yaml/v3"
)

// DefaultFile is the config file looked up in the working directory when
// no explicit path is given.
const DefaultFile = "rtt.yaml"

// Config is the complete runtime configuration.
type Config struct {
	OCR       OCRConfig           `yaml:"ocr"`
	Capture   CaptureConfig       `yaml:"capture"`
	Detection DetectionConfig     `yaml:"detection"`
	Translate TranslateConfig     `yaml:"translate"`
	Languages []language.Language `yaml:"languages"`
	Batch     BatchConfig         `yaml:"batch"`
	Log       LogConfig           `yaml:"log"`
}

// OCRConfig configures the Tesseract engine.
type OCRConfig struct {
	TessdataPrefix string   `yaml:"tessdata_prefix"`
	Languages      []string `yaml:"languages"`
	PageSegMode    int      `yaml:"page_seg_mode"`
	// Contrast is an optional boost in -1..1 applied before OCR. Zero disables it.
	Contrast float64 `yaml:"contrast"`
}

// CaptureConfig configures the live window capture.
type CaptureConfig struct {
	HeaderCrop     int           `yaml:"header_crop"`
	SettleDelay    time.Duration `yaml:"settle_delay"`
	ScreenshotPath string        `yaml:"screenshot_path"`
}

// DetectionConfig configures text block detection.
type DetectionConfig struct {
	Threshold int `yaml:"threshold"`
}

// TranslateConfig configures the translation provider.
type TranslateConfig struct {
	Provider string        `yaml:"provider"`
	Endpoint string        `yaml:"endpoint"`
	APIKey   string        `yaml:"api_key"`
	Source   string        `yaml:"source"`
	Timeout  time.Duration `yaml:"timeout"`
}

// BatchConfig configures batch processing of static images.
type BatchConfig struct {
	Dir           string   `yaml:"dir"`
	Extensions    []string `yaml:"extensions"`
	ThumbnailSize int      `yaml:"thumbnail_size"`
}

// LogConfig mirrors logger.LogConfig in YAML form.
type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	TimeFormat string `yaml:"time_format"`
	Output     string `yaml:"output"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OCR: OCRConfig{
			Languages:   []string{"rus", "eng"},
			PageSegMode: 3,
		},
		Capture: CaptureConfig{
			HeaderCrop:     30,
			SettleDelay:    500 * time.Millisecond,
			ScreenshotPath: "screenshot.png",
		},
		Detection: DetectionConfig{
			Threshold: 150,
		},
		Translate: TranslateConfig{
			Provider: "google",
			Source:   "auto",
			Timeout:  10 * time.Second,
		},
		Languages: language.Defaults(),
		Batch: BatchConfig{
			Dir:           "test_images",
			Extensions:    []string{".png", ".jpg", ".jpeg"},
			ThumbnailSize: 300,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			TimeFormat: time.RFC3339,
			Output:     "stderr",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path and the
// environment. An empty path falls back to DefaultFile, which may be
// absent; an explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.OCR.TessdataPrefix = getEnv("RTT_TESSDATA_PREFIX", c.OCR.TessdataPrefix)
	if langs := os.Getenv("RTT_OCR_LANGUAGES"); langs != "" {
		c.OCR.Languages = strings.Split(langs, "+")
	}
	if delay := os.Getenv("RTT_SETTLE_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			c.Capture.SettleDelay = d
		}
	}
	if crop := os.Getenv("RTT_HEADER_CROP"); crop != "" {
		if n, err := strconv.Atoi(crop); err == nil {
			c.Capture.HeaderCrop = n
		}
	}
	c.Translate.Provider = getEnv("RTT_TRANSLATE_PROVIDER", c.Translate.Provider)
	c.Translate.Endpoint = getEnv("RTT_TRANSLATE_ENDPOINT", c.Translate.Endpoint)
	c.Translate.APIKey = getEnv("RTT_TRANSLATE_API_KEY", c.Translate.APIKey)
	c.Log.Level = getEnv("RTT_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("RTT_LOG_FORMAT", c.Log.Format)
	c.Log.Output = getEnv("RTT_LOG_OUTPUT", c.Log.Output)
}

// Validate checks the configuration for values the pipeline cannot use.
func (c *Config) Validate() error {
	if c.Capture.HeaderCrop < 0 {
		return fmt.Errorf("capture.header_crop must be >= 0, got %d", c.Capture.HeaderCrop)
	}
	if c.Capture.SettleDelay < 0 {
		return fmt.Errorf("capture.settle_delay must be >= 0")
	}
	if c.Detection.Threshold < 0 || c.Detection.Threshold > 255 {
		return fmt.Errorf("detection.threshold must be within 0..255, got %d", c.Detection.Threshold)
	}
	switch strings.ToLower(c.Translate.Provider) {
	case "google", "libretranslate":
	default:
		return fmt.Errorf("unknown translate.provider %q", c.Translate.Provider)
	}
	if len(c.OCR.Languages) == 0 {
		return fmt.Errorf("ocr.languages must not be empty")
	}
	if len(c.Languages) == 0 {
		return fmt.Errorf("languages must not be empty")
	}
	return nil
}

// LoggerConfig returns the logger configuration.
func (c *Config) LoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.Log.Level,
		Format:     c.Log.Format,
		TimeFormat: c.Log.TimeFormat,
		Output:     c.Log.Output,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
