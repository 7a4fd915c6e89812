package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level      string
	Pretty     bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// AxiomConfig holds Axiom log forwarding configuration.
type AxiomConfig struct {
	Send          bool
	APIKey        string
	OrgID         string
	Dataset       string
	FlushInterval time.Duration
}

// PipelineConfig defines the directory layout and rendering parameters.
type PipelineConfig struct {
	InputDir       string
	OutputDir      string
	ArchiveDir     string
	FailedDir      string
	TeamConfig     string
	DPI            int
	JPEGQuality    int
	Previews       bool
	PreviewMaxEdge int
	PreviewQuality int
}

// PublishConfig defines the optional S3 publish target.
type PublishConfig struct {
	Bucket string
	Prefix string
}

// MetricsConfig defines the optional metrics listener.
type MetricsConfig struct {
	Addr string
}

// Config is the top-level configuration.
type Config struct {
	Logging  LoggingConfig
	Axiom    AxiomConfig
	Pipeline PipelineConfig
	Publish  PublishConfig
	Metrics  MetricsConfig
}

// FromEnv loads configuration from environment with sensible defaults.
func FromEnv() Config {
	cfg := Config{}

	cfg.Logging = LoggingConfig{
		Level:      getEnv("LOG_LEVEL", "info"),
		Pretty:     parseBool(getEnv("LOG_PRETTY", devDefaultPretty())),
		File:       getEnv("LOG_FILE", "logs/ktdatacards.log"),
		MaxSizeMB:  parseInt(getEnv("LOG_MAX_SIZE_MB", "100"), 100),
		MaxBackups: parseInt(getEnv("LOG_MAX_BACKUPS", "10"), 10),
		MaxAgeDays: parseInt(getEnv("LOG_MAX_AGE_DAYS", "30"), 30),
		Compress:   parseBool(getEnv("LOG_COMPRESS", "true")),
	}

	baseDataset := getEnv("AXIOM_DATASET", "dev")
	cfg.Axiom = AxiomConfig{
		Send:          parseBool(getEnv("SEND_LOGS_TO_AXIOM", "0")),
		APIKey:        getEnv("AXIOM_API_KEY", ""),
		OrgID:         getEnv("AXIOM_ORG_ID", ""),
		Dataset:       baseDataset + "_ktdatacards",
		FlushInterval: parseDuration(getEnv("AXIOM_FLUSH_INTERVAL", "10s"), 10*time.Second),
	}

	cfg.Pipeline = PipelineConfig{
		InputDir:       getEnv("INPUT_DIR", "input"),
		OutputDir:      getEnv("OUTPUT_DIR", "output"),
		ArchiveDir:     getEnv("ARCHIVE_DIR", "archive"),
		FailedDir:      getEnv("FAILED_DIR", "input/failed"),
		TeamConfig:     getEnv("TEAM_CONFIG", "config/team-config.yaml"),
		DPI:            parseInt(getEnv("RENDER_DPI", "300"), 300),
		JPEGQuality:    parseInt(getEnv("JPEG_QUALITY", "90"), 90),
		Previews:       parseBool(getEnv("GENERATE_PREVIEWS", "true")),
		PreviewMaxEdge: parseInt(getEnv("PREVIEW_MAX_EDGE", "512"), 512),
		PreviewQuality: parseInt(getEnv("PREVIEW_QUALITY", "80"), 80),
	}

	cfg.Publish = PublishConfig{
		Bucket: getEnv("PUBLISH_BUCKET", ""),
		Prefix: getEnv("PUBLISH_PREFIX", "output"),
	}

	cfg.Metrics = MetricsConfig{
		Addr: getEnv("METRICS_ADDR", ""),
	}

	return cfg
}

// Helpers
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func parseBool(s string) bool {
	v := strings.ToLower(strings.TrimSpace(s))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return def
}

func devDefaultPretty() string {
	env := strings.ToLower(os.Getenv("ENVIRONMENT"))
	if env == "dev" || env == "development" || env == "local" {
		return "true"
	}
	return "false"
}
