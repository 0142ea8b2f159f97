// Package server exposes the scoring engine over HTTP for the marketplace
// upload and dispute-evidence flows. The engine stays a pure computation
// boundary; this layer only reads upload bytes and calls into it.
package server

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config captures the HTTP surface configuration.
type Config struct {
	Addr           string `yaml:"addr"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	LogLevel       string `yaml:"log_level"`
}

const (
	defaultAddr      = ":8090"
	defaultMaxUpload = 20 << 20 // 20 MiB
	defaultLogLevel  = "info"
)

// LoadConfig builds a Config from defaults, an optional YAML file, and
// environment overrides, in that order. A .env file is loaded first when
// present so local runs behave like deployed ones.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:           defaultAddr,
		MaxUploadBytes: defaultMaxUpload,
		LogLevel:       defaultLogLevel,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("INTEGRITY_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("INTEGRITY_MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse INTEGRITY_MAX_UPLOAD_BYTES: %w", err)
		}
		cfg.MaxUploadBytes = n
	}
	if v := os.Getenv("INTEGRITY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("max_upload_bytes must be positive, got %d", cfg.MaxUploadBytes)
	}
	return cfg, nil
}
