package config

// Package config resolves run settings from defaults, an optional YAML file
// and the environment. Flags are applied by the caller on top.
import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the report package.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// Config holds everything a run needs besides the input path.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	Format      string `yaml:"format"`
	Output      string `yaml:"output"`
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{LogLevel: "info", LogFormat: "json", Format: FormatCSV}
}

// Load reads the YAML file at path (skipped when empty) and then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = strings.TrimSpace(os.Getenv("LEDGER_CONFIG"))
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	overrideFromEnv(&cfg)
	return cfg, nil
}

func overrideFromEnv(cfg *Config) {
	setIf := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	setIf(&cfg.LogLevel, "LOG_LEVEL")
	setIf(&cfg.LogFormat, "LOG_FORMAT")
	setIf(&cfg.Format, "LEDGER_OUTPUT_FORMAT")
	setIf(&cfg.Output, "LEDGER_OUTPUT")
	setIf(&cfg.MetricsFile, "LEDGER_METRICS_FILE")
}

// Validate checks the output settings. Binary formats cannot go to stdout.
func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case FormatCSV:
		return nil
	case FormatXLSX, FormatPDF:
		if c.Output == "" {
			return fmt.Errorf("format %s requires an output path", c.Format)
		}
		return nil
	case "":
		return errors.New("output format is empty")
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
}
