package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LEDGER_CONFIG", "LOG_LEVEL", "LOG_FORMAT", "LEDGER_OUTPUT_FORMAT", "LEDGER_OUTPUT", "LEDGER_METRICS_FILE"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nformat: xlsx\noutput: out.xlsx\nmetrics_file: m.prom\n"), 0o600))
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, FormatXLSX, cfg.Format)
	assert.Equal(t, "out.xlsx", cfg.Output)
	assert.Equal(t, "m.prom", cfg.MetricsFile)
}

func TestLoad_PathFromEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_format: text\n"), 0o600))
	t.Setenv("LEDGER_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [unclosed\n"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Format = FormatPDF
	assert.Error(t, cfg.Validate(), "pdf needs an output path")
	cfg.Output = "out.pdf"
	assert.NoError(t, cfg.Validate())

	cfg.Format = "json"
	assert.Error(t, cfg.Validate())
	cfg.Format = ""
	assert.Error(t, cfg.Validate())
}
