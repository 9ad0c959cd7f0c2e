package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `type, client, tx, amount
deposit, 1, 1, 1.0
deposit, 2, 2, 2.0
deposit, 1, 3, 2.0
withdrawal, 1, 4, 1.5
withdrawal, 2, 5, 3.0
dispute, 1, 3,
chargeback, 1, 3,
deposit, 1, 6, 10
`

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LEDGER_CONFIG", "LOG_LEVEL", "LOG_FORMAT", "LEDGER_OUTPUT_FORMAT", "LEDGER_OUTPUT", "LEDGER_METRICS_FILE"} {
		t.Setenv(k, "")
	}
}

func TestRun_CSVToStdout(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{writeInput(t, sampleInput)}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	// client 1: 1.0 + 2.0 - 1.5, then 2.0 charged back -> withdrawal now overdraws
	want := "client,available,held,total,locked\n" +
		"1,1.0000,0.0000,1.0000,true\n" +
		"2,2.0000,0.0000,2.0000,false\n"
	assert.Equal(t, want, stdout.String())
	assert.Contains(t, stderr.String(), `"run_id"`)
}

func TestRun_XLSXAndMetricsFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "accounts.xlsx")
	prom := filepath.Join(dir, "ledger.prom")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-format", "xlsx", "-out", out, "-metrics-file", prom, writeInput(t, sampleInput)}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	assert.Empty(t, stdout.String())
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	b, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), `ledger_rows_total{kind="deposit",result="locked"} 1`), string(b))
}

func TestRun_UsageErrors(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitUsage, run(context.Background(), nil, &stdout, &stderr))
	assert.Equal(t, exitUsage, run(context.Background(), []string{"-format", "pdf", "in.csv"}, &stdout, &stderr))
	assert.Equal(t, exitUsage, run(context.Background(), []string{"-nope", "in.csv"}, &stdout, &stderr))
}

func TestRun_MissingInput(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{filepath.Join(t.TempDir(), "nope.csv")}, &stdout, &stderr)
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout.String())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLogLevel("debug").Level().String())
	assert.Equal(t, "WARN", parseLogLevel("WARNING").Level().String())
	assert.Equal(t, "ERROR", parseLogLevel("err").Level().String())
	assert.Equal(t, "INFO", parseLogLevel("").Level().String())
}
