package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/tinoosan/txnledger/internal/config"
	"github.com/tinoosan/txnledger/internal/csvio"
	"github.com/tinoosan/txnledger/internal/metrics"
	"github.com/tinoosan/txnledger/internal/report"
	"github.com/tinoosan/txnledger/internal/service/ingest"
	"github.com/tinoosan/txnledger/internal/storage/memory"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without process globals so it can be driven from tests.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ledger", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	format := fs.String("format", "", "output format: csv, xlsx or pdf")
	out := fs.String("out", "", "output file (default stdout, csv only)")
	metricsFile := fs.String("metrics-file", "", "write prometheus metrics to this file")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ledger [flags] <transactions.csv>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *out != "" {
		cfg.Output = *out
	}
	if *metricsFile != "" {
		cfg.MetricsFile = *metricsFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	// stdout carries the report; logs go to stderr
	logger := buildLogger(cfg, stderr).With("run_id", uuid.New().String())

	if err := process(ctx, cfg, fs.Arg(0), stdout, logger); err != nil {
		logger.Error("run failed", "err", err)
		return exitError
	}
	return exitOK
}

func process(ctx context.Context, cfg config.Config, input string, stdout io.Writer, logger *slog.Logger) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	store := memory.New()
	rec := metrics.New()
	start := time.Now()
	stats, err := ingest.New(store, rec, logger.With("input", input)).Run(ctx, csvio.NewReader(f))
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	rec.Finish(store.Clients(), store.Locked(), store.Len(), time.Since(start))
	logger.Info("ledger built", "clients", store.Clients(), "locked", store.Locked(), "dropped", stats.Dropped)

	w, err := report.ForFormat(cfg.Format)
	if err != nil {
		return err
	}
	if err := writeReport(w, cfg.Output, stdout, store); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if cfg.MetricsFile != "" {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func writeReport(w report.Writer, path string, stdout io.Writer, store *memory.Store) error {
	if path == "" {
		return w.Write(stdout, store.Summaries())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := w.Write(f, store.Summaries()); err != nil {
		return errors.Join(err, f.Close())
	}
	return f.Close()
}

// parseLogLevel maps config values to slog.Leveler
func parseLogLevel(s string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}
	if strings.EqualFold(strings.TrimSpace(cfg.LogFormat), "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	// default to JSON
	return slog.New(slog.NewJSONHandler(w, opts))
}
