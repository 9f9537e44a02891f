package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/a3tai/irdai-parser/internal/batch"
	"github.com/a3tai/irdai-parser/internal/config"
	"github.com/a3tai/irdai-parser/internal/mcp"
	"github.com/a3tai/irdai-parser/internal/pdf"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// newLogger builds a zap logger for the configured level. Logs always go to
// stderr so they never mix with the report or the stdio protocol stream.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.IsDebug() {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}

// run wires the service for cfg and executes the configured mode until it
// finishes or ctx is cancelled. Batch reports are written to out.
func run(ctx context.Context, cfg *config.Config, out io.Writer, logger *zap.Logger) error {
	svc, err := pdf.NewService(pdf.ServiceConfig{
		MaxFileSize: cfg.MaxFileSize,
		Directory:   cfg.PDFDirectory,
		Validate:    cfg.ValidatePDF,
		CacheTTL:    cfg.CacheTTL,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create filing service: %w", err)
	}

	if cfg.IsBatchMode() {
		runner, err := batch.NewRunner(svc, cfg.ExportFormats(), out, logger)
		if err != nil {
			return fmt.Errorf("failed to create batch runner: %w", err)
		}
		summary, err := runner.Run(ctx)
		if summary != nil {
			logger.Info("batch finished",
				zap.Int("total", summary.Total),
				zap.Int("succeeded", summary.Succeeded),
				zap.Int("failed", summary.Failed))
		}
		return err
	}

	server, err := mcp.NewServer(cfg, svc, logger)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	return server.Run(ctx)
}

func main() {
	// A missing .env is normal; variables may come from the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	cfg, err := config.LoadFromFlags()
	if errors.Is(err, config.ErrVersionRequested) {
		printVersion(os.Stdout)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if version != "dev" {
		cfg.Version = version
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("starting", zap.Stringer("config", cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	err = run(ctx, cfg, os.Stdout, logger)
	stop()

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("irdai-parser failed", zap.String("mode", cfg.Mode), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// printVersion prints version information
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "IRDAI Parser\n")
	fmt.Fprintf(w, "Version: %s\n", version)
	fmt.Fprintf(w, "Build Time: %s\n", buildTime)
	fmt.Fprintf(w, "Git Commit: %s\n", gitCommit)
	fmt.Fprintf(w, "Built with: %s\n", runtime.Version())
}
