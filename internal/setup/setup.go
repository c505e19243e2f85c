package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chatsafety/sentinel/internal/ai/client"
	"github.com/chatsafety/sentinel/internal/setup/config"
)

// App bundles the core dependencies shared by the command entrypoints.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Oracle client.Oracle
}

// InitializeApp bootstraps configuration, logging and the oracle client in
// dependency order.
func InitializeApp(serviceName string) (*App, error) {
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(serviceName, &cfg.Debug)
	if err != nil {
		return nil, err
	}

	oracle := client.NewOracleClient(&cfg.Oracle, logger)

	return &App{
		Config: cfg,
		Logger: logger,
		Oracle: oracle,
	}, nil
}

// Cleanup flushes buffered log entries.
func (a *App) Cleanup() {
	_ = a.Logger.Sync()
}

// newLogger builds a console logger, mirrored to a timestamped file when a
// log directory is configured.
func newLogger(serviceName string, debug *config.Debug) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(debug.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), level),
	}

	if debug.LogDir != "" {
		if err := os.MkdirAll(debug.LogDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		filename := fmt.Sprintf("%s_%s.log", serviceName, time.Now().UTC().Format("20060102_150405"))

		logFile, err := os.Create(filepath.Join(debug.LogDir, filename))
		if err != nil {
			return nil, fmt.Errorf("failed to create log file: %w", err)
		}

		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(logFile), level))
	}

	return zap.New(zapcore.NewTee(cores...)).Named(serviceName), nil
}
