package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"moviehub/internal/config"
)

// NewLogger builds the application logger from config. With LOG_FILE_PATH
// set, output goes through a size-rotated file instead of stdout.
func NewLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var output io.Writer = os.Stdout
	if cfg.LogFilePath != "" {
		output = &lumberjack.Logger{
			Filename:   cfg.LogFilePath,
			MaxSize:    100, // megabytes
			MaxAge:     30,  // days
			MaxBackups: 3,
			Compress:   true,
			LocalTime:  true,
		}
	}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(output, opts))
	}
	return slog.New(slog.NewTextHandler(output, opts))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
