// Package logger provides structured logging using zap.
//
// The viewer owns stdout for the TUI, so runtime logs go to a rotated
// file only; the compiler CLI logs to stderr as a normal command does.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger instance.
var Log = zap.NewNop()

// Sugar is the sugared logger for convenient logging.
var Sugar = Log.Sugar()

// FileConfig holds file logging configuration.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig returns default file logging settings.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// InitFile initializes file-only logging. An empty path leaves the
// no-op logger in place, which is the right default for the TUI.
func InitFile(level, path string) {
	if path == "" {
		return
	}
	fc := DefaultFileConfig(path)
	w := &lumberjack.Logger{
		Filename:   fc.Path,
		MaxSize:    fc.MaxSizeMB,
		MaxBackups: fc.MaxBackups,
		MaxAge:     fc.MaxAgeDays,
		Compress:   fc.Compress,
		LocalTime:  true,
	}
	core := zapcore.NewCore(encoder(zapcore.ISO8601TimeEncoder), zapcore.AddSync(w), parseLevel(level))
	set(zap.New(core, zap.AddCaller()))
}

// InitConsole initializes stderr logging for CLI use.
func InitConsole(level string) {
	core := zapcore.NewCore(encoder(zapcore.TimeEncoderOfLayout("15:04:05")), zapcore.AddSync(os.Stderr), parseLevel(level))
	set(zap.New(core))
}

func set(l *zap.Logger) {
	Log = l
	Sugar = l.Sugar()
}

func encoder(timeEnc zapcore.TimeEncoder) zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       timeEnc,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	})
}

// parseLevel converts a string level to zapcore.Level.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}
