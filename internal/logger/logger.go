package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFilePath is where the museum log is appended, relative to the working directory.
const DefaultFilePath = "logs/museum.txt"

// Config selects the level and destinations of the museum log.
type Config struct {
	Level    string // debug, info, warn, error
	FilePath string // empty = stderr only
	Console  bool   // also write to stderr
}

// DefaultConfig logs info and above to stderr and DefaultFilePath.
func DefaultConfig() Config {
	return Config{Level: "info", FilePath: DefaultFilePath, Console: true}
}

// Logger is the museum's structured logger.
type Logger struct {
	zap *zap.Logger
}

// New builds a console-encoded zap logger. The log directory is created if needed; an unknown
// level falls back to info.
func New(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	zc.DisableStacktrace = true
	zc.OutputPaths = nil
	if cfg.Console {
		zc.OutputPaths = append(zc.OutputPaths, "stderr")
	}
	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		zc.OutputPaths = append(zc.OutputPaths, cfg.FilePath)
	}
	if len(zc.OutputPaths) == 0 {
		return Nop(), nil
	}
	z, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &Logger{zap: z}, nil
}

// Wrap uses an existing zap logger (tests use an observer core).
func Wrap(z *zap.Logger) *Logger {
	return &Logger{zap: z}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.zap.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.zap.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// Named returns a child logger tagged with a component name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{zap: l.zap.Named(name)}
}

// Sync flushes buffered entries. Call before exit.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}
