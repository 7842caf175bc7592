package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents log severity
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level, case-insensitively. Unknown
// values fall back to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Field is a key-value pair for structured logging
type Field = zap.Field

// F is a shorthand for creating a Field
func F(key string, value interface{}) Field {
	return zap.Any(key, value)
}

// Err is a shorthand for an "error" field
func Err(err error) Field {
	return zap.Error(err)
}

// Config holds logger configuration
type Config struct {
	Level      Level  // Minimum log level
	FilePath   string // Path to log file
	MaxSize    int64  // Max size in bytes before rotation (default: 10MB)
	MaxAge     int    // Max age in days (default: 7)
	MaxBackups int    // Max number of backup files (default: 5)
	Console    bool   // Enable console logging
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	home := os.Getenv("MYNOTES_HOME")
	if home == "" {
		userHome, _ := os.UserHomeDir()
		home = filepath.Join(userHome, ".mynotes")
	}

	return Config{
		Level:      INFO,
		FilePath:   filepath.Join(home, "logs", "mynotes.log"),
		MaxSize:    10 * 1024 * 1024, // 10MB
		MaxAge:     7,
		MaxBackups: 5,
		Console:    false, // Disabled by default to not interfere with TUI
	}
}

// Logger wraps a zap logger together with the file it writes to
type Logger struct {
	config Config
	zl     *zap.Logger
	file   *rotatingFile
}

var (
	globalLogger *Logger
	globalMu     sync.Mutex
)

// Init initializes the global logger. It is a no-op while a global logger
// is open; after Close a new one can be initialized.
func Init(config Config) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalLogger != nil {
		return nil
	}
	l, err := New(config)
	if err != nil {
		return err
	}
	globalLogger = l
	return nil
}

// New creates a new logger instance
func New(config Config) (*Logger, error) {
	l := &Logger{config: config}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zap.NewAtomicLevelAt(config.Level.zapLevel())
	var cores []zapcore.Core

	if config.FilePath != "" {
		file, err := openRotatingFile(config)
		if err != nil {
			return nil, err
		}
		l.file = file
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), file, level))
	}

	if config.Console {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level))
	}

	if len(cores) == 0 {
		l.zl = zap.NewNop()
		return l, nil
	}

	l.zl = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	return l, nil
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

// Zap exposes the underlying zap logger
func (l *Logger) Zap() *zap.Logger {
	return l.zl
}

// WithFields creates a new logger with preset fields
func (l *Logger) WithFields(fields ...Field) *Logger {
	return &Logger{
		config: l.config,
		zl:     l.zl.With(fields...),
		file:   l.file,
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...Field) {
	l.zl.Debug(msg, fields...)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...Field) {
	l.zl.Info(msg, fields...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...Field) {
	l.zl.Warn(msg, fields...)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...Field) {
	l.zl.Error(msg, fields...)
}

// Close flushes buffered entries and closes the log file
func (l *Logger) Close() error {
	_ = l.zl.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Global logger functions

// L returns the global logger, or a no-op logger before Init
func L() *Logger {
	if globalLogger != nil {
		return globalLogger
	}
	return Nop()
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Debug(msg, fields...)
	}
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Info(msg, fields...)
	}
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Warn(msg, fields...)
	}
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Error(msg, fields...)
	}
}

// WithFields creates a new logger with preset fields using the global logger
func WithFields(fields ...Field) *Logger {
	return L().WithFields(fields...)
}

// Close closes the global logger
func Close() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalLogger == nil {
		return nil
	}
	err := globalLogger.Close()
	globalLogger = nil
	return err
}

// GetConfig returns the current logger configuration
func GetConfig() Config {
	if globalLogger != nil {
		return globalLogger.config
	}
	return DefaultConfig()
}

