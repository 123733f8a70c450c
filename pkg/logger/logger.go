package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the wrapper around the zap logger that provides leveled printf style logging
type Logger struct {
	*zap.SugaredLogger
	level zap.AtomicLevel
}

// LogLevel represents the logging level
type LogLevel int

const (
	// DebugLevel logs are typically voluminous, and are usually disabled in production
	DebugLevel LogLevel = iota
	// InfoLevel is the default logging priority
	InfoLevel
	// WarnLevel logs are more important than Info
	WarnLevel
	// ErrorLevel logs are high-priority and should be looked at immediately
	ErrorLevel
)

var zapLevels = map[LogLevel]zapcore.Level{
	DebugLevel: zapcore.DebugLevel,
	InfoLevel:  zapcore.InfoLevel,
	WarnLevel:  zapcore.WarnLevel,
	ErrorLevel: zapcore.ErrorLevel,
}

// Options configures the log sinks
type Options struct {
	// File, when set, receives a copy of every log line and is rotated by size
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Global logger instance
var std = newLogger(InfoLevel, os.Stdout, false)

// ParseLevel maps a level name to a LogLevel. Unknown names map to DebugLevel.
func ParseLevel(level string) LogLevel {
	switch level {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return DebugLevel
	}
}

// Initialize sets up the logger with the specified level
func Initialize(level string) {
	InitializeWithOptions(level, Options{})
}

// InitializeWithOptions sets up the logger with the specified level and optional log file
func InitializeWithOptions(level string, opts Options) {
	lvl := ParseLevel(level)
	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		})
	}
	std = newLogger(lvl, out, lvl == DebugLevel)
}

func newLogger(level LogLevel, out io.Writer, withCaller bool) *Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")

	atomic := zap.NewAtomicLevelAt(zapLevels[level])
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(out), atomic)

	opts := []zap.Option{zap.AddCallerSkip(2)}
	if withCaller {
		opts = append(opts, zap.AddCaller())
	}
	return &Logger{SugaredLogger: zap.New(core, opts...).Sugar(), level: atomic}
}

func (l *Logger) log(level LogLevel, format string, v ...interface{}) {
	if !l.level.Enabled(zapLevels[level]) {
		return
	}
	msg := fmt.Sprintf(format, v...)
	switch level {
	case DebugLevel:
		l.Debug(msg)
	case InfoLevel:
		l.Info(msg)
	case WarnLevel:
		l.Warn(msg)
	default:
		l.Error(msg)
	}
}

// Debug logs a message at DebugLevel
func Debug(format string, v ...interface{}) {
	std.log(DebugLevel, format, v...)
}

// Info logs a message at InfoLevel
func Info(format string, v ...interface{}) {
	std.log(InfoLevel, format, v...)
}

// Warn logs a message at WarnLevel
func Warn(format string, v ...interface{}) {
	std.log(WarnLevel, format, v...)
}

// Error logs a message at ErrorLevel
func Error(format string, v ...interface{}) {
	std.log(ErrorLevel, format, v...)
}

// Sync flushes buffered log entries
func Sync() error {
	return std.Sync()
}
