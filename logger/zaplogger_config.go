// zaplogger_config.go
package logger

// Ref: https://betterstack.com/community/guides/logging/go/zap/#logging-errors-with-zap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// BuildLogger creates and returns a new zap logger instance.
// encoding is "json" or "console"; logFilepath, when set, adds a log file next to stdout.
// When hideSensitiveData is true, credential fields are redacted before they reach any output.
// The function panics if the logger cannot be initialized.
func BuildLogger(logLevel LogLevel, encoding string, logConsoleSeparator string, logFilepath string, hideSensitiveData bool) Logger {
	if logLevel == LogLevelNone {
		return New(zap.NewNop(), LogLevelNone)
	}

	encoderCfg := zap.NewProductionEncoderConfig()

	// Time settings
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	// Log level settings
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encoderCfg.MessageKey = "msg"
	encoderCfg.LevelKey = "level"
	encoderCfg.NameKey = "logger"
	encoderCfg.CallerKey = "caller"
	encoderCfg.FunctionKey = "func"
	encoderCfg.StacktraceKey = "stacktrace"
	encoderCfg.LineEnding = zapcore.DefaultLineEnding
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder
	encoderCfg.EncodeName = zapcore.FullNameEncoder

	if encoding == EncodingConsole {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderCfg.ConsoleSeparator = logConsoleSeparator
	} else {
		encoding = EncodingJSON
	}

	outputPaths := []string{"stdout"}
	if logFilepath != "" {
		if path, err := EnsureLogFilePath(logFilepath); err == nil {
			outputPaths = append(outputPaths, path)
		}
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(convertToZapLevel(logLevel)),
		Development:       false,
		Encoding:          encoding,
		DisableCaller:     true,
		DisableStacktrace: true,
		Sampling:          nil,
		EncoderConfig:     encoderCfg,
		OutputPaths:       outputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger := zap.Must(config.Build())

	if hideSensitiveData {
		logger = zap.New(&redactingCore{logger.Core()})
	}

	return New(logger, logLevel)
}

// convertToZapLevel converts the custom LogLevel to a zapcore.Level
func convertToZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LogLevelDebug:
		return zap.DebugLevel
	case LogLevelInfo:
		return zap.InfoLevel
	case LogLevelWarn:
		return zap.WarnLevel
	case LogLevelError:
		return zap.ErrorLevel
	case LogLevelDPanic:
		return zap.DPanicLevel
	case LogLevelPanic:
		return zap.PanicLevel
	case LogLevelFatal:
		return zap.FatalLevel
	default:
		return zap.InfoLevel // Default to InfoLevel
	}
}

// EnsureLogFilePath resolves the file BuildLogger writes to. An existing file is used as is.
// A directory, or a path that does not exist yet, is created and gets a timestamped log file;
// an empty path means the working directory.
func EnsureLogFilePath(logPath string) (string, error) {
	if logPath == "" {
		logPath = "."
	}

	info, err := os.Stat(logPath)
	switch {
	case err == nil && !info.IsDir():
		return logPath, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("inspecting log path: %w", err)
	}

	if err := os.MkdirAll(logPath, 0o755); err != nil {
		return "", fmt.Errorf("creating log directory: %w", err)
	}
	return filepath.Join(logPath, logFileName(time.Now())), nil
}

func logFileName(now time.Time) string {
	return "log_" + now.Format("20060102_150405") + ".log"
}
