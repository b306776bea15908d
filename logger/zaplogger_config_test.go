// zaplogger_config_test.go
package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TestConvertToZapLevel tests the conversion from custom LogLevel to zapcore.Level
func TestConvertToZapLevel(t *testing.T) {
	tests := []struct {
		name          string
		inputLevel    LogLevel
		expectedLevel zapcore.Level
	}{
		{"DebugLevel", LogLevelDebug, zap.DebugLevel},
		{"InfoLevel", LogLevelInfo, zap.InfoLevel},
		{"WarnLevel", LogLevelWarn, zap.WarnLevel},
		{"ErrorLevel", LogLevelError, zap.ErrorLevel},
		{"DPanicLevel", LogLevelDPanic, zap.DPanicLevel},
		{"PanicLevel", LogLevelPanic, zap.PanicLevel},
		{"FatalLevel", LogLevelFatal, zap.FatalLevel},
		{"UnknownLevel", LogLevel(999), zap.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedLevel, convertToZapLevel(tt.inputLevel))
		})
	}
}

func TestBuildLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    LogLevel
		encoding string
	}{
		{"silent", LogLevelNone, EncodingJSON},
		{"json debug", LogLevelDebug, EncodingJSON},
		{"console info", LogLevelInfo, EncodingConsole},
		{"unknown encoding falls back to json", LogLevelWarn, "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := BuildLogger(tt.level, tt.encoding, "\t", "", true)
			require.NotNil(t, log)
			assert.Equal(t, tt.level, log.GetLogLevel())
		})
	}
}

func TestBuildLogger_ExportPath(t *testing.T) {
	dir := t.TempDir()

	log := BuildLogger(LogLevelInfo, EncodingJSON, "", dir, false)
	log.Info("written to file")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".log", filepath.Ext(entries[0].Name()))
}

func TestEnsureLogFilePath(t *testing.T) {
	dir := t.TempDir()

	t.Run("directory gets a generated file name", func(t *testing.T) {
		path, err := EnsureLogFilePath(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, filepath.Dir(path))
	})

	t.Run("existing file is used as is", func(t *testing.T) {
		file := filepath.Join(dir, "sdk.log")
		require.NoError(t, os.WriteFile(file, nil, 0o644))

		path, err := EnsureLogFilePath(file)
		require.NoError(t, err)
		assert.Equal(t, file, path)
	})

	t.Run("missing directory is created", func(t *testing.T) {
		missing := filepath.Join(dir, "nested", "logs")

		path, err := EnsureLogFilePath(missing)
		require.NoError(t, err)
		assert.Equal(t, missing, filepath.Dir(path))
		assert.DirExists(t, missing)
		assert.Regexp(t, `^log_\d{8}_\d{6}\.log$`, filepath.Base(path))
	})
}
