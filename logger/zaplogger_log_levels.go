// zaplogger_log_levels.go
package logger

import (
	"strings"

	"go.uber.org/zap"
)

type LogLevel int

const (
	LogLevelDebug  LogLevel = -1
	LogLevelInfo   LogLevel = 0
	LogLevelWarn   LogLevel = 1
	LogLevelError  LogLevel = 2
	LogLevelDPanic LogLevel = 3
	LogLevelPanic  LogLevel = 4
	LogLevelFatal  LogLevel = 5
	// LogLevelNone silences the logger entirely.
	LogLevelNone LogLevel = 6
)

// Configuration level names. "certification" is the Amadeus partner-certification mode; it logs
// at debug verbosity.
const (
	LevelNameSilent        = "silent"
	LevelNameDebug         = "debug"
	LevelNameCertification = "certification"
	LevelNameInfo          = "info"
	LevelNameWarn          = "warn"
	LevelNameError         = "error"
)

var levelNames = map[string]LogLevel{
	LevelNameSilent:        LogLevelNone,
	"none":                 LogLevelNone,
	LevelNameDebug:         LogLevelDebug,
	LevelNameCertification: LogLevelDebug,
	LevelNameInfo:          LogLevelInfo,
	LevelNameWarn:          LogLevelWarn,
	LevelNameError:         LogLevelError,
	"logleveldebug":        LogLevelDebug,
	"loglevelinfo":         LogLevelInfo,
	"loglevelwarn":         LogLevelWarn,
	"loglevelerror":        LogLevelError,
}

// ParseLogLevelFromString takes a string representation of the log level and returns the corresponding LogLevel.
// The comparison is case-insensitive. Unknown names map to LogLevelNone.
func ParseLogLevelFromString(levelStr string) LogLevel {
	if level, ok := levelNames[strings.ToLower(strings.TrimSpace(levelStr))]; ok {
		return level
	}
	return LogLevelNone
}

// IsValidLogLevelName reports whether levelStr is a recognised level name.
func IsValidLogLevelName(levelStr string) bool {
	_, ok := levelNames[strings.ToLower(strings.TrimSpace(levelStr))]
	return ok
}

// IsCertification reports whether levelStr selects certification mode.
func IsCertification(levelStr string) bool {
	return strings.EqualFold(strings.TrimSpace(levelStr), LevelNameCertification)
}

// ToZapFields converts a variadic list of key-value pairs into a slice of Zap fields.
// Pairs whose key is not a string are skipped.
func ToZapFields(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}
