package logger

import (
	"github.com/deploymenttheory/go-api-sdk-amadeus/headers/redact"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// redactingCore wraps a zapcore.Core and replaces the value of any string field whose key is
// sensitive (access tokens, client secrets, Authorization) before it is written.
type redactingCore struct {
	zapcore.Core
}

// With adds structured context to the Core, redacting sensitive fields up front.
func (c *redactingCore) With(fields []zapcore.Field) zapcore.Core {
	return &redactingCore{c.Core.With(redactFields(fields))}
}

// Write serializes the Entry and any Fields supplied at the log site and writes them to their destination.
func (c *redactingCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	return c.Core.Write(entry, redactFields(fields))
}

// Check determines whether the supplied Entry should be logged.
func (c *redactingCore) Check(entry zapcore.Entry, checkedEntry *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checkedEntry.AddCore(entry, c)
	}
	return checkedEntry
}

// Sync flushes buffered logs (if any).
func (c *redactingCore) Sync() error {
	return c.Core.Sync()
}

func redactFields(fields []zapcore.Field) []zapcore.Field {
	out := make([]zapcore.Field, 0, len(fields))
	for _, field := range fields {
		if field.Type == zapcore.StringType && redact.IsSensitive(field.Key) {
			field = zap.String(field.Key, redact.Redacted)
		}
		out = append(out, field)
	}
	return out
}
