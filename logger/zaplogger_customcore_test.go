package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedactingCore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(&redactingCore{core})

	log.With(zap.String("client_secret", "s3cr3t")).Info("token request",
		zap.String("Authorization", "Bearer abc"),
		zap.String("access_token", "abc"),
		zap.String("url", "https://test.api.amadeus.com"),
		zap.Int("status_code", 200),
	)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "REDACTED", fields["client_secret"])
	assert.Equal(t, "REDACTED", fields["Authorization"])
	assert.Equal(t, "REDACTED", fields["access_token"])
	assert.Equal(t, "https://test.api.amadeus.com", fields["url"])
	assert.EqualValues(t, 200, fields["status_code"])
}

func TestRedactingCore_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	log := zap.New(&redactingCore{core})

	log.Info("dropped")
	log.Warn("kept")

	assert.Equal(t, 1, logs.Len())
}
