package httpclient

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-amadeus/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// executorFunc adapts a function to HTTPExecutor and counts calls.
type executorFunc struct {
	fn    func(*http.Request) (*http.Response, error)
	calls atomic.Int32
}

func (e *executorFunc) Do(req *http.Request) (*http.Response, error) {
	e.calls.Add(1)
	return e.fn(req)
}

func newExecutor(fn func(*http.Request) (*http.Response, error)) *executorFunc {
	return &executorFunc{fn: fn}
}

func jsonResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{"Content-Type": {"application/vnd.amadeus+json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func nopLogger() logger.Logger {
	return logger.New(zap.NewNop(), logger.LogLevelNone)
}

func testConfig() ClientConfig {
	return ClientConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}
}

// newTestClient builds a client against the default test host using executor for transport.
func newTestClient(t *testing.T, executor HTTPExecutor) *Client {
	t.Helper()
	config := testConfig()
	config.HTTPClient = executor
	client, err := BuildClientWithLogger(config, true, nopLogger())
	require.NoError(t, err)
	return client
}

// newServerClient builds a client pointed at server.
func newServerClient(t *testing.T, server *httptest.Server, mutate func(*ClientConfig)) *Client {
	t.Helper()
	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	host, portStr, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	config := testConfig()
	config.Host = host
	config.Port = port
	config.SSL = u.Scheme == "https"
	if mutate != nil {
		mutate(&config)
	}

	client, err := BuildClientWithLogger(config, true, nopLogger())
	require.NoError(t, err)
	return client
}
