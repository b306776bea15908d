package redirecthandler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-amadeus/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRequest(t *testing.T, method, rawURL string) *http.Request {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return &http.Request{Method: method, URL: u, Header: http.Header{}}
}

// TestRedirectHandler_CheckRedirect covers the redirect policy decisions.
func TestRedirectHandler_CheckRedirect(t *testing.T) {
	log := logger.New(zap.NewNop(), logger.LogLevelDebug)

	tests := []struct {
		name         string
		maxRedirects int
		via          []string
		viaMethod    string
		next         string
		expectedErr  error
		errType      interface{}
		keepsAuth    bool
	}{
		{
			name:         "same host redirect followed",
			maxRedirects: 10,
			via:          []string{"https://test.api.amadeus.com/v1/a"},
			viaMethod:    http.MethodGet,
			next:         "https://test.api.amadeus.com/v1/b",
			keepsAuth:    true,
		},
		{
			name:         "cross host redirect strips credentials",
			maxRedirects: 10,
			via:          []string{"https://test.api.amadeus.com/v1/a"},
			viaMethod:    http.MethodGet,
			next:         "https://cdn.example.com/v1/b",
			keepsAuth:    false,
		},
		{
			name:         "post is not followed",
			maxRedirects: 10,
			via:          []string{"https://test.api.amadeus.com/v1/a"},
			viaMethod:    http.MethodPost,
			next:         "https://test.api.amadeus.com/v1/b",
			expectedErr:  http.ErrUseLastResponse,
			keepsAuth:    true,
		},
		{
			name:         "maximum redirects reached",
			maxRedirects: 1,
			via:          []string{"https://test.api.amadeus.com/v1/a"},
			viaMethod:    http.MethodGet,
			next:         "https://test.api.amadeus.com/v1/b",
			errType:      &MaxRedirectsError{},
			keepsAuth:    true,
		},
		{
			name:         "loop detected",
			maxRedirects: 10,
			via:          []string{"https://test.api.amadeus.com/v1/a", "https://test.api.amadeus.com/v1/b"},
			viaMethod:    http.MethodGet,
			next:         "https://test.api.amadeus.com/v1/a",
			errType:      &RedirectLoopError{},
			keepsAuth:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRedirectHandler(log, tt.maxRedirects)

			var via []*http.Request
			for _, u := range tt.via {
				via = append(via, newRequest(t, tt.viaMethod, u))
			}
			next := newRequest(t, http.MethodGet, tt.next)
			next.Header.Set("Authorization", "Bearer abc")

			err := handler.checkRedirect(next, via)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.errType != nil:
				assert.IsType(t, tt.errType, err)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.keepsAuth, next.Header.Get("Authorization") != "")
		})
	}
}

func TestNewRedirectHandler_DefaultLimit(t *testing.T) {
	handler := NewRedirectHandler(logger.New(zap.NewNop(), logger.LogLevelNone), 0)
	assert.Equal(t, DefaultMaxRedirects, handler.MaxRedirects)
}

func TestSetupRedirectHandler_PostReturnsRedirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/start" {
			http.Redirect(w, r, "/end", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := server.Client()
	SetupRedirectHandler(client, 5, logger.New(zap.NewNop(), logger.LogLevelNone))

	resp, err := client.Post(server.URL+"/start", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	resp, err = client.Get(server.URL + "/start")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
