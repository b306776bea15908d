// headers/headers.go
package headers

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-amadeus/headers/redact"
	"github.com/deploymenttheory/go-api-sdk-amadeus/logger"
	"github.com/deploymenttheory/go-api-sdk-amadeus/version"
	"go.uber.org/zap"
)

// Media types used by the Amadeus REST API.
const (
	AcceptAmadeus      = "application/json, application/vnd.amadeus+json"
	ContentTypeAmadeus = "application/vnd.amadeus+json"
	ContentTypeForm    = "application/x-www-form-urlencoded"
)

// Header is a single caller-supplied header. A slice of them keeps the caller's order.
type Header struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// HeaderHandler is responsible for managing and setting headers on HTTP requests.
type HeaderHandler struct {
	header http.Header   // The header set being managed
	log    logger.Logger // The logger to use for logging headers
	token  string        // The token to use for setting the Authorization header
}

// NewHeaderHandler creates a new instance of HeaderHandler for a header set, logger and bearer token.
// An empty token means no Authorization header is sent.
func NewHeaderHandler(header http.Header, log logger.Logger, token string) *HeaderHandler {
	return &HeaderHandler{
		header: header,
		log:    log,
		token:  token,
	}
}

// SetAuthorization sets the Authorization header for the request.
func (h *HeaderHandler) SetAuthorization(token string) {
	// Ensure the token is prefixed with "Bearer " only once
	if !strings.HasPrefix(token, "Bearer ") {
		token = "Bearer " + token
	}
	h.header.Set("Authorization", token)
}

// SetContentType sets the Content-Type header for the request.
func (h *HeaderHandler) SetContentType(contentType string) {
	h.header.Set("Content-Type", contentType)
}

// SetAccept sets the Accept header for the request.
func (h *HeaderHandler) SetAccept(acceptHeader string) {
	h.header.Set("Accept", acceptHeader)
}

// SetUserAgent sets the User-Agent header for the request.
func (h *HeaderHandler) SetUserAgent(userAgent string) {
	h.header.Set("User-Agent", userAgent)
}

// SetCustomHeader sets an arbitrary header.
func (h *HeaderHandler) SetCustomHeader(headerName, headerValue string) {
	h.header.Set(headerName, headerValue)
}

// SetRequestHeaders applies the standard Amadeus header set followed by the additional headers in order.
// contentType is skipped when empty.
func (h *HeaderHandler) SetRequestHeaders(contentType string, additional []Header) {
	h.SetUserAgent(version.GetUserAgentHeader())
	h.SetAccept(AcceptAmadeus)
	if h.token != "" {
		h.SetAuthorization(h.token)
	}
	if contentType != "" {
		h.SetContentType(contentType)
	}
	for _, extra := range additional {
		if extra.Name == "" {
			continue
		}
		h.SetCustomHeader(extra.Name, extra.Value)
	}
}

// LogHeaders prints all the current headers using the zap logger.
// It uses RedactSensitiveHeaderData to redact sensitive data based on the hideSensitiveData flag.
func (h *HeaderHandler) LogHeaders(hideSensitiveData bool) {
	if h.log == nil || h.log.GetLogLevel() > logger.LogLevelDebug {
		return
	}
	h.log.Debug("HTTP Request Headers", zap.String("Headers", HeadersToString(RedactHeaders(h.header, hideSensitiveData))))
}

// RedactHeaders returns a copy of headers with sensitive values replaced.
func RedactHeaders(headers http.Header, hideSensitiveData bool) http.Header {
	redacted := make(http.Header, len(headers))
	for name, values := range headers {
		out := make([]string, len(values))
		for i, value := range values {
			out[i] = redact.RedactSensitiveHeaderData(hideSensitiveData, name, value)
		}
		redacted[name] = out
	}
	return redacted
}

// HeadersToString converts a http.Header to a string for logging,
// with each header on a new line, sorted by name.
func HeadersToString(headers http.Header) string {
	var headerStrings []string
	for name, values := range headers {
		headerStrings = append(headerStrings, fmt.Sprintf("%s: %s", name, strings.Join(values, ", ")))
	}
	sort.Strings(headerStrings)
	return strings.Join(headerStrings, "\n")
}

// CheckDeprecationHeader checks the response headers for the Deprecation header and logs a warning if present.
func CheckDeprecationHeader(resp *http.Response, log logger.Logger) {
	deprecationHeader := resp.Header.Get("Deprecation")
	if deprecationHeader == "" {
		return
	}

	endpoint := ""
	if resp.Request != nil && resp.Request.URL != nil {
		endpoint = resp.Request.URL.String()
	}
	log.Warn("API endpoint is deprecated",
		zap.String("Date", deprecationHeader),
		zap.String("Endpoint", endpoint),
	)
}
