// httpclient/execute.go
package httpclient

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/deploymenttheory/go-api-sdk-amadeus/headers"
	"github.com/deploymenttheory/go-api-sdk-amadeus/redirecthandler"
	"github.com/deploymenttheory/go-api-sdk-amadeus/status"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Execute performs exactly one round trip for request and classifies the outcome.
// Failures are returned as *ResponseError; the failed Response, if any, hangs off the error.
func (c *Client) Execute(request *Request) (*Response, error) {
	log := c.Logger
	requestID := uuid.New().String()

	var body io.Reader
	if payload := request.Payload(); payload != "" {
		body = strings.NewReader(payload)
	}

	req, err := http.NewRequest(request.Verb(), request.URI(), body)
	if err != nil {
		return nil, unknownError("building HTTP request", err)
	}
	req.Header = request.Headers()

	log.LogRequestStart("request_start", requestID, req.Method, req.URL.String(), headers.RedactHeaders(req.Header, c.config.HideSensitiveData))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if redirectErr := redirectFailure(err); redirectErr != nil && resp != nil {
			lastURL := req.URL.String()
			if resp.Request != nil && resp.Request.URL != nil {
				lastURL = resp.Request.URL.String()
			}
			response := newResponse(request, resp.StatusCode, lastURL, resp.Header, nil)
			log.LogError("request_error", req.Method, response.URL(), resp.StatusCode, status.TranslateStatusCode(resp.StatusCode), err, "")
			return nil, &ResponseError{Kind: KindUnknown, Response: response, Message: redirectErr.Error(), Err: err}
		}
		log.LogError("request_error", req.Method, req.URL.String(), status.NoResponse, status.TranslateStatusCode(status.NoResponse), err, "")
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(fmt.Errorf("reading response body: %w", err))
	}

	effectiveURL := req.URL.String()
	if resp.Request != nil && resp.Request.URL != nil {
		effectiveURL = resp.Request.URL.String()
	}
	log.LogRequestEnd("request_end", requestID, req.Method, effectiveURL, resp.StatusCode, time.Since(start))

	headers.CheckDeprecationHeader(resp, log)
	if status.IsRedirectStatusCode(resp.StatusCode) {
		log.Warn("Redirect response returned to caller",
			zap.Int("status_code", resp.StatusCode),
			zap.String("location", resp.Header.Get("Location")),
			zap.Bool("permanent", status.IsPermanentRedirect(resp.StatusCode)),
		)
	}

	response := newResponse(request, resp.StatusCode, effectiveURL, resp.Header, bodyBytes)

	if err := detectError(response); err != nil {
		log.LogError("request_error", req.Method, effectiveURL, resp.StatusCode, status.TranslateStatusCode(resp.StatusCode), err, string(bodyBytes))
		return nil, err
	}

	return response, nil
}

// redirectFailure returns the redirect policy error wrapped in err, if any. A response was
// received in that case, so the failure is not a network error.
func redirectFailure(err error) error {
	var loopErr *redirecthandler.RedirectLoopError
	if errors.As(err, &loopErr) {
		return loopErr
	}
	var maxErr *redirecthandler.MaxRedirectsError
	if errors.As(err, &maxErr) {
		return maxErr
	}
	return nil
}
