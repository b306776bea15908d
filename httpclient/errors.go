// httpclient/errors.go
package httpclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-amadeus/response"
	"github.com/deploymenttheory/go-api-sdk-amadeus/status"
)

// ErrorKind classifies a failed call.
type ErrorKind int

const (
	// KindUnknown covers unrecognised status codes, redirect policy failures and failures
	// before the request was sent.
	KindUnknown ErrorKind = iota
	// KindNetwork means no HTTP response was received.
	KindNetwork
	KindAuthentication
	KindNotFound
	KindClient
	KindServer
)

// Sentinels matched by errors.Is against a *ResponseError of the corresponding kind.
var (
	ErrNetwork        = errors.New("network error")
	ErrAuthentication = errors.New("authentication error")
	ErrNotFound       = errors.New("resource not found")
	ErrClient         = errors.New("client error")
	ErrServer         = errors.New("server error")
)

var kindSentinels = map[ErrorKind]error{
	KindNetwork:        ErrNetwork,
	KindAuthentication: ErrAuthentication,
	KindNotFound:       ErrNotFound,
	KindClient:         ErrClient,
	KindServer:         ErrServer,
}

func (k ErrorKind) String() string {
	if sentinel, ok := kindSentinels[k]; ok {
		return sentinel.Error()
	}
	return "response error"
}

// ResponseError is the single error type returned for failed calls. Every classified failure
// is a *ResponseError; the kind-specific sentinels are matched through errors.Is.
type ResponseError struct {
	Kind ErrorKind
	// Response is nil for network errors.
	Response *Response
	Message  string
	Errors   []response.APIErrorDetail
	Err      error
}

func (e *ResponseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Response != nil {
		fmt.Fprintf(&b, " (status %d)", e.Response.StatusCode())
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil && e.Err.Error() != e.Message {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *ResponseError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// StatusCode returns the HTTP status of the failed call, or 0 when there was no response.
func (e *ResponseError) StatusCode() int {
	if e.Response == nil {
		return status.NoResponse
	}
	return e.Response.StatusCode()
}

// detectError classifies a response by status code. It returns nil for 2xx.
func detectError(resp *Response) error {
	code := resp.StatusCode()

	switch {
	case code == status.NoResponse:
		return &ResponseError{Kind: KindNetwork, Message: status.TranslateStatusCode(code)}
	case status.IsSuccess(code):
		return nil
	case code == http.StatusUnauthorized:
		return newResponseError(KindAuthentication, resp)
	case code == http.StatusNotFound:
		return newResponseError(KindNotFound, resp)
	case status.IsClientError(code):
		return newResponseError(KindClient, resp)
	case status.IsServerError(code):
		return newResponseError(KindServer, resp)
	default:
		return newResponseError(KindUnknown, resp)
	}
}

// newResponseError builds an error for resp, taking the message from the error body when it has one.
func newResponseError(kind ErrorKind, resp *Response) *ResponseError {
	details, message := response.ParseErrorBody(resp.Header().Get("Content-Type"), resp.body)
	if message == "" {
		message = status.TranslateStatusCode(resp.StatusCode())
	}
	return &ResponseError{
		Kind:     kind,
		Response: resp,
		Message:  message,
		Errors:   details,
	}
}

// networkError wraps a transport failure; no response exists.
func networkError(err error) *ResponseError {
	return &ResponseError{Kind: KindNetwork, Message: err.Error(), Err: err}
}

// unknownError wraps a failure that happened before anything was sent.
func unknownError(message string, err error) *ResponseError {
	return &ResponseError{Kind: KindUnknown, Message: message, Err: err}
}
