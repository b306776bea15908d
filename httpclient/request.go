// httpclient/request.go
package httpclient

import (
	"fmt"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-amadeus/headers"
)

// Request describes one call to the API. It is immutable once built; two requests built
// from the same inputs against the same client compare equal.
type Request struct {
	verb              string
	path              string
	params            Params
	body              string
	bearerToken       string
	sslCertificate    string
	host              string
	port              int
	ssl               bool
	additionalHeaders []headers.Header
}

// NewRequest captures a call against client. An empty bearerToken sends no Authorization
// header; only the token request does that. An empty body means no body.
func NewRequest(verb, path string, params Params, body, bearerToken string, client *Client) *Request {
	config := client.config
	return &Request{
		verb:              verb,
		path:              path,
		params:            append(Params(nil), params...),
		body:              body,
		bearerToken:       bearerToken,
		sslCertificate:    config.SSLCertificate,
		host:              config.Host,
		port:              config.Port,
		ssl:               config.SSL,
		additionalHeaders: append([]headers.Header(nil), config.AdditionalHeaders...),
	}
}

func (r *Request) Verb() string           { return r.verb }
func (r *Request) Path() string           { return r.path }
func (r *Request) Body() string           { return r.body }
func (r *Request) BearerToken() string    { return r.bearerToken }
func (r *Request) SSLCertificate() string { return r.sslCertificate }
func (r *Request) Host() string           { return r.host }
func (r *Request) Port() int              { return r.port }
func (r *Request) SSL() bool              { return r.ssl }

// Params returns a copy of the request parameters.
func (r *Request) Params() Params {
	return append(Params(nil), r.params...)
}

// HasBody reports whether the request carries a raw body.
func (r *Request) HasBody() bool {
	return r.body != ""
}

// URI returns the full URL. Parameters go in the query string except for a POST without
// body, where they are form-encoded into the body instead.
func (r *Request) URI() string {
	scheme := "http"
	if r.ssl {
		scheme = "https"
	}
	uri := fmt.Sprintf("%s://%s:%d%s", scheme, r.host, r.port, r.path)
	if len(r.params) > 0 && !r.isFormPost() {
		uri += "?" + r.params.Encode()
	}
	return uri
}

// Payload returns the bytes sent as request body: the raw body, the form-encoded
// params of a body-less POST, or nothing.
func (r *Request) Payload() string {
	switch {
	case r.verb != http.MethodPost:
		return ""
	case r.HasBody():
		return r.body
	case r.isFormPost():
		return r.params.Encode()
	default:
		return ""
	}
}

// ContentType returns the Content-Type sent with the payload, empty when there is none.
func (r *Request) ContentType() string {
	switch {
	case r.verb != http.MethodPost:
		return ""
	case r.HasBody():
		return headers.ContentTypeAmadeus
	case r.isFormPost():
		return headers.ContentTypeForm
	default:
		return ""
	}
}

// Headers returns the header set sent with the request.
func (r *Request) Headers() http.Header {
	header := http.Header{}
	headers.NewHeaderHandler(header, nil, r.bearerToken).SetRequestHeaders(r.ContentType(), r.additionalHeaders)
	return header
}

func (r *Request) isFormPost() bool {
	return r.verb == http.MethodPost && !r.HasBody() && len(r.params) > 0
}
