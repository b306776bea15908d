package httpclient

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"

	"github.com/deploymenttheory/go-api-sdk-amadeus/response"
)

// Response is the outcome of one executed Request. Body and headers are fully read;
// nothing needs closing.
type Response struct {
	request    *Request
	statusCode int
	url        string
	headerSize int
	headers    string
	header     http.Header
	body       []byte

	decodeOnce sync.Once
	result     interface{}
	decodeErr  error
}

func newResponse(request *Request, statusCode int, url string, header http.Header, body []byte) *Response {
	raw := rawHeaderBlock(statusCode, header)
	return &Response{
		request:    request,
		statusCode: statusCode,
		url:        url,
		headerSize: len(raw),
		headers:    raw,
		header:     header,
		body:       body,
	}
}

func (r *Response) Request() *Request   { return r.request }
func (r *Response) StatusCode() int     { return r.statusCode }
func (r *Response) URL() string         { return r.url }
func (r *Response) HeaderSize() int     { return r.headerSize }
func (r *Response) Headers() string     { return r.headers }
func (r *Response) Header() http.Header { return r.header }
func (r *Response) Body() string        { return string(r.body) }

// Result returns the decoded JSON body, nil for an empty body. A body that fails to decode is an
// error only when the response declared a JSON content type; otherwise it decodes to nil.
func (r *Response) Result() (interface{}, error) {
	r.decodeOnce.Do(func() {
		r.result, r.decodeErr = response.DecodeJSON(r.body)
		if r.decodeErr != nil && !response.IsJSONContentType(r.header.Get("Content-Type")) {
			r.result, r.decodeErr = nil, nil
		}
	})
	return r.result, r.decodeErr
}

// Data returns the "data" member of the decoded body.
func (r *Response) Data() (interface{}, error) {
	result, err := r.Result()
	if err != nil {
		return nil, err
	}
	return response.Data(result), nil
}

// Search evaluates a JMESPath expression against the decoded body.
func (r *Response) Search(expression string) (interface{}, error) {
	result, err := r.Result()
	if err != nil {
		return nil, err
	}
	return response.Search(result, expression)
}

// rawHeaderBlock renders the status line and headers as they appear on the wire.
func rawHeaderBlock(statusCode int, header http.Header) string {
	if statusCode == 0 {
		return ""
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "HTTP/1.1 %d %s\r\n", statusCode, http.StatusText(statusCode))
	_ = header.Write(&b)
	b.WriteString("\r\n")
	return b.String()
}
