package httpclient

import (
	"net/http"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-amadeus/headers"
	"github.com/deploymenttheory/go-api-sdk-amadeus/version"
	"github.com/stretchr/testify/assert"
)

func TestParams_Encode(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{"empty", nil, ""},
		{"order preserved", NewParams("z", "1", "a", "2"), "z=1&a=2"},
		{"escaped", NewParams("keyword", "LON DON", "list", "a,b&c"), "keyword=LON+DON&list=a%2Cb%26c"},
		{"repeated keys", Params{{"x", "1"}, {"x", "2"}}, "x=1&x=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Encode())
		})
	}
}

func TestParams_AddAndGet(t *testing.T) {
	base := NewParams("a", "1", "dangling")
	extended := base.Add("b", "2")

	assert.Len(t, base, 1)
	assert.Len(t, extended, 2)
	value, ok := extended.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", value)
	_, ok = extended.Get("c")
	assert.False(t, ok)
}

func TestRequest_Wire(t *testing.T) {
	client := newTestClient(t, newExecutor(nil))

	tests := []struct {
		name            string
		verb            string
		params          Params
		body            string
		wantURI         string
		wantPayload     string
		wantContentType string
	}{
		{
			name:    "get without params",
			verb:    http.MethodGet,
			wantURI: "https://test.api.amadeus.com:443/foo",
		},
		{
			name:    "get with params",
			verb:    http.MethodGet,
			params:  NewParams("foo", "bar"),
			wantURI: "https://test.api.amadeus.com:443/foo?foo=bar",
		},
		{
			name:            "post with body",
			verb:            http.MethodPost,
			body:            `{"data":{}}`,
			wantURI:         "https://test.api.amadeus.com:443/foo",
			wantPayload:     `{"data":{}}`,
			wantContentType: headers.ContentTypeAmadeus,
		},
		{
			name:            "post with body and params",
			verb:            http.MethodPost,
			params:          NewParams("include", "detailed-fare-rules"),
			body:            `{"data":{}}`,
			wantURI:         "https://test.api.amadeus.com:443/foo?include=detailed-fare-rules",
			wantPayload:     `{"data":{}}`,
			wantContentType: headers.ContentTypeAmadeus,
		},
		{
			name:            "post with params only",
			verb:            http.MethodPost,
			params:          NewParams("grant_type", "client_credentials"),
			wantURI:         "https://test.api.amadeus.com:443/foo",
			wantPayload:     "grant_type=client_credentials",
			wantContentType: headers.ContentTypeForm,
		},
		{
			name:    "post with nothing",
			verb:    http.MethodPost,
			wantURI: "https://test.api.amadeus.com:443/foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := NewRequest(tt.verb, "/foo", tt.params, tt.body, "T", client)

			assert.Equal(t, tt.wantURI, request.URI())
			assert.Equal(t, tt.wantPayload, request.Payload())
			assert.Equal(t, tt.wantContentType, request.ContentType())
			assert.Equal(t, tt.wantContentType, request.Headers().Get("Content-Type"))
		})
	}
}

func TestRequest_Headers(t *testing.T) {
	config := testConfig()
	config.HTTPClient = newExecutor(nil)
	config.AdditionalHeaders = []headers.Header{{Name: "X-Partner", Value: "acme"}}
	client, err := BuildClientWithLogger(config, true, nopLogger())
	assert.NoError(t, err)

	withToken := NewRequest(http.MethodGet, "/foo", nil, "", "T", client).Headers()
	assert.Equal(t, "Bearer T", withToken.Get("Authorization"))
	assert.Equal(t, version.GetUserAgentHeader(), withToken.Get("User-Agent"))
	assert.Equal(t, headers.AcceptAmadeus, withToken.Get("Accept"))
	assert.Equal(t, "acme", withToken.Get("X-Partner"))

	withoutToken := NewRequest(http.MethodPost, "/foo", NewParams("a", "b"), "", "", client).Headers()
	assert.Empty(t, withoutToken.Get("Authorization"))
}

func TestRequest_Equality(t *testing.T) {
	client := newTestClient(t, newExecutor(nil))

	a := NewRequest(http.MethodGet, "/foo", NewParams("foo", "bar"), "", "T", client)
	b := NewRequest(http.MethodGet, "/foo", NewParams("foo", "bar"), "", "T", client)
	c := NewRequest(http.MethodGet, "/foo", NewParams("foo", "baz"), "", "T", client)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	assert.Equal(t, http.MethodGet, a.Verb())
	assert.Equal(t, "/foo", a.Path())
	assert.Equal(t, "T", a.BearerToken())
	assert.Equal(t, "test.api.amadeus.com", a.Host())
	assert.Equal(t, 443, a.Port())
	assert.True(t, a.SSL())
	assert.False(t, a.HasBody())
}

func TestRequest_ParamsAreCopied(t *testing.T) {
	client := newTestClient(t, newExecutor(nil))
	params := NewParams("foo", "bar")

	request := NewRequest(http.MethodGet, "/foo", params, "", "T", client)
	params[0].Value = "changed"
	request.Params()[0].Value = "changed again"

	assert.Equal(t, "https://test.api.amadeus.com:443/foo?foo=bar", request.URI())
}
