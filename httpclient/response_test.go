package httpclient

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Result(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        interface{}
		wantErr     bool
	}{
		{"json object", "application/vnd.amadeus+json", `{"meta":{"count":1}}`, map[string]interface{}{"meta": map[string]interface{}{"count": float64(1)}}, false},
		{"json without content type", "", `{"a":"b"}`, map[string]interface{}{"a": "b"}, false},
		{"empty body", "application/json", "", nil, false},
		{"html body", "text/html", "<html></html>", nil, false},
		{"declared json but malformed", "application/json", "{", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.contentType != "" {
				header.Set("Content-Type", tt.contentType)
			}
			resp := newResponse(nil, 200, "", header, []byte(tt.body))

			got, err := resp.Result()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResponse_DataAndSearch(t *testing.T) {
	body := `{"data":{"type":"location","iataCode":"MUC","address":{"cityName":"MUNICH"}},"meta":{"links":{"self":"x"}}}`
	resp := newResponse(nil, 200, "", http.Header{"Content-Type": {"application/json"}}, []byte(body))

	data, err := resp.Data()
	require.NoError(t, err)
	assert.Equal(t, "MUC", data.(map[string]interface{})["iataCode"])

	city, err := resp.Search("data.address.cityName")
	require.NoError(t, err)
	assert.Equal(t, "MUNICH", city)

	_, err = resp.Search("data.[")
	assert.Error(t, err)
}

func TestResponse_RawHeaders(t *testing.T) {
	header := http.Header{"Content-Type": {"application/json"}, "Ama-Request-Id": {"0001"}}
	resp := newResponse(nil, 201, "https://test.api.amadeus.com:443/foo", header, nil)

	assert.Equal(t, "HTTP/1.1 201 Created\r\nAma-Request-Id: 0001\r\nContent-Type: application/json\r\n\r\n", resp.Headers())
	assert.Equal(t, len(resp.Headers()), resp.HeaderSize())
	assert.Equal(t, "https://test.api.amadeus.com:443/foo", resp.URL())
	assert.Equal(t, "0001", resp.Header().Get("Ama-Request-Id"))
	assert.Empty(t, resp.Body())

	assert.Empty(t, newResponse(nil, 0, "", nil, nil).Headers())
}
