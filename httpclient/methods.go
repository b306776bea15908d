// httpclient/methods.go
package httpclient

import "net/http"

// GetWithOnlyPath issues an authenticated GET for path.
func (c *Client) GetWithOnlyPath(path string) (*Response, error) {
	return c.GetWithParams(path, nil)
}

// GetWithParams issues an authenticated GET for path with params in the query string.
func (c *Client) GetWithParams(path string, params Params) (*Response, error) {
	token, err := c.accessToken.BearerToken()
	if err != nil {
		return nil, err
	}
	return c.Execute(NewRequest(http.MethodGet, path, params, "", token, c))
}

// PostWithStringBody issues an authenticated POST sending body verbatim. Optional params are
// appended to the query string.
func (c *Client) PostWithStringBody(path, body string, params Params) (*Response, error) {
	token, err := c.accessToken.BearerToken()
	if err != nil {
		return nil, err
	}
	return c.Execute(NewRequest(http.MethodPost, path, params, body, token, c))
}
