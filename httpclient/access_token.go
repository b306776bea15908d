// httpclient/access_token.go
package httpclient

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/deploymenttheory/go-api-sdk-amadeus/headers/redact"
	"github.com/deploymenttheory/go-api-sdk-amadeus/tokencache"
	"go.uber.org/zap"
)

// TokenPath is the OAuth2 client-credentials endpoint.
const TokenPath = "/v1/security/oauth2/token"

// AccessToken holds the bearer token of a client and renews it when it expires.
//
// Fields are guarded by mu, but the check-then-fetch sequence is not: concurrent callers that
// find the token expired may each fetch a new one, and the last write wins.
type AccessToken struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	client *Client
	store  tokencache.Store
	now    func() time.Time
}

func newAccessToken(client *Client, store tokencache.Store) *AccessToken {
	a := &AccessToken{
		client: client,
		store:  store,
		now:    time.Now,
	}
	if store != nil {
		if err := a.restoreFromCache(); err != nil && !errors.Is(err, tokencache.ErrNotFound) {
			client.Logger.Warn("Ignoring unreadable token cache", zap.Error(err))
		}
	}
	return a
}

// BearerToken returns the current token, fetching a new one first when there is none or it has expired.
func (a *AccessToken) BearerToken() (string, error) {
	if token, ok := a.current(); ok {
		return token, nil
	}

	if err := a.FetchAccessToken(); err != nil {
		return "", err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token, nil
}

// ExpiresAt returns the expiry instant of the held token, zero when none was fetched yet.
func (a *AccessToken) ExpiresAt() time.Time {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.expiresAt
}

// FetchAccessToken requests a new token from the token endpoint and stores it. Transport and
// HTTP errors are returned as Execute produced them; there is no retry.
func (a *AccessToken) FetchAccessToken() error {
	c := a.client
	request := NewRequest(http.MethodPost, TokenPath, NewParams(
		"client_id", c.config.ClientID,
		"client_secret", c.config.ClientSecret,
		"grant_type", "client_credentials",
	), "", "", c)

	c.Logger.Debug("Requesting access token", zap.String("path", TokenPath))

	resp, err := c.Execute(request)
	if err != nil {
		c.Logger.LogAuthTokenError("access_token", http.MethodPost, request.URI(), statusOf(err), err)
		return err
	}

	result, err := resp.Result()
	if err != nil {
		return &ResponseError{Kind: KindUnknown, Response: resp, Message: "decoding access token response", Err: err}
	}

	token, expiresIn, ok := parseTokenResult(result)
	if !ok {
		err := &ResponseError{Kind: KindUnknown, Response: resp, Message: "access token missing from token response"}
		c.Logger.LogAuthTokenError("access_token", http.MethodPost, request.URI(), resp.StatusCode(), err)
		return err
	}

	expiresAt := a.now().Add(expiresIn)

	a.mu.Lock()
	a.token = token
	a.expiresAt = expiresAt
	a.mu.Unlock()

	c.Logger.Info("Access token obtained",
		zap.String("access_token", redact.RedactSensitiveHeaderData(c.config.HideSensitiveData, "access_token", token)),
		zap.Duration("expires_in", expiresIn),
		zap.Time("expires_at", expiresAt),
	)

	if a.store != nil {
		if err := a.persist(); err != nil {
			c.Logger.Warn("Failed to persist access token", zap.Error(err))
		}
	}
	return nil
}

// current returns the token if it is still valid. Valid means strictly before the expiry instant.
func (a *AccessToken) current() (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.token == "" || !a.now().Before(a.expiresAt) {
		return "", false
	}
	return a.token, true
}

func (a *AccessToken) restoreFromCache() error {
	entry, err := a.store.Load()
	if err != nil {
		return err
	}
	if !entry.Valid(a.now()) {
		a.client.Logger.Debug("Cached access token expired", zap.Time("expires_at", entry.Expiry()))
		return nil
	}

	a.mu.Lock()
	a.token = entry.AccessToken
	a.expiresAt = entry.Expiry()
	a.mu.Unlock()

	a.client.Logger.Debug("Access token restored from cache", zap.Time("expires_at", entry.Expiry()))
	return nil
}

func (a *AccessToken) persist() error {
	a.mu.RLock()
	entry := tokencache.Entry{AccessToken: a.token, ExpiresAt: a.expiresAt.Unix()}
	a.mu.RUnlock()
	return a.store.Save(entry)
}

// parseTokenResult finds access_token and expires_in at the top level of the token response,
// or inside its "data" member (object or first array element).
func parseTokenResult(result interface{}) (string, time.Duration, bool) {
	candidates := []interface{}{result}
	if object, ok := result.(map[string]interface{}); ok {
		switch data := object["data"].(type) {
		case map[string]interface{}:
			candidates = append(candidates, data)
		case []interface{}:
			if len(data) > 0 {
				candidates = append(candidates, data[0])
			}
		}
	}

	for _, candidate := range candidates {
		object, ok := candidate.(map[string]interface{})
		if !ok {
			continue
		}
		token, _ := object["access_token"].(string)
		if token == "" {
			continue
		}
		return token, time.Duration(seconds(object["expires_in"]) * float64(time.Second)), true
	}
	return "", 0, false
}

func seconds(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func statusOf(err error) int {
	var responseErr *ResponseError
	if errors.As(err, &responseErr) {
		return responseErr.StatusCode()
	}
	return 0
}
