// Package tokencache persists access tokens between process runs so a fresh client can
// reuse a still-valid token instead of calling the token endpoint.
package tokencache

import (
	"errors"
	"time"
)

// ErrNotFound is returned by Load when the store holds no token.
var ErrNotFound = errors.New("tokencache: no cached token")

// Entry is the persisted form of an access token.
type Entry struct {
	AccessToken string `json:"access_token"`
	// ExpiresAt is the absolute expiry in Unix seconds.
	ExpiresAt int64 `json:"expires_at"`
}

// Valid reports whether the entry holds a token that is still usable at now.
func (e Entry) Valid(now time.Time) bool {
	return e.AccessToken != "" && now.Unix() < e.ExpiresAt
}

// Expiry returns ExpiresAt as a time.
func (e Entry) Expiry() time.Time {
	return time.Unix(e.ExpiresAt, 0)
}

// Store loads and saves a single token entry.
type Store interface {
	Load() (Entry, error)
	Save(entry Entry) error
}
