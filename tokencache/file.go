package tokencache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

// FileStore keeps the token in a JSON file. Writes replace the whole file and are not
// locked, so concurrent processes sharing a path simply overwrite each other.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The parent directory is created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the cached entry. A missing file yields ErrNotFound.
func (s *FileStore) Load() (Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("reading token cache %s: %w", s.path, err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, fmt.Errorf("decoding token cache %s: %w", s.path, err)
	}
	if entry.AccessToken == "" {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}

// Save overwrites the cache file with entry. The file is only readable by the owner.
func (s *FileStore) Save(entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding token cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating token cache directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing token cache %s: %w", s.path, err)
	}
	return nil
}

// DefaultFilePath returns the per-client cache file under the user cache directory,
// falling back to the temp directory when the user has none.
func DefaultFilePath(clientID string) string {
	base, err := os.UserCacheDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(base, "amadeus", "token_"+sanitize(clientID)+".json")
}

func sanitize(clientID string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, clientID)
	if cleaned == "" {
		return "default"
	}
	return cleaned
}
