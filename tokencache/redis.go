package tokencache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyTemplate = "_amadeus_token_%s"
	redisTimeout     = 2 * time.Second
)

// RedisStore shares a token between processes through Redis. Each client id gets its own key,
// which expires together with the token.
type RedisStore struct {
	cli *redis.Client
	key string
	now func() time.Time
}

// NewRedisStore returns a store using cli for the given client id.
func NewRedisStore(cli *redis.Client, clientID string) *RedisStore {
	return &RedisStore{
		cli: cli,
		key: fmt.Sprintf(redisKeyTemplate, sanitize(clientID)),
		now: time.Now,
	}
}

// NewRedisStoreFromAddr dials addr lazily; connection errors surface on the first Load or Save.
func NewRedisStoreFromAddr(addr, clientID string) *RedisStore {
	return NewRedisStore(redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: redisTimeout,
		ReadTimeout: redisTimeout,
	}), clientID)
}

// Key returns the Redis key the token is stored under.
func (s *RedisStore) Key() string {
	return s.key
}

// Load fetches the entry. A missing key or an entry without a token yields ErrNotFound.
func (s *RedisStore) Load() (Entry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	data, err := s.cli.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("loading token from redis: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, fmt.Errorf("decoding token from redis: %w", err)
	}
	if entry.AccessToken == "" {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}

// Save stores entry with a TTL matching its remaining lifetime. Already expired entries are not written.
func (s *RedisStore) Save(entry Entry) error {
	ttl := entry.Expiry().Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := s.cli.Set(ctx, s.key, data, ttl).Err(); err != nil {
		return fmt.Errorf("saving token to redis: %w", err)
	}
	return nil
}
