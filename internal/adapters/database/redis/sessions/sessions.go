package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage remembers which chat message a confirmed configurator session was
// opened from, keyed by the generation payload it produced.
type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

// Get returns the stored message id, an empty string when there is none.
func (s *Storage) Get(ctx context.Context, payload string) (string, error) {
	messageID, err := s.redis.Get(ctx, key(payload)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return messageID, nil
}

func (s *Storage) Set(ctx context.Context, payload, messageID string, expiration time.Duration) error {
	return s.redis.Set(ctx, key(payload), messageID, expiration).Err()
}

func (s *Storage) Clear(ctx context.Context, payload string) {
	s.redis.Del(ctx, key(payload))
}

func key(payload string) string {
	return "session:" + payload
}
