package callbacks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/icykcyber/genbot/internal/domain/common/errorz"
)

// CallbackStorage keeps callback payloads that do not fit into the 64 byte
// callback data of a Telegram button.
type CallbackStorage interface {
	Get(ctx context.Context, callbackID string) (string, error)
	Set(ctx context.Context, data string, expiration time.Duration) (string, error)
	Delete(ctx context.Context, callbackID string)
}

// Storage is a realization of CallbackStorage
type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

// Get returns errorz.ErrInvalidCallbackData for unknown or expired ids.
func (s *Storage) Get(ctx context.Context, callbackID string) (string, error) {
	data, err := s.redis.Get(ctx, key(callbackID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", errorz.ErrInvalidCallbackData
	}
	return data, err
}

// Set stores data under a random uuid and returns that uuid as the callback id.
func (s *Storage) Set(ctx context.Context, data string, expiration time.Duration) (string, error) {
	callbackID := uuid.New().String()
	if err := s.redis.Set(ctx, key(callbackID), data, expiration).Err(); err != nil {
		return "", err
	}
	return callbackID, nil
}

func (s *Storage) Delete(ctx context.Context, callbackID string) {
	s.redis.Del(ctx, key(callbackID))
}

func key(callbackID string) string {
	return "callback:" + callbackID
}
