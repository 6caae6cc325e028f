package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/icykcyber/genbot/internal/adapters/database/redis/callbacks"
	"github.com/icykcyber/genbot/internal/adapters/database/redis/sessions"
)

const (
	callbacksDB = iota
	sessionsDB
)

type Client struct {
	Callbacks *callbacks.Storage
	Sessions  *sessions.Storage
}

type Options struct {
	Host     string
	Port     string
	Password string
}

func New(opts Options) (*Client, error) {
	callbackStorage, err := connect(opts, callbacksDB)
	if err != nil {
		return nil, fmt.Errorf("failed to ping callbacks storage: %w", err)
	}

	sessionStorage, err := connect(opts, sessionsDB)
	if err != nil {
		return nil, fmt.Errorf("failed to ping sessions storage: %w", err)
	}

	return &Client{
		Callbacks: callbacks.NewStorage(callbackStorage),
		Sessions:  sessions.NewStorage(sessionStorage),
	}, nil
}

func connect(opts Options, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
