package jwtauth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"statusfeed/internal/config"
	"statusfeed/pkg/logger"
)

const blacklistKey = "cache:%s:jwt:bl:%s"

// Blacklist stores revoked tokens until their natural expiry. Logout and
// refresh push the old token here; authorization checks it on every
// request.
type Blacklist struct {
	RedisClient *redis.Client
	Config      *config.Config
	Logger      logger.Logger
}

func NewBlacklist(
	client *redis.Client,
	config *config.Config,
	logger logger.Logger,
) *Blacklist {
	return &Blacklist{
		RedisClient: client,
		Config:      config,
		Logger:      logger,
	}
}

func (b *Blacklist) key(token string) string {
	return fmt.Sprintf(blacklistKey, b.Config.App.Name, token)
}

// IsBlacklisted reports whether the token was revoked. Redis failures
// fail open: a dead cache must not lock every user out.
func (b *Blacklist) IsBlacklisted(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	exists, err := b.RedisClient.Exists(ctx, b.key(token)).Result()
	if err != nil {
		b.Logger.Error(fmt.Sprintf("blacklist lookup failed: %v", err))
		return false
	}
	return exists > 0
}

// Add revokes a token for the remainder of its lifetime. Expired tokens
// need no entry.
func (b *Blacklist) Add(ctx context.Context, token string, remaining time.Duration) error {
	if token == "" || remaining <= 0 {
		return nil
	}
	if err := b.RedisClient.Set(ctx, b.key(token), 1, remaining).Err(); err != nil {
		b.Logger.Error(fmt.Sprintf("failed to blacklist token: %v", err))
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}
