package jwtauth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"statusfeed/internal/config"
	"statusfeed/internal/model"
)

const userCacheKey = "cache:%s:jwt:mid:ui:%d"

// UserCache keeps the authorization-path user lookup off the database for
// the configured cache duration. Any miss or decode failure just falls
// through to the database.
type UserCache struct {
	RedisClient *redis.Client
	Config      *config.Config
}

func NewUserCache(
	client *redis.Client,
	config *config.Config,
) *UserCache {
	return &UserCache{
		RedisClient: client,
		Config:      config,
	}
}

func (uc *UserCache) key(userID uint) string {
	return fmt.Sprintf(userCacheKey, uc.Config.App.Name, userID)
}

func (uc *UserCache) Get(ctx context.Context, userID uint) (*model.User, bool) {
	raw, err := uc.RedisClient.Get(ctx, uc.key(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		_ = uc.RedisClient.Del(ctx, uc.key(userID)).Err()
		return nil, false
	}
	return &user, true
}

func (uc *UserCache) Set(ctx context.Context, user *model.User, ttl time.Duration) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return uc.RedisClient.Set(ctx, uc.key(user.ID), raw, ttl).Err()
}

func (uc *UserCache) Clear(ctx context.Context, userID uint) error {
	return uc.RedisClient.Del(ctx, uc.key(userID)).Err()
}
