package jwtauth

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"

	"statusfeed/internal/config"
)

var (
	loginFailureKey = "cache:%s:login_failures:%s" // 登录失败计数器键格式
	accountLockKey  = "cache:%s:account_lock:%s"   // 账户锁定键格式
)

// LoginLock counts consecutive failed logins per username and locks the
// account once the configured threshold is hit. Usernames are lowercased
// so the counter matches the case-insensitive account lookup.
type LoginLock struct {
	RedisClient *redis.Client
	Config      *config.Config
}

func NewLoginLock(
	client *redis.Client,
	config *config.Config,
) *LoginLock {
	return &LoginLock{
		RedisClient: client,
		Config:      config,
	}
}

func (ll *LoginLock) failureKey(username string) string {
	return fmt.Sprintf(loginFailureKey, ll.Config.App.Name, strings.ToLower(username))
}

func (ll *LoginLock) lockKey(username string) string {
	return fmt.Sprintf(accountLockKey, ll.Config.App.Name, strings.ToLower(username))
}

// IsLocked 检查账户是否被锁定
func (ll *LoginLock) IsLocked(ctx context.Context, username string) (bool, error) {
	exists, err := ll.RedisClient.Exists(ctx, ll.lockKey(username)).Result()
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

// RecordFailure increments the failure counter and locks the account when
// the threshold is reached. The check-and-set runs under Watch so two
// concurrent failures cannot both read the same count.
func (ll *LoginLock) RecordFailure(ctx context.Context, username string) error {
	key := ll.failureKey(username)

	txf := func(tx *redis.Tx) error {
		count, err := tx.Get(ctx, key).Int()
		if err != nil && err != redis.Nil {
			return err
		}

		newCount := count + 1
		if newCount >= ll.Config.JWT.MaxLoginAttempts {
			if err := tx.Set(ctx, ll.lockKey(username), "1", ll.Config.JWT.LockDuration).Err(); err != nil {
				return err
			}
			return tx.Del(ctx, key).Err()
		}
		return tx.Set(ctx, key, newCount, 0).Err()
	}

	return ll.RedisClient.Watch(ctx, txf, key)
}

// ClearFailures 清除登录失败计数和锁定
func (ll *LoginLock) ClearFailures(ctx context.Context, username string) error {
	_, err := ll.RedisClient.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, ll.failureKey(username))
		pipe.Del(ctx, ll.lockKey(username))
		return nil
	})
	return err
}
