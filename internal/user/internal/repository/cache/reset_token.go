package cache

import (
	"context"
	"time"

	"github.com/ecodeclub/ecache"
)

// ResetTokenCache 密码重置令牌，一次有效，过期自动失效
type ResetTokenCache interface {
	Set(ctx context.Context, token string, email string) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type resetTokenCache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewResetTokenCache(ec ecache.Cache) ResetTokenCache {
	return &resetTokenCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "pwdreset:",
		},
		// 默认十五分钟
		expiration: time.Minute * 15,
	}
}

func (c *resetTokenCache) Set(ctx context.Context, token string, email string) error {
	return c.ec.Set(ctx, token, email, c.expiration)
}

func (c *resetTokenCache) Get(ctx context.Context, token string) (string, error) {
	val := c.ec.Get(ctx, token)
	if val.KeyNotFound() {
		return "", ErrKeyNotFound
	}
	if val.Err != nil {
		return "", val.Err
	}
	return val.String()
}

func (c *resetTokenCache) Delete(ctx context.Context, token string) error {
	_, err := c.ec.Delete(ctx, token)
	return err
}
