package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/eshop/internal/user/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

var ErrKeyNotFound = errors.New("key not found")

type UserECache interface {
	Set(ctx context.Context, user domain.User) error
	Get(ctx context.Context, id int64) (domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type userECache struct {
	ec         ecache.Cache
	expiration time.Duration
	logger     *elog.Component
}

// NewUserECache 注意缓存前缀
func NewUserECache(ec ecache.Cache) UserECache {
	return &userECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "user:",
		},
		expiration: time.Minute * 30,
		logger:     elog.DefaultLogger,
	}
}

func (c *userECache) Set(ctx context.Context, user domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.ec.Set(ctx, c.key(user.ID), string(data), c.expiration)
}

func (c *userECache) Get(ctx context.Context, id int64) (domain.User, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.User{}, ErrKeyNotFound
	}
	if val.Err != nil {
		return domain.User{}, val.Err
	}
	var u domain.User
	data, err := val.String()
	if err != nil {
		return domain.User{}, err
	}
	err = json.Unmarshal([]byte(data), &u)
	return u, err
}

func (c *userECache) Delete(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *userECache) key(id int64) string {
	return "id:" + strconv.FormatInt(id, 10)
}
