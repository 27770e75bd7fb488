// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/eshop/internal/user/internal/domain"
	"github.com/ecodeclub/eshop/internal/user/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Update(ctx context.Context, u domain.User) error
	UpdatePassword(ctx context.Context, id int64, password string) error
	UpdatePasswordByEmail(ctx context.Context, email string, password string) error
	Delete(ctx context.Context, id int64) error
}

type CachedUserRepository struct {
	d      dao.UserDAO
	cache  cache.UserECache
	logger *elog.Component
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserECache) UserRepository {
	return &CachedUserRepository{
		d:      d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return repo.d.Insert(ctx, repo.toEntity(u))
}

func (repo *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := repo.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		// 缓存出错走数据库兜底
		repo.logger.Error("读取用户缓存失败", elog.FieldErr(err), elog.Int64("uid", id))
	}
	ue, err := repo.d.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = repo.toDomain(ue)
	if er := repo.cache.Set(ctx, u); er != nil {
		repo.logger.Error("写入用户缓存失败", elog.FieldErr(er), elog.Int64("uid", id))
	}
	return u, nil
}

func (repo *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := repo.d.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	return repo.toDomain(u), nil
}

func (repo *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := repo.d.UpdateNonZeroFields(ctx, repo.toEntity(u))
	if err != nil {
		return err
	}
	return repo.evict(ctx, u.ID)
}

func (repo *CachedUserRepository) UpdatePassword(ctx context.Context, id int64, password string) error {
	err := repo.d.UpdatePassword(ctx, id, password)
	if err != nil {
		return err
	}
	return repo.evict(ctx, id)
}

func (repo *CachedUserRepository) UpdatePasswordByEmail(ctx context.Context, email string, password string) error {
	u, err := repo.d.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	err = repo.d.UpdatePasswordByEmail(ctx, email, password)
	if err != nil {
		return err
	}
	return repo.evict(ctx, u.Id)
}

func (repo *CachedUserRepository) Delete(ctx context.Context, id int64) error {
	err := repo.d.Delete(ctx, id)
	if err != nil {
		return err
	}
	return repo.evict(ctx, id)
}

func (repo *CachedUserRepository) evict(ctx context.Context, id int64) error {
	if err := repo.cache.Delete(ctx, id); err != nil {
		repo.logger.Error("删除用户缓存失败", elog.FieldErr(err), elog.Int64("uid", id))
	}
	return nil
}

func (repo *CachedUserRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      u.Role.String(),
	}
}

func (repo *CachedUserRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.Id,
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      domain.ParseRole(u.Role),
		Ctime:     u.Ctime,
		Utime:     u.Utime,
	}
}
