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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
)

var ErrProductNotFound = dao.ErrRecordNotFound

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Product, error)
	Total(ctx context.Context) (int64, error)
	Save(ctx context.Context, p domain.Product) (int64, error)
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (p *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	res, err := p.d.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(res), nil
}

func (p *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	res, err := p.d.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) List(ctx context.Context, offset int, limit int) ([]domain.Product, error) {
	res, err := p.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) Total(ctx context.Context) (int64, error) {
	return p.d.Count(ctx)
}

func (p *productRepository) Save(ctx context.Context, product domain.Product) (int64, error) {
	return p.d.Save(ctx, p.toEntity(product))
}

func (p *productRepository) toDomain(product dao.Product) domain.Product {
	return domain.Product{
		ID:          product.Id,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Image:       product.Image,
		Ctime:       product.Ctime,
		Utime:       product.Utime,
	}
}

func (p *productRepository) toEntity(product domain.Product) dao.Product {
	return dao.Product{
		Id:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Image:       product.Image,
	}
}
