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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// ErrRecordNotFound 商品没找到
var ErrRecordNotFound = gorm.ErrRecordNotFound

type ProductDAO interface {
	FindByID(ctx context.Context, id int64) (Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Product, error)
	List(ctx context.Context, offset int, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, p Product) (int64, error)
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) List(ctx context.Context, offset int, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Product{}).Count(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Save(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime = now
	if p.Id == 0 {
		p.Ctime = now
		err := d.db.WithContext(ctx).Create(&p).Error
		return p.Id, err
	}
	return p.Id, d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", p.Id).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"image":       p.Image,
			"utime":       p.Utime,
		}).Error
}

type Product struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	Name        string `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description string `gorm:"not null;comment:商品描述"`
	Price       int64  `gorm:"not null;comment:商品单价;单位为分, 999表示9.99元"`
	Image       string `gorm:"type:varchar(512);not null;comment:商品缩略图,CDN绝对路径"`
	Ctime       int64
	Utime       int64
}
