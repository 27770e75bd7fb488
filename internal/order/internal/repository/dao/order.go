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

// ErrRecordNotFound 订单没找到
var ErrRecordNotFound = gorm.ErrRecordNotFound

type OrderDAO interface {
	// CreateOrder 订单和订单项在一个事务里落库，不存在只写一半的情况
	// 返回落库之后的订单，ID 和时间戳都已经填好
	CreateOrder(ctx context.Context, o Order, items []OrderItem) (Order, error)
	FindById(ctx context.Context, id int64) (Order, error)
	// FindByIdAndBuyerId 买家过滤直接做在 SQL 里，别人的订单和不存在的订单不区分
	FindByIdAndBuyerId(ctx context.Context, id int64, buyerId int64) (Order, error)
	FindItemsByOrderId(ctx context.Context, oid int64) ([]OrderItem, error)
	List(ctx context.Context, offset int, limit int) ([]Order, error)
	ListByBuyerId(ctx context.Context, offset int, limit int, buyerId int64) ([]Order, error)
	Count(ctx context.Context) (int64, error)
	CountByBuyerId(ctx context.Context, buyerId int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, paymentStatus string, orderStatus string) error
	Delete(ctx context.Context, id int64) error
	FindTimeoutOrders(ctx context.Context, offset int, limit int, ctime int64) ([]Order, error)
	CountTimeoutOrders(ctx context.Context, ctime int64) (int64, error)
	CancelTimeoutOrders(ctx context.Context, ids []int64) error
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) CreateOrder(ctx context.Context, o Order, items []OrderItem) (Order, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	return o, err
}

func (d *OrderGORMDAO) FindById(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindByIdAndBuyerId(ctx context.Context, id int64, buyerId int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).
		Where("id = ? AND buyer_id = ?", id, buyerId).
		First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindItemsByOrderId(ctx context.Context, oid int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).Where("order_id = ?", oid).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) List(ctx context.Context, offset int, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListByBuyerId(ctx context.Context, offset int, limit int, buyerId int64) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("buyer_id = ?", buyerId).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByBuyerId(ctx context.Context, buyerId int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ?", buyerId).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, id int64, paymentStatus string, orderStatus string) error {
	fields := map[string]any{
		"utime": time.Now().UnixMilli(),
	}
	if paymentStatus != "" {
		fields["payment_status"] = paymentStatus
	}
	if orderStatus != "" {
		fields["order_status"] = orderStatus
	}
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// 可能是订单不存在，也可能是值没变，查一下区分开
		return d.db.WithContext(ctx).Where("id = ?", id).First(&Order{}).Error
	}
	return nil
}

func (d *OrderGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return tx.Where("order_id = ?", id).Delete(&OrderItem{}).Error
	})
}

func (d *OrderGORMDAO) FindTimeoutOrders(ctx context.Context, offset int, limit int, ctime int64) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("payment_status = ? AND order_status = ? AND ctime < ?",
			"Pending", "Created", ctime).
		Order("id").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountTimeoutOrders(ctx context.Context, ctime int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("payment_status = ? AND order_status = ? AND ctime < ?",
			"Pending", "Created", ctime).
		Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CancelTimeoutOrders(ctx context.Context, ids []int64) error {
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"payment_status": "Canceled",
			"order_status":   "Canceled",
			"utime":          time.Now().UnixMilli(),
		}).Error
}

type Order struct {
	Id              int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN              string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId         int64  `gorm:"not null;index:idx_buyer_id;comment:购买者ID"`
	DeliveryAddress string `gorm:"type:varchar(512);not null;comment:收货地址"`
	PaymentMethod   string `gorm:"type:varchar(64);not null;comment:支付方式"`
	PaymentStatus   string `gorm:"type:varchar(32);not null;comment:支付状态"`
	OrderStatus     string `gorm:"type:varchar(32);not null;comment:订单状态"`
	SubTotal        int64  `gorm:"not null;comment:商品小计;单位为分, 999表示9.99元"`
	ShippingFee     int64  `gorm:"not null;comment:运费;单位为分"`
	Total           int64  `gorm:"not null;comment:实付总价;单位为分"`
	Ctime           int64
	Utime           int64
}

type OrderItem struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId     int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ProductId   int64  `gorm:"not null;comment:商品自增ID"`
	ProductName string `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	Quantity    int64  `gorm:"not null;comment:购买数量"`
	UnitPrice   int64  `gorm:"not null;comment:下单时冻结的单价;单位为分"`
	Total       int64  `gorm:"not null;comment:订单项总价;单位为分"`
	Ctime       int64
	Utime       int64
}
