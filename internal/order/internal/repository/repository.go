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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/dao"
)

var ErrOrderNotFound = dao.ErrRecordNotFound

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindByIDAndBuyerID(ctx context.Context, id int64, buyerID int64) (domain.Order, error)
	ListOrders(ctx context.Context, offset int, limit int) ([]domain.Order, error)
	ListOrdersByBuyerID(ctx context.Context, offset int, limit int, buyerID int64) ([]domain.Order, error)
	TotalOrders(ctx context.Context) (int64, error)
	TotalOrdersByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, paymentStatus domain.PaymentStatus, orderStatus domain.OrderStatus) error
	Delete(ctx context.Context, id int64) error
	ListTimeoutOrders(ctx context.Context, offset int, limit int, ctime int64) ([]domain.Order, error)
	TotalTimeoutOrders(ctx context.Context, ctime int64) (int64, error)
	CancelTimeoutOrders(ctx context.Context, ids []int64) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	created, err := o.d.CreateOrder(ctx, o.toOrderEntity(order), o.toOrderItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = created.Id
	order.Ctime, order.Utime = created.Ctime, created.Utime
	return order, nil
}

func (o *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	order, err := o.d.FindById(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.d.FindItemsByOrderId(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单ID查找订单项失败: %w", err)
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) FindByIDAndBuyerID(ctx context.Context, id int64, buyerID int64) (domain.Order, error) {
	order, err := o.d.FindByIdAndBuyerId(ctx, id, buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.d.FindItemsByOrderId(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单ID查找订单项失败: %w", err)
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) ListOrders(ctx context.Context, offset int, limit int) ([]domain.Order, error) {
	os, err := o.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.attachItems(ctx, os)
}

func (o *orderRepository) ListOrdersByBuyerID(ctx context.Context, offset int, limit int, buyerID int64) ([]domain.Order, error) {
	os, err := o.d.ListByBuyerId(ctx, offset, limit, buyerID)
	if err != nil {
		return nil, err
	}
	return o.attachItems(ctx, os)
}

func (o *orderRepository) attachItems(ctx context.Context, os []dao.Order) ([]domain.Order, error) {
	res := make([]domain.Order, 0, len(os))
	for _, src := range os {
		items, err := o.d.FindItemsByOrderId(ctx, src.Id)
		if err != nil {
			return nil, fmt.Errorf("通过订单ID查找订单项失败: %w", err)
		}
		res = append(res, o.toOrderDomain(src, items))
	}
	return res, nil
}

func (o *orderRepository) TotalOrders(ctx context.Context) (int64, error) {
	return o.d.Count(ctx)
}

func (o *orderRepository) TotalOrdersByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	return o.d.CountByBuyerId(ctx, buyerID)
}

func (o *orderRepository) UpdateStatus(ctx context.Context, id int64, paymentStatus domain.PaymentStatus, orderStatus domain.OrderStatus) error {
	return o.d.UpdateStatus(ctx, id, paymentStatus.String(), orderStatus.String())
}

func (o *orderRepository) Delete(ctx context.Context, id int64) error {
	return o.d.Delete(ctx, id)
}

func (o *orderRepository) ListTimeoutOrders(ctx context.Context, offset int, limit int, ctime int64) ([]domain.Order, error) {
	os, err := o.d.FindTimeoutOrders(ctx, offset, limit, ctime)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toOrderDomain(src, nil)
	}), nil
}

func (o *orderRepository) TotalTimeoutOrders(ctx context.Context, ctime int64) (int64, error) {
	return o.d.CountTimeoutOrders(ctx, ctime)
}

func (o *orderRepository) CancelTimeoutOrders(ctx context.Context, ids []int64) error {
	return o.d.CancelTimeoutOrders(ctx, ids)
}

func (o *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:              order.ID,
		SN:              order.SN,
		BuyerId:         order.BuyerID,
		DeliveryAddress: order.DeliveryAddress,
		PaymentMethod:   order.PaymentMethod,
		PaymentStatus:   order.PaymentStatus.String(),
		OrderStatus:     order.OrderStatus.String(),
		SubTotal:        order.SubTotal,
		ShippingFee:     order.ShippingFee,
		Total:           order.Total,
	}
}

func (o *orderRepository) toOrderItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ProductId:   src.ProductID,
			ProductName: src.ProductName,
			Quantity:    src.Quantity,
			UnitPrice:   src.UnitPrice,
			Total:       src.Total,
		}
	})
}

func (o *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:              order.Id,
		SN:              order.SN,
		BuyerID:         order.BuyerId,
		DeliveryAddress: order.DeliveryAddress,
		PaymentMethod:   order.PaymentMethod,
		PaymentStatus:   domain.PaymentStatus(order.PaymentStatus),
		OrderStatus:     domain.OrderStatus(order.OrderStatus),
		SubTotal:        order.SubTotal,
		ShippingFee:     order.ShippingFee,
		Total:           order.Total,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				OrderID:     src.OrderId,
				ProductID:   src.ProductId,
				ProductName: src.ProductName,
				Quantity:    src.Quantity,
				UnitPrice:   src.UnitPrice,
				Total:       src.Total,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
