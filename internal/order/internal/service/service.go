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

package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/event"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound          = repository.ErrOrderNotFound
	ErrProductNotAvailable    = cart.ErrProductNotAvailable
	ErrInvalidPaymentMethod   = errors.New("非法支付方式")
	ErrInvalidDeliveryAddress = errors.New("非法收货地址")
	ErrEmptyOrder             = errors.New("订单不能为空")
	ErrNothingToUpdate        = errors.New("没有要更新的字段")
	ErrInvalidStatus          = errors.New("非法订单状态")
)

const (
	minAddressLen = 30
	maxAddressLen = 100
)

// CreateOrderReq 下单入参，商品列表沿用购物车的标识符格式
type CreateOrderReq struct {
	BuyerID            int64
	ProductIdentifiers string
	PaymentMethod      string
	DeliveryAddress    string
}

//go:generate mockgen -source=./service.go -package=svcmocks -destination=mocks/service.mock.go Service
type Service interface {
	CreateOrder(ctx context.Context, req CreateOrderReq) (domain.Order, error)
	FindOrder(ctx context.Context, id int64) (domain.Order, error)
	// FindBuyerOrder 买家只能看到自己的订单，别人的订单表现为不存在
	FindBuyerOrder(ctx context.Context, id int64, buyerID int64) (domain.Order, error)
	ListOrders(ctx context.Context, offset int, limit int) ([]domain.Order, int64, error)
	ListBuyerOrders(ctx context.Context, offset int, limit int, buyerID int64) ([]domain.Order, int64, error)
	// UpdateStatus 零值字段不更新，两个都是零值直接报错
	UpdateStatus(ctx context.Context, id int64, paymentStatus domain.PaymentStatus, orderStatus domain.OrderStatus) error
	DeleteOrder(ctx context.Context, id int64) error
	FindTimeoutOrders(ctx context.Context, offset int, limit int, ctime int64) ([]domain.Order, int64, error)
	CancelTimeoutOrders(ctx context.Context, ids []int64) error
}

func NewService(repo repository.OrderRepository,
	cartSvc cart.Service,
	snGenerator *sequencenumber.Generator,
	producer event.OrderEventProducer) Service {
	return &service{
		repo:        repo,
		cartSvc:     cartSvc,
		snGenerator: snGenerator,
		producer:    producer,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.OrderRepository
	cartSvc     cart.Service
	snGenerator *sequencenumber.Generator
	producer    event.OrderEventProducer
	logger      *elog.Component
}

func (s *service) CreateOrder(ctx context.Context, req CreateOrderReq) (domain.Order, error) {
	if !s.cartSvc.IsValidPaymentMethod(req.PaymentMethod) {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, req.PaymentMethod)
	}
	// 地址长度按字符数算，不是字节数，中文地址 30 个字已经够长了
	if n := utf8.RuneCountInString(req.DeliveryAddress); n < minAddressLen || n > maxAddressLen {
		return domain.Order{}, ErrInvalidDeliveryAddress
	}
	c, err := s.cartSvc.ResolveStrict(ctx, req.ProductIdentifiers)
	if err != nil {
		return domain.Order{}, err
	}
	if len(c.Items) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}
	sn, err := s.snGenerator.Generate(req.BuyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单序列号失败: %w", err)
	}
	order, err := s.repo.CreateOrder(ctx, domain.Order{
		SN:              sn,
		BuyerID:         req.BuyerID,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   domain.PaymentStatusPending,
		OrderStatus:     domain.OrderStatusCreated,
		SubTotal:        c.SubTotal,
		ShippingFee:     c.ShippingFee,
		Total:           c.Total,
		Items: slice.Map(c.Items, func(idx int, src cart.Item) domain.OrderItem {
			return domain.OrderItem{
				ProductID:   src.ProductID,
				ProductName: src.ProductName,
				Quantity:    src.Quantity,
				UnitPrice:   src.UnitPrice,
				Total:       src.Total,
			}
		}),
	})
	if err != nil {
		return domain.Order{}, err
	}

	evt := event.OrderEvent{OrderSN: order.SN, BuyerID: order.BuyerID, Total: order.Total}
	if e := s.producer.Produce(ctx, evt); e != nil {
		// 发消息失败不影响下单
		s.logger.Error("发送订单创建消息失败",
			elog.FieldErr(e),
			elog.String("orderSN", order.SN),
		)
	}
	return order, nil
}

func (s *service) FindOrder(ctx context.Context, id int64) (domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindBuyerOrder(ctx context.Context, id int64, buyerID int64) (domain.Order, error) {
	return s.repo.FindByIDAndBuyerID(ctx, id, buyerID)
}

func (s *service) ListOrders(ctx context.Context, offset int, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrders(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListBuyerOrders(ctx context.Context, offset int, limit int, buyerID int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrdersByBuyerID(ctx, offset, limit, buyerID)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrdersByBuyerID(ctx, buyerID)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) UpdateStatus(ctx context.Context, id int64, paymentStatus domain.PaymentStatus, orderStatus domain.OrderStatus) error {
	if paymentStatus == "" && orderStatus == "" {
		return ErrNothingToUpdate
	}
	if paymentStatus != "" && !paymentStatus.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, paymentStatus)
	}
	if orderStatus != "" && !orderStatus.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, orderStatus)
	}
	return s.repo.UpdateStatus(ctx, id, paymentStatus, orderStatus)
}

func (s *service) DeleteOrder(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) FindTimeoutOrders(ctx context.Context, offset int, limit int, ctime int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListTimeoutOrders(ctx, offset, limit, ctime)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalTimeoutOrders(ctx, ctime)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) CancelTimeoutOrders(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.repo.CancelTimeoutOrders(ctx, ids)
}
