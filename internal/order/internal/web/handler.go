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

package web

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/orders")
	g.POST("", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.GET("", ginx.S(h.ListOrders))
	g.GET("/:id", ginx.S(h.RetrieveOrderDetail))
}

func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.CreateOrder(ctx.Request.Context(), service.CreateOrderReq{
		BuyerID:            sess.Claims().Uid,
		ProductIdentifiers: req.ProductIdentifiers,
		PaymentMethod:      req.PaymentMethod,
		DeliveryAddress:    req.DeliveryAddress,
	})
	switch {
	case errors.Is(err, service.ErrInvalidPaymentMethod):
		return invalidPaymentMethodResult, fmt.Errorf("下单失败: %w", err)
	case errors.Is(err, service.ErrInvalidDeliveryAddress):
		return invalidDeliveryAddressResult, fmt.Errorf("下单失败: %w", err)
	case errors.Is(err, service.ErrProductNotAvailable):
		return productNotAvailableResult, fmt.Errorf("下单失败: %w", err)
	case errors.Is(err, service.ErrEmptyOrder):
		return emptyOrderResult, fmt.Errorf("下单失败: %w", err)
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}

// ListOrders 管理员看全部订单，普通客户只看自己的，都按ID倒序
func (h *Handler) ListOrders(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	offset, limit := listParams(ctx)
	var (
		orders []domain.Order
		total  int64
		err    error
	)
	if isAdmin(sess) {
		orders, total, err = h.svc.ListOrders(ctx.Request.Context(), offset, limit)
	} else {
		orders, total, err = h.svc.ListBuyerOrders(ctx.Request.Context(), offset, limit, sess.Claims().Uid)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := ctx.Param("id").AsInt64()
	if err != nil {
		return orderNotFoundResult, fmt.Errorf("非法订单ID: %w", err)
	}
	var order domain.Order
	if isAdmin(sess) {
		order, err = h.svc.FindOrder(ctx.Request.Context(), id)
	} else {
		order, err = h.svc.FindBuyerOrder(ctx.Request.Context(), id, sess.Claims().Uid)
	}
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, fmt.Errorf("订单未找到: %w", err)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}

func isAdmin(sess session.Session) bool {
	return sess.Claims().Get("role").StringOrDefault("") == "admin"
}

func listParams(ctx *ginx.Context) (offset int, limit int) {
	o, _ := ctx.Query("offset").AsInt64()
	l, _ := ctx.Query("limit").AsInt64()
	offset, limit = int(o), int(l)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return offset, limit
}

func toOrderVO(order domain.Order) Order {
	return Order{
		ID:              order.ID,
		SN:              order.SN,
		BuyerID:         order.BuyerID,
		DeliveryAddress: order.DeliveryAddress,
		PaymentMethod:   order.PaymentMethod,
		PaymentStatus:   order.PaymentStatus.String(),
		OrderStatus:     order.OrderStatus.String(),
		SubTotal:        order.SubTotal,
		ShippingFee:     order.ShippingFee,
		Total:           order.Total,
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID:   src.ProductID,
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
