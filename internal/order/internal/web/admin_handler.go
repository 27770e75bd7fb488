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

	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// AdminHandler 挂在 admin server 上，权限中间件已经拦过非管理员
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/orders")
	g.PUT("/:id", ginx.B[UpdateOrderReq](h.UpdateOrder))
	g.DELETE("/:id", ginx.W(h.DeleteOrder))
}

func (h *AdminHandler) UpdateOrder(ctx *ginx.Context, req UpdateOrderReq) (ginx.Result, error) {
	id, err := ctx.Param("id").AsInt64()
	if err != nil {
		return orderNotFoundResult, fmt.Errorf("非法订单ID: %w", err)
	}
	err = h.svc.UpdateStatus(ctx.Request.Context(), id,
		domain.PaymentStatus(req.PaymentStatus),
		domain.OrderStatus(req.OrderStatus))
	switch {
	case errors.Is(err, service.ErrNothingToUpdate):
		return nothingToUpdateResult, fmt.Errorf("更新订单失败: %w", err)
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStatusResult, fmt.Errorf("更新订单失败: %w", err)
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, fmt.Errorf("更新订单失败: %w", err)
	case err != nil:
		return systemErrorResult, err
	}
	order, err := h.svc.FindOrder(ctx.Request.Context(), id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}

func (h *AdminHandler) DeleteOrder(ctx *ginx.Context) (ginx.Result, error) {
	id, err := ctx.Param("id").AsInt64()
	if err != nil {
		return orderNotFoundResult, fmt.Errorf("非法订单ID: %w", err)
	}
	err = h.svc.DeleteOrder(ctx.Request.Context(), id)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, fmt.Errorf("删除订单失败: %w", err)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
