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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/errs"
	"github.com/ecodeclub/eshop/internal/cart/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	// 购物车预览对未登录用户也开放，商品列表由客户端自己记着
	g.GET("", ginx.W(h.Preview))
	g.GET("/payment-methods", ginx.W(h.PaymentMethods))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// Preview 宽松解析：目录里已经没有的商品不报错，直接不显示
func (h *Handler) Preview(ctx *ginx.Context) (ginx.Result, error) {
	cart, err := h.svc.ResolveLenient(ctx.Request.Context(), ctx.Query("productIdentifiers").StringOrDefault(""))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toCartVO(cart)}, nil
}

func (h *Handler) PaymentMethods(_ *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: slice.Map(h.svc.PaymentMethods(), func(idx int, src domain.PaymentMethod) PaymentMethod {
			return PaymentMethod{Code: src.Code, Label: src.Label}
		}),
	}, nil
}

func toCartVO(cart domain.Cart) Cart {
	return Cart{
		Items: slice.Map(cart.Items, func(idx int, src domain.Item) CartItem {
			return CartItem{
				ProductID:   src.ProductID,
				ProductName: src.ProductName,
				Quantity:    src.Quantity,
				UnitPrice:   src.UnitPrice,
				Total:       src.Total,
			}
		}),
		SubTotal:    cart.SubTotal,
		ShippingFee: cart.ShippingFee,
		Total:       cart.Total,
	}
}
