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
	"strings"
	"testing"

	"github.com/ecodeclub/eshop/internal/cart"
	cartmocks "github.com/ecodeclub/eshop/internal/cart/mocks"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validAddress() string {
	return strings.Repeat("测试地址", 10)
}

func TestService_CreateOrder_Validation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		req     CreateOrderReq
		mock    func(ctrl *gomock.Controller) cart.Service
		wantErr error
	}{
		{
			name: "非法支付方式",
			req: CreateOrderReq{
				BuyerID:            1,
				ProductIdentifiers: "1",
				PaymentMethod:      "Bitcoin",
				DeliveryAddress:    validAddress(),
			},
			mock: func(ctrl *gomock.Controller) cart.Service {
				m := cartmocks.NewMockService(ctrl)
				m.EXPECT().IsValidPaymentMethod("Bitcoin").Return(false)
				return m
			},
			wantErr: ErrInvalidPaymentMethod,
		},
		{
			name: "收货地址太短",
			req: CreateOrderReq{
				BuyerID:            1,
				ProductIdentifiers: "1",
				PaymentMethod:      "Cash",
				DeliveryAddress:    "太短了",
			},
			mock: func(ctrl *gomock.Controller) cart.Service {
				m := cartmocks.NewMockService(ctrl)
				m.EXPECT().IsValidPaymentMethod("Cash").Return(true)
				return m
			},
			wantErr: ErrInvalidDeliveryAddress,
		},
		{
			name: "收货地址太长",
			req: CreateOrderReq{
				BuyerID:            1,
				ProductIdentifiers: "1",
				PaymentMethod:      "Cash",
				DeliveryAddress:    strings.Repeat("a", 101),
			},
			mock: func(ctrl *gomock.Controller) cart.Service {
				m := cartmocks.NewMockService(ctrl)
				m.EXPECT().IsValidPaymentMethod("Cash").Return(true)
				return m
			},
			wantErr: ErrInvalidDeliveryAddress,
		},
		{
			// 30 个汉字是 90 个字节，地址校验得按字符数放行
			name: "中文地址按字符数算",
			req: CreateOrderReq{
				BuyerID:            1,
				ProductIdentifiers: "",
				PaymentMethod:      "Cash",
				DeliveryAddress:    strings.Repeat("京", 30),
			},
			mock: func(ctrl *gomock.Controller) cart.Service {
				m := cartmocks.NewMockService(ctrl)
				m.EXPECT().IsValidPaymentMethod("Cash").Return(true)
				m.EXPECT().ResolveStrict(gomock.Any(), "").
					Return(cart.Cart{ShippingFee: 500, Total: 500}, nil)
				return m
			},
			wantErr: ErrEmptyOrder,
		},
		{
			name: "商品不可用",
			req: CreateOrderReq{
				BuyerID:            1,
				ProductIdentifiers: "1,99",
				PaymentMethod:      "Cash",
				DeliveryAddress:    validAddress(),
			},
			mock: func(ctrl *gomock.Controller) cart.Service {
				m := cartmocks.NewMockService(ctrl)
				m.EXPECT().IsValidPaymentMethod("Cash").Return(true)
				m.EXPECT().ResolveStrict(gomock.Any(), "1,99").
					Return(cart.Cart{}, cart.ErrProductNotAvailable)
				return m
			},
			wantErr: ErrProductNotAvailable,
		},
		{
			name: "空订单",
			req: CreateOrderReq{
				BuyerID:            1,
				ProductIdentifiers: "",
				PaymentMethod:      "Cash",
				DeliveryAddress:    validAddress(),
			},
			mock: func(ctrl *gomock.Controller) cart.Service {
				m := cartmocks.NewMockService(ctrl)
				m.EXPECT().IsValidPaymentMethod("Cash").Return(true)
				m.EXPECT().ResolveStrict(gomock.Any(), "").
					Return(cart.Cart{ShippingFee: 500, Total: 500}, nil)
				return m
			},
			wantErr: ErrEmptyOrder,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := NewService(nil, tc.mock(ctrl), sequencenumber.NewGenerator(), nil)
			_, err := svc.CreateOrder(context.Background(), tc.req)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_UpdateStatus_Validation(t *testing.T) {
	t.Parallel()
	svc := NewService(nil, nil, nil, nil)

	err := svc.UpdateStatus(context.Background(), 1, "", "")
	require.ErrorIs(t, err, ErrNothingToUpdate)

	err = svc.UpdateStatus(context.Background(), 1, "Paid", "")
	require.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(context.Background(), 1, "", "Closed")
	require.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(context.Background(), 1, domain.PaymentStatusAccepted, "Done")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_CancelTimeoutOrders_Empty(t *testing.T) {
	t.Parallel()
	svc := NewService(nil, nil, nil, nil)
	require.NoError(t, svc.CancelTimeoutOrders(context.Background(), nil))
}
