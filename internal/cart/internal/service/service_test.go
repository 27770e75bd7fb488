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
	"testing"

	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/product"
	productmocks "github.com/ecodeclub/eshop/internal/product/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testRefData() RefData {
	return RefData{
		ShippingFee: 500,
		PaymentMethods: []domain.PaymentMethod{
			{Code: "Cash", Label: "Cash on delivery"},
			{Code: "Paypal", Label: "Paypal"},
			{Code: "Credit Card", Label: "Credit Card"},
		},
	}
}

func TestService_ParseIdentifiers(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		raw  string
		want map[int64]int64
	}{
		{
			name: "重复ID累加数量",
			raw:  "1,1,2",
			want: map[int64]int64{1: 2, 2: 1},
		},
		{
			name: "空串返回空map",
			raw:  "",
			want: map[int64]int64{},
		},
		{
			name: "空格会被修剪",
			raw:  " 3 , 4 ",
			want: map[int64]int64{3: 1, 4: 1},
		},
		{
			name: "解析不出来的片段直接丢弃",
			raw:  "a,1,b,1",
			want: map[int64]int64{1: 2},
		},
		{
			name: "全是脏数据也不报错",
			raw:  "x,y,z",
			want: map[int64]int64{},
		},
	}

	svc := NewService(nil, testRefData())
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, svc.ParseIdentifiers(tc.raw))
		})
	}
}

func TestService_ResolveLenient(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	productSvc := productmocks.NewMockService(ctrl)
	productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).
		Return(product.Product{ID: 1, Name: "商品1", Price: 1000}, nil).AnyTimes()
	productSvc.EXPECT().FindByID(gomock.Any(), int64(2)).
		Return(product.Product{ID: 2, Name: "商品2", Price: 750}, nil).AnyTimes()
	productSvc.EXPECT().FindByID(gomock.Any(), int64(99)).
		Return(product.Product{}, product.ErrProductNotFound).AnyTimes()

	svc := NewService(productSvc, testRefData())

	t.Run("正常结算", func(t *testing.T) {
		c, err := svc.ResolveLenient(context.Background(), "1,1,2")
		require.NoError(t, err)
		assert.Equal(t, domain.Cart{
			Items: []domain.Item{
				{ProductID: 1, ProductName: "商品1", Quantity: 2, UnitPrice: 1000, Total: 2000},
				{ProductID: 2, ProductName: "商品2", Quantity: 1, UnitPrice: 750, Total: 750},
			},
			SubTotal:    2750,
			ShippingFee: 500,
			Total:       3250,
		}, c)
	})

	t.Run("目录里没有的商品静默跳过", func(t *testing.T) {
		c, err := svc.ResolveLenient(context.Background(), "1,99")
		require.NoError(t, err)
		assert.Equal(t, []domain.Item{
			{ProductID: 1, ProductName: "商品1", Quantity: 1, UnitPrice: 1000, Total: 1000},
		}, c.Items)
		assert.Equal(t, int64(1500), c.Total)
	})

	t.Run("空购物车只剩运费", func(t *testing.T) {
		c, err := svc.ResolveLenient(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, c.Items)
		assert.Equal(t, int64(0), c.SubTotal)
		assert.Equal(t, int64(500), c.Total)
	})
}

func TestService_ResolveStrict(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	productSvc := productmocks.NewMockService(ctrl)
	productSvc.EXPECT().FindByID(gomock.Any(), int64(1)).
		Return(product.Product{ID: 1, Name: "商品1", Price: 1000}, nil).AnyTimes()
	productSvc.EXPECT().FindByID(gomock.Any(), int64(99)).
		Return(product.Product{}, product.ErrProductNotFound).AnyTimes()

	svc := NewService(productSvc, testRefData())

	t.Run("任何一个商品不可用整体失败", func(t *testing.T) {
		_, err := svc.ResolveStrict(context.Background(), "1,99")
		require.ErrorIs(t, err, ErrProductNotAvailable)
		assert.ErrorContains(t, err, "id=99")
	})

	t.Run("全部可用和宽松模式结果一致", func(t *testing.T) {
		strict, err := svc.ResolveStrict(context.Background(), "1,1")
		require.NoError(t, err)
		lenient, err := svc.ResolveLenient(context.Background(), "1,1")
		require.NoError(t, err)
		assert.Equal(t, lenient, strict)
	})
}

func TestService_PaymentMethods(t *testing.T) {
	t.Parallel()
	svc := NewService(nil, testRefData())
	assert.Len(t, svc.PaymentMethods(), 3)
	assert.True(t, svc.IsValidPaymentMethod("Cash"))
	assert.True(t, svc.IsValidPaymentMethod("Credit Card"))
	assert.False(t, svc.IsValidPaymentMethod("Bitcoin"))
	assert.False(t, svc.IsValidPaymentMethod(""))
	assert.Equal(t, int64(500), svc.ShippingFee())
}
