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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/order/internal/errs"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/ecodeclub/eshop/internal/order/internal/web"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/test"
	testioc "github.com/ecodeclub/eshop/internal/test/ioc"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testBuyerID  = int64(2000)
	otherBuyerID = int64(2001)
	adminUID     = int64(9000)

	testAddress = "No.1 Zhangjiang Road, Pudong New District, Shanghai"
)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderModuleTestSuite))
}

type OrderModuleTestSuite struct {
	suite.Suite
	server      *egin.Component
	adminServer *egin.Component
	db          *egorm.Component
	svc         order.Service
	productSvc  product.Service

	keyboardID int64
	mouseID    int64
}

func (s *OrderModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()

	productModule, err := product.InitModule(s.db)
	require.NoError(s.T(), err)
	cartModule, err := cart.InitModule(productModule)
	require.NoError(s.T(), err)
	orderModule, err := order.InitModule(s.db, testioc.InitMQ(), cartModule)
	require.NoError(s.T(), err)
	require.NoError(s.T(), dao.InitTables(s.db))
	s.svc = orderModule.Svc
	s.productSvc = productModule.Svc

	ctx := context.Background()
	s.keyboardID, err = productModule.Svc.Save(ctx, product.Product{
		Name:  "机械键盘",
		Price: 1000,
	})
	require.NoError(s.T(), err)
	s.mouseID, err = productModule.Svc.Save(ctx, product.Product{
		Name:  "无线鼠标",
		Price: 750,
	})
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  testBuyerID,
			Data: map[string]string{"role": "client"},
		}))
	})
	orderModule.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	adminServer := egin.Load("server").Build()
	adminServer.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  adminUID,
			Data: map[string]string{"role": "admin"},
		}))
	})
	orderModule.Hdl.PrivateRoutes(adminServer.Engine)
	orderModule.AdminHdl.PrivateRoutes(adminServer.Engine)
	s.adminServer = adminServer
}

func (s *OrderModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("TRUNCATE TABLE `orders`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `order_items`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `products`").Error
	require.NoError(s.T(), err)
}

func (s *OrderModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `orders`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `order_items`").Error
	require.NoError(s.T(), err)
}

// createOrder 绕过 web 层直接下单，给查询类用例造数据
func (s *OrderModuleTestSuite) createOrder(buyerID int64) order.Order {
	o, err := s.svc.CreateOrder(context.Background(), service.CreateOrderReq{
		BuyerID:            buyerID,
		ProductIdentifiers: fmt.Sprintf("%d", s.keyboardID),
		PaymentMethod:      "Cash",
		DeliveryAddress:    testAddress,
	})
	require.NoError(s.T(), err)
	return o
}

func (s *OrderModuleTestSuite) TestCreateOrder() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/orders", iox.NewJSONReader(web.CreateOrderReq{
		ProductIdentifiers: fmt.Sprintf("%d,%d,%d", s.keyboardID, s.keyboardID, s.mouseID),
		PaymentMethod:      "Cash",
		DeliveryAddress:    testAddress,
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Order]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	got := recorder.MustScan().Data
	assert.NotZero(t, got.ID)
	assert.Len(t, got.SN, 32)
	assert.Equal(t, testBuyerID, got.BuyerID)
	assert.Equal(t, testAddress, got.DeliveryAddress)
	assert.Equal(t, "Cash", got.PaymentMethod)
	assert.Equal(t, "Pending", got.PaymentStatus)
	assert.Equal(t, "Created", got.OrderStatus)
	assert.Equal(t, int64(2750), got.SubTotal)
	assert.Equal(t, int64(500), got.ShippingFee)
	assert.Equal(t, int64(3250), got.Total)
	assert.Equal(t, []web.OrderItem{
		{ProductID: s.keyboardID, ProductName: "机械键盘", Quantity: 2, UnitPrice: 1000, Total: 2000},
		{ProductID: s.mouseID, ProductName: "无线鼠标", Quantity: 1, UnitPrice: 750, Total: 750},
	}, got.Items)
	assert.NotZero(t, got.Ctime)
	assert.NotZero(t, got.Utime)
}

func (s *OrderModuleTestSuite) TestCreateOrderFailed() {
	testCases := []struct {
		name     string
		req      web.CreateOrderReq
		wantResp test.Result[any]
	}{
		{
			name: "非法支付方式",
			req: web.CreateOrderReq{
				ProductIdentifiers: fmt.Sprintf("%d", s.keyboardID),
				PaymentMethod:      "Bitcoin",
				DeliveryAddress:    testAddress,
			},
			wantResp: test.Result[any]{Code: errs.InvalidPaymentMethod.Code, Msg: errs.InvalidPaymentMethod.Msg},
		},
		{
			name: "收货地址太短",
			req: web.CreateOrderReq{
				ProductIdentifiers: fmt.Sprintf("%d", s.keyboardID),
				PaymentMethod:      "Cash",
				DeliveryAddress:    "too short",
			},
			wantResp: test.Result[any]{Code: errs.InvalidDeliveryAddress.Code, Msg: errs.InvalidDeliveryAddress.Msg},
		},
		{
			name: "商品不在目录里",
			req: web.CreateOrderReq{
				ProductIdentifiers: fmt.Sprintf("%d,999999", s.keyboardID),
				PaymentMethod:      "Cash",
				DeliveryAddress:    testAddress,
			},
			wantResp: test.Result[any]{Code: errs.ProductNotAvailable.Code, Msg: errs.ProductNotAvailable.Msg},
		},
		{
			name: "空订单",
			req: web.CreateOrderReq{
				ProductIdentifiers: "",
				PaymentMethod:      "Cash",
				DeliveryAddress:    testAddress,
			},
			wantResp: test.Result[any]{Code: errs.EmptyOrder.Code, Msg: errs.EmptyOrder.Msg},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/orders", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 500, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}

	// 下单失败不落库，订单表里不能有半截数据
	var count int64
	err := s.db.Model(&dao.Order{}).Count(&count).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), count)
}

// TestOrderFreezesUnitPrice 下单之后改价，已有订单里的单价快照不动
func (s *OrderModuleTestSuite) TestOrderFreezesUnitPrice() {
	t := s.T()
	ctx := context.Background()
	o := s.createOrder(testBuyerID)

	_, err := s.productSvc.Save(ctx, product.Product{
		ID:    s.keyboardID,
		Name:  "机械键盘",
		Price: 9999,
	})
	require.NoError(t, err)
	defer func() {
		_, err := s.productSvc.Save(ctx, product.Product{
			ID:    s.keyboardID,
			Name:  "机械键盘",
			Price: 1000,
		})
		require.NoError(t, err)
	}()

	got, err := s.svc.FindOrder(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(1000), got.Items[0].UnitPrice)
	assert.Equal(t, int64(1000), got.Items[0].Total)
	assert.Equal(t, int64(1000), got.SubTotal)
	assert.Equal(t, int64(1500), got.Total)
}

func (s *OrderModuleTestSuite) TestRetrieveOrderDetail() {
	t := s.T()
	mine := s.createOrder(testBuyerID)
	others := s.createOrder(otherBuyerID)

	// 自己的订单
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/orders/%d", mine.ID), nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Order]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	got := recorder.MustScan().Data
	assert.Equal(t, mine.SN, got.SN)
	assert.Equal(t, testBuyerID, got.BuyerID)
	assert.Len(t, got.Items, 1)

	// 别人的订单对客户来说就是不存在
	req, err = http.NewRequest(http.MethodGet, fmt.Sprintf("/orders/%d", others.ID), nil)
	require.NoError(t, err)
	notFound := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(notFound, req)
	require.Equal(t, 500, notFound.Code)
	assert.Equal(t, test.Result[any]{Code: errs.OrderNotFound.Code, Msg: errs.OrderNotFound.Msg}, notFound.MustScan())

	// 管理员能看到任何人的订单
	req, err = http.NewRequest(http.MethodGet, fmt.Sprintf("/orders/%d", others.ID), nil)
	require.NoError(t, err)
	adminRecorder := test.NewJSONResponseRecorder[web.Order]()
	s.adminServer.ServeHTTP(adminRecorder, req)
	require.Equal(t, 200, adminRecorder.Code)
	assert.Equal(t, otherBuyerID, adminRecorder.MustScan().Data.BuyerID)
}

func (s *OrderModuleTestSuite) TestListOrders() {
	t := s.T()
	first := s.createOrder(testBuyerID)
	second := s.createOrder(otherBuyerID)
	third := s.createOrder(testBuyerID)

	// 客户只看到自己的，按ID倒序
	req, err := http.NewRequest(http.MethodGet, "/orders", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Equal(t, int64(2), resp.Total)
	require.Len(t, resp.Orders, 2)
	assert.Equal(t, third.ID, resp.Orders[0].ID)
	assert.Equal(t, first.ID, resp.Orders[1].ID)

	// 分页只影响本页条数，不影响总数
	req, err = http.NewRequest(http.MethodGet, "/orders?offset=0&limit=1", nil)
	require.NoError(t, err)
	paged := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(paged, req)
	require.Equal(t, 200, paged.Code)
	pagedResp := paged.MustScan().Data
	assert.Equal(t, int64(2), pagedResp.Total)
	require.Len(t, pagedResp.Orders, 1)
	assert.Equal(t, third.ID, pagedResp.Orders[0].ID)

	// 管理员看到全部
	req, err = http.NewRequest(http.MethodGet, "/orders", nil)
	require.NoError(t, err)
	adminRecorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.adminServer.ServeHTTP(adminRecorder, req)
	require.Equal(t, 200, adminRecorder.Code)
	adminResp := adminRecorder.MustScan().Data
	assert.Equal(t, int64(3), adminResp.Total)
	require.Len(t, adminResp.Orders, 3)
	assert.Equal(t, third.ID, adminResp.Orders[0].ID)
	assert.Equal(t, second.ID, adminResp.Orders[1].ID)
	assert.Equal(t, first.ID, adminResp.Orders[2].ID)
}

func (s *OrderModuleTestSuite) TestAdminUpdateOrder() {
	t := s.T()
	o := s.createOrder(testBuyerID)

	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("/orders/%d", o.ID),
		iox.NewJSONReader(web.UpdateOrderReq{OrderStatus: "Shipped"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Order]()
	s.adminServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	// 响应体里是更新后的订单
	got := recorder.MustScan().Data
	assert.Equal(t, o.SN, got.SN)
	assert.Equal(t, "Shipped", got.OrderStatus)
	assert.Equal(t, "Pending", got.PaymentStatus)

	// 只更新传了的字段
	updated, err := s.svc.FindOrder(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderStatus("Shipped"), updated.OrderStatus)
	assert.Equal(t, order.PaymentStatus("Pending"), updated.PaymentStatus)

	testCases := []struct {
		name     string
		id       int64
		req      web.UpdateOrderReq
		wantResp test.Result[any]
	}{
		{
			name:     "两个状态都没传",
			id:       o.ID,
			req:      web.UpdateOrderReq{},
			wantResp: test.Result[any]{Code: errs.NothingToUpdate.Code, Msg: errs.NothingToUpdate.Msg},
		},
		{
			name:     "非法状态值",
			id:       o.ID,
			req:      web.UpdateOrderReq{OrderStatus: "Closed"},
			wantResp: test.Result[any]{Code: errs.InvalidStatus.Code, Msg: errs.InvalidStatus.Msg},
		},
		{
			name:     "订单不存在",
			id:       o.ID + 10000,
			req:      web.UpdateOrderReq{PaymentStatus: "Accepted"},
			wantResp: test.Result[any]{Code: errs.OrderNotFound.Code, Msg: errs.OrderNotFound.Msg},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("/orders/%d", tc.id), iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			s.adminServer.ServeHTTP(recorder, req)
			require.Equal(t, 500, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *OrderModuleTestSuite) TestAdminDeleteOrder() {
	t := s.T()
	o := s.createOrder(testBuyerID)

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("/orders/%d", o.ID), nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.adminServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	_, err = s.svc.FindOrder(context.Background(), o.ID)
	assert.ErrorIs(t, err, service.ErrOrderNotFound)

	// 重复删除报不存在
	req, err = http.NewRequest(http.MethodDelete, fmt.Sprintf("/orders/%d", o.ID), nil)
	require.NoError(t, err)
	again := test.NewJSONResponseRecorder[any]()
	s.adminServer.ServeHTTP(again, req)
	require.Equal(t, 500, again.Code)
	assert.Equal(t, test.Result[any]{Code: errs.OrderNotFound.Code, Msg: errs.OrderNotFound.Msg}, again.MustScan())
}

func (s *OrderModuleTestSuite) TestCancelTimeoutOrders() {
	t := s.T()
	ctx := context.Background()
	timeout := s.createOrder(testBuyerID)
	fresh := s.createOrder(testBuyerID)

	// 把第一单的创建时间拨回一小时前
	staleCtime := time.Now().Add(-time.Hour).UnixMilli()
	err := s.db.WithContext(ctx).Model(&dao.Order{}).
		Where("id = ?", timeout.ID).
		Update("ctime", staleCtime).Error
	require.NoError(t, err)

	cutoff := time.Now().Add(-30 * time.Minute).UnixMilli()
	orders, total, err := s.svc.FindTimeoutOrders(ctx, 0, 10, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, timeout.ID, orders[0].ID)

	err = s.svc.CancelTimeoutOrders(ctx, []int64{orders[0].ID})
	require.NoError(t, err)

	canceled, err := s.svc.FindOrder(ctx, timeout.ID)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentStatus("Canceled"), canceled.PaymentStatus)
	assert.Equal(t, order.OrderStatus("Canceled"), canceled.OrderStatus)

	untouched, err := s.svc.FindOrder(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderStatus("Created"), untouched.OrderStatus)
}
