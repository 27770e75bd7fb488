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

package domain

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusAccepted PaymentStatus = "Accepted"
	PaymentStatusCanceled PaymentStatus = "Canceled"
)

// Valid 只做成员资格校验，状态之间不限制流转方向
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusAccepted, PaymentStatusCanceled:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) String() string {
	return string(s)
}

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "Created"
	OrderStatusAccepted  OrderStatus = "Accepted"
	OrderStatusCanceled  OrderStatus = "Canceled"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusReturned  OrderStatus = "Returned"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusAccepted, OrderStatusCanceled,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusReturned:
		return true
	default:
		return false
	}
}

func (s OrderStatus) String() string {
	return string(s)
}

type Order struct {
	ID              int64
	SN              string
	BuyerID         int64
	DeliveryAddress string
	PaymentMethod   string
	PaymentStatus   PaymentStatus
	OrderStatus     OrderStatus
	// 单位都是分
	SubTotal    int64
	ShippingFee int64
	Total       int64
	Items       []OrderItem
	Ctime       int64
	Utime       int64
}

// OrderItem 单价在下单时冻结，商品后续改价不影响已有订单
type OrderItem struct {
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int64
	UnitPrice   int64
	Total       int64
}
