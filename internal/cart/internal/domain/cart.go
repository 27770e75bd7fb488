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

// Cart 只在单次请求里存在，不落库
// 金额单位为分, 999 表示 9.99 元
type Cart struct {
	Items       []Item
	SubTotal    int64
	ShippingFee int64
	Total       int64
}

// Item 购物车里的一行，单价取的是解析时刻的目录价
type Item struct {
	ProductID   int64
	ProductName string
	Quantity    int64
	UnitPrice   int64
	Total       int64
}

// PaymentMethod 支付方式参考数据，Code 用于校验，Label 用于展示
type PaymentMethod struct {
	Code  string
	Label string
}
