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
	"sort"
	"strconv"
	"strings"

	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/product"
)

// ErrProductNotAvailable 严格解析时商品在目录里不存在
var ErrProductNotAvailable = errors.New("商品不可用")

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go Service
type Service interface {
	// ParseIdentifiers 解析客户端传来的逗号分隔商品ID列表
	// 重复的ID累加数量，解析不出来的片段直接丢弃，永远不会失败
	ParseIdentifiers(raw string) map[int64]int64
	// ResolveLenient 展示用，目录里没有的商品静默跳过
	ResolveLenient(ctx context.Context, raw string) (domain.Cart, error)
	// ResolveStrict 下单用，任何一个商品解析失败整体失败
	ResolveStrict(ctx context.Context, raw string) (domain.Cart, error)
	PaymentMethods() []domain.PaymentMethod
	IsValidPaymentMethod(code string) bool
	ShippingFee() int64
}

// RefData 进程级只读参考数据，启动时加载一次
type RefData struct {
	ShippingFee    int64
	PaymentMethods []domain.PaymentMethod
}

func NewService(productSvc product.Service, ref RefData) Service {
	return &service{productSvc: productSvc, ref: ref}
}

type service struct {
	productSvc product.Service
	ref        RefData
}

func (s *service) ParseIdentifiers(raw string) map[int64]int64 {
	res := make(map[int64]int64)
	if raw == "" {
		return res
	}
	for _, token := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
		if err != nil {
			// 刻意的宽松策略，脏数据直接丢掉
			continue
		}
		res[id]++
	}
	return res
}

func (s *service) ResolveLenient(ctx context.Context, raw string) (domain.Cart, error) {
	return s.resolve(ctx, s.ParseIdentifiers(raw), false)
}

func (s *service) ResolveStrict(ctx context.Context, raw string) (domain.Cart, error) {
	return s.resolve(ctx, s.ParseIdentifiers(raw), true)
}

func (s *service) resolve(ctx context.Context, quantities map[int64]int64, strict bool) (domain.Cart, error) {
	cart := domain.Cart{
		Items:       make([]domain.Item, 0, len(quantities)),
		ShippingFee: s.ref.ShippingFee,
		Total:       s.ref.ShippingFee,
	}
	// map 的遍历顺序是随机的，按商品ID升序保证响应稳定
	ids := make([]int64, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		p, err := s.productSvc.FindByID(ctx, id)
		if errors.Is(err, product.ErrProductNotFound) {
			if strict {
				return domain.Cart{}, fmt.Errorf("%w: id=%d", ErrProductNotAvailable, id)
			}
			continue
		}
		if err != nil {
			return domain.Cart{}, fmt.Errorf("查找商品失败: id=%d: %w", id, err)
		}
		quantity := quantities[id]
		item := domain.Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    quantity,
			UnitPrice:   p.Price,
			Total:       p.Price * quantity,
		}
		cart.Items = append(cart.Items, item)
		cart.SubTotal += item.Total
		cart.Total = cart.SubTotal + cart.ShippingFee
	}
	return cart, nil
}

func (s *service) PaymentMethods() []domain.PaymentMethod {
	return s.ref.PaymentMethods
}

func (s *service) IsValidPaymentMethod(code string) bool {
	for _, m := range s.ref.PaymentMethods {
		if m.Code == code {
			return true
		}
	}
	return false
}

func (s *service) ShippingFee() int64 {
	return s.ref.ShippingFee
}
