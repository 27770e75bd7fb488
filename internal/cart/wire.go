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

//go:build wireinject

package cart

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/service"
	"github.com/ecodeclub/eshop/internal/cart/internal/web"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(productModule *product.Module) (*Module, error) {
	wire.Build(
		InitRefData,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*product.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

// InitRefData 支付方式和运费是进程级只读配置，启动时加载一次
// 没配的时候用和原始业务一致的默认值
func InitRefData() service.RefData {
	type paymentMethod struct {
		Code  string `yaml:"code"`
		Label string `yaml:"label"`
	}
	type Config struct {
		ShippingFee    int64           `yaml:"shippingFee"`
		PaymentMethods []paymentMethod `yaml:"paymentMethods"`
	}
	var cfg Config
	_ = econf.UnmarshalKey("cart", &cfg)
	if cfg.ShippingFee <= 0 {
		cfg.ShippingFee = 500
	}
	if len(cfg.PaymentMethods) == 0 {
		cfg.PaymentMethods = []paymentMethod{
			{Code: "Cash", Label: "Cash on delivery"},
			{Code: "Paypal", Label: "Paypal"},
			{Code: "Credit Card", Label: "Credit Card"},
		}
	}
	return service.RefData{
		ShippingFee: cfg.ShippingFee,
		PaymentMethods: slice.Map(cfg.PaymentMethods, func(idx int, src paymentMethod) domain.PaymentMethod {
			return domain.PaymentMethod{Code: src.Code, Label: src.Label}
		}),
	}
}
