//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/notification"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitEmailService)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		product.InitModule,
		cart.InitModule,
		user.InitModule,
		order.InitModule,
		notification.InitModule,
		initCancelTimeoutOrdersJob,
		initCronJobs,
		initMQConsumers,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
