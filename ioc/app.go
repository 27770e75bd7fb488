package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

type App struct {
	Web       *egin.Component
	Admin     AdminServer
	Consumers []Consumer
	Crons     []ecron.Ecron
}

// Consumer 后台的 MQ 消费者，启动之后跑到进程退出
type Consumer interface {
	Start(ctx context.Context)
}
