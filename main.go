package main

import (
	"context"

	"github.com/ecodeclub/eshop/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/server/egovernor"
)

// export EGO_DEBUG=true
// go run main.go --config=config/config.yaml
func main() {
	egoApp := ego.New()

	tp := ioc.InitZipkinTracer()
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			elog.Error("关闭tracer失败", elog.FieldErr(err))
		}
	}()

	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	for _, c := range app.Consumers {
		c.Start(context.Background())
	}

	err = egoApp.Serve(
		egovernor.Load("server.governor").Build(),
		app.Web,
		(*egin.Component)(app.Admin),
	).Cron(app.Crons...).Run()
	if err != nil {
		elog.DefaultLogger.Error("应用退出", elog.FieldErr(err))
	}
}
