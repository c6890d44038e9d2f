// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"flag"
	"fmt"

	"Storefront/app/api/order/internal/config"
	"Storefront/app/api/order/internal/handler"
	"Storefront/app/api/order/internal/svc"
	"Storefront/app/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/zero-contrib/zrpc/registry/consul"
)

var configFile = flag.String("f", "etc/order-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	// STRIPE_SECRET_KEY is expanded from the environment
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	if ctx.KafkaWriter != nil {
		defer ctx.KafkaWriter.Close()
	}
	handler.RegisterHandlers(server, ctx)
	httpx.SetErrorHandlerCtx(response.ErrorHandler)

	if _, err := registerConsul(c); err != nil {
		logx.Errorw("register service error", logx.Field("err", err))
		panic(err)
	}

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

func listenOn(c config.Config) string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// registerConsul is a no-op when no Consul host is configured.
func registerConsul(c config.Config) (bool, error) {
	if c.Consul.Host == "" {
		return false, nil
	}
	if err := consul.RegisterService(listenOn(c), c.Consul); err != nil {
		return false, err
	}
	return true, nil
}
