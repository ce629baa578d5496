package main

import (
	"flag"
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/services/persistence/internal/config"
	"github.com/arenaforge/duel-server/services/persistence/internal/handler"
	"github.com/arenaforge/duel-server/services/persistence/internal/svc"
)

var configFile = flag.String("f", "etc/persistence.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	apierr.Register()

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting persistence service at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
