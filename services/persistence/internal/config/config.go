package config

import (
	"github.com/zeromicro/go-zero/rest"

	"github.com/arenaforge/duel-server/internal/svcconf"
)

type Config struct {
	rest.RestConf
	svcconf.Stores
	ServiceAuth svcconf.ServiceAuthConfig
	History     svcconf.HistoryConfig
}
