package config

import (
	"github.com/zeromicro/go-zero/rest"

	"github.com/arenaforge/duel-server/internal/svcconf"
)

// Config is the Card Catalogue's (C3) process config. Unlike every other
// internal service it holds no Stores fragment: the 39-card catalogue is
// computed, not stored (§4.2), so this service never opens a database or
// Redis connection.
type Config struct {
	rest.RestConf
	ServiceAuth svcconf.ServiceAuthConfig
}
