package config

import (
	"github.com/zeromicro/go-zero/rest"

	"github.com/arenaforge/duel-server/internal/svcconf"
)

// Config is the Game Coordinator's own process config. It holds no
// storage fragment of its own — every durable read/write is delegated to
// the Persistence Adapter (C1), and deck-selection compositions are
// materialized by calling the Card Catalogue (C3) — so the two peers it
// needs are configured explicitly rather than via svcconf.Stores.
type Config struct {
	rest.RestConf
	ServiceAuth svcconf.ServiceAuthConfig
	Persistence svcconf.PeerConfig
	Cards       svcconf.PeerConfig
}
