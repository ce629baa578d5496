package config

import (
	"github.com/zeromicro/go-zero/rest"

	"github.com/arenaforge/duel-server/internal/svcconf"
)

// Config is the Audit Log service's process config. Like the Game
// Coordinator, it keeps no storage of its own — every entry lives in the
// Persistence Adapter's append-only table, so the only peer it needs is
// Persistence.
type Config struct {
	rest.RestConf
	ServiceAuth svcconf.ServiceAuthConfig
	Persistence svcconf.PeerConfig
}
