package config

import (
	"github.com/zeromicro/go-zero/rest"

	"github.com/arenaforge/duel-server/internal/svcconf"
)

// Config is the Ingress Gateway's process config (§4.7). It terminates
// client TLS and holds no storage of its own — every route is a thin
// translation into exactly one backend's internal RPC surface, so its
// peers are named explicitly rather than via svcconf.Stores.
type Config struct {
	rest.RestConf
	ServiceAuth svcconf.ServiceAuthConfig
	Identity    svcconf.PeerConfig
	Cards       svcconf.PeerConfig
	Game        svcconf.PeerConfig
	Leaderboard svcconf.PeerConfig
	Audit       svcconf.PeerConfig
}
