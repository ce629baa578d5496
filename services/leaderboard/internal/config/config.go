package config

import (
	"github.com/zeromicro/go-zero/rest"

	"github.com/arenaforge/duel-server/internal/svcconf"
	"github.com/arenaforge/duel-server/third_party/search"
)

// Config is the Leaderboard/Reporting service's own process config. It
// holds no database connection of its own — every aggregate figure comes
// from the Persistence Adapter's own SQL — plus an optional Meilisearch
// fragment for the archived-game search index described in §4.5's
// "recent games" extension. Search is optional: a service with no
// configured Host simply serves RecentGames/PlayerStats/Global without
// indexing, rather than failing to start.
type Config struct {
	rest.RestConf
	ServiceAuth svcconf.ServiceAuthConfig
	Persistence svcconf.PeerConfig
	Search      search.MeiliSearchConfig `json:",optional"`
}
