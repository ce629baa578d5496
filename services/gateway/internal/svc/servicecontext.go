package svc

import (
	"github.com/arenaforge/duel-server/internal/auditapi"
	"github.com/arenaforge/duel-server/internal/cardsapi"
	"github.com/arenaforge/duel-server/internal/gameapi"
	"github.com/arenaforge/duel-server/internal/identityapi"
	"github.com/arenaforge/duel-server/internal/leaderboardapi"
	"github.com/arenaforge/duel-server/services/gateway/internal/config"
)

// ServiceContext holds one typed client per backend this gateway fronts.
// Unlike every other service in the mesh it never receives internal
// calls — nothing calls the gateway but the public internet — so it has no
// trustplane.KeySet of its own, only the credentials it presents outbound.
type ServiceContext struct {
	Config      config.Config
	Identity    *identityapi.Client
	Cards       *cardsapi.Client
	Game        *gameapi.Client
	Leaderboard *leaderboardapi.Client
	Audit       *auditapi.Client
}

func NewServiceContext(c config.Config) *ServiceContext {
	self := c.ServiceAuth.SelfName
	return &ServiceContext{
		Config:      c,
		Identity:    identityapi.NewClient(c.Identity.Client(self)),
		Cards:       cardsapi.NewClient(c.Cards.Client(self)),
		Game:        gameapi.NewClient(c.Game.Client(self)),
		Leaderboard: leaderboardapi.NewClient(c.Leaderboard.Client(self)),
		Audit:       auditapi.NewClient(c.Audit.Client(self)),
	}
}
