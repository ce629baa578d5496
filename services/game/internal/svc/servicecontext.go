package svc

import (
	"github.com/arenaforge/duel-server/internal/cardsapi"
	"github.com/arenaforge/duel-server/internal/persistenceapi"
	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/game/internal/config"
)

type ServiceContext struct {
	Config      config.Config
	ServiceKeys trustplane.KeySet
	Persistence *persistenceapi.Client
	Cards       *cardsapi.Client
}

func NewServiceContext(c config.Config) *ServiceContext {
	return &ServiceContext{
		Config:      c,
		ServiceKeys: c.ServiceAuth.Keys(),
		Persistence: persistenceapi.NewClient(c.Persistence.Client(c.ServiceAuth.SelfName)),
		Cards:       cardsapi.NewClient(c.Cards.Client(c.ServiceAuth.SelfName)),
	}
}
