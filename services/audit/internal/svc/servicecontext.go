package svc

import (
	"github.com/arenaforge/duel-server/internal/persistenceapi"
	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/audit/internal/config"
)

type ServiceContext struct {
	Config      config.Config
	ServiceKeys trustplane.KeySet
	Persistence *persistenceapi.Client
}

func NewServiceContext(c config.Config) *ServiceContext {
	return &ServiceContext{
		Config:      c,
		ServiceKeys: c.ServiceAuth.Keys(),
		Persistence: persistenceapi.NewClient(c.Persistence.Client(c.ServiceAuth.SelfName)),
	}
}
