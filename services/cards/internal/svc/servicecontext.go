package svc

import (
	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/cards/internal/config"
)

type ServiceContext struct {
	Config      config.Config
	ServiceKeys trustplane.KeySet
}

func NewServiceContext(c config.Config) *ServiceContext {
	return &ServiceContext{
		Config:      c,
		ServiceKeys: c.ServiceAuth.Keys(),
	}
}
