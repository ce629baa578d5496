package svc

import (
	"time"

	"github.com/arenaforge/duel-server/internal/persistenceapi"
	"github.com/arenaforge/duel-server/internal/tokens"
	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/identity/internal/config"
	"github.com/arenaforge/duel-server/third_party/cache"
)

type ServiceContext struct {
	Config      config.Config
	Persistence *persistenceapi.Client
	Tokens      *tokens.Engine
	ServiceKeys trustplane.KeySet
}

func NewServiceContext(c config.Config) *ServiceContext {
	rds, err := cache.NewRedisConnection(c.Redis)
	if err != nil {
		panic(err)
	}

	engine, err := tokens.NewEngine(
		[]byte(c.Auth.AccessSecret),
		c.Auth.Issuer,
		time.Duration(c.Auth.AccessExpire)*time.Second,
		tokens.NewRedisRevocationStore(rds),
	)
	if err != nil {
		panic(err)
	}

	return &ServiceContext{
		Config:      c,
		Persistence: persistenceapi.NewClient(c.Persistence.Client(c.ServiceAuth.SelfName)),
		Tokens:      engine,
		ServiceKeys: c.ServiceAuth.Keys(),
	}
}
