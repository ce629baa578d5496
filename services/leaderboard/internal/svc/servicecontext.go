package svc

import (
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/persistenceapi"
	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/leaderboard/internal/config"
	"github.com/arenaforge/duel-server/third_party/search"
)

type ServiceContext struct {
	Config      config.Config
	ServiceKeys trustplane.KeySet
	Persistence *persistenceapi.Client
	Search      *search.MeiliSearchClient // nil when Search.Host is unconfigured
}

func NewServiceContext(c config.Config) *ServiceContext {
	svcCtx := &ServiceContext{
		Config:      c,
		ServiceKeys: c.ServiceAuth.Keys(),
		Persistence: persistenceapi.NewClient(c.Persistence.Client(c.ServiceAuth.SelfName)),
	}

	if c.Search.Host != "" {
		client, err := search.NewMeiliSearchConnection(c.Search)
		if err != nil {
			logx.Errorf("leaderboard: meilisearch unavailable, search disabled: %v", err)
		} else {
			svcCtx.Search = client
			if err := client.CreateIndex(search.ArchivedGamesIndex, "game_id"); err != nil {
				logx.Errorf("leaderboard: create archived_games index: %v", err)
			}
		}
	}

	return svcCtx
}
