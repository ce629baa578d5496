package svc

import (
	"github.com/meilisearch/meilisearch-go"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/arenaforge/duel-server/internal/cryptoutil"
	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/persistence/internal/config"
	"github.com/arenaforge/duel-server/services/persistence/internal/store"
	"github.com/arenaforge/duel-server/third_party/cache"
	"github.com/arenaforge/duel-server/third_party/database"
	"github.com/arenaforge/duel-server/third_party/search"
)

type ServiceContext struct {
	Config        config.Config
	Store         *store.Store
	Redis         *redis.Redis
	HistoryCipher *cryptoutil.HistoryCipher
	Search        meilisearch.ServiceManager
	ServiceKeys   trustplane.KeySet
}

func NewServiceContext(c config.Config) *ServiceContext {
	db, err := database.NewPostgresConnection(c.Database)
	if err != nil {
		panic(err)
	}
	rds, err := cache.NewRedisConnection(c.Redis)
	if err != nil {
		panic(err)
	}

	key, err := cryptoutil.DecodeMasterKey(c.History.MasterKey)
	if err != nil {
		panic(err)
	}
	hc, err := cryptoutil.NewHistoryCipher(key)
	if err != nil {
		panic(err)
	}

	var searchClient meilisearch.ServiceManager
	if c.MeiliSearch.Host != "" {
		sc, err := search.NewMeiliSearchConnection(c.MeiliSearch)
		if err != nil {
			panic(err)
		}
		searchClient = sc.GetClient()
	}

	return &ServiceContext{
		Config:        c,
		Store:         store.New(db),
		Redis:         rds,
		HistoryCipher: hc,
		Search:        searchClient,
		ServiceKeys:   c.ServiceAuth.Keys(),
	}
}
