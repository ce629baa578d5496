package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/leaderboard/internal/svc"
)

func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	guard := trustplane.RequireService(svcCtx.ServiceKeys)

	routes := []rest.Route{
		{Method: http.MethodPost, Path: "/global", Handler: guard(GlobalHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/player", Handler: guard(PlayerStatsHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/recent", Handler: guard(RecentGamesHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/search", Handler: guard(SearchHandler(svcCtx))},
	}

	server.AddRoutes(routes, rest.WithPrefix("/internal/leaderboard"))
}
