package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/cards/internal/svc"
)

// RegisterHandlers wires the card catalogue's read-only internal routes
// under /internal/cards, each gated by RequireService (§4.2).
func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	guard := trustplane.RequireService(svcCtx.ServiceKeys)

	routes := []rest.Route{
		{Method: http.MethodPost, Path: "/list", Handler: guard(ListAllHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/list-by-suit", Handler: guard(ListBySuitHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/get", Handler: guard(GetByIDHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/random-deck", Handler: guard(RandomDeckHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/random-card", Handler: guard(RandomCardHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/stats", Handler: guard(StatsHandler(svcCtx))},
	}

	server.AddRoutes(routes, rest.WithPrefix("/internal/cards"))
}
