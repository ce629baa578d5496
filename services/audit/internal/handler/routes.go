package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/audit/internal/svc"
)

func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	guard := trustplane.RequireService(svcCtx.ServiceKeys)

	routes := []rest.Route{
		{Method: http.MethodPost, Path: "/append", Handler: guard(AppendHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/list", Handler: guard(ListHandler(svcCtx))},
	}

	server.AddRoutes(routes, rest.WithPrefix("/internal/audit"))
}
