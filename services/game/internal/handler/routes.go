package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/game/internal/svc"
)

// RegisterHandlers wires every internal route this service exposes under
// /internal/game, each gated by RequireService so only recognized mesh
// callers (the gateway, chiefly) reach the handler.
func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	guard := trustplane.RequireService(svcCtx.ServiceKeys)

	routes := []rest.Route{
		{Method: http.MethodPost, Path: "/create", Handler: guard(CreateGameHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/get", Handler: guard(GetGameHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/list-for-player", Handler: guard(ListForPlayerHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/list-pending-invites", Handler: guard(ListPendingInvitesHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/invite-decision", Handler: guard(InviteDecisionHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/cancel-invite", Handler: guard(CancelInviteHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/select-deck", Handler: guard(SelectDeckHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/draw", Handler: guard(DrawHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/play", Handler: guard(PlayHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/tiebreaker-decision", Handler: guard(TiebreakerDecisionHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/play-tiebreaker", Handler: guard(PlayTiebreakerHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/history", Handler: guard(GetHistoryHandler(svcCtx))},
	}

	server.AddRoutes(routes, rest.WithPrefix("/internal/game"))
}
