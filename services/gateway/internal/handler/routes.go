package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/arenaforge/duel-server/services/gateway/internal/middleware"
	"github.com/arenaforge/duel-server/services/gateway/internal/svc"
)

// RegisterHandlers wires every client-facing route (§6.1) under /api, plus
// a public, unauthenticated health probe — the only two things this
// service exposes besides those single-backend routes (§4.7).
func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	auth := middleware.RequireAuth(svcCtx.Identity)
	admin := middleware.RequireAdmin()

	server.AddRoute(rest.Route{
		Method: http.MethodGet, Path: "/healthz",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			httpx.OkJsonCtx(r.Context(), w, map[string]string{"status": "ok"})
		},
	})

	server.AddRoutes([]rest.Route{
		{Method: http.MethodPost, Path: "/auth/register", Handler: RegisterHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/auth/login", Handler: LoginHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/auth/refresh", Handler: RefreshHandler(svcCtx)},
		{Method: http.MethodPost, Path: "/auth/logout", Handler: auth(LogoutHandler(svcCtx))},
		{Method: http.MethodGet, Path: "/auth/profile", Handler: auth(ProfileHandler(svcCtx))},
		{Method: http.MethodPut, Path: "/auth/profile", Handler: auth(UpdatePasswordHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/auth/validate", Handler: auth(ValidateHandler(svcCtx))},
		{Method: http.MethodGet, Path: "/accounts", Handler: auth(admin(ListAccountsHandler(svcCtx)))},

		{Method: http.MethodGet, Path: "/cards", Handler: auth(ListCardsHandler(svcCtx))},
		{Method: http.MethodGet, Path: "/cards/by-type/:suit", Handler: auth(CardsBySuitHandler(svcCtx))},
		{Method: http.MethodGet, Path: "/cards/:id", Handler: auth(CardByIDHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/cards/random-deck", Handler: auth(RandomDeckHandler(svcCtx))},

		{Method: http.MethodPost, Path: "/games", Handler: auth(CreateGameHandler(svcCtx))},
		{Method: http.MethodGet, Path: "/games", Handler: auth(ListMyGamesHandler(svcCtx))},
		{Method: http.MethodGet, Path: "/games/invites", Handler: auth(ListPendingInvitesHandler(svcCtx))},
		{Method: http.MethodGet, Path: "/games/:id", Handler: auth(GetGameHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/:id/accept", Handler: auth(AcceptGameHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/:id/ignore", Handler: auth(IgnoreGameHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/:id/cancel", Handler: auth(CancelGameHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/:id/select-deck", Handler: auth(SelectDeckHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/:id/draw-hand", Handler: auth(DrawHandHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/:id/play-card", Handler: auth(PlayCardHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/:id/resolve-round", Handler: auth(ResolveRoundHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/:id/tiebreaker-decision", Handler: auth(TiebreakerDecisionHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/:id/tiebreaker-play", Handler: auth(TiebreakerPlayHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/:id/end", Handler: auth(EndGameHandler(svcCtx))},
		{Method: http.MethodGet, Path: "/games/:id/history", Handler: auth(GameHistoryHandler(svcCtx))},

		{Method: http.MethodGet, Path: "/leaderboard", Handler: auth(GlobalLeaderboardHandler(svcCtx))},
		{Method: http.MethodGet, Path: "/leaderboard/player/:name", Handler: auth(PlayerStatsHandler(svcCtx))},

		{Method: http.MethodGet, Path: "/logs/list", Handler: auth(admin(ListLogsHandler(svcCtx)))},
	}, rest.WithPrefix("/api"))
}
