package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/persistence/internal/svc"
)

// RegisterHandlers wires every internal route this service exposes under
// /internal/db, each gated by RequireService so only recognized mesh callers
// (identity, cards, game, leaderboard, audit) reach the handler.
func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	guard := trustplane.RequireService(svcCtx.ServiceKeys)

	routes := []rest.Route{
		{Method: http.MethodPost, Path: "/accounts", Handler: guard(CreateAccountHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/accounts/get", Handler: guard(GetAccountByUsernameHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/accounts/get-by-id", Handler: guard(GetAccountByIDHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/accounts/record-failed-login", Handler: guard(RecordFailedLoginHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/accounts/reset-failed-logins", Handler: guard(ResetFailedLoginsHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/accounts/profile", Handler: guard(UpdateProfileHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/accounts/password", Handler: guard(UpdatePasswordHashHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/accounts/enabled", Handler: guard(SetAccountEnabledHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/accounts/list", Handler: guard(ListAccountsHandler(svcCtx))},

		{Method: http.MethodPost, Path: "/refresh-credentials", Handler: guard(CreateRefreshCredentialHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/refresh-credentials/get-active", Handler: guard(GetActiveRefreshCredentialHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/refresh-credentials/get-active-for-account", Handler: guard(GetActiveRefreshCredentialForAccountHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/refresh-credentials/touch", Handler: guard(TouchRefreshCredentialHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/refresh-credentials/revoke", Handler: guard(RevokeRefreshCredentialHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/refresh-credentials/revoke-all", Handler: guard(RevokeAllRefreshCredentialsHandler(svcCtx))},

		{Method: http.MethodPost, Path: "/games", Handler: guard(CreateGameHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/get", Handler: guard(GetGameHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/list-for-player", Handler: guard(ListGamesForPlayerHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/list-pending-invites", Handler: guard(ListPendingInvitesHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/invite-decision", Handler: guard(InviteDecisionHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/cancel-invite", Handler: guard(CancelInviteHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/select-deck", Handler: guard(SelectDeckHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/draw", Handler: guard(DrawHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/play", Handler: guard(PlayHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/tiebreaker-decision", Handler: guard(TiebreakerDecisionHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/play-tiebreaker", Handler: guard(PlayTiebreakerHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/archive", Handler: guard(ArchiveGameHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/games/history", Handler: guard(GetHistoryHandler(svcCtx))},

		{Method: http.MethodPost, Path: "/leaderboard", Handler: guard(GlobalLeaderboardHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/leaderboard/player", Handler: guard(PlayerStatsHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/leaderboard/recent", Handler: guard(RecentGamesHandler(svcCtx))},

		{Method: http.MethodPost, Path: "/logs", Handler: guard(AppendLogHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/logs/list", Handler: guard(ListLogsHandler(svcCtx))},
	}

	server.AddRoutes(routes, rest.WithPrefix("/internal/db"))
}
