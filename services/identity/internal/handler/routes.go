package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/identity/internal/svc"
)

// RegisterHandlers wires every internal route this service exposes under
// /internal/identity, each gated by RequireService so only recognized mesh
// callers (the gateway, and any service that must resolve a bearer token)
// reach the handler.
func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	guard := trustplane.RequireService(svcCtx.ServiceKeys)

	routes := []rest.Route{
		{Method: http.MethodPost, Path: "/register", Handler: guard(RegisterHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/login", Handler: guard(LoginHandler(svcCtx))},

		{Method: http.MethodPost, Path: "/refresh", Handler: guard(RefreshHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/logout", Handler: guard(LogoutHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/revoke-all", Handler: guard(RevokeAllHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/validate", Handler: guard(ValidateHandler(svcCtx))},

		{Method: http.MethodPost, Path: "/profile", Handler: guard(GetProfileHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/profile/password", Handler: guard(UpdatePasswordHandler(svcCtx))},
		{Method: http.MethodPost, Path: "/accounts", Handler: guard(ListAccountsHandler(svcCtx))},
	}

	server.AddRoutes(routes, rest.WithPrefix("/internal/identity"))
}
