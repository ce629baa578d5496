package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/identityapi"
	"github.com/arenaforge/duel-server/services/gateway/internal/middleware"
	"github.com/arenaforge/duel-server/services/gateway/internal/svc"
	"github.com/arenaforge/duel-server/services/gateway/internal/types"
)

type AuthLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewAuthLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AuthLogic {
	return &AuthLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *AuthLogic) Register(req *types.RegisterReq) (*types.TokenResp, error) {
	resp, err := l.svcCtx.Identity.Register(l.ctx, &identityapi.RegisterReq{
		Username: req.Username, Password: req.Password,
	})
	if err != nil {
		return nil, err
	}
	return toTokenResp(resp), nil
}

// Login forwards the device/user-agent/IP the gateway observed on the HTTP
// connection — the client's own request body per §6.1 carries only
// username/password, so that bookkeeping is the gateway's to supply.
func (l *AuthLogic) Login(req *types.LoginReq, device, userAgent, ip string) (*types.TokenResp, error) {
	resp, err := l.svcCtx.Identity.Login(l.ctx, &identityapi.LoginReq{
		Username: req.Username, Password: req.Password,
		Device: device, UserAgent: userAgent, IP: ip,
	})
	if err != nil {
		return nil, err
	}
	return toTokenResp(resp), nil
}

func (l *AuthLogic) Refresh(req *types.RefreshReq) (*types.AccessTokenResp, error) {
	resp, err := l.svcCtx.Identity.Refresh(l.ctx, &identityapi.RefreshReq{RefreshToken: req.RefreshToken})
	if err != nil {
		return nil, err
	}
	return &types.AccessTokenResp{AccessToken: resp.AccessToken, ExpiresAt: resp.ExpiresAt}, nil
}

func (l *AuthLogic) Logout(req *types.LogoutReq) error {
	return l.svcCtx.Identity.Logout(l.ctx, &identityapi.LogoutReq{
		Subject: middleware.Subject(l.ctx), RefreshToken: req.RefreshToken,
	})
}

func (l *AuthLogic) Profile() (*types.ProfileResp, error) {
	resp, err := l.svcCtx.Identity.Profile(l.ctx, middleware.Subject(l.ctx))
	if err != nil {
		return nil, err
	}
	return toProfileResp(resp), nil
}

func (l *AuthLogic) UpdatePassword(req *types.UpdatePasswordReq) error {
	return l.svcCtx.Identity.UpdatePassword(l.ctx, &identityapi.UpdatePasswordReq{
		Username: middleware.Subject(l.ctx), Password: req.Password,
	})
}

// Validate re-exposes identity's Validate for a client that wants to check
// its own token's liveness; the bearer has already been verified by the
// RequireAuth middleware by the time this runs, so it always reports valid.
func (l *AuthLogic) Validate() *types.ValidateResp {
	return &types.ValidateResp{Valid: true, Username: middleware.Subject(l.ctx)}
}

func (l *AuthLogic) ListAccounts(req *types.ListAccountsReq) (*types.ListAccountsResp, error) {
	resp, err := l.svcCtx.Identity.ListAccounts(l.ctx, &identityapi.ListAccountsReq{
		Limit: req.Limit, Offset: req.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]types.ProfileResp, 0, len(resp.Accounts))
	for _, a := range resp.Accounts {
		out = append(out, *toProfileResp(&a))
	}
	return &types.ListAccountsResp{Accounts: out}, nil
}

func toTokenResp(r *identityapi.TokenPairResp) *types.TokenResp {
	return &types.TokenResp{
		AccessToken: r.AccessToken, RefreshToken: r.RefreshToken,
		AccountID: r.AccountID, ExpiresAt: r.ExpiresAt,
	}
}

func toProfileResp(a *identityapi.ProfileResp) *types.ProfileResp {
	return &types.ProfileResp{
		ID: a.ID, Username: a.Username, DisplayName: a.DisplayName,
		Bio: a.Bio, Admin: a.Admin, CreatedAt: a.CreatedAt,
	}
}
