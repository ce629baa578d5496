package logic

import (
	"context"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/cryptoutil"
	"github.com/arenaforge/duel-server/services/identity/internal/svc"
	"github.com/arenaforge/duel-server/services/identity/internal/types"
)

type SessionLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SessionLogic {
	return &SessionLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// Refresh implements §4.1's Refresh(refresh) -> access operation. Does not
// rotate the refresh credential by default, per §4.1.
func (l *SessionLogic) Refresh(req *types.RefreshReq) (*types.AccessTokenResp, error) {
	if req.RefreshToken == "" {
		return nil, apierr.New(apierr.Unauthenticated, "refresh token is required")
	}

	hash := cryptoutil.HashToken(req.RefreshToken)
	cred, err := l.svcCtx.Persistence.GetActiveRefreshCredential(l.ctx, hash)
	if err != nil {
		return nil, apierr.New(apierr.Unauthenticated, "refresh token not found or expired")
	}

	acc, err := l.svcCtx.Persistence.GetAccountByID(l.ctx, cred.Credential.AccountID)
	if err != nil {
		return nil, err
	}

	access, _, expiresAt, err := l.svcCtx.Tokens.Issue(acc.Account.Username, uuid.New())
	if err != nil {
		return nil, apierr.Internalf("issue access token: %v", err)
	}

	if err := l.svcCtx.Persistence.TouchRefreshCredential(l.ctx, cred.Credential.ID); err != nil {
		l.Logger.Errorf("touch refresh credential: %v", err)
	}

	return &types.AccessTokenResp{AccessToken: access, ExpiresAt: expiresAt}, nil
}

// Logout implements §4.1's Logout(refresh?): revokes the presented
// credential, or (when none is presented) all of the bearer subject's
// credentials, idempotently.
func (l *SessionLogic) Logout(req *types.LogoutReq) error {
	if req.RefreshToken != "" {
		hash := cryptoutil.HashToken(req.RefreshToken)
		cred, err := l.svcCtx.Persistence.GetActiveRefreshCredential(l.ctx, hash)
		if err != nil {
			// Already revoked or unknown: logout is idempotent.
			return nil
		}
		return l.svcCtx.Persistence.RevokeRefreshCredential(l.ctx, cred.Credential.ID)
	}

	acc, err := l.svcCtx.Persistence.GetAccountByUsername(l.ctx, req.Subject)
	if err != nil {
		return err
	}
	return l.svcCtx.Persistence.RevokeAllRefreshCredentials(l.ctx, acc.Account.ID)
}

// RevokeAll implements §4.1's RevokeAll(subject) admin/self operation.
func (l *SessionLogic) RevokeAll(req *types.RevokeAllReq) error {
	return l.svcCtx.Persistence.RevokeAllRefreshCredentials(l.ctx, req.AccountID)
}

// Validate implements §4.1's Validate(access) -> subject, used by peers
// through the trust plane.
func (l *SessionLogic) Validate(req *types.ValidateReq) (*types.ValidateResp, error) {
	claims, err := l.svcCtx.Tokens.Verify(l.ctx, req.AccessToken)
	if err != nil {
		return &types.ValidateResp{Valid: false}, nil
	}

	acc, err := l.svcCtx.Persistence.GetAccountByUsername(l.ctx, claims.Username)
	if err != nil || !acc.Account.Enabled {
		return &types.ValidateResp{Valid: false}, nil
	}
	return &types.ValidateResp{Valid: true, Username: claims.Username, Admin: acc.Account.Admin}, nil
}
