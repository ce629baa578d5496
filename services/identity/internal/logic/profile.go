package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/cryptoutil"
	"github.com/arenaforge/duel-server/internal/domain"
	"github.com/arenaforge/duel-server/internal/persistenceapi"
	"github.com/arenaforge/duel-server/internal/policy"
	"github.com/arenaforge/duel-server/services/identity/internal/svc"
	"github.com/arenaforge/duel-server/services/identity/internal/types"
)

type ProfileLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewProfileLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ProfileLogic {
	return &ProfileLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// Get implements §4.1's profile read: (id, username, created-at, admin
// flag), extended with display_name/bio per §4A.1.
func (l *ProfileLogic) Get(req *types.ProfileReq) (*types.ProfileResp, error) {
	acc, err := l.svcCtx.Persistence.GetAccountByUsername(l.ctx, req.Username)
	if err != nil {
		return nil, err
	}
	return toProfileResp(acc.Account), nil
}

// UpdatePassword implements §4.1's profile update: password change only,
// same policy as Register; on success revokes all of the subject's
// refresh credentials.
func (l *ProfileLogic) UpdatePassword(req *types.UpdatePasswordReq) error {
	if err := policy.ValidatePassword(req.Password); err != nil {
		return err
	}

	acc, err := l.svcCtx.Persistence.GetAccountByUsername(l.ctx, req.Username)
	if err != nil {
		return err
	}

	hash, err := cryptoutil.HashPassword(req.Password)
	if err != nil {
		return apierr.Internalf("hash password: %v", err)
	}
	if err := l.svcCtx.Persistence.UpdatePasswordHash(l.ctx, &persistenceapi.UpdatePasswordHashReq{
		Username: req.Username, PasswordHash: hash,
	}); err != nil {
		return err
	}

	return l.svcCtx.Persistence.RevokeAllRefreshCredentials(l.ctx, acc.Account.ID)
}

// ListAccounts implements the admin-gated account listing read (§4A.1).
// The gateway is responsible for checking the caller's admin flag before
// routing here.
func (l *ProfileLogic) ListAccounts(req *types.ListAccountsReq) (*types.ListAccountsResp, error) {
	resp, err := l.svcCtx.Persistence.ListAccounts(l.ctx, &persistenceapi.ListAccountsReq{
		Limit: req.Limit, Offset: req.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]types.ProfileResp, 0, len(resp.Accounts))
	for i := range resp.Accounts {
		out = append(out, *toProfileResp(&resp.Accounts[i]))
	}
	return &types.ListAccountsResp{Accounts: out}, nil
}

func toProfileResp(a *domain.Account) *types.ProfileResp {
	return &types.ProfileResp{
		ID: a.ID, Username: a.Username, DisplayName: a.DisplayName, Bio: a.Bio,
		Admin: a.Admin, CreatedAt: a.CreatedAt,
	}
}
