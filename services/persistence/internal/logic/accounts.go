package logic

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/domain"
	"github.com/arenaforge/duel-server/services/persistence/internal/store"
	"github.com/arenaforge/duel-server/services/persistence/internal/svc"
	"github.com/arenaforge/duel-server/services/persistence/internal/types"
)

type AccountLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewAccountLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AccountLogic {
	return &AccountLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *AccountLogic) Create(req *types.CreateAccountReq) (*types.AccountResp, error) {
	a := &domain.Account{
		Username:     req.Username,
		PasswordHash: req.PasswordHash,
		Enabled:      true,
		Visible:      true,
	}
	if err := l.svcCtx.Store.CreateAccount(l.ctx, a); err != nil {
		if err == store.ErrConflict {
			return nil, apierr.Conflictf("username %q already registered", req.Username)
		}
		return nil, apierr.Internalf("create account: %v", err)
	}
	return &types.AccountResp{Account: a}, nil
}

func (l *AccountLogic) GetByUsername(req *types.UsernameReq) (*types.AccountResp, error) {
	a, err := l.svcCtx.Store.GetAccountByUsername(l.ctx, req.Username)
	if err == store.ErrNotFound {
		return nil, apierr.NotFoundf("account %q not found", req.Username)
	}
	if err != nil {
		return nil, apierr.Internalf("get account: %v", err)
	}
	return &types.AccountResp{Account: a}, nil
}

func (l *AccountLogic) GetByID(req *types.AccountIDReq) (*types.AccountResp, error) {
	a, err := l.svcCtx.Store.GetAccountByID(l.ctx, req.AccountID)
	if err == store.ErrNotFound {
		return nil, apierr.NotFoundf("account %q not found", req.AccountID)
	}
	if err != nil {
		return nil, apierr.Internalf("get account: %v", err)
	}
	return &types.AccountResp{Account: a}, nil
}

func (l *AccountLogic) RecordFailedLogin(req *types.RecordFailedLoginReq) error {
	return l.svcCtx.Store.RecordFailedLogin(l.ctx, req.Username, req.MaxAttempts,
		time.Duration(req.LockForSecs)*time.Second)
}

func (l *AccountLogic) ResetFailedLogins(req *types.UsernameReq) error {
	return l.svcCtx.Store.ResetFailedLogins(l.ctx, req.Username)
}

func (l *AccountLogic) UpdateProfile(req *types.UpdateProfileReq) error {
	return l.svcCtx.Store.UpdateProfile(l.ctx, req.Username, req.DisplayName, req.Bio, req.Visible)
}

func (l *AccountLogic) UpdatePasswordHash(req *types.UpdatePasswordHashReq) error {
	return l.svcCtx.Store.UpdatePasswordHash(l.ctx, req.Username, req.PasswordHash)
}

func (l *AccountLogic) SetEnabled(req *types.SetEnabledReq) error {
	return l.svcCtx.Store.SetEnabled(l.ctx, req.Username, req.Enabled)
}

// ListAccounts backs the admin-only account listing read (§4A.1). Caller
// (identity service) is responsible for the admin gate before reaching here.
func (l *AccountLogic) ListAccounts(req *types.ListAccountsReq) (*types.ListAccountsResp, error) {
	limit := req.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	accounts, err := l.svcCtx.Store.ListAccounts(l.ctx, limit, req.Offset)
	if err != nil {
		return nil, apierr.Internalf("list accounts: %v", err)
	}
	return &types.ListAccountsResp{Accounts: accounts}, nil
}
