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

type RefreshCredentialLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewRefreshCredentialLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RefreshCredentialLogic {
	return &RefreshCredentialLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *RefreshCredentialLogic) Create(req *types.CreateRefreshCredentialReq) (*types.RefreshCredentialResp, error) {
	now := time.Now().UTC()
	c := &domain.RefreshCredential{
		AccountID: req.AccountID,
		TokenHash: req.TokenHash,
		Device:    req.Device,
		UserAgent: req.UserAgent,
		IP:        req.IP,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Duration(req.TTLSecs) * time.Second),
	}
	if err := l.svcCtx.Store.CreateRefreshCredential(l.ctx, c); err != nil {
		return nil, apierr.Internalf("create refresh credential: %v", err)
	}
	return &types.RefreshCredentialResp{Credential: c}, nil
}

// GetActiveForAccount returns the caller's one active credential, if any
// (§4.1 step 4). Returns apierr.NotFound when no session is active.
func (l *RefreshCredentialLogic) GetActiveForAccount(req *types.AccountIDReq) (*types.RefreshCredentialResp, error) {
	c, err := l.svcCtx.Store.GetActiveRefreshCredentialForAccount(l.ctx, req.AccountID)
	if err == store.ErrNotFound {
		return nil, apierr.NotFoundf("no active session for account")
	}
	if err != nil {
		return nil, apierr.Internalf("get active credential: %v", err)
	}
	return &types.RefreshCredentialResp{Credential: c}, nil
}

func (l *RefreshCredentialLogic) GetActiveByHash(req *types.TokenHashReq) (*types.RefreshCredentialResp, error) {
	c, err := l.svcCtx.Store.GetActiveRefreshCredentialByHash(l.ctx, req.TokenHash)
	if err == store.ErrNotFound {
		return nil, apierr.New(apierr.Unauthenticated, "refresh credential not found or expired")
	}
	if err != nil {
		return nil, apierr.Internalf("get refresh credential: %v", err)
	}
	if !c.Active(time.Now().UTC()) {
		return nil, apierr.New(apierr.Unauthenticated, "refresh credential not found or expired")
	}
	return &types.RefreshCredentialResp{Credential: c}, nil
}

func (l *RefreshCredentialLogic) Touch(req *types.CredentialIDReq) error {
	return l.svcCtx.Store.TouchRefreshCredential(l.ctx, req.ID)
}

func (l *RefreshCredentialLogic) Revoke(req *types.CredentialIDReq) error {
	return l.svcCtx.Store.RevokeRefreshCredential(l.ctx, req.ID)
}

func (l *RefreshCredentialLogic) RevokeAll(req *types.AccountIDReq) error {
	return l.svcCtx.Store.RevokeAllRefreshCredentials(l.ctx, req.AccountID)
}
