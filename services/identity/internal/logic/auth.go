package logic

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/cryptoutil"
	"github.com/arenaforge/duel-server/internal/persistenceapi"
	"github.com/arenaforge/duel-server/internal/policy"
	"github.com/arenaforge/duel-server/internal/tokens"
	"github.com/arenaforge/duel-server/services/identity/internal/svc"
	"github.com/arenaforge/duel-server/services/identity/internal/types"
)

type AuthLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewAuthLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AuthLogic {
	return &AuthLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// Register implements §4.1's Register operation.
func (l *AuthLogic) Register(req *types.RegisterReq) (*types.TokenPairResp, error) {
	if req.Username == "" {
		return nil, apierr.Invalidf("username is required")
	}
	if err := policy.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := cryptoutil.HashPassword(req.Password)
	if err != nil {
		return nil, apierr.Internalf("hash password: %v", err)
	}

	acc, err := l.svcCtx.Persistence.CreateAccount(l.ctx, &persistenceapi.CreateAccountReq{
		Username: req.Username, PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	resp, err := l.issueSession(acc.Account.ID, acc.Account.Username, "registration", "", "")
	if err != nil {
		return nil, err
	}
	l.audit("account_registered", &acc.Account.Username, nil)
	return resp, nil
}

// Login implements §4.1's Login protocol, including the lockout and
// single-active-session checks.
func (l *AuthLogic) Login(req *types.LoginReq) (*types.TokenPairResp, error) {
	acc, err := l.svcCtx.Persistence.GetAccountByUsername(l.ctx, req.Username)
	if err != nil {
		var classified *apierr.Error
		if errors.As(err, &classified) && classified.Kind == apierr.NotFound {
			return nil, apierr.New(apierr.Invalid, "invalid_credentials").WithExtra(map[string]interface{}{"reason": "invalid_credentials"})
		}
		return nil, err
	}
	account := acc.Account

	now := time.Now().UTC()
	if account.Locked(now) {
		return nil, apierr.New(apierr.Locked, "account locked").WithExtra(map[string]interface{}{
			"retry_after": account.LockUntil.Sub(now).Seconds(),
			"lock_until":  account.LockUntil,
		})
	}

	if !cryptoutil.CheckPassword(req.Password, account.PasswordHash) {
		maxAttempts := l.svcCtx.Config.LockoutMaxAttempts
		lockFor := l.svcCtx.Config.LockoutForSecs
		if err := l.svcCtx.Persistence.RecordFailedLogin(l.ctx, &persistenceapi.RecordFailedLoginReq{
			Username: req.Username, MaxAttempts: maxAttempts, LockForSecs: lockFor,
		}); err != nil {
			l.Logger.Errorf("record failed login: %v", err)
		}

		nextAttempt := account.FailedAttempts + 1
		if nextAttempt >= maxAttempts {
			return nil, apierr.New(apierr.Locked, "account locked").WithExtra(map[string]interface{}{
				"retry_after": lockFor,
			})
		}
		return nil, apierr.New(apierr.Invalid, "invalid_credentials").WithExtra(map[string]interface{}{
			"remaining_attempts": maxAttempts - nextAttempt,
		})
	}

	if existing, err := l.svcCtx.Persistence.GetActiveRefreshCredentialForAccount(l.ctx, account.ID); err == nil {
		return nil, apierr.New(apierr.Conflict, "conflict_active_session").WithExtra(map[string]interface{}{
			"device":     existing.Credential.Device,
			"ip":         existing.Credential.IP,
			"created_at": existing.Credential.IssuedAt,
		})
	} else {
		var classified *apierr.Error
		if !errors.As(err, &classified) || classified.Kind != apierr.NotFound {
			return nil, apierr.Internalf("check active session: %v", err)
		}
	}

	resp, err := l.issueSession(account.ID, account.Username, req.Device, req.UserAgent, req.IP)
	if err != nil {
		return nil, err
	}

	if err := l.svcCtx.Persistence.ResetFailedLogins(l.ctx, req.Username); err != nil {
		l.Logger.Errorf("reset failed logins: %v", err)
	}
	l.audit("login_succeeded", &account.Username, nil)
	return resp, nil
}

// issueSession mints a new access/refresh pair and persists the refresh
// credential. Login checks for an existing active session itself and fails
// conflict_active_session before ever reaching here (§4.1 step 4); the
// Persistence Adapter's own revoke-then-insert inside CreateRefreshCredential
// is a second, independent enforcement of the same invariant against the
// race between that check and this call.
func (l *AuthLogic) issueSession(accountID, username, device, userAgent, ip string) (*types.TokenPairResp, error) {
	sessionID := uuid.New()
	access, _, expiresAt, err := l.svcCtx.Tokens.Issue(username, sessionID)
	if err != nil {
		return nil, apierr.Internalf("issue access token: %v", err)
	}

	refresh, err := tokens.NewOpaqueRefreshToken()
	if err != nil {
		return nil, apierr.Internalf("issue refresh token: %v", err)
	}
	refreshHash := cryptoutil.HashToken(refresh)

	ttl := time.Duration(l.svcCtx.Config.Auth.RefreshExpire) * time.Second
	if _, err := l.svcCtx.Persistence.CreateRefreshCredential(l.ctx, &persistenceapi.CreateRefreshCredentialReq{
		AccountID: accountID, TokenHash: refreshHash, Device: device, UserAgent: userAgent, IP: ip,
		TTLSecs: int64(ttl.Seconds()),
	}); err != nil {
		return nil, err
	}

	return &types.TokenPairResp{
		AccessToken: access, RefreshToken: refresh, AccountID: accountID, ExpiresAt: expiresAt,
	}, nil
}

func (l *AuthLogic) audit(action string, actor *string, details map[string]interface{}) {
	if err := l.svcCtx.Persistence.AppendLog(l.ctx, &persistenceapi.AppendLogReq{
		Action: action, Actor: actor, Details: details,
	}); err != nil {
		l.Logger.Errorf("audit log (best-effort): %v", err)
	}
}
