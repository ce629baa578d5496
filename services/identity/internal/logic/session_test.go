package logic

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/domain"
	"github.com/arenaforge/duel-server/internal/persistenceapi"
	"github.com/arenaforge/duel-server/services/identity/internal/types"
)

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	fp := newFakePersistence()
	fp.on(persistenceapi.PathRefreshGetActive, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, persistenceapi.RefreshCredentialResp{Credential: &domain.RefreshCredential{
			ID: "cred-1", AccountID: "acct-1", ExpiresAt: time.Now().Add(time.Hour),
		}})
	})
	fp.on(persistenceapi.PathAccountsGetByID, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, persistenceapi.AccountResp{Account: newAccount("alice", "hash")})
	})
	fp.on(persistenceapi.PathRefreshTouch, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, nil)
	})

	svcCtx, closeFn := newTestServiceContext(t, fp)
	defer closeFn()

	resp, err := NewSessionLogic(context.Background(), svcCtx).Refresh(&types.RefreshReq{RefreshToken: "opaque-token"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected an access token")
	}
}

func TestRefreshRejectsUnknownToken(t *testing.T) {
	fp := newFakePersistence()
	fp.on(persistenceapi.PathRefreshGetActive, func(w http.ResponseWriter, _ []byte) {
		writeErr(w, apierr.NotFound, "refresh credential not found")
	})

	svcCtx, closeFn := newTestServiceContext(t, fp)
	defer closeFn()

	_, err := NewSessionLogic(context.Background(), svcCtx).Refresh(&types.RefreshReq{RefreshToken: "bogus"})
	var classified *apierr.Error
	if !asClassified(err, &classified) || classified.Kind != apierr.Unauthenticated {
		t.Fatalf("expected apierr.Unauthenticated, got %v", err)
	}
}

func TestRefreshRejectsEmptyToken(t *testing.T) {
	svcCtx, closeFn := newTestServiceContext(t, newFakePersistence())
	defer closeFn()

	_, err := NewSessionLogic(context.Background(), svcCtx).Refresh(&types.RefreshReq{})
	if err == nil {
		t.Fatal("expected error for empty refresh token")
	}
}

func TestLogoutRevokesPresentedCredential(t *testing.T) {
	revoked := false
	fp := newFakePersistence()
	fp.on(persistenceapi.PathRefreshGetActive, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, persistenceapi.RefreshCredentialResp{Credential: &domain.RefreshCredential{ID: "cred-1"}})
	})
	fp.on(persistenceapi.PathRefreshRevoke, func(w http.ResponseWriter, _ []byte) {
		revoked = true
		writeJSON(w, http.StatusOK, nil)
	})

	svcCtx, closeFn := newTestServiceContext(t, fp)
	defer closeFn()

	if err := NewSessionLogic(context.Background(), svcCtx).Logout(&types.LogoutReq{RefreshToken: "opaque-token"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !revoked {
		t.Fatal("expected the presented credential to be revoked")
	}
}

func TestLogoutIsIdempotentOnUnknownCredential(t *testing.T) {
	fp := newFakePersistence()
	fp.on(persistenceapi.PathRefreshGetActive, func(w http.ResponseWriter, _ []byte) {
		writeErr(w, apierr.NotFound, "refresh credential not found")
	})

	svcCtx, closeFn := newTestServiceContext(t, fp)
	defer closeFn()

	if err := NewSessionLogic(context.Background(), svcCtx).Logout(&types.LogoutReq{RefreshToken: "bogus"}); err != nil {
		t.Fatalf("expected idempotent success, got %v", err)
	}
}

func TestLogoutWithoutTokenRevokesAllForSubject(t *testing.T) {
	revokedAll := false
	fp := newFakePersistence()
	fp.on(persistenceapi.PathAccountsGet, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, persistenceapi.AccountResp{Account: newAccount("alice", "hash")})
	})
	fp.on(persistenceapi.PathRefreshRevokeAll, func(w http.ResponseWriter, _ []byte) {
		revokedAll = true
		writeJSON(w, http.StatusOK, nil)
	})

	svcCtx, closeFn := newTestServiceContext(t, fp)
	defer closeFn()

	if err := NewSessionLogic(context.Background(), svcCtx).Logout(&types.LogoutReq{Subject: "alice"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !revokedAll {
		t.Fatal("expected all credentials for the subject to be revoked")
	}
}

func TestValidateRejectsGarbageToken(t *testing.T) {
	svcCtx, closeFn := newTestServiceContext(t, newFakePersistence())
	defer closeFn()

	resp, err := NewSessionLogic(context.Background(), svcCtx).Validate(&types.ValidateReq{AccessToken: "not-a-jwt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Valid {
		t.Fatal("expected garbage token to be invalid")
	}
}

func TestValidateAcceptsFreshlyIssuedToken(t *testing.T) {
	fp := newFakePersistence()
	fp.on(persistenceapi.PathAccountsGet, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, persistenceapi.AccountResp{Account: newAccount("alice", "hash")})
	})

	svcCtx, closeFn := newTestServiceContext(t, fp)
	defer closeFn()

	access, _, _, err := svcCtx.Tokens.Issue("alice", uuid.New())
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	resp, err := NewSessionLogic(context.Background(), svcCtx).Validate(&types.ValidateReq{AccessToken: access})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Valid || resp.Username != "alice" {
		t.Fatalf("expected a valid response for alice, got %+v", resp)
	}
}
