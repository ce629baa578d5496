package logic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/cryptoutil"
	"github.com/arenaforge/duel-server/internal/domain"
	"github.com/arenaforge/duel-server/internal/persistenceapi"
	"github.com/arenaforge/duel-server/internal/svcconf"
	"github.com/arenaforge/duel-server/internal/tokens"
	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/identity/internal/config"
	"github.com/arenaforge/duel-server/services/identity/internal/svc"
	"github.com/arenaforge/duel-server/services/identity/internal/types"
)

// memRevocationStore is an in-memory tokens.RevocationStore for tests, mirroring
// internal/tokens/engine_test.go's memStore.
type memRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newMemRevocationStore() *memRevocationStore {
	return &memRevocationStore{revoked: map[string]bool{}}
}

func (m *memRevocationStore) Revoke(_ context.Context, jti string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[jti] = true
	return nil
}

func (m *memRevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revoked[jti], nil
}

// fakePersistence lets each test register canned JSON responses for the
// Persistence Adapter paths AuthLogic/SessionLogic call, without standing up
// a real services/persistence process.
type fakePersistence struct {
	mu        sync.Mutex
	responses map[string]func(w http.ResponseWriter, body []byte)
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{responses: map[string]func(w http.ResponseWriter, body []byte){}}
}

func (f *fakePersistence) on(path string, h func(w http.ResponseWriter, body []byte)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = h
}

func (f *fakePersistence) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		h, ok := f.responses[r.URL.Path]
		f.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, _ := json.Marshal(map[string]interface{}{})
		if r.Body != nil {
			decoded := map[string]interface{}{}
			if json.NewDecoder(r.Body).Decode(&decoded) == nil {
				body, _ = json.Marshal(decoded)
			}
		}
		h(w, body)
	}))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, kind apierr.Kind, msg string) {
	status, _ := apierr.StatusAndBody(apierr.New(kind, msg))
	writeJSON(w, status, apierr.Body{Kind: string(kind), Error: msg})
}

func newTestServiceContext(t *testing.T, fp *fakePersistence) (*svc.ServiceContext, func()) {
	t.Helper()
	srv := fp.server()

	engine, err := tokens.NewEngine([]byte("test-secret-key"), "duel-identity", time.Hour, newMemRevocationStore())
	if err != nil {
		t.Fatalf("unexpected error building token engine: %v", err)
	}

	cfg := config.Config{
		Auth:               svcconf.AuthConfig{RefreshExpire: 2592000},
		LockoutMaxAttempts: 3,
		LockoutForSecs:     900,
	}

	client := persistenceapi.NewClient(trustplane.NewClient(srv.URL, "identity", "test-key"))
	ctx := &svc.ServiceContext{Config: cfg, Persistence: client, Tokens: engine}
	return ctx, srv.Close
}

func newAccount(username, passwordHash string) *domain.Account {
	return &domain.Account{
		ID: "acct-1", Username: username, PasswordHash: passwordHash,
		Admin: false, Enabled: true, CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
}

func TestRegisterIssuesSession(t *testing.T) {
	fp := newFakePersistence()
	fp.on(persistenceapi.PathAccountsCreate, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, persistenceapi.AccountResp{Account: newAccount("alice", "hash")})
	})
	fp.on(persistenceapi.PathRefreshCreate, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, persistenceapi.RefreshCredentialResp{Credential: &domain.RefreshCredential{ID: "cred-1"}})
	})
	fp.on(persistenceapi.PathLogsAppend, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, nil)
	})

	svcCtx, closeFn := newTestServiceContext(t, fp)
	defer closeFn()

	resp, err := NewAuthLogic(context.Background(), svcCtx).Register(&types.RegisterReq{
		Username: "alice", Password: "correct1!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if resp.AccountID != "acct-1" {
		t.Fatalf("expected account id acct-1, got %q", resp.AccountID)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svcCtx, closeFn := newTestServiceContext(t, newFakePersistence())
	defer closeFn()

	_, err := NewAuthLogic(context.Background(), svcCtx).Register(&types.RegisterReq{
		Username: "alice", Password: "weak",
	})
	if err == nil {
		t.Fatal("expected error for weak password")
	}
}

func TestLoginSucceedsWithNoActiveSession(t *testing.T) {
	hash, _ := cryptoutil.HashPassword("correct1!")
	fp := newFakePersistence()
	fp.on(persistenceapi.PathAccountsGet, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, persistenceapi.AccountResp{Account: newAccount("alice", hash)})
	})
	fp.on(persistenceapi.PathRefreshGetActiveForAccount, func(w http.ResponseWriter, _ []byte) {
		writeErr(w, apierr.NotFound, "no active session for account")
	})
	fp.on(persistenceapi.PathRefreshCreate, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, persistenceapi.RefreshCredentialResp{Credential: &domain.RefreshCredential{ID: "cred-1"}})
	})
	fp.on(persistenceapi.PathAccountsResetFailedLogins, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, nil)
	})
	fp.on(persistenceapi.PathLogsAppend, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, nil)
	})

	svcCtx, closeFn := newTestServiceContext(t, fp)
	defer closeFn()

	resp, err := NewAuthLogic(context.Background(), svcCtx).Login(&types.LoginReq{
		Username: "alice", Password: "correct1!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected an access token")
	}
}

func TestLoginFailsOnExistingActiveSession(t *testing.T) {
	hash, _ := cryptoutil.HashPassword("correct1!")
	issuedAt := time.Now().UTC().Add(-time.Hour)
	fp := newFakePersistence()
	fp.on(persistenceapi.PathAccountsGet, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, persistenceapi.AccountResp{Account: newAccount("alice", hash)})
	})
	fp.on(persistenceapi.PathRefreshGetActiveForAccount, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, persistenceapi.RefreshCredentialResp{Credential: &domain.RefreshCredential{
			ID: "cred-existing", Device: "iphone", IP: "10.0.0.1", IssuedAt: issuedAt,
		}})
	})

	svcCtx, closeFn := newTestServiceContext(t, fp)
	defer closeFn()

	_, err := NewAuthLogic(context.Background(), svcCtx).Login(&types.LoginReq{
		Username: "alice", Password: "correct1!",
	})
	var classified *apierr.Error
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if !asClassified(err, &classified) || classified.Kind != apierr.Conflict {
		t.Fatalf("expected apierr.Conflict, got %v", err)
	}
	if classified.Extra["device"] != "iphone" {
		t.Fatalf("expected device descriptor to be surfaced, got %v", classified.Extra)
	}
}

func TestLoginFailsOnWrongPassword(t *testing.T) {
	hash, _ := cryptoutil.HashPassword("correct1!")
	fp := newFakePersistence()
	fp.on(persistenceapi.PathAccountsGet, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, persistenceapi.AccountResp{Account: newAccount("alice", hash)})
	})
	fp.on(persistenceapi.PathAccountsRecordFailedLogin, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, nil)
	})

	svcCtx, closeFn := newTestServiceContext(t, fp)
	defer closeFn()

	_, err := NewAuthLogic(context.Background(), svcCtx).Login(&types.LoginReq{
		Username: "alice", Password: "wrong1!",
	})
	var classified *apierr.Error
	if !asClassified(err, &classified) || classified.Kind != apierr.Invalid {
		t.Fatalf("expected apierr.Invalid, got %v", err)
	}
}

func TestLoginFailsWhenAccountLocked(t *testing.T) {
	hash, _ := cryptoutil.HashPassword("correct1!")
	lockUntil := time.Now().UTC().Add(10 * time.Minute)
	fp := newFakePersistence()
	fp.on(persistenceapi.PathAccountsGet, func(w http.ResponseWriter, _ []byte) {
		acc := newAccount("alice", hash)
		acc.LockUntil = &lockUntil
		writeJSON(w, http.StatusOK, persistenceapi.AccountResp{Account: acc})
	})

	svcCtx, closeFn := newTestServiceContext(t, fp)
	defer closeFn()

	_, err := NewAuthLogic(context.Background(), svcCtx).Login(&types.LoginReq{
		Username: "alice", Password: "correct1!",
	})
	var classified *apierr.Error
	if !asClassified(err, &classified) || classified.Kind != apierr.Locked {
		t.Fatalf("expected apierr.Locked, got %v", err)
	}
}

func asClassified(err error, target **apierr.Error) bool {
	return errors.As(err, target)
}
