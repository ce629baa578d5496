package logic

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arenaforge/duel-server/internal/identityapi"
	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/gateway/internal/config"
	"github.com/arenaforge/duel-server/services/gateway/internal/svc"
	"github.com/arenaforge/duel-server/services/gateway/internal/types"
)

func newTestAuthServiceContext(t *testing.T, handler http.HandlerFunc) (*svc.ServiceContext, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	client := identityapi.NewClient(trustplane.NewClient(srv.URL, "gateway", "test-key"))
	return &svc.ServiceContext{Config: config.Config{}, Identity: client}, srv.Close
}

func TestLoginForwardsDeviceUserAgentAndIP(t *testing.T) {
	var captured identityapi.LoginReq
	svcCtx, closeFn := newTestAuthServiceContext(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(identityapi.TokenPairResp{AccessToken: "a", RefreshToken: "r", AccountID: "1"})
	})
	defer closeFn()

	_, err := NewAuthLogic(middlewareCtx("alice"), svcCtx).Login(
		&types.LoginReq{Username: "alice", Password: "secret"},
		"device-123", "some-agent/1.0", "203.0.113.5",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.Device != "device-123" || captured.UserAgent != "some-agent/1.0" || captured.IP != "203.0.113.5" {
		t.Fatalf("expected device/user-agent/ip to be forwarded, got %+v", captured)
	}
	if captured.Username != "alice" || captured.Password != "secret" {
		t.Fatalf("expected username/password to be forwarded, got %+v", captured)
	}
}

func TestListAccountsMapsEachAccountToProfileResp(t *testing.T) {
	svcCtx, closeFn := newTestAuthServiceContext(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(identityapi.ListAccountsResp{
			Accounts: []identityapi.ProfileResp{
				{ID: "1", Username: "alice", Admin: true},
				{ID: "2", Username: "bob", Admin: false},
			},
		})
	})
	defer closeFn()

	resp, err := NewAuthLogic(middlewareCtx("root"), svcCtx).ListAccounts(&types.ListAccountsReq{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Accounts) != 2 || resp.Accounts[0].Username != "alice" || !resp.Accounts[0].Admin {
		t.Fatalf("unexpected accounts: %+v", resp.Accounts)
	}
}
