package logic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/arenaforge/duel-server/internal/domain"
	"github.com/arenaforge/duel-server/internal/persistenceapi"
	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/audit/internal/config"
	"github.com/arenaforge/duel-server/services/audit/internal/svc"
	"github.com/arenaforge/duel-server/services/audit/internal/types"
)

type fakePersistence struct {
	mu        sync.Mutex
	responses map[string]func(w http.ResponseWriter, body []byte)
	calls     map[string]int
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{
		responses: map[string]func(w http.ResponseWriter, body []byte){},
		calls:     map[string]int{},
	}
}

func (f *fakePersistence) on(path string, h func(w http.ResponseWriter, body []byte)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = h
}

func (f *fakePersistence) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

func (f *fakePersistence) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := make([]byte, r.ContentLength)
		r.Body.Read(body)

		f.mu.Lock()
		f.calls[r.URL.Path]++
		h, ok := f.responses[r.URL.Path]
		f.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h(w, body)
	}))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func newTestServiceContext(fp *fakePersistence) (*svc.ServiceContext, func()) {
	srv := fp.server()
	client := persistenceapi.NewClient(trustplane.NewClient(srv.URL, "audit", "test-key"))
	ctx := &svc.ServiceContext{Config: config.Config{}, Persistence: client}
	return ctx, srv.Close
}

func TestListReturnsEntriesAndRecordsAdminView(t *testing.T) {
	fp := newFakePersistence()
	fp.on(persistenceapi.PathLogsList, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, persistenceapi.ListLogsResp{
			Entries: []domain.LogEntry{{ID: "1", Action: "login_success"}},
		})
	})
	fp.on(persistenceapi.PathLogsAppend, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, nil)
	})
	svcCtx, closeFn := newTestServiceContext(fp)
	defer closeFn()

	resp, err := NewAuditLogic(context.Background(), svcCtx).List(&types.ListReq{Subject: "root-admin", Limit: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Entries) != 1 || resp.Entries[0].Action != "login_success" {
		t.Fatalf("unexpected entries: %+v", resp.Entries)
	}
	if fp.count(persistenceapi.PathLogsAppend) != 1 {
		t.Fatalf("expected List to record exactly one admin_viewed_logs entry, got %d", fp.count(persistenceapi.PathLogsAppend))
	}
}

func TestListPropagatesPersistenceFailureWithoutRecordingView(t *testing.T) {
	fp := newFakePersistence()
	fp.on(persistenceapi.PathLogsList, func(w http.ResponseWriter, _ []byte) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	svcCtx, closeFn := newTestServiceContext(fp)
	defer closeFn()

	_, err := NewAuditLogic(context.Background(), svcCtx).List(&types.ListReq{Subject: "root-admin"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if fp.count(persistenceapi.PathLogsAppend) != 0 {
		t.Fatalf("did not expect an admin_viewed_logs entry when the underlying read failed")
	}
}

func TestAppendIsBestEffortAndNeverPanicsOnFailure(t *testing.T) {
	fp := newFakePersistence()
	fp.on(persistenceapi.PathLogsAppend, func(w http.ResponseWriter, _ []byte) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	svcCtx, closeFn := newTestServiceContext(fp)
	defer closeFn()

	NewAuditLogic(context.Background(), svcCtx).Append(&types.AppendReq{Action: "game_started"})
}
