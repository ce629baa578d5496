package logic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/domain"
	"github.com/arenaforge/duel-server/internal/gameapi"
	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/services/gateway/internal/config"
	"github.com/arenaforge/duel-server/services/gateway/internal/middleware"
	"github.com/arenaforge/duel-server/services/gateway/internal/svc"
	"github.com/arenaforge/duel-server/services/gateway/internal/types"
)

type fakeGameService struct {
	mu        sync.Mutex
	responses map[string]func(w http.ResponseWriter, body []byte)
}

func newFakeGameService() *fakeGameService {
	return &fakeGameService{responses: map[string]func(w http.ResponseWriter, body []byte){}}
}

func (f *fakeGameService) on(path string, h func(w http.ResponseWriter, body []byte)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = h
}

func (f *fakeGameService) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
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

func newTestServiceContext(fg *fakeGameService) (*svc.ServiceContext, func()) {
	srv := fg.server()
	client := gameapi.NewClient(trustplane.NewClient(srv.URL, "gateway", "test-key"))
	ctx := &svc.ServiceContext{Config: config.Config{}, Game: client}
	return ctx, srv.Close
}

// middlewareCtx builds a context carrying subject the same way
// middleware.RequireAuth does, without spinning up an HTTP round trip.
func middlewareCtx(subject string) context.Context {
	return middleware.WithSubjectForTest(context.Background(), subject, false)
}

func newGame(id string, status domain.Status, p1, p2 string) *domain.Game {
	return &domain.Game{
		ID: uuid.MustParse(id), Player1: p1, Player2: p2, Status: status, Turn: 1,
	}
}

func TestGetGameRejectsNonParticipant(t *testing.T) {
	fg := newFakeGameService()
	id := "11111111-1111-1111-1111-111111111111"
	fg.on(gameapi.PathGet, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, gameapi.GameResp{Game: newGame(id, domain.StatusActive, "alice", "bob")})
	})
	svcCtx, closeFn := newTestServiceContext(fg)
	defer closeFn()

	_, err := NewGamesLogic(middlewareCtx("carol"), svcCtx).Get(&types.GameIDReq{GameID: id})
	var apiErr *apierr.Error
	if !asAPIErr(err, &apiErr) || apiErr.Kind != apierr.Forbidden {
		t.Fatalf("expected forbidden for a non-participant, got %v", err)
	}
}

func TestGetGameAllowsParticipant(t *testing.T) {
	fg := newFakeGameService()
	id := "22222222-2222-2222-2222-222222222222"
	fg.on(gameapi.PathGet, func(w http.ResponseWriter, _ []byte) {
		writeJSON(w, http.StatusOK, gameapi.GameResp{Game: newGame(id, domain.StatusActive, "alice", "bob")})
	})
	svcCtx, closeFn := newTestServiceContext(fg)
	defer closeFn()

	resp, err := NewGamesLogic(middlewareCtx("alice"), svcCtx).Get(&types.GameIDReq{GameID: id})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Game.Player1 != "alice" {
		t.Fatalf("unexpected game: %+v", resp.Game)
	}
}

func TestPlayCardResolvesIndexAgainstHand(t *testing.T) {
	fg := newFakeGameService()
	id := "33333333-3333-3333-3333-333333333333"
	hand := domain.Hand{{Suit: domain.Rock, Power: 4}, {Suit: domain.Paper, Power: 9}}

	fg.on(gameapi.PathGet, func(w http.ResponseWriter, _ []byte) {
		g := newGame(id, domain.StatusActive, "alice", "bob")
		g.P1.Drawn = true
		g.P1.Hand = hand
		writeJSON(w, http.StatusOK, gameapi.GameResp{Game: g})
	})

	var forwardedCard domain.Card
	fg.on(gameapi.PathPlay, func(w http.ResponseWriter, body []byte) {
		var req gameapi.PlayReq
		json.Unmarshal(body, &req)
		forwardedCard = req.Card
		g := newGame(id, domain.StatusActive, "alice", "bob")
		writeJSON(w, http.StatusOK, gameapi.GameResp{Game: g})
	})

	svcCtx, closeFn := newTestServiceContext(fg)
	defer closeFn()

	_, err := NewGamesLogic(middlewareCtx("alice"), svcCtx).PlayCard(&types.PlayCardReq{GameID: id, CardIndex: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if forwardedCard != hand[1] {
		t.Fatalf("expected forwarded card %+v, got %+v", hand[1], forwardedCard)
	}
}

func TestPlayCardRejectsOutOfRangeIndex(t *testing.T) {
	fg := newFakeGameService()
	id := "44444444-4444-4444-4444-444444444444"
	fg.on(gameapi.PathGet, func(w http.ResponseWriter, _ []byte) {
		g := newGame(id, domain.StatusActive, "alice", "bob")
		g.P1.Drawn = true
		g.P1.Hand = domain.Hand{{Suit: domain.Rock, Power: 4}}
		writeJSON(w, http.StatusOK, gameapi.GameResp{Game: g})
	})
	fg.on(gameapi.PathPlay, func(w http.ResponseWriter, _ []byte) {
		t.Fatal("did not expect Play to be forwarded for an out-of-range index")
	})
	svcCtx, closeFn := newTestServiceContext(fg)
	defer closeFn()

	_, err := NewGamesLogic(middlewareCtx("alice"), svcCtx).PlayCard(&types.PlayCardReq{GameID: id, CardIndex: 5})
	var apiErr *apierr.Error
	if !asAPIErr(err, &apiErr) || apiErr.Kind != apierr.Invalid {
		t.Fatalf("expected invalid for an out-of-range card index, got %v", err)
	}
}

func TestSelectDeckRejectsUnknownSuit(t *testing.T) {
	fg := newFakeGameService()
	fg.on(gameapi.PathSelectDeck, func(w http.ResponseWriter, _ []byte) {
		t.Fatal("did not expect SelectDeck to be forwarded for a malformed composition")
	})
	svcCtx, closeFn := newTestServiceContext(fg)
	defer closeFn()

	_, err := NewGamesLogic(middlewareCtx("alice"), svcCtx).SelectDeck(&types.SelectDeckReq{
		GameID: "any", Deck: []types.DeckEntry{{Type: "lizard"}},
	})
	var apiErr *apierr.Error
	if !asAPIErr(err, &apiErr) || apiErr.Kind != apierr.Invalid {
		t.Fatalf("expected invalid for an unknown suit name, got %v", err)
	}
}

func asAPIErr(err error, target **apierr.Error) bool {
	e, ok := err.(*apierr.Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
