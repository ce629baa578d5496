package logic

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/domain"
	"github.com/arenaforge/duel-server/internal/persistenceapi"
	"github.com/arenaforge/duel-server/services/game/internal/svc"
	"github.com/arenaforge/duel-server/services/game/internal/types"
)

// GameLogic is the orchestration layer described in DESIGN.md's
// "persistence owns the state machine" note: every actual state
// transition happens inside the Persistence Adapter's own transactional
// mutate helper, so each method here does no more than validate the
// caller, materialize whatever the catalogue needs to supply, and forward
// to the matching persistenceapi call.
type GameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GameLogic {
	return &GameLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func isNotFound(err error) bool {
	var classified *apierr.Error
	return errors.As(err, &classified) && classified.Kind == apierr.NotFound
}

// Create implements §4.4.1's CreateGame(creator, invitee): invalid if
// creator == invitee or invitee does not exist.
func (l *GameLogic) Create(req *types.CreateGameReq) (*types.GameResp, error) {
	if req.Creator == "" || req.Invitee == "" {
		return nil, apierr.Invalidf("creator and invitee are required")
	}
	if req.Creator == req.Invitee {
		return nil, apierr.Invalidf("cannot invite yourself")
	}
	if _, err := l.svcCtx.Persistence.GetAccountByUsername(l.ctx, req.Invitee); err != nil {
		if isNotFound(err) {
			return nil, apierr.Invalidf("invitee does not exist")
		}
		return nil, err
	}

	resp, err := l.svcCtx.Persistence.CreateGame(l.ctx, &persistenceapi.CreateGameReq{
		Player1: req.Creator, Player2: req.Invitee,
	})
	if err != nil {
		return nil, err
	}
	l.audit("invitation_created", &req.Creator, map[string]interface{}{"game_id": resp.Game.ID, "invitee": req.Invitee})
	return &types.GameResp{Game: resp.Game}, nil
}

func (l *GameLogic) Get(req *types.GameIDReq) (*types.GameResp, error) {
	resp, err := l.svcCtx.Persistence.GetGame(l.ctx, req.GameID)
	if err != nil {
		return nil, err
	}
	return &types.GameResp{Game: resp.Game}, nil
}

func (l *GameLogic) ListForPlayer(req *types.UsernameReq) (*types.GamesResp, error) {
	resp, err := l.svcCtx.Persistence.ListGamesForPlayer(l.ctx, req.Username)
	if err != nil {
		return nil, err
	}
	return &types.GamesResp{Games: resp.Games}, nil
}

func (l *GameLogic) ListPendingInvites(req *types.UsernameReq) (*types.GamesResp, error) {
	resp, err := l.svcCtx.Persistence.ListPendingInvites(l.ctx, req.Username)
	if err != nil {
		return nil, err
	}
	return &types.GamesResp{Games: resp.Games}, nil
}

// InviteDecision forwards the invitee's accept/ignore answer to
// persistence and audits the outcome.
func (l *GameLogic) InviteDecision(req *types.InviteDecisionReq) (*types.GameResp, error) {
	resp, err := l.svcCtx.Persistence.InviteDecision(l.ctx, &persistenceapi.InviteDecisionReq{
		GameID: req.GameID, Username: req.Username, Accept: req.Accept,
	})
	if err != nil {
		return nil, err
	}
	action := "invitation_ignored"
	if req.Accept {
		action = "invitation_accepted"
	}
	l.audit(action, &req.Username, map[string]interface{}{"game_id": req.GameID})
	return &types.GameResp{Game: resp.Game}, nil
}

// CancelInvite covers both the creator withdrawing a pending invite and
// either participant abandoning a game already under way (§4.4.1/§4.4.6).
func (l *GameLogic) CancelInvite(req *types.CancelInviteReq) (*types.GameResp, error) {
	resp, err := l.svcCtx.Persistence.CancelInvite(l.ctx, &persistenceapi.CancelInviteReq{
		GameID: req.GameID, Username: req.Username,
	})
	if err != nil {
		return nil, err
	}
	l.audit("invitation_cancelled", &req.Username, map[string]interface{}{"game_id": req.GameID})
	return &types.GameResp{Game: resp.Game}, nil
}

// SelectDeck materializes a client-submitted suit composition into a
// concrete 22-card deck by drawing one random card per entry from the Card
// Catalogue (C3), then forwards the materialized deck to persistence.
// The composition, not the deck, is what crosses the client boundary: a
// client could otherwise pick its own favorable power values.
func (l *GameLogic) SelectDeck(req *types.SelectDeckReq) (*types.GameResp, error) {
	if !domain.ValidComposition(req.Composition) {
		return nil, apierr.Invalidf("composition must have exactly %d valid suit entries", domain.DeckSize)
	}

	deck, err := domain.MaterializeDeck(req.Composition, func(suit domain.Suit) (domain.Card, error) {
		resp, err := l.svcCtx.Cards.RandomCard(l.ctx, string(suit))
		if err != nil {
			return domain.Card{}, err
		}
		return resp.Card, nil
	})
	if err != nil {
		return nil, apierr.Internalf("materialize deck: %v", err)
	}

	resp, err := l.svcCtx.Persistence.SelectDeck(l.ctx, &persistenceapi.SelectDeckReq{
		GameID: req.GameID, Username: req.Username, Deck: []domain.Card(deck),
	})
	if err != nil {
		return nil, err
	}
	if resp.Game.Status == domain.StatusActive {
		l.audit("game_started", &req.Username, map[string]interface{}{"game_id": req.GameID})
	}
	return &types.GameResp{Game: resp.Game}, nil
}

func (l *GameLogic) Draw(req *types.DrawReq) (*types.GameResp, error) {
	resp, err := l.svcCtx.Persistence.Draw(l.ctx, &persistenceapi.DrawReq{
		GameID: req.GameID, Username: req.Username,
	})
	if err != nil {
		return nil, err
	}
	return &types.GameResp{Game: resp.Game}, nil
}

// Play forwards a played card to persistence, which auto-resolves the
// round in the same transaction once both participants have played
// (§4.4.3). A terminal outcome is audited here since this is the one
// transition most likely to end a game outright.
func (l *GameLogic) Play(req *types.PlayReq) (*types.GameResp, error) {
	resp, err := l.svcCtx.Persistence.Play(l.ctx, &persistenceapi.PlayReq{
		GameID: req.GameID, Username: req.Username, Card: req.Card,
	})
	if err != nil {
		return nil, err
	}
	if resp.Game.Status.Terminal() {
		l.audit("game_completed", &req.Username, map[string]interface{}{"game_id": req.GameID, "winner": resp.Game.Winner})
	}
	return &types.GameResp{Game: resp.Game}, nil
}

func (l *GameLogic) SubmitTiebreakerDecision(req *types.TiebreakerDecisionReq) (*types.GameResp, error) {
	resp, err := l.svcCtx.Persistence.SubmitTiebreakerDecision(l.ctx, &persistenceapi.TiebreakerDecisionReq{
		GameID: req.GameID, Username: req.Username, Decision: req.Decision,
	})
	if err != nil {
		return nil, err
	}
	if resp.Game.Status.Terminal() {
		l.audit("game_completed", &req.Username, map[string]interface{}{"game_id": req.GameID, "winner": resp.Game.Winner})
	}
	return &types.GameResp{Game: resp.Game}, nil
}

func (l *GameLogic) PlayTiebreaker(req *types.PlayTiebreakerReq) (*types.GameResp, error) {
	resp, err := l.svcCtx.Persistence.PlayTiebreaker(l.ctx, &persistenceapi.PlayTiebreakerReq{
		GameID: req.GameID, Username: req.Username,
	})
	if err != nil {
		return nil, err
	}
	if resp.Game.Status.Terminal() {
		l.audit("game_completed", &req.Username, map[string]interface{}{"game_id": req.GameID, "winner": resp.Game.Winner})
	}
	return &types.GameResp{Game: resp.Game}, nil
}

func (l *GameLogic) GetHistory(req *types.GameIDReq) (*types.HistoryResp, error) {
	resp, err := l.svcCtx.Persistence.GetHistory(l.ctx, req.GameID)
	if err != nil {
		return nil, err
	}
	return &types.HistoryResp{Snapshot: resp.Snapshot}, nil
}

func (l *GameLogic) audit(action string, actor *string, details map[string]interface{}) {
	if err := l.svcCtx.Persistence.AppendLog(l.ctx, &persistenceapi.AppendLogReq{
		Action: action, Actor: actor, Details: details,
	}); err != nil {
		l.Logger.Errorf("audit log (best-effort): %v", err)
	}
}
