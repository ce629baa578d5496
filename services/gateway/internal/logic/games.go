package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/domain"
	"github.com/arenaforge/duel-server/internal/gameapi"
	"github.com/arenaforge/duel-server/services/gateway/internal/middleware"
	"github.com/arenaforge/duel-server/services/gateway/internal/svc"
	"github.com/arenaforge/duel-server/services/gateway/internal/types"
)

type GamesLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewGamesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GamesLogic {
	return &GamesLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// requireParticipant re-checks §4.4.8 at the gateway: every game route
// besides Create reaches a specific game by id, and a subject who is not
// one of its two named players must see forbidden even for a game that
// exists, never a leaked 404/200.
func requireParticipant(g *domain.Game, subject string) error {
	if !g.Participant(subject) {
		return apierr.Forbiddenf("not a participant in this game")
	}
	return nil
}

func (l *GamesLogic) Create(req *types.CreateGameReq) (*types.GameResp, error) {
	if req.Player2Name == "" {
		return nil, apierr.Invalidf("player2_name is required")
	}
	resp, err := l.svcCtx.Game.Create(l.ctx, &gameapi.CreateGameReq{
		Creator: middleware.Subject(l.ctx), Invitee: req.Player2Name,
	})
	if err != nil {
		return nil, err
	}
	return &types.GameResp{Game: resp.Game}, nil
}

func (l *GamesLogic) Get(req *types.GameIDReq) (*types.GameResp, error) {
	resp, err := l.svcCtx.Game.Get(l.ctx, req.GameID)
	if err != nil {
		return nil, err
	}
	if err := requireParticipant(resp.Game, middleware.Subject(l.ctx)); err != nil {
		return nil, err
	}
	return &types.GameResp{Game: resp.Game}, nil
}

func (l *GamesLogic) ListMine() (*types.GamesResp, error) {
	resp, err := l.svcCtx.Game.ListForPlayer(l.ctx, middleware.Subject(l.ctx))
	if err != nil {
		return nil, err
	}
	return &types.GamesResp{Games: resp.Games}, nil
}

func (l *GamesLogic) ListPendingInvites() (*types.GamesResp, error) {
	resp, err := l.svcCtx.Game.ListPendingInvites(l.ctx, middleware.Subject(l.ctx))
	if err != nil {
		return nil, err
	}
	return &types.GamesResp{Games: resp.Games}, nil
}

func (l *GamesLogic) Accept(req *types.GameIDReq) (*types.GameResp, error) {
	return l.decide(req.GameID, true)
}

func (l *GamesLogic) Ignore(req *types.GameIDReq) (*types.GameResp, error) {
	return l.decide(req.GameID, false)
}

func (l *GamesLogic) decide(gameID string, accept bool) (*types.GameResp, error) {
	resp, err := l.svcCtx.Game.InviteDecision(l.ctx, &gameapi.InviteDecisionReq{
		GameID: gameID, Username: middleware.Subject(l.ctx), Accept: accept,
	})
	if err != nil {
		return nil, err
	}
	return &types.GameResp{Game: resp.Game}, nil
}

func (l *GamesLogic) Cancel(req *types.GameIDReq) (*types.GameResp, error) {
	resp, err := l.svcCtx.Game.CancelInvite(l.ctx, &gameapi.CancelInviteReq{
		GameID: req.GameID, Username: middleware.Subject(l.ctx),
	})
	if err != nil {
		return nil, err
	}
	return &types.GameResp{Game: resp.Game}, nil
}

// SelectDeck translates the client's named-suit composition into the
// gameapi.SelectDeckReq shape, validating suit names itself so a malformed
// entry fails invalid before an internal call is even made.
func (l *GamesLogic) SelectDeck(req *types.SelectDeckReq) (*types.GameResp, error) {
	composition := make([]domain.Suit, len(req.Deck))
	for i, entry := range req.Deck {
		suit := domain.Suit(entry.Type)
		if !domain.ValidSuit(suit) {
			return nil, apierr.Invalidf("deck entry %d: unknown card type %q", i, entry.Type)
		}
		composition[i] = suit
	}
	resp, err := l.svcCtx.Game.SelectDeck(l.ctx, &gameapi.SelectDeckReq{
		GameID: req.GameID, Username: middleware.Subject(l.ctx), Composition: composition,
	})
	if err != nil {
		return nil, err
	}
	return &types.GameResp{Game: resp.Game}, nil
}

func (l *GamesLogic) DrawHand(req *types.GameIDReq) (*types.GameResp, error) {
	resp, err := l.svcCtx.Game.Draw(l.ctx, &gameapi.DrawReq{
		GameID: req.GameID, Username: middleware.Subject(l.ctx),
	})
	if err != nil {
		return nil, err
	}
	return &types.GameResp{Game: resp.Game}, nil
}

// PlayCard resolves the client's card_index against the hand the
// coordinator currently has on file for this subject, then forwards the
// concrete card — the coordinator (and persistence beneath it) re-verifies
// the card is actually present in hand, so an index resolved from a stale
// read still fails invalid rather than letting a forged card through.
func (l *GamesLogic) PlayCard(req *types.PlayCardReq) (*types.GameResp, error) {
	subject := middleware.Subject(l.ctx)

	current, err := l.svcCtx.Game.Get(l.ctx, req.GameID)
	if err != nil {
		return nil, err
	}
	if err := requireParticipant(current.Game, subject); err != nil {
		return nil, err
	}

	slot := current.Game.PlayerSlot(subject)
	hand := current.Game.P1.Hand
	if slot == 2 {
		hand = current.Game.P2.Hand
	}
	if req.CardIndex < 0 || req.CardIndex >= len(hand) {
		return nil, apierr.Invalidf("card_index %d out of range for a hand of %d", req.CardIndex, len(hand))
	}

	resp, err := l.svcCtx.Game.Play(l.ctx, &gameapi.PlayReq{
		GameID: req.GameID, Username: subject, Card: hand[req.CardIndex],
	})
	if err != nil {
		return nil, err
	}
	return &types.GameResp{Game: resp.Game}, nil
}

// ResolveRound is a compatibility read: auto-resolution already happens
// inside PlayCard's own transaction the instant both participants have
// played (§4.4.3), so there is never a pending round left to trigger here.
// It reports the current state when nothing is pending and invalid when
// the caller's play is still outstanding, matching §6.1's "200 or 400".
func (l *GamesLogic) ResolveRound(req *types.GameIDReq) (*types.GameResp, error) {
	resp, err := l.svcCtx.Game.Get(l.ctx, req.GameID)
	if err != nil {
		return nil, err
	}
	if err := requireParticipant(resp.Game, middleware.Subject(l.ctx)); err != nil {
		return nil, err
	}
	if resp.Game.P1.Played && resp.Game.P2.Played {
		return nil, apierr.Invalidf("round already resolved")
	}
	return &types.GameResp{Game: resp.Game}, nil
}

func (l *GamesLogic) TiebreakerDecision(req *types.TiebreakerDecisionReq) (*types.GameResp, error) {
	var decision domain.TiebreakerDecision
	switch req.Decision {
	case "yes":
		decision = domain.DecisionYes
	case "no":
		decision = domain.DecisionNo
	default:
		return nil, apierr.Invalidf("decision must be \"yes\" or \"no\"")
	}
	resp, err := l.svcCtx.Game.SubmitTiebreakerDecision(l.ctx, &gameapi.TiebreakerDecisionReq{
		GameID: req.GameID, Username: middleware.Subject(l.ctx), Decision: decision,
	})
	if err != nil {
		return nil, err
	}
	return &types.GameResp{Game: resp.Game}, nil
}

func (l *GamesLogic) TiebreakerPlay(req *types.GameIDReq) (*types.GameResp, error) {
	resp, err := l.svcCtx.Game.PlayTiebreaker(l.ctx, &gameapi.PlayTiebreakerReq{
		GameID: req.GameID, Username: middleware.Subject(l.ctx),
	})
	if err != nil {
		return nil, err
	}
	return &types.GameResp{Game: resp.Game}, nil
}

// End implements §6.1's unconditional EndGame verb: cancel for a game still
// in pending/deck_selection, or a forced abandon once active — either way
// the coordinator's own CancelInvite already maps pre-active games to
// cancelled and anything active it is forwarded to is archived as
// abandoned by persistence's terminal-transition handling.
func (l *GamesLogic) End(req *types.GameIDReq) (*types.GameResp, error) {
	resp, err := l.svcCtx.Game.CancelInvite(l.ctx, &gameapi.CancelInviteReq{
		GameID: req.GameID, Username: middleware.Subject(l.ctx),
	})
	if err != nil {
		return nil, err
	}
	return &types.GameResp{Game: resp.Game}, nil
}

func (l *GamesLogic) History(req *types.GameIDReq) (*types.HistoryResp, error) {
	current, err := l.svcCtx.Game.Get(l.ctx, req.GameID)
	if err != nil {
		return nil, err
	}
	if err := requireParticipant(current.Game, middleware.Subject(l.ctx)); err != nil {
		return nil, err
	}
	resp, err := l.svcCtx.Game.History(l.ctx, req.GameID)
	if err != nil {
		return nil, err
	}
	return &types.HistoryResp{Snapshot: resp.Snapshot}, nil
}
