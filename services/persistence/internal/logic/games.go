package logic

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/cryptoutil"
	"github.com/arenaforge/duel-server/internal/domain"
	"github.com/arenaforge/duel-server/services/persistence/internal/store"
	"github.com/arenaforge/duel-server/services/persistence/internal/svc"
	"github.com/arenaforge/duel-server/services/persistence/internal/types"
)

type GameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GameLogic {
	return &GameLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *GameLogic) Create(req *types.CreateGameReq) (*types.GameResp, error) {
	g := &domain.Game{
		Player1: req.Player1,
		Player2: req.Player2,
		Status:  domain.StatusPending,
		Turn:    1,
	}
	if err := l.svcCtx.Store.CreateGame(l.ctx, g); err != nil {
		return nil, apierr.Internalf("create game: %v", err)
	}
	return &types.GameResp{Game: g}, nil
}

func (l *GameLogic) Get(req *types.GameIDReq) (*types.GameResp, error) {
	id, err := uuid.Parse(req.GameID)
	if err != nil {
		return nil, apierr.Invalidf("malformed game id")
	}
	g, err := l.svcCtx.Store.GetGame(l.ctx, id)
	if err == store.ErrNotFound {
		return nil, apierr.NotFoundf("game %s not found", req.GameID)
	}
	if err != nil {
		return nil, apierr.Internalf("get game: %v", err)
	}
	return &types.GameResp{Game: g}, nil
}

func (l *GameLogic) ListForPlayer(req *types.UsernameReq) (*types.GamesResp, error) {
	games, err := l.svcCtx.Store.ListGamesForPlayer(l.ctx, req.Username, 100)
	if err != nil {
		return nil, apierr.Internalf("list games: %v", err)
	}
	return &types.GamesResp{Games: games}, nil
}

func (l *GameLogic) ListPendingInvites(req *types.UsernameReq) (*types.GamesResp, error) {
	games, err := l.svcCtx.Store.ListPendingInvitesFor(l.ctx, req.Username)
	if err != nil {
		return nil, apierr.Internalf("list invites: %v", err)
	}
	return &types.GamesResp{Games: games}, nil
}

// mutate is the load-FOR-UPDATE/mutate/store building block every
// transition below uses: the whole read-compute-write sequence runs inside
// one database transaction, so concurrent draw/play calls on the same game
// serialize on the row lock rather than racing (§5). Mutation errors that
// are already classified *apierr.Error pass through; anything else is
// wrapped internal.
func (l *GameLogic) mutate(idStr string, fn func(g *domain.Game) error) (*domain.Game, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, apierr.Invalidf("malformed game id")
	}
	g, err := l.svcCtx.Store.MutateGame(l.ctx, id, fn)
	if err == store.ErrNotFound {
		return nil, apierr.NotFoundf("game %s not found", idStr)
	}
	if classified, ok := err.(*apierr.Error); ok {
		return nil, classified
	}
	if err != nil {
		return nil, apierr.Internalf("mutate game: %v", err)
	}
	return g, nil
}

func requireParticipant(g *domain.Game, username string) error {
	if !g.Participant(username) {
		return apierr.Forbiddenf("%s is not a participant in this game", username)
	}
	return nil
}

// InviteDecision handles the invited player's accept/ignore response to a
// pending invite (§4.4.1).
func (l *GameLogic) InviteDecision(req *types.InviteDecisionReq) (*types.GameResp, error) {
	g, err := l.mutate(req.GameID, func(g *domain.Game) error {
		if g.Player2 != req.Username {
			return apierr.Forbiddenf("%s cannot respond to this invite", req.Username)
		}
		if g.Status != domain.StatusPending {
			return apierr.Conflictf("invite is no longer pending")
		}
		if req.Accept {
			g.Status = domain.StatusDeckSelection
		} else {
			g.Status = domain.StatusIgnored
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if g.Status.Terminal() {
		_ = l.svcCtx.Store.ArchiveGame(l.ctx, g, l.svcCtx.HistoryCipher)
	}
	return &types.GameResp{Game: g}, nil
}

// CancelInvite lets either the inviter withdraw, or either participant
// abandon a game still in progress, per §4.4.1/§4.4.6.
func (l *GameLogic) CancelInvite(req *types.CancelInviteReq) (*types.GameResp, error) {
	g, err := l.mutate(req.GameID, func(g *domain.Game) error {
		if err := requireParticipant(g, req.Username); err != nil {
			return err
		}
		if g.Status.Terminal() {
			return apierr.Conflictf("game has already ended")
		}
		if g.Status == domain.StatusPending {
			g.Status = domain.StatusCancelled
		} else {
			g.Status = domain.StatusAbandoned
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if g.Status.Terminal() {
		_ = l.svcCtx.Store.ArchiveGame(l.ctx, g, l.svcCtx.HistoryCipher)
	}
	return &types.GameResp{Game: g}, nil
}

// SelectDeck stores a participant's already-materialized deck (see
// types.SelectDeckReq) and advances to active once both participants have
// selected (§4.4.2).
func (l *GameLogic) SelectDeck(req *types.SelectDeckReq) (*types.GameResp, error) {
	g, err := l.mutate(req.GameID, func(g *domain.Game) error {
		if err := requireParticipant(g, req.Username); err != nil {
			return err
		}
		if g.Status != domain.StatusDeckSelection {
			return apierr.Conflictf("game is not awaiting deck selection")
		}
		if len(req.Deck) != domain.DeckSize {
			return apierr.Invalidf("deck must contain exactly %d cards", domain.DeckSize)
		}
		slot := g.PlayerSlot(req.Username)
		st := &g.P1
		if slot == 2 {
			st = &g.P2
		}
		if len(st.Deck) == domain.DeckSize {
			return apierr.Invalidf("deck already selected")
		}
		st.Deck = req.Deck
		if len(g.P1.Deck) == domain.DeckSize && len(g.P2.Deck) == domain.DeckSize {
			g.Status = domain.StatusActive
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &types.GameResp{Game: g}, nil
}

// Draw deals a participant's hand for the current turn (§4.4.3 step 1).
func (l *GameLogic) Draw(req *types.DrawReq) (*types.GameResp, error) {
	g, err := l.mutate(req.GameID, func(g *domain.Game) error {
		if err := requireParticipant(g, req.Username); err != nil {
			return err
		}
		if g.Status != domain.StatusActive {
			return apierr.Conflictf("game is not active")
		}
		slot := g.PlayerSlot(req.Username)
		st := &g.P1
		if slot == 2 {
			st = &g.P2
		}
		if st.Drawn {
			return apierr.Invalidf("already drawn this turn")
		}
		remaining, hand := domain.DrawUpTo(st.Deck, domain.HandDrawSize)
		st.Deck, st.Hand, st.Drawn = remaining, hand, true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &types.GameResp{Game: g}, nil
}

// Play records a participant's card for this turn and, once both
// participants have played, auto-resolves the round inside the same
// transaction (§4.4.3 steps 2-3).
func (l *GameLogic) Play(req *types.PlayReq) (*types.GameResp, error) {
	g, err := l.mutate(req.GameID, func(g *domain.Game) error {
		if err := requireParticipant(g, req.Username); err != nil {
			return err
		}
		if g.Status != domain.StatusActive {
			return apierr.Conflictf("game is not active")
		}
		slot := g.PlayerSlot(req.Username)
		st := &g.P1
		if slot == 2 {
			st = &g.P2
		}
		if !st.Drawn {
			return apierr.Invalidf("must draw before playing")
		}
		if st.Played {
			return apierr.Invalidf("already played this turn")
		}
		found := false
		for i, c := range st.Hand {
			if c == req.Card {
				st.Hand = append(st.Hand[:i], st.Hand[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return apierr.Invalidf("card is not in hand")
		}
		card := req.Card
		st.PlayedCard = &card
		st.Played = true

		g.ResolveRoundAuto()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if g.Status.Terminal() {
		_ = l.svcCtx.Store.ArchiveGame(l.ctx, g, l.svcCtx.HistoryCipher)
	}
	return &types.GameResp{Game: g}, nil
}

// SubmitTiebreakerDecision records a participant's yes/no answer to playing
// the sudden-death tiebreaker round (§4.4.5).
func (l *GameLogic) SubmitTiebreakerDecision(req *types.TiebreakerDecisionReq) (*types.GameResp, error) {
	g, err := l.mutate(req.GameID, func(g *domain.Game) error {
		if err := requireParticipant(g, req.Username); err != nil {
			return err
		}
		if !g.AwaitingTiebreaker {
			return apierr.Conflictf("game is not awaiting a tiebreaker decision")
		}
		g.SubmitTiebreakerDecision(g.PlayerSlot(req.Username), req.Decision)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if g.Status.Terminal() {
		_ = l.svcCtx.Store.ArchiveGame(l.ctx, g, l.svcCtx.HistoryCipher)
	}
	return &types.GameResp{Game: g}, nil
}

// PlayTiebreaker plays the final sudden-death round once both participants
// have agreed to (§4.4.5).
func (l *GameLogic) PlayTiebreaker(req *types.PlayTiebreakerReq) (*types.GameResp, error) {
	g, err := l.mutate(req.GameID, func(g *domain.Game) error {
		if err := requireParticipant(g, req.Username); err != nil {
			return err
		}
		if g.Status.Terminal() {
			return apierr.Conflictf("game history is archived and cannot be modified")
		}
		if !g.ReadyForTiebreakerPlay() {
			return apierr.Conflictf("both participants must agree to the tiebreaker first")
		}
		g.PlayTiebreaker()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if g.Status.Terminal() {
		_ = l.svcCtx.Store.ArchiveGame(l.ctx, g, l.svcCtx.HistoryCipher)
	}
	return &types.GameResp{Game: g}, nil
}

func (l *GameLogic) Archive(req *types.ArchiveGameReq) error {
	id, err := uuid.Parse(req.GameID)
	if err != nil {
		return apierr.Invalidf("malformed game id")
	}
	g, err := l.svcCtx.Store.GetGame(l.ctx, id)
	if err == store.ErrNotFound {
		return apierr.NotFoundf("game %s not found", req.GameID)
	}
	if err != nil {
		return apierr.Internalf("get game: %v", err)
	}
	if !g.Status.Terminal() {
		return apierr.Invalidf("game %s is not in a terminal state", req.GameID)
	}
	if err := l.svcCtx.Store.ArchiveGame(l.ctx, g, l.svcCtx.HistoryCipher); err != nil {
		return apierr.Internalf("archive game: %v", err)
	}
	return nil
}

func (l *GameLogic) GetHistory(req *types.GameIDReq) (*types.HistoryResp, error) {
	id, err := uuid.Parse(req.GameID)
	if err != nil {
		return nil, apierr.Invalidf("malformed game id")
	}
	snapshot, err := l.svcCtx.Store.GetHistory(l.ctx, id, l.svcCtx.HistoryCipher)
	if err == store.ErrNotFound {
		return nil, apierr.NotFoundf("no archived history for game %s", req.GameID)
	}
	if errors.Is(err, cryptoutil.ErrIntegrityViolation) {
		return nil, apierr.New(apierr.IntegrityViolation, "archived game history failed integrity verification")
	}
	if err != nil {
		return nil, apierr.Internalf("get history: %v", err)
	}
	return &types.HistoryResp{Snapshot: snapshot}, nil
}
