package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/domain"
	"github.com/arenaforge/duel-server/services/cards/internal/svc"
	"github.com/arenaforge/duel-server/services/cards/internal/types"
)

type CatalogueLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewCatalogueLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CatalogueLogic {
	return &CatalogueLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// ListAll implements §4.2's list-all operation.
func (l *CatalogueLogic) ListAll(*types.ListAllReq) (*types.ListAllResp, error) {
	return &types.ListAllResp{Cards: domain.Catalogue()}, nil
}

// ListBySuit implements §4.2's list-by-suit operation.
func (l *CatalogueLogic) ListBySuit(req *types.ListBySuitReq) (*types.ListBySuitResp, error) {
	suit := domain.Suit(req.Suit)
	if !domain.ValidSuit(suit) {
		return nil, apierr.Invalidf("unknown suit %q", req.Suit)
	}
	return &types.ListBySuitResp{Cards: domain.CatalogueBySuit(suit)}, nil
}

// GetByID implements §4.2's get-by-id operation.
func (l *CatalogueLogic) GetByID(req *types.GetByIDReq) (*types.GetByIDResp, error) {
	card, err := domain.ParseCardID(req.ID)
	if err != nil {
		return nil, apierr.NotFoundf("no card with id %q", req.ID)
	}
	return &types.GetByIDResp{Card: card}, nil
}

// RandomDeck implements §4.2's random-deck(size) operation: samples without
// replacement from the 39-card pool, failing invalid if size exceeds it.
func (l *CatalogueLogic) RandomDeck(req *types.RandomDeckReq) (*types.RandomDeckResp, error) {
	if req.Size < 1 || req.Size > 50 {
		return nil, apierr.Invalidf("deck size must be between 1 and 50")
	}
	cards, err := domain.RandomDeck(req.Size)
	if err != nil {
		return nil, apierr.Invalidf("%v", err)
	}
	return &types.RandomDeckResp{Cards: cards}, nil
}

// RandomCard implements the per-suit draw the game coordinator (C4) uses to
// materialize a player's deck-selection composition (§4.4.2): one random
// card of the requested suit.
func (l *CatalogueLogic) RandomCard(req *types.RandomCardReq) (*types.RandomCardResp, error) {
	suit := domain.Suit(req.Suit)
	if !domain.ValidSuit(suit) {
		return nil, apierr.Invalidf("unknown suit %q", req.Suit)
	}
	card, err := domain.RandomCardOfSuit(suit)
	if err != nil {
		return nil, apierr.Internalf("%v", err)
	}
	return &types.RandomCardResp{Card: card}, nil
}

// Stats implements §4.2's derived statistics read.
func (l *CatalogueLogic) Stats(*types.StatsReq) (*types.StatsResp, error) {
	return &types.StatsResp{Stats: domain.Stats()}, nil
}
