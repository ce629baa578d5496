package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/services/gateway/internal/svc"
	"github.com/arenaforge/duel-server/services/gateway/internal/types"
)

type CardsLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewCardsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CardsLogic {
	return &CardsLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *CardsLogic) ListAll() (*types.CardListResp, error) {
	resp, err := l.svcCtx.Cards.ListAll(l.ctx)
	if err != nil {
		return nil, err
	}
	return &types.CardListResp{Cards: resp.Cards}, nil
}

func (l *CardsLogic) ListBySuit(req *types.CardsBySuitReq) (*types.CardListResp, error) {
	resp, err := l.svcCtx.Cards.ListBySuit(l.ctx, req.Suit)
	if err != nil {
		return nil, err
	}
	return &types.CardListResp{Cards: resp.Cards}, nil
}

func (l *CardsLogic) GetByID(req *types.CardByIDReq) (*types.CardResp, error) {
	resp, err := l.svcCtx.Cards.GetByID(l.ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &types.CardResp{Card: resp.Card}, nil
}

func (l *CardsLogic) RandomDeck(req *types.RandomDeckReq) (*types.RandomDeckResp, error) {
	resp, err := l.svcCtx.Cards.RandomDeck(l.ctx, req.Size)
	if err != nil {
		return nil, err
	}
	return &types.RandomDeckResp{Cards: resp.Cards}, nil
}
