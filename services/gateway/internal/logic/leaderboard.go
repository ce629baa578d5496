package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/services/gateway/internal/svc"
	"github.com/arenaforge/duel-server/services/gateway/internal/types"
)

type LeaderboardLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewLeaderboardLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LeaderboardLogic {
	return &LeaderboardLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *LeaderboardLogic) Global(req *types.GlobalReq) (*types.GlobalResp, error) {
	resp, err := l.svcCtx.Leaderboard.Global(l.ctx, req.Limit)
	if err != nil {
		return nil, err
	}
	return &types.GlobalResp{Rows: resp.Rows}, nil
}

func (l *LeaderboardLogic) PlayerStats(req *types.PlayerNameReq) (*types.PlayerStatsResp, error) {
	resp, err := l.svcCtx.Leaderboard.PlayerStats(l.ctx, req.Name)
	if err != nil {
		return nil, err
	}
	return &types.PlayerStatsResp{Row: resp.Row, RecentGames: resp.RecentGames}, nil
}
