package logic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/services/persistence/internal/store"
	"github.com/arenaforge/duel-server/services/persistence/internal/svc"
	"github.com/arenaforge/duel-server/services/persistence/internal/types"
)

// leaderboardCacheTTLSecs bounds staleness of the cached global leaderboard;
// wins/losses only change when a game archives, so a short TTL trades a
// little staleness for far fewer "WITH participants AS (...)" scans under
// load.
const leaderboardCacheTTLSecs = 30

type LeaderboardLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewLeaderboardLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LeaderboardLogic {
	return &LeaderboardLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *LeaderboardLogic) Global(limit int) (*types.LeaderboardResp, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	cacheKey := fmt.Sprintf("leaderboard:global:%d", limit)
	if cached, err := l.svcCtx.Redis.GetCtx(l.ctx, cacheKey); err == nil && cached != "" {
		var resp types.LeaderboardResp
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	rows, err := l.svcCtx.Store.Leaderboard(l.ctx, limit)
	if err != nil {
		return nil, apierr.Internalf("leaderboard: %v", err)
	}
	resp := &types.LeaderboardResp{Rows: rows}

	if b, err := json.Marshal(resp); err == nil {
		if err := l.svcCtx.Redis.SetexCtx(l.ctx, cacheKey, string(b), leaderboardCacheTTLSecs); err != nil {
			l.Logger.Errorf("leaderboard cache write: %v", err)
		}
	}
	return resp, nil
}

func (l *LeaderboardLogic) PlayerStats(req *types.UsernameReq) (*types.PlayerStatsResp, error) {
	row, err := l.svcCtx.Store.PlayerStats(l.ctx, req.Username)
	if err == store.ErrNotFound {
		return nil, apierr.NotFoundf("no recorded games for %s", req.Username)
	}
	if err != nil {
		return nil, apierr.Internalf("player stats: %v", err)
	}
	return &types.PlayerStatsResp{Row: row}, nil
}

func (l *LeaderboardLogic) RecentGames(req *types.UsernameReq) (*types.RecentGamesResp, error) {
	rows, err := l.svcCtx.Store.ListRecentGamesFor(l.ctx, req.Username, 20)
	if err != nil {
		return nil, apierr.Internalf("recent games: %v", err)
	}
	return &types.RecentGamesResp{Games: store.Summarize(rows)}, nil
}
