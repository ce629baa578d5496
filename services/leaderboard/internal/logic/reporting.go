package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/arenaforge/duel-server/internal/persistenceapi"
	"github.com/arenaforge/duel-server/services/leaderboard/internal/svc"
	"github.com/arenaforge/duel-server/services/leaderboard/internal/types"
	"github.com/arenaforge/duel-server/third_party/search"
)

// ReportingLogic implements §4.5: every figure it returns is derived from
// archived games already aggregated by the Persistence Adapter's SQL —
// this service adds the win-ratio computation the raw row doesn't carry,
// and a best-effort Meilisearch index of archived-game summaries for the
// "recent games" search extension SPEC_FULL.md adds. There being no
// message bus between C1 and C5, the index is kept warm lazily: every
// RecentGames/PlayerStats read that touches persistence also upserts what
// it saw, rather than requiring a separate event-driven indexer.
type ReportingLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	Logger logx.Logger
}

func NewReportingLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ReportingLogic {
	return &ReportingLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func withRatio(row persistenceapi.LeaderboardRow) types.Row {
	total := row.Wins + row.Losses + row.Ties
	ratio := 0.0
	if total > 0 {
		ratio = float64(row.Wins) / float64(total)
	}
	return types.Row{
		Username: row.Username, Wins: row.Wins, Losses: row.Losses, Ties: row.Ties,
		Total: total, Ratio: ratio,
	}
}

func (l *ReportingLogic) Global(req *types.GlobalReq) (*types.GlobalResp, error) {
	resp, err := l.svcCtx.Persistence.Leaderboard(l.ctx, req.Limit)
	if err != nil {
		return nil, err
	}
	rows := make([]types.Row, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		rows = append(rows, withRatio(r))
	}
	return &types.GlobalResp{Rows: rows}, nil
}

func (l *ReportingLogic) PlayerStats(req *types.UsernameReq) (*types.PlayerStatsResp, error) {
	statResp, err := l.svcCtx.Persistence.PlayerStats(l.ctx, req.Username)
	if err != nil {
		return nil, err
	}
	recentResp, err := l.svcCtx.Persistence.RecentGames(l.ctx, req.Username)
	if err != nil {
		return nil, err
	}
	l.indexGames(recentResp.Games)
	return &types.PlayerStatsResp{
		Row:         withRatio(*statResp.Row),
		RecentGames: recentResp.Games,
	}, nil
}

func (l *ReportingLogic) RecentGames(req *types.UsernameReq) (*types.RecentGamesResp, error) {
	resp, err := l.svcCtx.Persistence.RecentGames(l.ctx, req.Username)
	if err != nil {
		return nil, err
	}
	l.indexGames(resp.Games)
	return &types.RecentGamesResp{Games: resp.Games}, nil
}

// Search serves the "recent games" search extension over whatever has been
// indexed so far. A nil Search client (no Meilisearch configured) yields an
// empty result set rather than an error — this operation is additive, not
// load-bearing, per SPEC_FULL.md §2A.
func (l *ReportingLogic) Search(req *types.SearchReq) (*types.SearchResp, error) {
	if l.svcCtx.Search == nil {
		return &types.SearchResp{Games: []types.ArchivedGameDoc{}}, nil
	}
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	result, err := l.svcCtx.Search.Search(search.ArchivedGamesIndex, req.Query, limit)
	if err != nil {
		l.Logger.Errorf("archived game search: %v", err)
		return &types.SearchResp{Games: []types.ArchivedGameDoc{}}, nil
	}

	games := make([]types.ArchivedGameDoc, 0, len(result.Hits))
	for _, hit := range result.Hits {
		doc, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		games = append(games, docFromHit(doc))
	}
	return &types.SearchResp{Games: games}, nil
}

func docFromHit(hit map[string]interface{}) types.ArchivedGameDoc {
	str := func(key string) string {
		v, _ := hit[key].(string)
		return v
	}
	boolVal, _ := hit["was_tie"].(bool)
	turns, _ := hit["turns_played"].(float64)
	return types.ArchivedGameDoc{
		GameID: str("game_id"), Player1: str("player1"), Player2: str("player2"),
		Winner: str("winner"), WasTie: boolVal, TurnsPlayed: int(turns),
		ArchivedAt: str("archived_at"),
	}
}

func (l *ReportingLogic) indexGames(games []persistenceapi.RecentGameSummary) {
	if l.svcCtx.Search == nil || len(games) == 0 {
		return
	}
	docs := make([]types.ArchivedGameDoc, 0, len(games))
	for _, g := range games {
		winner := ""
		if g.Winner != nil {
			winner = *g.Winner
		}
		docs = append(docs, types.ArchivedGameDoc{
			GameID: g.GameID, Player1: g.Player1, Player2: g.Player2, Winner: winner,
			WasTie: g.WasTie, TurnsPlayed: g.TurnsPlayed, ArchivedAt: g.ArchivedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	if err := l.svcCtx.Search.AddDocuments(search.ArchivedGamesIndex, docs); err != nil {
		l.Logger.Errorf("index archived games (best-effort): %v", err)
	}
}
