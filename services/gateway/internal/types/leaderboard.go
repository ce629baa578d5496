package types

import "github.com/arenaforge/duel-server/internal/leaderboardapi"

type GlobalReq struct {
	Limit int `form:"limit,optional"`
}

type GlobalResp struct {
	Rows []leaderboardapi.Row `json:"rows"`
}

type PlayerNameReq struct {
	Name string `path:"name"`
}

type PlayerStatsResp struct {
	Row         leaderboardapi.Row                 `json:"row"`
	RecentGames []leaderboardapi.RecentGameSummary `json:"recent_games"`
}
