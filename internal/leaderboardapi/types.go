// Package leaderboardapi holds the wire contract for the Leaderboard /
// Reporting service (C5), shared by every other service that calls it
// through internal/trustplane.Client — the Ingress Gateway (C7). Mirrors
// services/leaderboard/internal/types field-for-field for the same reason
// internal/persistenceapi, internal/cardsapi, and internal/gameapi do.
package leaderboardapi

import "time"

const (
	BasePath = "/internal/leaderboard"

	PathGlobal = BasePath + "/global"
	PathPlayer = BasePath + "/player"
	PathRecent = BasePath + "/recent"
	PathSearch = BasePath + "/search"
)

type Row struct {
	Username string  `json:"username"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Ties     int     `json:"ties"`
	Total    int     `json:"total"`
	Ratio    float64 `json:"ratio"`
}

type GlobalReq struct {
	Limit int `json:"limit,omitempty"`
}

type GlobalResp struct {
	Rows []Row `json:"rows"`
}

type UsernameReq struct {
	Username string `json:"username"`
}

// RecentGameSummary mirrors persistenceapi.RecentGameSummary, which the
// leaderboard service's RecentGames/PlayerStats handlers forward verbatim.
type RecentGameSummary struct {
	GameID      string    `json:"game_id"`
	Player1     string    `json:"player1"`
	Player2     string    `json:"player2"`
	Winner      *string   `json:"winner,omitempty"`
	WasTie      bool      `json:"was_tie"`
	TurnsPlayed int       `json:"turns_played"`
	ArchivedAt  time.Time `json:"archived_at"`
}

type PlayerStatsResp struct {
	Row         Row                 `json:"row"`
	RecentGames []RecentGameSummary `json:"recent_games"`
}

type RecentGamesResp struct {
	Games []RecentGameSummary `json:"games"`
}

type SearchReq struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// ArchivedGameDoc is the Meilisearch-hit shape Search returns — string-typed
// timestamp since it comes back through a search index document, not a SQL
// row.
type ArchivedGameDoc struct {
	GameID      string `json:"game_id"`
	Player1     string `json:"player1"`
	Player2     string `json:"player2"`
	Winner      string `json:"winner,omitempty"`
	WasTie      bool   `json:"was_tie"`
	TurnsPlayed int    `json:"turns_played"`
	ArchivedAt  string `json:"archived_at"`
}

type SearchResp struct {
	Games []ArchivedGameDoc `json:"games"`
}
