// Package types holds the wire request/response shapes for the
// persistence service's internal HTTP surface (§6A).
package types

import (
	"github.com/arenaforge/duel-server/internal/domain"
	"github.com/arenaforge/duel-server/services/persistence/internal/store"
)

type CreateAccountReq struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

type AccountResp struct {
	Account *domain.Account `json:"account"`
}

type RecordFailedLoginReq struct {
	Username    string `json:"username"`
	MaxAttempts int    `json:"max_attempts"`
	LockForSecs int     `json:"lock_for_secs"`
}

type UpdateProfileReq struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	Visible     bool   `json:"visible"`
}

type ListAccountsReq struct {
	Limit  int `json:"limit,optional"`
	Offset int `json:"offset,optional"`
}

type ListAccountsResp struct {
	Accounts []domain.Account `json:"accounts"`
}

type UpdatePasswordHashReq struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

type SetEnabledReq struct {
	Username string `json:"username"`
	Enabled  bool   `json:"enabled"`
}

type CreateRefreshCredentialReq struct {
	AccountID string        `json:"account_id"`
	TokenHash string        `json:"token_hash"`
	Device    string        `json:"device"`
	UserAgent string        `json:"user_agent"`
	IP        string        `json:"ip"`
	TTLSecs   int64          `json:"ttl_secs"`
}

type RefreshCredentialResp struct {
	Credential *domain.RefreshCredential `json:"credential"`
}

type TokenHashReq struct {
	TokenHash string `json:"token_hash"`
}

type CredentialIDReq struct {
	ID string `json:"id"`
}

type AccountIDReq struct {
	AccountID string `json:"account_id"`
}

type CreateGameReq struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

type GameResp struct {
	Game *domain.Game `json:"game"`
}

type GamesResp struct {
	Games []*domain.Game `json:"games"`
}

type GameIDReq struct {
	GameID string `json:"game_id"`
}

type UsernameReq struct {
	Username string `json:"username"`
}

type ArchiveGameReq struct {
	GameID string `json:"game_id"`
}

type HistoryResp struct {
	Snapshot *domain.Snapshot `json:"snapshot"`
}

type RecentGamesResp struct {
	Games []store.RecentGameSummary `json:"games"`
}

type LeaderboardReq struct {
	Limit int `json:"limit,optional"`
}

type LeaderboardResp struct {
	Rows []store.LeaderboardRow `json:"rows"`
}

type PlayerStatsResp struct {
	Row *store.LeaderboardRow `json:"row"`
}

type InviteDecisionReq struct {
	GameID   string `json:"game_id"`
	Username string `json:"username"`
	Accept   bool   `json:"accept"`
}

type CancelInviteReq struct {
	GameID   string `json:"game_id"`
	Username string `json:"username"`
}

// SelectDeckReq carries an already-materialized deck: the card catalogue
// service (C3) turns the client's chosen suit composition into concrete
// cards, and the game coordinator (C4) hands the result to persistence for
// atomic storage — sampling is not a database concern.
type SelectDeckReq struct {
	GameID   string        `json:"game_id"`
	Username string        `json:"username"`
	Deck     []domain.Card `json:"deck"`
}

type DrawReq struct {
	GameID   string `json:"game_id"`
	Username string `json:"username"`
}

type PlayReq struct {
	GameID   string      `json:"game_id"`
	Username string      `json:"username"`
	Card     domain.Card `json:"card"`
}

type TiebreakerDecisionReq struct {
	GameID   string                     `json:"game_id"`
	Username string                     `json:"username"`
	Decision domain.TiebreakerDecision `json:"decision"`
}

type PlayTiebreakerReq struct {
	GameID   string `json:"game_id"`
	Username string `json:"username"`
}

type AppendLogReq struct {
	Action  string                 `json:"action"`
	Actor   *string                `json:"actor,omitempty"`
	Details map[string]interface{} `json:"details"`
}

type ListLogsReq struct {
	Actor  string `json:"actor,omitempty"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

type ListLogsResp struct {
	Entries []domain.LogEntry `json:"entries"`
}

