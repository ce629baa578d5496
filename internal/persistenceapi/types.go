// Package persistenceapi holds the wire request/response shapes for the
// Persistence Adapter's (C1) internal HTTP surface (§6A), shared by every
// other service that calls it through internal/trustplane.Client. It
// mirrors services/persistence/internal/types's shapes field-for-field;
// the duplication exists because Go's internal/ visibility rule keeps
// services/persistence/internal/* private to that service tree, while this
// package lives at the module-wide internal/ root so every service may
// import it.
package persistenceapi

import (
	"time"

	"github.com/arenaforge/duel-server/internal/domain"
)

const (
	BasePath = "/internal/db"

	PathAccountsCreate            = BasePath + "/accounts"
	PathAccountsGet               = BasePath + "/accounts/get"
	PathAccountsGetByID           = BasePath + "/accounts/get-by-id"
	PathAccountsRecordFailedLogin = BasePath + "/accounts/record-failed-login"
	PathAccountsResetFailedLogins = BasePath + "/accounts/reset-failed-logins"
	PathAccountsProfile           = BasePath + "/accounts/profile"
	PathAccountsPassword          = BasePath + "/accounts/password"
	PathAccountsEnabled           = BasePath + "/accounts/enabled"
	PathAccountsList              = BasePath + "/accounts/list"

	PathRefreshCreate       = BasePath + "/refresh-credentials"
	PathRefreshGetActive           = BasePath + "/refresh-credentials/get-active"
	PathRefreshGetActiveForAccount = BasePath + "/refresh-credentials/get-active-for-account"
	PathRefreshTouch        = BasePath + "/refresh-credentials/touch"
	PathRefreshRevoke       = BasePath + "/refresh-credentials/revoke"
	PathRefreshRevokeAll    = BasePath + "/refresh-credentials/revoke-all"

	PathGamesCreate             = BasePath + "/games"
	PathGamesGet                = BasePath + "/games/get"
	PathGamesListForPlayer      = BasePath + "/games/list-for-player"
	PathGamesListPendingInvites = BasePath + "/games/list-pending-invites"
	PathGamesInviteDecision     = BasePath + "/games/invite-decision"
	PathGamesCancelInvite       = BasePath + "/games/cancel-invite"
	PathGamesSelectDeck         = BasePath + "/games/select-deck"
	PathGamesDraw               = BasePath + "/games/draw"
	PathGamesPlay               = BasePath + "/games/play"
	PathGamesTiebreakerDecision = BasePath + "/games/tiebreaker-decision"
	PathGamesPlayTiebreaker     = BasePath + "/games/play-tiebreaker"
	PathGamesArchive            = BasePath + "/games/archive"
	PathGamesHistory            = BasePath + "/games/history"

	PathLeaderboardGlobal = BasePath + "/leaderboard"
	PathLeaderboardPlayer = BasePath + "/leaderboard/player"
	PathLeaderboardRecent = BasePath + "/leaderboard/recent"

	PathLogsAppend = BasePath + "/logs"
	PathLogsList   = BasePath + "/logs/list"
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
	LockForSecs int    `json:"lock_for_secs"`
}

type UpdateProfileReq struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	Visible     bool   `json:"visible"`
}

type UpdatePasswordHashReq struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

type SetEnabledReq struct {
	Username string `json:"username"`
	Enabled  bool   `json:"enabled"`
}

type ListAccountsReq struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

type ListAccountsResp struct {
	Accounts []domain.Account `json:"accounts"`
}

type CreateRefreshCredentialReq struct {
	AccountID string `json:"account_id"`
	TokenHash string `json:"token_hash"`
	Device    string `json:"device"`
	UserAgent string `json:"user_agent"`
	IP        string `json:"ip"`
	TTLSecs   int64  `json:"ttl_secs"`
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

type RecentGameSummary struct {
	GameID      string    `json:"game_id"`
	Player1     string    `json:"player1"`
	Player2     string    `json:"player2"`
	Winner      *string   `json:"winner,omitempty"`
	WasTie      bool      `json:"was_tie"`
	TurnsPlayed int       `json:"turns_played"`
	ArchivedAt  time.Time `json:"archived_at"`
}

type RecentGamesResp struct {
	Games []RecentGameSummary `json:"games"`
}

type LeaderboardReq struct {
	Limit int `json:"limit,omitempty"`
}

type LeaderboardRow struct {
	Username string `json:"username" db:"username"`
	Wins     int    `json:"wins" db:"wins"`
	Losses   int    `json:"losses" db:"losses"`
	Ties     int    `json:"ties" db:"ties"`
}

type LeaderboardResp struct {
	Rows []LeaderboardRow `json:"rows"`
}

type PlayerStatsResp struct {
	Row *LeaderboardRow `json:"row"`
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
	GameID   string                    `json:"game_id"`
	Username string                    `json:"username"`
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
