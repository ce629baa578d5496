package types

import "github.com/arenaforge/duel-server/internal/domain"

type CreateGameReq struct {
	Creator string `json:"creator"`
	Invitee string `json:"invitee"`
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

type InviteDecisionReq struct {
	GameID   string `json:"game_id"`
	Username string `json:"username"`
	Accept   bool   `json:"accept"`
}

type CancelInviteReq struct {
	GameID   string `json:"game_id"`
	Username string `json:"username"`
}

// SelectDeckReq is the client-facing shape: a raw suit composition, not yet
// materialized into concrete cards. The coordinator draws one random card
// per entry from the Card Catalogue before forwarding a concrete deck to
// the Persistence Adapter.
type SelectDeckReq struct {
	GameID      string        `json:"game_id"`
	Username    string        `json:"username"`
	Composition []domain.Suit `json:"composition"`
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

type HistoryResp struct {
	Snapshot *domain.Snapshot `json:"snapshot"`
}
