// Package gameapi holds the wire contract for the Game Coordinator (C4),
// shared by every other service that calls it through
// internal/trustplane.Client — the Ingress Gateway (C7) above all. Mirrors
// services/game/internal/types field-for-field for the same reason
// internal/persistenceapi and internal/cardsapi do: Go's internal/
// visibility rule keeps services/game/internal/* private to that service
// tree.
package gameapi

import "github.com/arenaforge/duel-server/internal/domain"

const (
	BasePath = "/internal/game"

	PathCreate              = BasePath + "/create"
	PathGet                 = BasePath + "/get"
	PathListForPlayer       = BasePath + "/list-for-player"
	PathListPendingInvites  = BasePath + "/list-pending-invites"
	PathInviteDecision      = BasePath + "/invite-decision"
	PathCancelInvite        = BasePath + "/cancel-invite"
	PathSelectDeck          = BasePath + "/select-deck"
	PathDraw                = BasePath + "/draw"
	PathPlay                = BasePath + "/play"
	PathTiebreakerDecision  = BasePath + "/tiebreaker-decision"
	PathPlayTiebreaker      = BasePath + "/play-tiebreaker"
	PathHistory             = BasePath + "/history"
)

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
