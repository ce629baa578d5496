package types

import "github.com/arenaforge/duel-server/internal/domain"

type CreateGameReq struct {
	Player2Name string `json:"player2_name"`
}

type GameResp struct {
	Game *domain.Game `json:"game"`
}

type GamesResp struct {
	Games []*domain.Game `json:"games"`
}

type GameIDReq struct {
	GameID string `path:"id"`
}

// DeckEntry is one of the 22 composition slots a client submits when
// selecting a deck — a suit name, not a concrete card; the coordinator
// materializes powers itself (§4.4.2).
type DeckEntry struct {
	Type string `json:"type"`
}

type SelectDeckReq struct {
	GameID string      `path:"id"`
	Deck   []DeckEntry `json:"deck"`
}

// PlayCardReq names a card by its position in the player's current hand,
// per §6.1. The gateway resolves that index against the hand it reads
// back from the coordinator before forwarding a concrete card.
type PlayCardReq struct {
	GameID    string `path:"id"`
	CardIndex int    `json:"card_index"`
}

type TiebreakerDecisionReq struct {
	GameID   string `path:"id"`
	Decision string `json:"decision"`
}

type HistoryResp struct {
	Snapshot *domain.Snapshot `json:"snapshot"`
}
