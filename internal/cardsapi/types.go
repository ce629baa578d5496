// Package cardsapi holds the wire contract for the Card Catalogue service
// (C3), shared by every other service that calls it through
// internal/trustplane.Client — primarily the Game Coordinator (C4), which
// materializes deck-selection compositions via RandomCard. Mirrors
// services/cards/internal/types field-for-field for the same reason
// internal/persistenceapi does: Go's internal/ visibility rule keeps
// services/cards/internal/* private to that service tree.
package cardsapi

import "github.com/arenaforge/duel-server/internal/domain"

const (
	BasePath = "/internal/cards"

	PathList        = BasePath + "/list"
	PathListBySuit  = BasePath + "/list-by-suit"
	PathGet         = BasePath + "/get"
	PathRandomDeck  = BasePath + "/random-deck"
	PathRandomCard  = BasePath + "/random-card"
	PathStats       = BasePath + "/stats"
)

type ListAllResp struct {
	Cards []domain.Card `json:"cards"`
}

type ListBySuitReq struct {
	Suit string `json:"suit"`
}

type ListBySuitResp struct {
	Cards []domain.Card `json:"cards"`
}

type GetByIDReq struct {
	ID string `json:"id"`
}

type GetByIDResp struct {
	Card domain.Card `json:"card"`
}

type RandomDeckReq struct {
	Size int `json:"size"`
}

type RandomDeckResp struct {
	Cards []domain.Card `json:"cards"`
}

type RandomCardReq struct {
	Suit string `json:"suit"`
}

type RandomCardResp struct {
	Card domain.Card `json:"card"`
}

type StatsResp struct {
	Stats domain.CatalogueStats `json:"stats"`
}
