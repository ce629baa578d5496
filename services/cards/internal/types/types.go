// Package types holds the wire request/response shapes for the card
// catalogue's internal HTTP surface (§4.2, §6A).
package types

import "github.com/arenaforge/duel-server/internal/domain"

type ListAllReq struct{}

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

type StatsReq struct{}

type StatsResp struct {
	Stats domain.CatalogueStats `json:"stats"`
}
