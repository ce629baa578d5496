package types

import "github.com/arenaforge/duel-server/internal/domain"

type CardListResp struct {
	Cards []domain.Card `json:"cards"`
}

type CardsBySuitReq struct {
	Suit string `path:"suit"`
}

type CardByIDReq struct {
	ID string `path:"id"`
}

type CardResp struct {
	Card domain.Card `json:"card"`
}

type RandomDeckReq struct {
	Size int `json:"size,optional"`
}

type RandomDeckResp struct {
	Cards []domain.Card `json:"cards"`
}
