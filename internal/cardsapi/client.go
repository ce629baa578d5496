package cardsapi

import (
	"context"

	"github.com/arenaforge/duel-server/internal/trustplane"
)

// Client is a thin typed wrapper over a trustplane.Client pointed at the
// Card Catalogue service (C3).
type Client struct {
	c *trustplane.Client
}

func NewClient(c *trustplane.Client) *Client {
	return &Client{c: c}
}

func (p *Client) ListAll(ctx context.Context) (*ListAllResp, error) {
	var resp ListAllResp
	if err := p.c.PostJSON(ctx, PathList, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) ListBySuit(ctx context.Context, suit string) (*ListBySuitResp, error) {
	var resp ListBySuitResp
	if err := p.c.PostJSON(ctx, PathListBySuit, &ListBySuitReq{Suit: suit}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) GetByID(ctx context.Context, id string) (*GetByIDResp, error) {
	var resp GetByIDResp
	if err := p.c.PostJSON(ctx, PathGet, &GetByIDReq{ID: id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) RandomDeck(ctx context.Context, size int) (*RandomDeckResp, error) {
	var resp RandomDeckResp
	if err := p.c.PostJSON(ctx, PathRandomDeck, &RandomDeckReq{Size: size}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) RandomCard(ctx context.Context, suit string) (*RandomCardResp, error) {
	var resp RandomCardResp
	if err := p.c.PostJSON(ctx, PathRandomCard, &RandomCardReq{Suit: suit}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) Stats(ctx context.Context) (*StatsResp, error) {
	var resp StatsResp
	if err := p.c.PostJSON(ctx, PathStats, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
