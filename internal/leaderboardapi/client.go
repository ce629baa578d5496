package leaderboardapi

import (
	"context"

	"github.com/arenaforge/duel-server/internal/trustplane"
)

// Client is a thin typed wrapper over a trustplane.Client pointed at the
// Leaderboard / Reporting service (C5).
type Client struct {
	c *trustplane.Client
}

func NewClient(c *trustplane.Client) *Client {
	return &Client{c: c}
}

func (p *Client) Global(ctx context.Context, limit int) (*GlobalResp, error) {
	var resp GlobalResp
	if err := p.c.PostJSON(ctx, PathGlobal, &GlobalReq{Limit: limit}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) PlayerStats(ctx context.Context, username string) (*PlayerStatsResp, error) {
	var resp PlayerStatsResp
	if err := p.c.PostJSON(ctx, PathPlayer, &UsernameReq{Username: username}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) RecentGames(ctx context.Context, username string) (*RecentGamesResp, error) {
	var resp RecentGamesResp
	if err := p.c.PostJSON(ctx, PathRecent, &UsernameReq{Username: username}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) Search(ctx context.Context, query string, limit int) (*SearchResp, error) {
	var resp SearchResp
	if err := p.c.PostJSON(ctx, PathSearch, &SearchReq{Query: query, Limit: limit}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
