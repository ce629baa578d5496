package gameapi

import (
	"context"

	"github.com/arenaforge/duel-server/internal/trustplane"
)

// Client is a thin typed wrapper over a trustplane.Client pointed at the
// Game Coordinator (C4).
type Client struct {
	c *trustplane.Client
}

func NewClient(c *trustplane.Client) *Client {
	return &Client{c: c}
}

func (p *Client) Create(ctx context.Context, req *CreateGameReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathCreate, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) Get(ctx context.Context, gameID string) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathGet, &GameIDReq{GameID: gameID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) ListForPlayer(ctx context.Context, username string) (*GamesResp, error) {
	var resp GamesResp
	if err := p.c.PostJSON(ctx, PathListForPlayer, &UsernameReq{Username: username}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) ListPendingInvites(ctx context.Context, username string) (*GamesResp, error) {
	var resp GamesResp
	if err := p.c.PostJSON(ctx, PathListPendingInvites, &UsernameReq{Username: username}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) InviteDecision(ctx context.Context, req *InviteDecisionReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathInviteDecision, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) CancelInvite(ctx context.Context, req *CancelInviteReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathCancelInvite, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) SelectDeck(ctx context.Context, req *SelectDeckReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathSelectDeck, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) Draw(ctx context.Context, req *DrawReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathDraw, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) Play(ctx context.Context, req *PlayReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathPlay, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) SubmitTiebreakerDecision(ctx context.Context, req *TiebreakerDecisionReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathTiebreakerDecision, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) PlayTiebreaker(ctx context.Context, req *PlayTiebreakerReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathPlayTiebreaker, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) History(ctx context.Context, gameID string) (*HistoryResp, error) {
	var resp HistoryResp
	if err := p.c.PostJSON(ctx, PathHistory, &GameIDReq{GameID: gameID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
