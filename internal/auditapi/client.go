package auditapi

import (
	"context"

	"github.com/arenaforge/duel-server/internal/trustplane"
)

// Client is a thin typed wrapper over a trustplane.Client pointed at the
// Audit Log service (C6).
type Client struct {
	c *trustplane.Client
}

func NewClient(c *trustplane.Client) *Client {
	return &Client{c: c}
}

func (a *Client) Append(ctx context.Context, req *AppendReq) error {
	return a.c.PostJSON(ctx, PathAppend, req, nil)
}

func (a *Client) List(ctx context.Context, req *ListReq) (*ListResp, error) {
	var resp ListResp
	if err := a.c.PostJSON(ctx, PathList, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
