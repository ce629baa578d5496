package identityapi

import (
	"context"

	"github.com/arenaforge/duel-server/internal/trustplane"
)

// Client is a thin typed wrapper over a trustplane.Client pointed at the
// Identity Service (C2).
type Client struct {
	c *trustplane.Client
}

func NewClient(c *trustplane.Client) *Client {
	return &Client{c: c}
}

func (i *Client) Register(ctx context.Context, req *RegisterReq) (*TokenPairResp, error) {
	var resp TokenPairResp
	if err := i.c.PostJSON(ctx, PathRegister, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *Client) Login(ctx context.Context, req *LoginReq) (*TokenPairResp, error) {
	var resp TokenPairResp
	if err := i.c.PostJSON(ctx, PathLogin, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *Client) Refresh(ctx context.Context, req *RefreshReq) (*AccessTokenResp, error) {
	var resp AccessTokenResp
	if err := i.c.PostJSON(ctx, PathRefresh, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *Client) Logout(ctx context.Context, req *LogoutReq) error {
	return i.c.PostJSON(ctx, PathLogout, req, nil)
}

func (i *Client) RevokeAll(ctx context.Context, req *RevokeAllReq) error {
	return i.c.PostJSON(ctx, PathRevokeAll, req, nil)
}

func (i *Client) Validate(ctx context.Context, accessToken string) (*ValidateResp, error) {
	var resp ValidateResp
	if err := i.c.PostJSON(ctx, PathValidate, &ValidateReq{AccessToken: accessToken}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *Client) Profile(ctx context.Context, username string) (*ProfileResp, error) {
	var resp ProfileResp
	if err := i.c.PostJSON(ctx, PathProfile, &ProfileReq{Username: username}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *Client) UpdatePassword(ctx context.Context, req *UpdatePasswordReq) error {
	return i.c.PostJSON(ctx, PathPassword, req, nil)
}

func (i *Client) ListAccounts(ctx context.Context, req *ListAccountsReq) (*ListAccountsResp, error) {
	var resp ListAccountsResp
	if err := i.c.PostJSON(ctx, PathAccounts, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
