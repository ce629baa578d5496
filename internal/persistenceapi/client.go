package persistenceapi

import (
	"context"

	"github.com/arenaforge/duel-server/internal/trustplane"
)

// Client is a thin typed wrapper over a trustplane.Client pointed at the
// Persistence Adapter (C1), used by every other service that never touches
// the database directly (§6.2: "none are proxied by the gateway").
type Client struct {
	c *trustplane.Client
}

func NewClient(c *trustplane.Client) *Client {
	return &Client{c: c}
}

func (p *Client) CreateAccount(ctx context.Context, req *CreateAccountReq) (*AccountResp, error) {
	var resp AccountResp
	if err := p.c.PostJSON(ctx, PathAccountsCreate, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) GetAccountByUsername(ctx context.Context, username string) (*AccountResp, error) {
	var resp AccountResp
	if err := p.c.PostJSON(ctx, PathAccountsGet, &UsernameReq{Username: username}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) GetAccountByID(ctx context.Context, accountID string) (*AccountResp, error) {
	var resp AccountResp
	if err := p.c.PostJSON(ctx, PathAccountsGetByID, &AccountIDReq{AccountID: accountID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) RecordFailedLogin(ctx context.Context, req *RecordFailedLoginReq) error {
	return p.c.PostJSON(ctx, PathAccountsRecordFailedLogin, req, nil)
}

func (p *Client) ResetFailedLogins(ctx context.Context, username string) error {
	return p.c.PostJSON(ctx, PathAccountsResetFailedLogins, &UsernameReq{Username: username}, nil)
}

func (p *Client) UpdateProfile(ctx context.Context, req *UpdateProfileReq) error {
	return p.c.PostJSON(ctx, PathAccountsProfile, req, nil)
}

func (p *Client) UpdatePasswordHash(ctx context.Context, req *UpdatePasswordHashReq) error {
	return p.c.PostJSON(ctx, PathAccountsPassword, req, nil)
}

func (p *Client) SetEnabled(ctx context.Context, req *SetEnabledReq) error {
	return p.c.PostJSON(ctx, PathAccountsEnabled, req, nil)
}

func (p *Client) ListAccounts(ctx context.Context, req *ListAccountsReq) (*ListAccountsResp, error) {
	var resp ListAccountsResp
	if err := p.c.PostJSON(ctx, PathAccountsList, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) CreateRefreshCredential(ctx context.Context, req *CreateRefreshCredentialReq) (*RefreshCredentialResp, error) {
	var resp RefreshCredentialResp
	if err := p.c.PostJSON(ctx, PathRefreshCreate, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) GetActiveRefreshCredential(ctx context.Context, tokenHash string) (*RefreshCredentialResp, error) {
	var resp RefreshCredentialResp
	if err := p.c.PostJSON(ctx, PathRefreshGetActive, &TokenHashReq{TokenHash: tokenHash}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) GetActiveRefreshCredentialForAccount(ctx context.Context, accountID string) (*RefreshCredentialResp, error) {
	var resp RefreshCredentialResp
	if err := p.c.PostJSON(ctx, PathRefreshGetActiveForAccount, &AccountIDReq{AccountID: accountID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) TouchRefreshCredential(ctx context.Context, id string) error {
	return p.c.PostJSON(ctx, PathRefreshTouch, &CredentialIDReq{ID: id}, nil)
}

func (p *Client) RevokeRefreshCredential(ctx context.Context, id string) error {
	return p.c.PostJSON(ctx, PathRefreshRevoke, &CredentialIDReq{ID: id}, nil)
}

func (p *Client) RevokeAllRefreshCredentials(ctx context.Context, accountID string) error {
	return p.c.PostJSON(ctx, PathRefreshRevokeAll, &AccountIDReq{AccountID: accountID}, nil)
}

func (p *Client) CreateGame(ctx context.Context, req *CreateGameReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathGamesCreate, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) GetGame(ctx context.Context, gameID string) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathGamesGet, &GameIDReq{GameID: gameID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) ListGamesForPlayer(ctx context.Context, username string) (*GamesResp, error) {
	var resp GamesResp
	if err := p.c.PostJSON(ctx, PathGamesListForPlayer, &UsernameReq{Username: username}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) ListPendingInvites(ctx context.Context, username string) (*GamesResp, error) {
	var resp GamesResp
	if err := p.c.PostJSON(ctx, PathGamesListPendingInvites, &UsernameReq{Username: username}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) InviteDecision(ctx context.Context, req *InviteDecisionReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathGamesInviteDecision, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) CancelInvite(ctx context.Context, req *CancelInviteReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathGamesCancelInvite, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) SelectDeck(ctx context.Context, req *SelectDeckReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathGamesSelectDeck, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) Draw(ctx context.Context, req *DrawReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathGamesDraw, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) Play(ctx context.Context, req *PlayReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathGamesPlay, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) SubmitTiebreakerDecision(ctx context.Context, req *TiebreakerDecisionReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathGamesTiebreakerDecision, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) PlayTiebreaker(ctx context.Context, req *PlayTiebreakerReq) (*GameResp, error) {
	var resp GameResp
	if err := p.c.PostJSON(ctx, PathGamesPlayTiebreaker, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) ArchiveGame(ctx context.Context, gameID string) error {
	return p.c.PostJSON(ctx, PathGamesArchive, &ArchiveGameReq{GameID: gameID}, nil)
}

func (p *Client) GetHistory(ctx context.Context, gameID string) (*HistoryResp, error) {
	var resp HistoryResp
	if err := p.c.PostJSON(ctx, PathGamesHistory, &GameIDReq{GameID: gameID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) Leaderboard(ctx context.Context, limit int) (*LeaderboardResp, error) {
	var resp LeaderboardResp
	if err := p.c.PostJSON(ctx, PathLeaderboardGlobal, &LeaderboardReq{Limit: limit}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) PlayerStats(ctx context.Context, username string) (*PlayerStatsResp, error) {
	var resp PlayerStatsResp
	if err := p.c.PostJSON(ctx, PathLeaderboardPlayer, &UsernameReq{Username: username}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) RecentGames(ctx context.Context, username string) (*RecentGamesResp, error) {
	var resp RecentGamesResp
	if err := p.c.PostJSON(ctx, PathLeaderboardRecent, &UsernameReq{Username: username}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (p *Client) AppendLog(ctx context.Context, req *AppendLogReq) error {
	return p.c.PostJSON(ctx, PathLogsAppend, req, nil)
}

func (p *Client) ListLogs(ctx context.Context, req *ListLogsReq) (*ListLogsResp, error) {
	var resp ListLogsResp
	if err := p.c.PostJSON(ctx, PathLogsList, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
