// Package types holds the client-facing wire shapes for every route the
// gateway exposes (§6.1). These are deliberately distinct from the
// internal *api packages: the public surface is smaller, uses snake_case
// JSON the way a browser client expects, and some fields (card_index,
// deck-as-composition) need translation before the matching internal RPC
// can be called — that translation lives in the handlers, not here.
package types

import "time"

type RegisterReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResp struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	AccountID    string    `json:"account_id"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type RefreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type AccessTokenResp struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type LogoutReq struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}

type ProfileResp struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	Admin       bool      `json:"admin"`
	CreatedAt   time.Time `json:"created_at"`
}

type UpdatePasswordReq struct {
	Password string `json:"password"`
}

type ValidateResp struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username"`
}

type ListAccountsReq struct {
	Limit  int `form:"limit,optional"`
	Offset int `form:"offset,optional"`
}

type ListAccountsResp struct {
	Accounts []ProfileResp `json:"accounts"`
}
