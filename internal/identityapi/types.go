// Package identityapi holds the wire contract for the Identity Service
// (C2), shared by every other service that calls it through
// internal/trustplane.Client — in practice only the Ingress Gateway (C7),
// which is the sole holder of client bearer tokens. Mirrors
// services/identity/internal/types field-for-field for the same reason
// internal/persistenceapi, internal/cardsapi, internal/gameapi,
// internal/leaderboardapi, and internal/auditapi do.
package identityapi

import "time"

const (
	BasePath = "/internal/identity"

	PathRegister  = BasePath + "/register"
	PathLogin     = BasePath + "/login"
	PathRefresh   = BasePath + "/refresh"
	PathLogout    = BasePath + "/logout"
	PathRevokeAll = BasePath + "/revoke-all"
	PathValidate  = BasePath + "/validate"
	PathProfile   = BasePath + "/profile"
	PathPassword  = BasePath + "/profile/password"
	PathAccounts  = BasePath + "/accounts"
)

type RegisterReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginReq struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Device    string `json:"device"`
	UserAgent string `json:"user_agent"`
	IP        string `json:"ip"`
}

type TokenPairResp struct {
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
	Subject      string `json:"subject"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type RevokeAllReq struct {
	AccountID string `json:"account_id"`
}

type ValidateReq struct {
	AccessToken string `json:"access_token"`
}

type ValidateResp struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

type ProfileReq struct {
	Username string `json:"username"`
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
	Username string `json:"username"`
	Password string `json:"password"`
}

type ListAccountsReq struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

type ListAccountsResp struct {
	Accounts []ProfileResp `json:"accounts"`
}
