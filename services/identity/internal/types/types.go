// Package types holds the wire request/response shapes for the identity
// service's internal HTTP surface, called by the gateway (C7) on behalf of
// the client-facing /api/auth/* routes (§6.1).
package types

import "time"

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
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	AccountID    string `json:"account_id"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type ActiveSessionDescriptor struct {
	Device    string    `json:"device"`
	IP        string    `json:"ip"`
	CreatedAt time.Time `json:"created_at"`
}

type RefreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type AccessTokenResp struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type LogoutReq struct {
	// RefreshToken revokes a single credential when present; the subject is
	// resolved from the bearer access token by the gateway and carried here
	// so identity never parses headers itself.
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
	Limit  int `json:"limit,optional"`
	Offset int `json:"offset,optional"`
}

type ListAccountsResp struct {
	Accounts []ProfileResp `json:"accounts"`
}
