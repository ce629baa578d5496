package domain

import "time"

// Account is an identity-service user row. Its JSON tags serialize every
// field, including PasswordHash/FailedAttempts/LockUntil/LastFailedLogin,
// because the only place this struct crosses the wire is the authenticated
// internal trust-plane call between the identity service and the
// Persistence Adapter (internal/persistenceapi.AccountResp) — never a
// client-facing response. Client-facing reads go through a hand-built DTO
// (services/identity/internal/types.ProfileResp) that allowlists fields
// explicitly, so there is no path by which this type's JSON form reaches an
// end client.
type Account struct {
	ID              string     `db:"id" json:"id"`
	Username        string     `db:"username" json:"username"`
	PasswordHash    string     `db:"password_hash" json:"password_hash"`
	Admin           bool       `db:"admin" json:"admin"`
	Enabled         bool       `db:"enabled" json:"enabled"`
	FailedAttempts  int        `db:"failed_attempts" json:"failed_attempts"`
	LockUntil       *time.Time `db:"lock_until" json:"lock_until"`
	LastFailedLogin *time.Time `db:"last_failed_login" json:"last_failed_login"`
	DisplayName     string     `db:"display_name" json:"display_name"`
	Bio             string     `db:"bio" json:"bio"`
	Visible         bool       `db:"visible" json:"visible"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// Locked reports whether the account is presently within its lockout
// cooldown, relative to now.
func (a *Account) Locked(now time.Time) bool {
	return a.LockUntil != nil && a.LockUntil.After(now)
}

// RefreshCredential is a server-side refresh-token record. At most one
// non-revoked credential may exist per account at any instant (single
// active session policy, §3).
type RefreshCredential struct {
	ID         string     `db:"id" json:"id"`
	AccountID  string     `db:"account_id" json:"account_id"`
	TokenHash  string     `db:"token_hash" json:"-"`
	Device     string     `db:"device" json:"device"`
	UserAgent  string     `db:"user_agent" json:"user_agent"`
	IP         string     `db:"ip" json:"ip"`
	IssuedAt   time.Time  `db:"issued_at" json:"issued_at"`
	ExpiresAt  time.Time  `db:"expires_at" json:"expires_at"`
	LastUsedAt *time.Time `db:"last_used_at" json:"last_used_at"`
	Revoked    bool       `db:"revoked" json:"revoked"`
	RevokedAt  *time.Time `db:"revoked_at" json:"revoked_at"`
}

// Active reports whether the credential is still usable at the given time.
func (r *RefreshCredential) Active(now time.Time) bool {
	return !r.Revoked && r.ExpiresAt.After(now)
}

// LogEntry is one append-only audit-log row.
type LogEntry struct {
	ID        string    `db:"id" json:"id"`
	Action    string    `db:"action" json:"action"`
	Actor     *string   `db:"actor" json:"actor"`
	Details   string    `db:"details" json:"details"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}
