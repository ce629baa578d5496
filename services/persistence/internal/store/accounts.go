package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/arenaforge/duel-server/internal/domain"
)

const accountColumns = `id, username, password_hash, admin, enabled, failed_attempts,
	lock_until, last_failed_login, display_name, bio, visible, created_at, updated_at`

// CreateAccount inserts a new account. Returns ErrConflict if the username
// is already taken.
func (s *Store) CreateAccount(ctx context.Context, a *domain.Account) error {
	a.ID = uuid.NewString()
	now := time.Now().UTC()
	a.CreatedAt, a.UpdatedAt = now, now

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO accounts (id, username, password_hash, admin, enabled, failed_attempts,
			lock_until, last_failed_login, display_name, bio, visible, created_at, updated_at)
		VALUES (:id, :username, :password_hash, :admin, :enabled, :failed_attempts,
			:lock_until, :last_failed_login, :display_name, :bio, :visible, :created_at, :updated_at)`, a)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (s *Store) GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var a domain.Account
	err := s.db.GetContext(ctx, &a, `SELECT `+accountColumns+` FROM accounts WHERE username = $1`, username)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &a, nil
}

func (s *Store) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	var a domain.Account
	err := s.db.GetContext(ctx, &a, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &a, nil
}

// RecordFailedLogin increments the failed-attempt counter and, when it
// reaches the lockout threshold, sets lock_until. Last-writer-wins by
// design (§5): concurrent failures may briefly overshoot the threshold
// before the lock is visible.
func (s *Store) RecordFailedLogin(ctx context.Context, username string, maxAttempts int, lockFor time.Duration) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		UPDATE accounts SET
			failed_attempts = failed_attempts + 1,
			last_failed_login = $2,
			lock_until = CASE WHEN failed_attempts + 1 >= $3 THEN $4 ELSE lock_until END,
			updated_at = $2
		WHERE username = $1`, username, now, maxAttempts, now.Add(lockFor))
	return err
}

func (s *Store) ResetFailedLogins(ctx context.Context, username string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE accounts SET failed_attempts = 0, lock_until = NULL, updated_at = $2
		WHERE username = $1`, username, time.Now().UTC())
	return err
}

// UpdatePasswordHash replaces an account's stored password hash, used by
// the profile-update password-change path (§4.1).
func (s *Store) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE accounts SET password_hash = $2, updated_at = $3 WHERE username = $1`,
		username, passwordHash, time.Now().UTC())
	return err
}

// UpdateProfile updates the self-service profile fields (§4A.1).
func (s *Store) UpdateProfile(ctx context.Context, username, displayName, bio string, visible bool) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE accounts SET display_name = $2, bio = $3, visible = $4, updated_at = $5
		WHERE username = $1`, username, displayName, bio, visible, time.Now().UTC())
	return err
}

// ListAccounts backs the admin-only account listing read (§4A.1).
func (s *Store) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	var accounts []domain.Account
	err := s.db.SelectContext(ctx, &accounts, `
		SELECT `+accountColumns+` FROM accounts ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	return accounts, err
}

func (s *Store) SetEnabled(ctx context.Context, username string, enabled bool) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE accounts SET enabled = $2, updated_at = $3 WHERE username = $1`,
		username, enabled, time.Now().UTC())
	return err
}

const refreshColumns = `id, account_id, token_hash, device, user_agent, ip, issued_at,
	expires_at, last_used_at, revoked, revoked_at`

// CreateRefreshCredential revokes any existing non-revoked credential for
// the account and inserts the new one inside one transaction, enforcing
// the single-active-session invariant even under the partial unique
// index's own race window.
func (s *Store) CreateRefreshCredential(ctx context.Context, c *domain.RefreshCredential) error {
	c.ID = uuid.NewString()
	return s.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE refresh_credentials SET revoked = true, revoked_at = $2
			WHERE account_id = $1 AND NOT revoked`, c.AccountID, time.Now().UTC()); err != nil {
			return err
		}
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO refresh_credentials (id, account_id, token_hash, device, user_agent, ip,
				issued_at, expires_at, last_used_at, revoked, revoked_at)
			VALUES (:id, :account_id, :token_hash, :device, :user_agent, :ip,
				:issued_at, :expires_at, :last_used_at, :revoked, :revoked_at)`, c)
		return err
	})
}

// GetActiveRefreshCredentialForAccount backs the Login protocol's single-
// active-session check (§4.1 step 4): callers must check for an existing
// session and fail conflict_active_session before calling
// CreateRefreshCredential, rather than relying on its silent revoke-then-
// insert as the only enforcement.
func (s *Store) GetActiveRefreshCredentialForAccount(ctx context.Context, accountID string) (*domain.RefreshCredential, error) {
	var c domain.RefreshCredential
	err := s.db.GetContext(ctx, &c, `
		SELECT `+refreshColumns+` FROM refresh_credentials
		WHERE account_id = $1 AND NOT revoked AND expires_at > now()`, accountID)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &c, nil
}

func (s *Store) GetActiveRefreshCredentialByHash(ctx context.Context, tokenHash string) (*domain.RefreshCredential, error) {
	var c domain.RefreshCredential
	err := s.db.GetContext(ctx, &c, `
		SELECT `+refreshColumns+` FROM refresh_credentials
		WHERE token_hash = $1 AND NOT revoked`, tokenHash)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &c, nil
}

func (s *Store) TouchRefreshCredential(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE refresh_credentials SET last_used_at = $2 WHERE id = $1`, id, time.Now().UTC())
	return err
}

func (s *Store) RevokeRefreshCredential(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE refresh_credentials SET revoked = true, revoked_at = $2 WHERE id = $1`,
		id, time.Now().UTC())
	return err
}

// RevokeAllRefreshCredentials backs the RevokeAll operation (logout
// everywhere).
func (s *Store) RevokeAllRefreshCredentials(ctx context.Context, accountID string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE refresh_credentials SET revoked = true, revoked_at = $2
		WHERE account_id = $1 AND NOT revoked`, accountID, time.Now().UTC())
	return err
}
