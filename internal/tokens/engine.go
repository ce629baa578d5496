// Package tokens issues and verifies the identity service's access tokens.
// It is grounded on the claim shapes and verification flow of the teacher
// repository's vendored (but unwired) pkg/gourdiantoken-master library,
// narrowed to HMAC/symmetric signing and adapted so that access-token
// revocation is backed by a RevocationStore (normally Redis) while the
// single-active-session refresh-credential invariant is enforced by the
// Persistence Adapter, per §4.1 of the specification.
package tokens

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload carried by an access token: subject, session, and
// registered claims (issuer, issued-at, expiry).
type Claims struct {
	jwt.RegisteredClaims
	SessionID uuid.UUID `json:"sid"`
	Username  string    `json:"usr"`
}

// RevocationStore tracks revoked access-token IDs until their natural
// expiry, backing the Logout/RevokeAll operations. Implementations are
// expected to be Redis-backed (SETEX-style) in production and in-memory in
// tests.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Engine issues and verifies HS256 access tokens.
type Engine struct {
	secret []byte
	issuer string
	ttl    time.Duration
	store  RevocationStore
}

// NewEngine constructs an Engine. secret must be non-empty; it is the
// process-wide JWT_SECRET_KEY.
func NewEngine(secret []byte, issuer string, ttl time.Duration, store RevocationStore) (*Engine, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("access token ttl must be positive")
	}
	return &Engine{secret: secret, issuer: issuer, ttl: ttl, store: store}, nil
}

// Issue creates a new signed access token for the given subject/session.
func (e *Engine) Issue(username string, sessionID uuid.UUID) (token string, jti string, expiresAt time.Time, err error) {
	now := time.Now().UTC()
	expiresAt = now.Add(e.ttl)
	id := uuid.New()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.String(),
			Subject:   username,
			Issuer:    e.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		SessionID: sessionID,
		Username:  username,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(e.secret)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return signed, id.String(), expiresAt, nil
}

// Verify parses and validates a token, additionally consulting the
// revocation store when one is configured. Returns the claims on success.
func (e *Engine) Verify(ctx context.Context, token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return e.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if e.store != nil {
		revoked, err := e.store.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, errors.New("token revoked")
		}
	}
	return claims, nil
}

// Revoke marks a still-live token's jti as revoked until its own expiry.
func (e *Engine) Revoke(ctx context.Context, claims *Claims) error {
	if e.store == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return e.store.Revoke(ctx, claims.ID, ttl)
}

// NewOpaqueRefreshToken generates a 256-bit random, URL-safe opaque refresh
// credential. It is stored server-side (hashed) by the Persistence Adapter;
// the raw value is handed to the client once and never persisted in the
// clear (see internal/cryptoutil and services/persistence/internal/store).
func NewOpaqueRefreshToken() (string, error) {
	return randomURLSafe(32)
}

func randomURLSafe(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(buf), nil
}

// ConstantTimeEqual performs a constant-time comparison of two secrets, used
// by the trust plane for service-credential validation (§4.8).
func ConstantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
