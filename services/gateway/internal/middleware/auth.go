// Package middleware implements the gateway's bearer-token gate. Every
// other service in the mesh authenticates callers via the service
// credential (internal/trustplane); the gateway is the one place that
// instead terminates a client's end-user access token, by forwarding it to
// the identity service's Validate RPC (§4.7: "does not interpret access
// tokens beyond forwarding the Authorization header" to identity itself).
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/identityapi"
)

type ctxKey int

const (
	subjectKey ctxKey = iota
	adminKey
)

// Subject returns the authenticated username, set by RequireAuth.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey).(string)
	return s
}

// IsAdmin reports whether the authenticated subject carries the admin flag.
func IsAdmin(ctx context.Context) bool {
	v, _ := ctx.Value(adminKey).(bool)
	return v
}

// RequireAuth validates the bearer access token against identity and, on
// success, injects the subject and admin flag into the request context for
// downstream handlers. Any failure (missing header, malformed token,
// identity reports invalid) is surfaced as unauthenticated before the
// handler runs.
func RequireAuth(identity *identityapi.Client) rest.Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeAPIErr(w, r, apierr.New(apierr.Unauthenticated, "missing bearer token"))
				return
			}

			resp, err := identity.Validate(r.Context(), token)
			if err != nil {
				writeAPIErr(w, r, apierr.Unavailablef("identity service unreachable: %v", err))
				return
			}
			if !resp.Valid {
				writeAPIErr(w, r, apierr.New(apierr.Unauthenticated, "invalid or expired access token"))
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, resp.Username)
			ctx = context.WithValue(ctx, adminKey, resp.Admin)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireAdmin must run after RequireAuth. It rejects non-admin subjects
// with forbidden, per §6.1's "admin bearer" routes (e.g. GET /api/logs/list).
func RequireAdmin() rest.Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !IsAdmin(r.Context()) {
				writeAPIErr(w, r, apierr.New(apierr.Forbidden, "admin privileges required"))
				return
			}
			next(w, r)
		}
	}
}

// WithSubjectForTest injects a subject/admin pair the same way RequireAuth
// does, so logic-layer tests can exercise authorization branches without a
// live identity round trip.
func WithSubjectForTest(ctx context.Context, subject string, admin bool) context.Context {
	ctx = context.WithValue(ctx, subjectKey, subject)
	return context.WithValue(ctx, adminKey, admin)
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, prefix))
}

func writeAPIErr(w http.ResponseWriter, r *http.Request, err error) {
	status, body := apierr.StatusAndBody(err)
	httpx.WriteJson(w, status, body)
	_ = r
}
