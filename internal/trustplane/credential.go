// Package trustplane implements the inter-service trust plane (C8):
// service-credential validation for the internal HTTPS mesh, and a client
// helper that attaches the caller's own credential. It is grounded on
// original_source/microservices/utils/service_auth.py's constant-time key
// comparison, expressed in Go as crypto/subtle via internal/tokens.
package trustplane

import (
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/arenaforge/duel-server/internal/apierr"
	"github.com/arenaforge/duel-server/internal/tokens"
)

// CredentialHeader is the header every internal request carries its service
// key in.
const CredentialHeader = "X-Service-Credential"

// CallerHeader identifies which service is calling, for logging and
// per-endpoint allow-lists.
const CallerHeader = "X-Service-Name"

// KeySet holds the set of valid (caller name -> key) service credentials,
// immutable after startup per the concurrency model's "Config loader only"
// discipline.
type KeySet map[string]string

// Validate reports whether callerName/key is a recognized credential pair.
func (k KeySet) Validate(callerName, key string) bool {
	expected, ok := k[callerName]
	if !ok || expected == "" {
		return false
	}
	return tokens.ConstantTimeEqual(key, expected)
}

// RequireService returns go-zero rest middleware that rejects any request
// lacking a valid service credential before the handler runs. When
// allowedCallers is non-empty, only those caller names may pass.
func RequireService(keys KeySet, allowedCallers ...string) rest.Middleware {
	allowed := map[string]bool{}
	for _, c := range allowedCallers {
		allowed[c] = true
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			caller := r.Header.Get(CallerHeader)
			key := r.Header.Get(CredentialHeader)

			if !keys.Validate(caller, key) {
				writeUnauthenticated(w, r)
				return
			}
			if len(allowed) > 0 && !allowed[caller] {
				logx.WithContext(r.Context()).Infof("trustplane: caller %q not on allow-list", caller)
				writeUnauthenticated(w, r)
				return
			}
			next(w, r)
		}
	}
}

func writeUnauthenticated(w http.ResponseWriter, _ *http.Request) {
	status, b := apierr.StatusAndBody(apierr.New(apierr.Unauthenticated, "missing or invalid service credential"))
	httpx.WriteJson(w, status, b)
}
