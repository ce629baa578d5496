// Package svcconf holds the configuration fragments shared by every
// service's etc/*.yaml + Config struct, grounded on shared/config/config.go
// and third_party/{database,cache,search} and extended with the
// specification's auth, history-encryption, and trust-plane settings.
package svcconf

import (
	"github.com/arenaforge/duel-server/internal/trustplane"
	"github.com/arenaforge/duel-server/third_party/cache"
	"github.com/arenaforge/duel-server/third_party/database"
	"github.com/arenaforge/duel-server/third_party/search"
)

// AuthConfig carries the identity service's token-signing material.
type AuthConfig struct {
	AccessSecret string `json:",env=AUTH_ACCESS_SECRET"`
	AccessExpire int64  `json:",env=AUTH_ACCESS_EXPIRE,default=86400"`
	RefreshExpire int64 `json:",env=AUTH_REFRESH_EXPIRE,default=2592000"`
	Issuer       string `json:",default=duel-identity"`
}

// HistoryConfig carries the symmetric key used to archive completed games
// (§4.4.7): base64url-encoded 256-bit master key, domain-separated via HKDF
// into the cryptoutil.HistoryCipher's AEAD and MAC keys.
type HistoryConfig struct {
	MasterKey string `json:",env=HISTORY_MASTER_KEY"`
}

// ServiceAuthConfig is this process's own identity on the trust plane plus
// the set of peer service keys it accepts on inbound internal calls.
type ServiceAuthConfig struct {
	SelfName    string            `json:",env=SERVICE_NAME"`
	SelfKey     string            `json:",env=SERVICE_API_KEY"`
	PeerKeys    map[string]string `json:",optional"`
	MTLS        trustplane.MTLSConfig `json:",optional"`
}

// Keys folds SelfName/SelfKey into the peer set so this service's own
// calls to itself (health checks, tests) validate too, and returns a
// trustplane.KeySet ready for RequireService.
func (c ServiceAuthConfig) Keys() trustplane.KeySet {
	keys := trustplane.KeySet{}
	for name, key := range c.PeerKeys {
		keys[name] = key
	}
	if c.SelfName != "" && c.SelfKey != "" {
		keys[c.SelfName] = c.SelfKey
	}
	return keys
}

// PeerConfig names where to reach one internal dependency and what
// credential to present when calling it.
type PeerConfig struct {
	BaseURL    string `json:",optional"`
	Credential string `json:",optional"`
}

// Client builds an authenticated trustplane.Client for this peer, using
// callerName as this service's own identity on the call.
func (p PeerConfig) Client(callerName string) *trustplane.Client {
	return trustplane.NewClient(p.BaseURL, callerName, p.Credential)
}

// Stores bundles the storage-layer configs every service needs, reusing the
// teacher's PostgresConfig/RedisConfig/MeiliSearchConfig shapes verbatim.
type Stores struct {
	Database    database.PostgresConfig
	Redis       cache.RedisConfig
	MeiliSearch search.MeiliSearchConfig `json:",optional"`
}
