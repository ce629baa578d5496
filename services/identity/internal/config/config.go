package config

import (
	"github.com/zeromicro/go-zero/rest"

	"github.com/arenaforge/duel-server/internal/svcconf"
)

type Config struct {
	rest.RestConf
	svcconf.Stores
	Auth        svcconf.AuthConfig
	ServiceAuth svcconf.ServiceAuthConfig
	Persistence svcconf.PeerConfig

	// LockoutMaxAttempts and LockoutFor implement §4.1's login lockout
	// policy: 3 bad passwords locks the account for 15 minutes.
	LockoutMaxAttempts int `json:",default=3"`
	LockoutForSecs     int `json:",default=900"`
}
